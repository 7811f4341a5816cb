package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	SpaceName   string   `json:"space_name"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Amenities   []string `json:"amenities"`
	ImageURLs   []string `json:"image_urls"`
	VideoURLs   []string `json:"video_urls"`
}

type ListingResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerUID    string    `json:"owner_uid"`
	SpaceName   string    `json:"space_name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Amenities   []string  `json:"amenities"`
	ImageURLs   []string  `json:"image_urls"`
	VideoURLs   []string  `json:"video_urls"`
	CreatedAt   time.Time `json:"created_at"`
}
