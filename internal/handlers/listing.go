package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/partyspace/partyspace-api/internal/listings"
	"github.com/partyspace/partyspace-api/internal/middleware"
	"github.com/partyspace/partyspace-api/pkg/dto"
)

type ListingHandler struct {
	listingService ListingServiceInterface
}

func NewListingHandler(listingService ListingServiceInterface) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

func (h *ListingHandler) Create(c *drift.Context) {
	ownerUID := middleware.GetUserUID(c)
	if ownerUID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateListingRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.SpaceName == "" {
		c.BadRequest("space name is required")
		return
	}
	if req.Location == "" {
		c.BadRequest("location is required")
		return
	}

	listing, err := h.listingService.Create(context.Background(), listings.NewListing{
		OwnerUID:    ownerUID,
		SpaceName:   req.SpaceName,
		Location:    req.Location,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Amenities:   req.Amenities,
		ImageURLs:   req.ImageURLs,
		VideoURLs:   req.VideoURLs,
	})
	if err != nil {
		c.InternalServerError("failed to save listing")
		return
	}

	c.JSON(201, listingResponse(listing))
}

// Mine lists the caller's own listings.
func (h *ListingHandler) Mine(c *drift.Context) {
	ownerUID := middleware.GetUserUID(c)
	if ownerUID == "" {
		c.Unauthorized("not authenticated")
		return
	}

	owned, err := h.listingService.ListByOwner(context.Background(), ownerUID)
	if err != nil {
		c.InternalServerError("failed to load listings")
		return
	}

	c.JSON(200, listingListResponse(owned))
}

// List serves every listing. Reached only through the admin guard.
func (h *ListingHandler) List(c *drift.Context) {
	all, err := h.listingService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to load listings")
		return
	}

	c.JSON(200, listingListResponse(all))
}

func listingResponse(l *listings.Listing) dto.ListingResponse {
	return dto.ListingResponse{
		ID:          l.ID,
		OwnerUID:    l.OwnerUID,
		SpaceName:   l.SpaceName,
		Location:    l.Location,
		Description: l.Description,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
		Amenities:   l.Amenities,
		ImageURLs:   l.ImageURLs,
		VideoURLs:   l.VideoURLs,
		CreatedAt:   l.CreatedAt,
	}
}

func listingListResponse(list []*listings.Listing) map[string]any {
	out := make([]dto.ListingResponse, 0, len(list))
	for _, l := range list {
		out = append(out, listingResponse(l))
	}
	return map[string]any{
		"count":    len(out),
		"listings": out,
	}
}
