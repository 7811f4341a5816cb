package handlers

import (
	"strconv"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/partyspace/partyspace-api/internal/venues"
)

type VenueHandler struct{}

func NewVenueHandler() *VenueHandler {
	return &VenueHandler{}
}

// List serves the catalog, narrowed by the location and guests query
// parameters when present.
func (h *VenueHandler) List(c *drift.Context) {
	location := c.QueryParam("location")
	guests := c.QueryParam("guests")

	filtered := venues.Filter(location, guests)

	c.JSON(200, map[string]any{
		"count":  len(filtered),
		"venues": filtered,
	})
}

func (h *VenueHandler) Get(c *drift.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid venue id")
		return
	}

	venue, ok := venues.ByID(id)
	if !ok {
		c.NotFound("venue not found")
		return
	}

	c.JSON(200, venue)
}

func (h *VenueHandler) Reviews(c *drift.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid venue id")
		return
	}

	if _, ok := venues.ByID(id); !ok {
		c.NotFound("venue not found")
		return
	}

	c.JSON(200, map[string]any{"reviews": venues.Reviews()})
}
