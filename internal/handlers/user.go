package handlers

import (
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/partyspace/partyspace-api/internal/session"
	"github.com/partyspace/partyspace-api/pkg/dto"
)

type UserHandler struct {
	sessions SessionManagerInterface
}

func NewUserHandler(sessions SessionManagerInterface) *UserHandler {
	return &UserHandler{sessions: sessions}
}

func (h *UserHandler) GetMe(c *drift.Context) {
	snap := h.sessions.Snapshot()
	if snap.State != session.StateAuthenticated || snap.Profile == nil {
		c.Unauthorized("not authenticated")
		return
	}

	c.JSON(200, dto.ProfileResponse{
		UID:         snap.Profile.UID,
		Email:       snap.Profile.Email,
		DisplayName: snap.Profile.DisplayName,
		IsAdmin:     snap.Profile.IsAdmin,
		PhotoURL:    snap.Profile.PhotoURL,
		CreatedAt:   snap.Profile.CreatedAt,
	})
}
