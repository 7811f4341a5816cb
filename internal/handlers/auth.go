package handlers

import (
	"context"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/partyspace/partyspace-api/internal/forms"
	"github.com/partyspace/partyspace-api/internal/session"
	"github.com/partyspace/partyspace-api/pkg/dto"
)

type AuthHandler struct {
	sessions SessionManagerInterface
}

func NewAuthHandler(sessions SessionManagerInterface) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

func (h *AuthHandler) SignIn(c *drift.Context) {
	var req dto.SignInRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	form := forms.New(h.sessions)
	form.UpdateField(forms.FieldEmail, req.Email)
	form.UpdateField(forms.FieldPassword, req.Password)

	if !form.HandleSignIn(context.Background()) {
		c.JSON(400, dto.FormErrorsResponse{Errors: form.Errors()})
		return
	}

	c.JSON(200, sessionResponse(h.sessions.Snapshot()))
}

func (h *AuthHandler) SignUp(c *drift.Context) {
	var req dto.SignUpRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	form := forms.New(h.sessions)
	form.UpdateField(forms.FieldName, req.Name)
	form.UpdateField(forms.FieldEmail, req.Email)
	form.UpdateField(forms.FieldPassword, req.Password)
	form.UpdateField(forms.FieldConfirmPassword, req.ConfirmPassword)

	if !form.HandleSignUp(context.Background()) {
		c.JSON(400, dto.FormErrorsResponse{Errors: form.Errors()})
		return
	}

	c.JSON(201, sessionResponse(h.sessions.Snapshot()))
}

func (h *AuthHandler) SignOut(c *drift.Context) {
	if err := h.sessions.Logout(context.Background()); err != nil {
		c.InternalServerError("failed to log out")
		return
	}

	c.JSON(200, map[string]string{"status": "signed_out"})
}

// Session reports the current session snapshot.
func (h *AuthHandler) Session(c *drift.Context) {
	c.JSON(200, sessionResponse(h.sessions.Snapshot()))
}

func sessionResponse(snap session.Snapshot) dto.SessionResponse {
	resp := dto.SessionResponse{
		Status:  snap.State.String(),
		Loading: snap.Loading,
		IsAdmin: snap.IsAdmin,
	}

	if snap.User != nil {
		resp.User = &dto.SessionUser{
			UID:         snap.User.UID,
			Email:       snap.User.Email,
			DisplayName: snap.User.DisplayName,
		}
	}

	if snap.Profile != nil {
		resp.Profile = &dto.ProfileResponse{
			UID:         snap.Profile.UID,
			Email:       snap.Profile.Email,
			DisplayName: snap.Profile.DisplayName,
			IsAdmin:     snap.Profile.IsAdmin,
			PhotoURL:    snap.Profile.PhotoURL,
			CreatedAt:   snap.Profile.CreatedAt,
		}
	}

	return resp
}
