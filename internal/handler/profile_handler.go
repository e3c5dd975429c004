package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobhub/internal/service"
)

// ProfileHandler serves profile edits.
type ProfileHandler struct {
	profiles service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profiles service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// ProfileRequest lists the profile fields to change. Omitted fields are kept.
type ProfileRequest struct {
	FirstName         *string `json:"firstName,omitempty" validate:"omitempty,max=255"`
	LastName          *string `json:"lastName,omitempty" validate:"omitempty,max=255"`
	Email             *string `json:"email,omitempty" validate:"omitempty,email"`
	PreferredLanguage *string `json:"preferredLanguage,omitempty" validate:"omitempty,oneof=en ar"`
}

// UpdateProfile godoc
// @Summary Update the current user's profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body ProfileRequest true "Fields to change"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /profile [patch]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	p, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return invalid("Invalid data", err)
	}

	user, err := h.profiles.Update(c.Request().Context(), p.UserID, service.ProfileUpdate{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		PreferredLanguage: req.PreferredLanguage,
	})
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, user)
}
