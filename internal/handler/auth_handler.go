package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobhub/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	cookie      SessionCookie
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Username          string  `json:"username" validate:"required,max=255"`
	Password          string  `json:"password" validate:"required"`
	Email             string  `json:"email" validate:"required,email"`
	FirstName         *string `json:"firstName,omitempty" validate:"omitempty,max=255"`
	LastName          *string `json:"lastName,omitempty" validate:"omitempty,max=255"`
	PreferredLanguage string  `json:"preferredLanguage,omitempty" validate:"omitempty,oneof=en ar"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Signup godoc
// @Summary Create an account
// @Description Creates the user, posts a welcome notification and opens a session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return invalid("Username, password, and email are required", err)
	}

	user, sess, err := h.authService.Signup(c.Request().Context(), service.SignupInput{
		Username:          req.Username,
		Password:          req.Password,
		Email:             req.Email,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		PreferredLanguage: req.PreferredLanguage,
	})
	if err != nil {
		return fail(err)
	}

	h.cookie.set(c, sess)
	return c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return invalid("Username and password are required", err)
	}

	user, sess, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return fail(err)
	}

	h.cookie.set(c, sess)
	return c.JSON(http.StatusOK, user)
}

// Logout godoc
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	p, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), p.SessionID); err != nil {
		return fail(err)
	}

	h.cookie.clear(c)
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.authService.Me(c.Request().Context(), p.UserID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, user)
}

// Google godoc
// @Summary Google sign-in (not implemented)
// @Description Redirects to the home page.
// @Tags auth
// @Success 302
// @Router /auth/google [get]
func (h *AuthHandler) Google(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/")
}
