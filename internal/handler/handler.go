// Package handler holds the echo handlers of the /api routes. Handlers bind
// and validate input, call one service, and map DomainErrors to HTTP errors.
package handler

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"jobhub/internal/auth"
	"jobhub/internal/errors"
	"jobhub/internal/query"
)

// PrincipalKey is the echo context key the session middleware stores the
// *auth.Principal under.
const PrincipalKey = "session"

// fail converts a service error into an echo HTTP error carrying an
// ErrorResponse body. The original error is kept as the internal cause.
func fail(err error) error {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse()).SetInternal(err)
}

// badRequest builds a 400 with the given message.
func badRequest(message string) error {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Message: message,
		Code:    string(errors.TypeValidation),
	})
}

// invalid converts a validator failure into a 400 listing the bad fields.
func invalid(message string, err error) error {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return badRequest(message)
	}

	fields := make([]errors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, errors.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return fail(errors.Validation(message, fields...))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}

// principal returns the session stored by the session middleware, or nil for
// an anonymous request.
func principal(c echo.Context) *auth.Principal {
	p, _ := c.Get(PrincipalKey).(*auth.Principal)
	return p
}

// viewerID is the caller's user id, 0 when anonymous.
func viewerID(c echo.Context) uint {
	if p := principal(c); p != nil {
		return p.UserID
	}
	return 0
}

// requirePrincipal is for routes behind the required-session middleware.
func requirePrincipal(c echo.Context) (*auth.Principal, error) {
	p := principal(c)
	if p == nil {
		return nil, fail(errors.Unauthenticated("Not authenticated"))
	}
	return p, nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func pagination(c echo.Context) query.Pagination {
	return query.ParsePagination(c.QueryParams())
}

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

func (sc SessionCookie) set(c echo.Context, sess *auth.Session) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		MaxAge:   int(time.Until(sess.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (sc SessionCookie) clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sc.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   sc.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// MessageResponse is a body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}
