package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jobhub/internal/errors"
	"jobhub/internal/service"
)

// NotificationHandler serves the signed-in user's notifications.
type NotificationHandler struct {
	notifications service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(notifications service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// ListNotifications godoc
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} model.Notification
// @Failure 401 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	p, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	list, err := h.notifications.List(c.Request().Context(), p.UserID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, list)
}

// CountUnread godoc
// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {integer} int
// @Failure 401 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /notifications/count [get]
func (h *NotificationHandler) CountUnread(c echo.Context) error {
	p, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	count, err := h.notifications.UnreadCount(c.Request().Context(), p.UserID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, count)
}

// MarkRead godoc
// @Summary Mark a notification read
// @Tags notifications
// @Param id path int true "Notification ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security SessionCookie
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	p, err := requirePrincipal(c)
	if err != nil {
		return err
	}

	id, ok := pathID(c, "id")
	if !ok {
		return badRequest("Invalid notification ID")
	}

	ctx := c.Request().Context()
	n, err := h.notifications.Get(ctx, id)
	if err != nil {
		return fail(err)
	}
	if n.UserID != p.UserID {
		return fail(errors.Forbidden("Not authorized"))
	}

	if err := h.notifications.MarkRead(ctx, id); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}
