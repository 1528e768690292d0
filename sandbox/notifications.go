package sandbox

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

func (h *handlers) queryNotifications(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	return ctx.JSON(http.StatusOK, h.store.NotificationsFor(claims.ID))
}

func (h *handlers) readNotification(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}
	if err := h.store.MarkNotificationRead(ctx.Param("id"), claims.ID); err != nil {
		return errHttpNotFound
	}
	return ctx.JSON(http.StatusOK, echo.Map{"message": "notification read"})
}
