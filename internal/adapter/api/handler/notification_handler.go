package handler

import (
	"feriavirtual/internal/usecase"
	"feriavirtual/pkg/response"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	notificationUseCase *usecase.NotificationUseCase
}

func NewNotificationHandler(notificationUseCase *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{
		notificationUseCase: notificationUseCase,
	}
}

func (h *NotificationHandler) List(c echo.Context) error {
	recipient := c.Get("actor_email").(string)
	notifications, err := h.notificationUseCase.ListForRecipient(c.Request().Context(), recipient)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, notifications)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	recipient := c.Get("actor_email").(string)
	count, err := h.notificationUseCase.UnreadCount(c.Request().Context(), recipient)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]int{"unread": count})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	recipient := c.Get("actor_email").(string)
	if err := h.notificationUseCase.MarkRead(c.Request().Context(), recipient, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	recipient := c.Get("actor_email").(string)
	if err := h.notificationUseCase.MarkAllRead(c.Request().Context(), recipient); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "All notifications marked read"})
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	recipient := c.Get("actor_email").(string)
	if err := h.notificationUseCase.Delete(c.Request().Context(), recipient, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"id": c.Param("id")})
}
