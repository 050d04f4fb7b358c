package handler

import (
	"go-stockpilot/internal/repository"
	"go-stockpilot/internal/service"

	"github.com/gofiber/fiber/v2"
)

type NotificationHandler struct {
	service service.NotificationService
}

func NewNotificationHandler(s service.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: s}
}

func (h *NotificationHandler) List(c *fiber.Ctx) error {
	filter := repository.NotificationFilter{
		ListQuery:  listQuery(c),
		UnreadOnly: c.QueryBool("unread_only", false),
		Type:       c.Query("type"),
	}

	result, err := h.service.List(currentUserID(c), filter)
	if err != nil {
		return fail(c, err)
	}
	return success(c, fiber.StatusOK, result)
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	notification, err := h.service.MarkRead(currentUserID(c), id)
	if err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, notification, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.service.MarkAllRead(currentUserID(c)); err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, nil, "All notifications marked as read")
}

func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return fail(c, err)
	}

	if err := h.service.Delete(currentUserID(c), id); err != nil {
		return fail(c, err)
	}
	return successMessage(c, fiber.StatusOK, nil, "Notification deleted")
}
