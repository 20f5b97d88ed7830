package handlers

import (
	"net/http"

	"soukcod/internal/domain/notification"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	service *notification.Service
}

func NewNotificationHandler(s *notification.Service) NotificationHandler {
	return NotificationHandler{service: s}
}

func (h *NotificationHandler) List(c *gin.Context) {
	res, err := h.service.List(c, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
