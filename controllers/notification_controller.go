package controllers

import (
	"github.com/Ramyash8/hotel-reservation-system2/response"
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"
	"github.com/Ramyash8/hotel-reservation-system2/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

type NotificationController struct {
	m      *melody.Melody
	logger logger.Logger
}

func NewNotificationController(m *melody.Melody, log logger.Logger) *NotificationController {
	return &NotificationController{m: m, logger: log}
}

// BookingEvents upgrades to a websocket that receives the booking events of
// ?ownerId and/or ?userId
func (ctl *NotificationController) BookingEvents(c *gin.Context) {
	ownerID := c.Query(notification.KeyOwnerID)
	userID := c.Query(notification.KeyUserID)
	if ownerID == "" && userID == "" {
		response.BadRequest(c, "ownerId or userId is required")
		return
	}

	keys := map[string]interface{}{}
	if ownerID != "" {
		keys[notification.KeyOwnerID] = ownerID
	}
	if userID != "" {
		keys[notification.KeyUserID] = userID
	}
	if err := ctl.m.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		ctl.logger.Warn("websocket upgrade failed: %v", err)
	}
}
