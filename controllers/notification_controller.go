package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mihaianh/wedding_backend/models"
	"github.com/mihaianh/wedding_backend/notification"
)

// Sender dispatches one confirmation to the external notification
// service.
type Sender interface {
	Send(ctx context.Context, req notification.Request) (notification.Result, error)
}

// NotificationController relays confirmation requests from the web client
// to the notification service. The client calls this after its RSVP has
// been recorded; the outcome here is a secondary status and never a
// failure of the submission itself.
type NotificationController struct {
	Client Sender
}

// NewNotificationController creates a notification controller.
func NewNotificationController(client Sender) *NotificationController {
	return &NotificationController{Client: client}
}

type SendNotificationInput struct {
	Name      string `json:"name" binding:"required" example:"Andrei Popescu"`
	Email     string `json:"email" binding:"required,email" example:"andrei@example.com"`
	Attending *bool  `json:"attending" binding:"required" example:"true"`
	Location  string `json:"location" binding:"required" example:"ROMANIA"`
}

// SendNotification godoc
// @Summary Send a confirmation notification
// @Description Asks the notification service to send a confirmation message; failure is reported in the body, not as an HTTP error
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body SendNotificationInput true "Confirmation request"
// @Success 200 {object} map[string]interface{} "Dispatch outcome"
// @Failure 400 {object} map[string]string "Missing fields"
// @Router /api/notifications [post]
func (nc *NotificationController) SendNotification(c *gin.Context) {
	var input SendNotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := nc.Client.Send(c.Request.Context(), notification.Request{
		Name:      input.Name,
		Email:     input.Email,
		Attending: *input.Attending,
		Location:  models.NormalizeLocation(input.Location),
	})

	// An upstream failure still answers 200: the RSVP is already
	// recorded and the client only needs the secondary status.
	c.JSON(http.StatusOK, gin.H{
		"success":     result.Success && err == nil,
		"dispatch_id": result.DispatchID,
	})
}
