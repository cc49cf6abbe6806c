package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mihaianh/wedding_backend/engine"
)

// GuestController serves invite verification for the RSVP form.
type GuestController struct {
	Resolver *engine.Resolver
}

// NewGuestController creates a guest controller.
func NewGuestController(resolver *engine.Resolver) *GuestController {
	return &GuestController{Resolver: resolver}
}

type VerifyInviteInput struct {
	InviteID string `json:"invite_id" binding:"required" example:"ABC123"`
}

// VerifyInvite godoc
// @Summary Verify an invite code
// @Description Resolves an invite code to the guest's name, locations and response state
// @Tags invites
// @Accept json
// @Produce json
// @Param invite body VerifyInviteInput true "Invite code"
// @Success 200 {object} map[string]interface{} "Guest view"
// @Failure 400 {object} map[string]string "Missing invite code"
// @Failure 404 {object} map[string]string "Invalid invite code"
// @Router /api/invites/verify [post]
func (gc *GuestController) VerifyInvite(c *gin.Context) {
	var input VerifyInviteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	guest, err := gc.Resolver.Resolve(c.Request.Context(), input.InviteID)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invite_id":     guest.InviteCode,
		"full_name":     guest.FullName(),
		"location":      guest.Entitlements,
		"rsvp":          guest.RespondedLocations(),
		"group_members": guest.GroupMembers,
	})
}
