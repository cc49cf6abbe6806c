package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mihaianh/wedding_backend/engine"
	"github.com/mihaianh/wedding_backend/models"
)

// RSVPController accepts response submissions and pushes recorded
// responses to the organizer dashboard feed.
type RSVPController struct {
	Engine *engine.Engine

	// Broadcast publishes a recorded response to the location's live
	// feed. Optional; nil when no dashboard is wired up.
	Broadcast func(location models.Location, msgType string, payload interface{})
}

// NewRSVPController creates an RSVP controller.
func NewRSVPController(eng *engine.Engine, broadcast func(models.Location, string, interface{})) *RSVPController {
	return &RSVPController{Engine: eng, Broadcast: broadcast}
}

type GroupMemberInput struct {
	InviteID  string `json:"invite_id" binding:"required" example:"DEF456"`
	FirstName string `json:"first_name" binding:"required" example:"Linh"`
	LastName  string `json:"last_name" binding:"required" example:"Tran"`
	Attending *bool  `json:"attending" binding:"required" example:"true"`
}

type SubmitRSVPInput struct {
	InviteID  string `json:"invite_id" binding:"required" example:"ABC123"`
	Location  string `json:"location" binding:"required" example:"ROMANIA"`
	FirstName string `json:"first_name" binding:"required" example:"Andrei"`
	LastName  string `json:"last_name" binding:"required" example:"Popescu"`
	Email     string `json:"email" binding:"required,email" example:"andrei@example.com"`
	Phone     string `json:"phone" binding:"required" example:"+40721000000"`
	// Attending is a pointer so "false" passes validation while an
	// absent value does not.
	Attending        *bool                  `json:"attending" binding:"required" example:"true"`
	Properties       map[string]interface{} `json:"properties"`
	GroupMemberRSVPs []GroupMemberInput     `json:"group_member_rsvps"`
}

// SubmitRSVP godoc
// @Summary Submit an RSVP
// @Description Records the guest's response for a location, optionally with delegated responses for group members
// @Tags rsvp
// @Accept json
// @Produce json
// @Param rsvp body SubmitRSVPInput true "RSVP submission"
// @Success 200 {object} map[string]interface{} "Recorded response"
// @Failure 400 {object} map[string]string "Missing fields"
// @Failure 403 {object} map[string]string "Location not entitled"
// @Failure 404 {object} map[string]string "Invalid invite code"
// @Failure 500 {object} map[string]string "Storage failure"
// @Router /api/rsvp [post]
func (rc *RSVPController) SubmitRSVP(c *gin.Context) {
	var input SubmitRSVPInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location := models.NormalizeLocation(input.Location)
	submission := engine.Submission{
		InviteCode: input.InviteID,
		Location:   location,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Attending:  input.Attending,
		Attributes: models.Attributes(input.Properties),
	}

	result, err := rc.Engine.Submit(c.Request.Context(), submission)
	if err != nil {
		abortWithEngineError(c, err)
		return
	}

	response := gin.H{
		"success":     true,
		"data":        result.Response,
		"reconfirmed": result.Reconfirmed,
	}

	if !result.Reconfirmed && rc.Broadcast != nil {
		rc.Broadcast(location, "rsvp", gin.H{
			"location":    location,
			"invite_code": result.Response.InviteCode,
			"full_name":   result.Response.FirstName + " " + result.Response.LastName,
			"attending":   result.Response.Attending,
		})
	}

	// Delegation only happens for attending submitters: members travel
	// with the submitter, so a "no" suppresses the whole batch.
	if *input.Attending && len(input.GroupMemberRSVPs) > 0 {
		members := make([]engine.GroupMemberSubmission, 0, len(input.GroupMemberRSVPs))
		for _, m := range input.GroupMemberRSVPs {
			members = append(members, engine.GroupMemberSubmission{
				InviteCode: m.InviteID,
				FirstName:  m.FirstName,
				LastName:   m.LastName,
				Attending:  m.Attending,
			})
		}

		contact := engine.Contact{Email: input.Email, Phone: input.Phone}
		groupResults, err := rc.Engine.SubmitGroup(c.Request.Context(), input.InviteID, location, contact, members)
		if err != nil {
			abortWithEngineError(c, err)
			return
		}
		response["group_results"] = groupResults

		if rc.Broadcast != nil {
			for _, gr := range groupResults {
				if gr.Success {
					rc.Broadcast(location, "rsvp", gin.H{
						"location":    location,
						"invite_code": gr.Response.InviteCode,
						"full_name":   gr.Response.FirstName + " " + gr.Response.LastName,
						"attending":   gr.Response.Attending,
					})
				}
			}
		}
	}

	c.JSON(http.StatusOK, response)
}
