package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mihaianh/wedding_backend/engine"
	"github.com/mihaianh/wedding_backend/models"
	"github.com/mihaianh/wedding_backend/repository"
	"github.com/mihaianh/wedding_backend/utils"
)

// AdminController serves the organizer management API: login, guest list
// maintenance and response listings. Guests themselves never touch these
// routes.
type AdminController struct {
	DB       *gorm.DB
	Registry *repository.Registry
}

// NewAdminController creates an admin controller.
func NewAdminController(db *gorm.DB, registry *repository.Registry) *AdminController {
	return &AdminController{DB: db, Registry: registry}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Organizer login
// @Description Authenticates an organizer and returns a JWT
// @Tags admin
// @Accept json
// @Produce json
// @Param credentials body LoginInput true "Credentials"
// @Success 200 {object} map[string]interface{} "Token"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /api/admin/login [post]
func (ac *AdminController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var organizer models.Organizer
	if result := ac.DB.Where("email = ?", input.Email).First(&organizer); result.Error != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	if err := organizer.ValidatePassword(input.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := utils.GenerateToken(organizer.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
	})
}

type CreateGuestInput struct {
	InviteCode   string   `json:"invite_code" binding:"required"`
	FirstName    string   `json:"first_name" binding:"required"`
	LastName     string   `json:"last_name" binding:"required"`
	Locations    []string `json:"locations" binding:"required,min=1"`
	GroupMembers []string `json:"group_members"`
}

// CreateGuest godoc
// @Summary Create a guest
// @Description Adds a guest with location entitlements and optional group member links
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param guest body CreateGuestInput true "Guest"
// @Success 201 {object} map[string]interface{} "Created guest"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/guests [post]
func (ac *AdminController) CreateGuest(c *gin.Context) {
	var input CreateGuestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	code := engine.NormalizeCode(input.InviteCode)

	var existing models.Guest
	if result := ac.DB.Where("invite_code = ?", code).First(&existing); result.RowsAffected > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A guest with this invite code already exists"})
		return
	}

	guest := models.Guest{
		InviteCode: code,
		FirstName:  input.FirstName,
		LastName:   input.LastName,
	}
	for _, loc := range input.Locations {
		guest.Entitlements = append(guest.Entitlements, models.GuestEntitlement{
			Location: models.NormalizeLocation(loc),
		})
	}

	for _, memberCode := range input.GroupMembers {
		var member models.Guest
		if result := ac.DB.Where("invite_code = ?", engine.NormalizeCode(memberCode)).First(&member); result.Error != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown group member code: " + memberCode})
			return
		}
		guest.GroupMembers = append(guest.GroupMembers, &member)
	}

	if result := ac.DB.Create(&guest); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create guest"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Guest created successfully",
		"guest":   guest,
	})
}

// ListGuests godoc
// @Summary List guests
// @Description Returns the full guest list with entitlements and group members
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Guest list"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/guests [get]
func (ac *AdminController) ListGuests(c *gin.Context) {
	var guests []models.Guest
	if err := ac.DB.Preload("Entitlements").Preload("GroupMembers").
		Find(&guests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch guests"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"guests": guests})
}

// ListResponses godoc
// @Summary List responses for a location
// @Description Returns all recorded responses in a location's partition
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location query string true "Location tag"
// @Success 200 {object} map[string]interface{} "Response list"
// @Failure 400 {object} map[string]string "Unknown location"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/admin/rsvps [get]
func (ac *AdminController) ListResponses(c *gin.Context) {
	location := models.NormalizeLocation(c.Query("location"))
	if _, ok := ac.Registry.Get(location); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown location"})
		return
	}

	var responses []models.RSVPResponse
	if err := ac.DB.Table(repository.RSVPTableName(location)).
		Order("updated_at desc").
		Find(&responses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch responses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"location":  location,
		"responses": responses,
	})
}
