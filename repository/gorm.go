package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mihaianh/wedding_backend/models"
)

// GormGuestDirectory reads the guest list from the database.
type GormGuestDirectory struct {
	db *gorm.DB
}

// NewGormGuestDirectory creates a directory backed by the given connection.
func NewGormGuestDirectory(db *gorm.DB) *GormGuestDirectory {
	return &GormGuestDirectory{db: db}
}

// FindByCode looks up exactly one guest by canonical invite code.
// Invite codes are unique, but a result set of any size other than one
// still resolves to ErrNotFound rather than picking a row.
func (d *GormGuestDirectory) FindByCode(ctx context.Context, code string) (*models.Guest, error) {
	var guests []models.Guest
	err := d.db.WithContext(ctx).
		Where("invite_code = ?", code).
		Preload("Entitlements").
		Preload("GroupMembers").
		Preload("GroupMembers.Entitlements").
		Limit(2).
		Find(&guests).Error
	if err != nil {
		return nil, err
	}
	if len(guests) != 1 {
		return nil, ErrNotFound
	}
	return &guests[0], nil
}

// RSVPTableName derives the table name for a location's responses.
func RSVPTableName(location models.Location) string {
	return "rsvps_" + strings.ToLower(string(location))
}

// GormRSVPRepository stores responses for one location in its own table.
type GormRSVPRepository struct {
	db    *gorm.DB
	table string
}

// NewGormRSVPRepository creates a repository bound to a location's table.
func NewGormRSVPRepository(db *gorm.DB, location models.Location) *GormRSVPRepository {
	return &GormRSVPRepository{db: db, table: RSVPTableName(location)}
}

// FindByInviteCode returns the current response for a guest, or ErrNotFound.
func (r *GormRSVPRepository) FindByInviteCode(ctx context.Context, code string) (*models.RSVPResponse, error) {
	var resp models.RSVPResponse
	err := r.db.WithContext(ctx).Table(r.table).
		Where("invite_code = ?", code).
		First(&resp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Upsert writes the response for a guest in a single statement: insert on
// first submission, full replace of the mutable fields afterwards.
func (r *GormRSVPRepository) Upsert(ctx context.Context, code string, fields models.ResponseFields) (*models.RSVPResponse, error) {
	resp := models.RSVPResponse{
		InviteCode: code,
		Attending:  fields.Attending,
		FirstName:  fields.FirstName,
		LastName:   fields.LastName,
		Email:      fields.Email,
		Phone:      fields.Phone,
		Attributes: fields.Attributes,
	}

	err := r.db.WithContext(ctx).Table(r.table).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "invite_code"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"attending", "first_name", "last_name", "email", "phone", "attributes", "updated_at",
			}),
		}).
		Create(&resp).Error
	if err != nil {
		return nil, err
	}

	// Re-read so the caller sees the stored row (ID and created_at are
	// preserved from the original insert on the update path).
	return r.FindByInviteCode(ctx, code)
}
