package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/services/community"
)

// CommunityRepo implements the community repository interface
type CommunityRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCommunityRepository creates a new community repository
func NewCommunityRepository(cfg *models.Config, db *sqlx.DB) *CommunityRepo {
	return &CommunityRepo{
		cfg: cfg,
		db:  db,
	}
}

// communityDTO maps a communities row. The polygon fence is stored as a JSON
// array of vertices.
type communityDTO struct {
	ID                    uuid.UUID    `db:"id"`
	Name                  string       `db:"name"`
	Description           string       `db:"description"`
	IsActive              bool         `db:"is_active"`
	Archived              bool         `db:"archived"`
	AutoActivation        bool         `db:"auto_activation"`
	MinActiveDrivers      int          `db:"min_active_drivers"`
	DeactivationThreshold int          `db:"deactivation_threshold"`
	CenterLat             *float64     `db:"center_lat"`
	CenterLng             *float64     `db:"center_lng"`
	RadiusMeters          *int         `db:"radius_meters"`
	Geofence              []byte       `db:"geofence"`
	LastEvaluatedAt       sql.NullTime `db:"last_evaluated_at"`
	CreatedAt             sql.NullTime `db:"created_at"`
	UpdatedAt             sql.NullTime `db:"updated_at"`
}

func (dto *communityDTO) toCommunity() (*models.Community, error) {
	c := &models.Community{
		ID:                    dto.ID,
		Name:                  dto.Name,
		Description:           dto.Description,
		IsActive:              dto.IsActive,
		Archived:              dto.Archived,
		AutoActivation:        dto.AutoActivation,
		MinActiveDrivers:      dto.MinActiveDrivers,
		DeactivationThreshold: dto.DeactivationThreshold,
		CenterLat:             dto.CenterLat,
		CenterLng:             dto.CenterLng,
		RadiusMeters:          dto.RadiusMeters,
	}
	if len(dto.Geofence) > 0 {
		if err := json.Unmarshal(dto.Geofence, &c.Geofence); err != nil {
			return nil, fmt.Errorf("failed to decode geofence: %w", err)
		}
	}
	if dto.LastEvaluatedAt.Valid {
		t := dto.LastEvaluatedAt.Time
		c.LastEvaluatedAt = &t
	}
	if dto.CreatedAt.Valid {
		c.CreatedAt = dto.CreatedAt.Time
	}
	if dto.UpdatedAt.Valid {
		c.UpdatedAt = dto.UpdatedAt.Time
	}
	return c, nil
}

const communityColumns = `
	id, name, description, is_active, archived, auto_activation,
	min_active_drivers, deactivation_threshold,
	center_lat, center_lng, radius_meters, geofence,
	last_evaluated_at, created_at, updated_at
`

// CreateCommunity inserts a new community
func (r *CommunityRepo) CreateCommunity(ctx context.Context, c *models.Community) (*models.Community, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	fence, err := encodeGeofence(c.Geofence)
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO communities (
			id, name, description, is_active, archived, auto_activation,
			min_active_drivers, deactivation_threshold,
			center_lat, center_lng, radius_meters, geofence,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err = r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.Description, c.IsActive, c.Archived, c.AutoActivation,
		c.MinActiveDrivers, c.DeactivationThreshold,
		c.CenterLat, c.CenterLng, c.RadiusMeters, fence,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create community: %w", err)
	}

	return r.GetCommunity(ctx, c.ID)
}

// GetCommunity returns a community by ID
func (r *CommunityRepo) GetCommunity(ctx context.Context, communityID uuid.UUID) (*models.Community, error) {
	query := `SELECT ` + communityColumns + ` FROM communities WHERE id = $1`

	var dto communityDTO
	err := r.db.GetContext(ctx, &dto, query, communityID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, community.ErrCommunityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get community: %w", err)
	}
	return dto.toCommunity()
}

// GetCommunityByName returns a community by its unique name
func (r *CommunityRepo) GetCommunityByName(ctx context.Context, name string) (*models.Community, error) {
	query := `SELECT ` + communityColumns + ` FROM communities WHERE LOWER(name) = LOWER($1)`

	var dto communityDTO
	err := r.db.GetContext(ctx, &dto, query, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, community.ErrCommunityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get community by name: %w", err)
	}
	return dto.toCommunity()
}

// GetCommunityByPassenger returns the community the passenger is assigned to
func (r *CommunityRepo) GetCommunityByPassenger(ctx context.Context, passengerID uuid.UUID) (*models.Community, error) {
	query := `
		SELECT ` + communityColumns + `
		FROM communities
		WHERE id = (SELECT community_id FROM passengers WHERE id = $1)
	`

	var dto communityDTO
	err := r.db.GetContext(ctx, &dto, query, passengerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, community.ErrCommunityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get passenger community: %w", err)
	}
	return dto.toCommunity()
}

// UpdateGeometry replaces the fence geometry of a community
func (r *CommunityRepo) UpdateGeometry(ctx context.Context, communityID uuid.UUID, geofence []models.GeoPoint, centerLat, centerLng *float64, radiusMeters *int) error {
	fence, err := encodeGeofence(geofence)
	if err != nil {
		return err
	}

	query := `
		UPDATE communities
		SET geofence = $1, center_lat = $2, center_lng = $3, radius_meters = $4, updated_at = NOW()
		WHERE id = $5 AND archived = false
	`
	result, err := r.db.ExecContext(ctx, query, fence, centerLat, centerLng, radiusMeters, communityID)
	if err != nil {
		return fmt.Errorf("failed to update community geometry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return community.ErrCommunityNotFound
	}
	return nil
}

// ArchiveCommunity marks a community archived and inactive
func (r *CommunityRepo) ArchiveCommunity(ctx context.Context, communityID uuid.UUID) error {
	query := `
		UPDATE communities
		SET archived = true, is_active = false, updated_at = NOW()
		WHERE id = $1 AND archived = false
	`
	result, err := r.db.ExecContext(ctx, query, communityID)
	if err != nil {
		return fmt.Errorf("failed to archive community: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return community.ErrCommunityNotFound
	}
	return nil
}

// ListAutoActivationCommunities returns the communities the periodic
// evaluator should sweep. Archived communities stay in the sweep while still
// active so the evaluator can wind them down.
func (r *CommunityRepo) ListAutoActivationCommunities(ctx context.Context) ([]*models.Community, error) {
	query := `
		SELECT ` + communityColumns + `
		FROM communities
		WHERE auto_activation = true AND (archived = false OR is_active = true)
		ORDER BY name
	`

	var dtos []communityDTO
	if err := r.db.SelectContext(ctx, &dtos, query); err != nil {
		return nil, fmt.Errorf("failed to list auto-activation communities: %w", err)
	}

	comms := make([]*models.Community, 0, len(dtos))
	for i := range dtos {
		c, err := dtos[i].toCommunity()
		if err != nil {
			return nil, err
		}
		comms = append(comms, c)
	}
	return comms, nil
}

// SetActive flips is_active using the expected previous value as a guard
func (r *CommunityRepo) SetActive(ctx context.Context, communityID uuid.UUID, from, to bool) error {
	query := `
		UPDATE communities
		SET is_active = $1, updated_at = NOW()
		WHERE id = $2 AND is_active = $3
	`
	result, err := r.db.ExecContext(ctx, query, to, communityID, from)
	if err != nil {
		return fmt.Errorf("failed to set community status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return community.ErrStatusConflict
	}
	return nil
}

// TouchEvaluated stamps the last evaluation time
func (r *CommunityRepo) TouchEvaluated(ctx context.Context, communityID uuid.UUID) error {
	query := `UPDATE communities SET last_evaluated_at = NOW() WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, communityID); err != nil {
		return fmt.Errorf("failed to touch evaluation timestamp: %w", err)
	}
	return nil
}

// AppendStatusChange records an activation transition
func (r *CommunityRepo) AppendStatusChange(ctx context.Context, communityID uuid.UUID, change *models.CommunityStatusChange) error {
	if change.ID == uuid.Nil {
		change.ID = uuid.New()
	}

	query := `
		INSERT INTO community_status_history (
			id, community_id, from_is_active, to_is_active, driver_count, created_at
		) VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.ExecContext(ctx, query,
		change.ID, communityID, change.FromIsActive, change.ToIsActive, change.DriverCount,
	)
	if err != nil {
		return fmt.Errorf("failed to append status change: %w", err)
	}
	return nil
}

// ListStatusHistory returns activation transitions newest first
func (r *CommunityRepo) ListStatusHistory(ctx context.Context, communityID uuid.UUID) ([]*models.CommunityStatusChange, error) {
	query := `
		SELECT id, community_id, from_is_active, to_is_active, driver_count, created_at
		FROM community_status_history
		WHERE community_id = $1
		ORDER BY created_at DESC
	`

	var changes []*models.CommunityStatusChange
	if err := r.db.SelectContext(ctx, &changes, query, communityID); err != nil {
		return nil, fmt.Errorf("failed to list status history: %w", err)
	}
	return changes, nil
}

// CountActiveDrivers counts drivers assigned to the community that are
// online, approved and not suspended.
func (r *CommunityRepo) CountActiveDrivers(ctx context.Context, communityID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM driver_statuses
		WHERE community_id = $1
		  AND availability = $2
		  AND approval = $3
		  AND suspended = false
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, communityID, models.DriverOnline, models.DriverApproved)
	if err != nil {
		return 0, fmt.Errorf("failed to count active drivers: %w", err)
	}
	return count, nil
}

func encodeGeofence(fence []models.GeoPoint) ([]byte, error) {
	if len(fence) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(fence)
	if err != nil {
		return nil, fmt.Errorf("failed to encode geofence: %w", err)
	}
	return data, nil
}
