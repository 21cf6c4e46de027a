package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/constants"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/database"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/logger"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
	"github.com/usbtecnok/kaviar-v2-sub004/internal/utils"
	"github.com/usbtecnok/kaviar-v2-sub004/services/location"
)

const (
	// locationTTL keeps per-driver location hashes from lingering after a
	// driver silently disappears.
	locationTTL = 24 * time.Hour

	// geohashPrecision gives roughly 5m cells, enough to group drivers on
	// the same block.
	geohashPrecision = 9
)

type locationRepo struct {
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sqlx.DB, redisClient *database.RedisClient) location.LocationRepo {
	return &locationRepo{
		db:          db,
		redisClient: redisClient,
	}
}

// StoreDriverLocation records the driver in the geo pool, the availability
// set and the per-driver location hash.
func (r *locationRepo) StoreDriverLocation(ctx context.Context, update models.LocationUpdate) error {
	loc := update.Location

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, loc.Longitude, loc.Latitude, update.DriverID); err != nil {
		return fmt.Errorf("failed to add driver to geo pool: %w", err)
	}

	if err := r.redisClient.SAdd(ctx, constants.KeyAvailableDrivers, update.DriverID); err != nil {
		return fmt.Errorf("failed to add driver to availability set: %w", err)
	}

	locationKey := fmt.Sprintf(constants.KeyDriverLocation, update.DriverID)
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		constants.FieldTimestamp: strconv.FormatInt(loc.Timestamp.Unix(), 10),
		constants.FieldGeohash:   utils.EncodeLocation(loc, geohashPrecision),
	}
	if err := r.redisClient.HMSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store driver location: %w", err)
	}
	if err := r.redisClient.Expire(ctx, locationKey, locationTTL); err != nil {
		return fmt.Errorf("failed to set location TTL: %w", err)
	}

	return nil
}

// RemoveDriver takes the driver out of the availability pool
func (r *locationRepo) RemoveDriver(ctx context.Context, driverID string) error {
	if err := r.redisClient.SRem(ctx, constants.KeyAvailableDrivers, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from availability set: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyDriverGeo, driverID); err != nil {
		return fmt.Errorf("failed to remove driver from geo pool: %w", err)
	}
	if err := r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyDriverLocation, driverID)); err != nil {
		return fmt.Errorf("failed to delete driver location: %w", err)
	}
	return nil
}

// ListAvailableDrivers returns every pooled driver with its last position.
// Drivers whose location hash has expired are skipped.
func (r *locationRepo) ListAvailableDrivers(ctx context.Context) ([]models.DriverPosition, error) {
	driverIDs, err := r.redisClient.SMembers(ctx, constants.KeyAvailableDrivers)
	if err != nil {
		return nil, fmt.Errorf("failed to list available drivers: %w", err)
	}

	positions := make([]models.DriverPosition, 0, len(driverIDs))
	for _, driverID := range driverIDs {
		pos, err := r.getDriverPosition(ctx, driverID)
		if err != nil {
			logger.Warn("skipping driver with unreadable location",
				logger.String("driver_id", driverID),
				logger.Err(err))
			continue
		}
		if pos == nil {
			continue
		}
		positions = append(positions, *pos)
	}
	return positions, nil
}

func (r *locationRepo) getDriverPosition(ctx context.Context, driverID string) (*models.DriverPosition, error) {
	locationKey := fmt.Sprintf(constants.KeyDriverLocation, driverID)
	values, err := r.redisClient.HMGet(ctx, locationKey,
		constants.FieldLatitude, constants.FieldLongitude, constants.FieldTimestamp, constants.FieldGeohash)
	if err != nil {
		return nil, fmt.Errorf("failed to get driver location: %w", err)
	}
	if len(values) != 4 || values[0] == "" || values[1] == "" {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	lng, err := strconv.ParseFloat(values[1], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}
	ts, err := strconv.ParseInt(values[2], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp: %w", err)
	}

	return &models.DriverPosition{
		DriverID: driverID,
		Location: models.Location{
			Latitude:  lat,
			Longitude: lng,
			Timestamp: time.Unix(ts, 0),
		},
		Geohash: values[3],
	}, nil
}

// GetDriverStatus loads the driver's status row
func (r *locationRepo) GetDriverStatus(ctx context.Context, driverID string) (*models.DriverStatus, error) {
	query := `
		SELECT driver_id, community_id, availability, approval, suspended, updated_at
		FROM driver_statuses
		WHERE driver_id = $1
	`

	var status models.DriverStatus
	err := r.db.GetContext(ctx, &status, query, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, location.ErrDriverNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get driver status: %w", err)
	}
	return &status, nil
}

// SetDriverAvailability flips the driver's availability flag
func (r *locationRepo) SetDriverAvailability(ctx context.Context, driverID string, availability models.DriverAvailability) error {
	query := `
		UPDATE driver_statuses
		SET availability = $1, updated_at = NOW()
		WHERE driver_id = $2
	`
	result, err := r.db.ExecContext(ctx, query, availability, driverID)
	if err != nil {
		return fmt.Errorf("failed to set driver availability: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return location.ErrDriverNotFound
	}
	return nil
}
