package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"

	"github.com/usbtecnok/kaviar-v2-sub004/internal/pkg/models"
)

func TestNewRedisClient_ConnectionError(t *testing.T) {
	config := models.RedisConfig{
		Host:     "invalid-host",
		Port:     9999,
		Password: "",
		DB:       0,
		PoolSize: 10,
	}

	client, err := NewRedisClient(config)

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewRedisClientFrom(db)

	ctx := context.Background()
	mock.ExpectSet("test:key", "test-value", time.Hour).SetVal("OK")

	err := client.Set(ctx, "test:key", "test-value", time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_HMGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewRedisClientFrom(db)

	ctx := context.Background()
	mock.ExpectHMGet("driver:location:d1", "latitude", "longitude", "timestamp").
		SetVal([]interface{}{"-22.9519", "-43.2105", "1773230400"})

	values, err := client.HMGet(ctx, "driver:location:d1", "latitude", "longitude", "timestamp")

	assert.NoError(t, err)
	assert.Equal(t, []string{"-22.9519", "-43.2105", "1773230400"}, values)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_HMGet_MissingFieldsReadAsEmpty(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewRedisClientFrom(db)

	ctx := context.Background()
	// A missing hash field comes back as nil; the wrapper maps it to "".
	mock.ExpectHMGet("driver:location:d1", "latitude", "geohash").
		SetVal([]interface{}{"-22.9519", nil})

	values, err := client.HMGet(ctx, "driver:location:d1", "latitude", "geohash")

	assert.NoError(t, err)
	assert.Equal(t, []string{"-22.9519", ""}, values)
}

func TestRedisClient_HMGet_Error(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewRedisClientFrom(db)

	ctx := context.Background()
	mock.ExpectHMGet("driver:location:d1", "latitude").SetErr(redis.ErrClosed)

	_, err := client.HMGet(ctx, "driver:location:d1", "latitude")

	assert.Error(t, err)
}

func TestRedisClient_Expire(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewRedisClientFrom(db)

	ctx := context.Background()
	mock.ExpectExpire("driver:location:d1", 24*time.Hour).SetVal(true)

	err := client.Expire(ctx, "driver:location:d1", 24*time.Hour)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_SetOperations(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewRedisClientFrom(db)

	ctx := context.Background()
	mock.ExpectSAdd("available:drivers", "d1").SetVal(1)
	mock.ExpectSIsMember("available:drivers", "d1").SetVal(true)
	mock.ExpectSRem("available:drivers", "d1").SetVal(1)

	assert.NoError(t, client.SAdd(ctx, "available:drivers", "d1"))

	member, err := client.SIsMember(ctx, "available:drivers", "d1")
	assert.NoError(t, err)
	assert.True(t, member)

	assert.NoError(t, client.SRem(ctx, "available:drivers", "d1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisClient_GeoAdd(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := NewRedisClientFrom(db)

	ctx := context.Background()
	mock.ExpectGeoAdd("drivers:geo", &redis.GeoLocation{
		Longitude: -43.2105,
		Latitude:  -22.9519,
		Name:      "d1",
	}).SetVal(1)

	err := client.GeoAdd(ctx, "drivers:geo", -43.2105, -22.9519, "d1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
