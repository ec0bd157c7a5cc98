package services

import (
	"context"
	"testing"
	"time"

	"stayhub-backend/config"
	"stayhub-backend/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *AvailabilityCache {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewAvailabilityCache(rdb, time.Minute, zerolog.Nop())
}

func TestAvailabilityCacheReadThrough(t *testing.T) {
	db := newTestDB(t)
	cache := newTestCache(t)
	rooms := NewRoomService(db, cache, zerolog.Nop())
	ctx := context.Background()

	seedRoom(t, db, "201", 80000, models.RoomAvailable)
	seedRoom(t, db, "202", 80000, models.RoomOccupied)

	// miss, fill from db
	got, err := rooms.GetAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "201", got[0].RoomNumber)

	cached, ok := cache.GetAvailable(ctx)
	require.True(t, ok)
	assert.Len(t, cached, 1)

	// a stale cache serves until invalidated
	require.NoError(t, db.Model(&models.Room{}).
		Where("room_number = ?", "202").
		Update("status", models.RoomAvailable).Error)

	got, err = rooms.GetAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	cache.Invalidate(ctx)

	got, err = rooms.GetAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingInvalidatesAvailabilityCache(t *testing.T) {
	db := newTestDB(t)
	cache := newTestCache(t)
	roomsSvc := NewRoomService(db, cache, zerolog.Nop())
	bookings := NewBookingService(db, config.DefaultPricing(), cache, zerolog.Nop())
	ctx := context.Background()

	customer := seedCustomer(t, db, true)
	room := seedRoom(t, db, "301", 90000, models.RoomAvailable)
	checkIn, checkOut := stayDates(t, 2)

	got, err := roomsSvc.GetAvailable(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	_, err = bookings.CreateBooking(ctx, CreateBookingInput{
		CustomerID:    customer.ID,
		RoomID:        room.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        2,
		PaymentMethod: models.PaymentMethodCard,
	})
	require.NoError(t, err)

	// the occupancy change reached the next search
	got, err = roomsSvc.GetAvailable(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 0)
}

func TestAvailabilityCacheDropsCorruptPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	cache := NewAvailabilityCache(rdb, time.Minute, zerolog.Nop())
	ctx := context.Background()

	require.NoError(t, mr.Set(availableRoomsKey, "{not json"))
	_, ok := cache.GetAvailable(ctx)
	assert.False(t, ok)

	// the bad entry was deleted
	assert.False(t, mr.Exists(availableRoomsKey))
}

func TestNilCacheIsNoOp(t *testing.T) {
	var cache *AvailabilityCache
	ctx := context.Background()

	_, ok := cache.GetAvailable(ctx)
	assert.False(t, ok)
	cache.SetAvailable(ctx, nil)
	cache.Invalidate(ctx)
}
