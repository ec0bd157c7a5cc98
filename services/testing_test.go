package services

import (
	"path/filepath"
	"testing"
	"time"

	"stayhub-backend/config"
	"stayhub-backend/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a file-backed sqlite database in the test's temp dir with
// the full schema migrated. File-backed (not :memory:) so concurrent
// connections see the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newBookingService(t *testing.T, db *gorm.DB) *BookingService {
	t.Helper()
	return NewBookingService(db, config.DefaultPricing(), nil, zerolog.Nop())
}

func seedCustomer(t *testing.T, db *gorm.DB, active bool) *models.User {
	t.Helper()
	user := models.User{
		FullName: "Test Customer",
		Email:    "customer-" + t.Name() + "@example.com",
		Password: "hashed",
		Role:     models.RoleCustomer,
		Active:   active,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func seedRoom(t *testing.T, db *gorm.DB, number string, price float64, status models.RoomStatus) *models.Room {
	t.Helper()
	rt := models.RoomType{TypeName: "Superior", MaxGuests: 3, BasePrice: price}
	require.NoError(t, db.Create(&rt).Error)
	room := models.Room{
		RoomTypeID:   &rt.ID,
		RoomNumber:   number,
		Price:        price,
		MaxOccupancy: 3,
		Status:       status,
	}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func stayDates(t *testing.T, nights int) (time.Time, time.Time) {
	t.Helper()
	checkIn, err := time.Parse("2006-01-02", "2026-10-01")
	require.NoError(t, err)
	return checkIn, checkIn.AddDate(0, 0, nights)
}
