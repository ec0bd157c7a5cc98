package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"stayhub-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := EnvOrDefault("DB_USER", "root")
	pass := EnvOrDefault("DB_PASS", "")
	host := EnvOrDefault("DB_HOST", "127.0.0.1")
	port := EnvOrDefault("DB_PORT", "3306")
	dbName := EnvOrDefault("DB_NAME", "stayhub_db")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// Migrate runs AutoMigrate in parent->child order so FKs resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.VerificationCode{},
		&models.HotelSetting{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.Payment{},
		&models.Review{},
		&models.Complaint{},
		&models.ChatMessage{},
		&models.TravelBooking{},
		&models.AuditLog{},
	)
}

// SeedDatabase ensures the minimum rows a fresh install needs.
func SeedDatabase(db *gorm.DB) {
	var adminCount int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(EnvOrDefault("ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
		} else {
			admin := models.User{
				FullName: "Admin User",
				Email:    EnvOrDefault("ADMIN_EMAIL", "admin@stayhub.local"),
				Password: string(hash),
				Role:     models.RoleAdmin,
				Active:   true,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Printf("warning: failed to create default admin: %v", err)
			} else {
				log.Println("Default admin seeded")
			}
		}
	}

	var rtCount int64
	db.Model(&models.RoomType{}).Count(&rtCount)
	if rtCount == 0 {
		roomTypes := []models.RoomType{
			{TypeName: "Standard", Description: "Standard Room", MaxGuests: 2, BasePrice: 80000},
			{TypeName: "Superior", Description: "Superior Room", MaxGuests: 3, BasePrice: 100000},
			{TypeName: "Deluxe", Description: "Deluxe Room", MaxGuests: 4, BasePrice: 150000},
			{TypeName: "Family Suite", Description: "Family Suite", MaxGuests: 5, BasePrice: 220000},
		}
		db.Create(&roomTypes)
		log.Println("RoomTypes seeded")
	}

	var settingCount int64
	db.Model(&models.HotelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HotelSetting{
			Name:     EnvOrDefault("HOTEL_NAME", "StayHub Hotel"),
			Currency: EnvOrDefault("HOTEL_CURRENCY", "THB"),
		}
		if err := db.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed hotel settings: %v", err)
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := Migrate(db); err != nil {
		return err
	}

	SeedDatabase(db)
	return nil
}
