package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/middleware"
	"stayhub-backend/models"
	"stayhub-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *services.AuthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	log := zerolog.Nop()
	pricing := config.DefaultPricing()

	authSvc := services.NewAuthService(db, "test-secret", time.Hour, log)
	userSvc := services.NewUserService(db, log)
	bookingSvc := services.NewBookingService(db, pricing, nil, log)
	roomSvc := services.NewRoomService(db, nil, log)
	auditSvc := services.NewAuditService(db, log)
	reviewSvc := services.NewReviewService(db)
	complaintSvc := services.NewComplaintService(db)
	chatSvc := services.NewChatService(db)
	travelSvc := services.NewTravelService(db, pricing)

	ctrl := Controllers{
		Auth:      controllers.NewAuthController(authSvc, userSvc),
		Booking:   controllers.NewBookingController(bookingSvc, auditSvc),
		Room:      controllers.NewRoomController(roomSvc, auditSvc),
		Review:    controllers.NewReviewController(reviewSvc),
		Complaint: controllers.NewComplaintController(complaintSvc, auditSvc),
		Chat:      controllers.NewChatController(chatSvc),
		Travel:    controllers.NewTravelController(travelSvc),
		User:      controllers.NewUserController(userSvc, auditSvc),
		Audit:     controllers.NewAuditController(auditSvc),
	}

	router := SetupRouter(log, authSvc, middleware.NewRateLimiter(100, 100), ctrl)
	return &testServer{router: router, db: db, auth: authSvc}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) seedRoom(t *testing.T, number string) *models.Room {
	t.Helper()
	rt := models.RoomType{TypeName: "Deluxe", MaxGuests: 3, BasePrice: 100000}
	require.NoError(t, s.db.Create(&rt).Error)
	room := models.Room{
		RoomTypeID:   &rt.ID,
		RoomNumber:   number,
		Price:        100000,
		MaxOccupancy: 3,
		Status:       models.RoomAvailable,
	}
	require.NoError(t, s.db.Create(&room).Error)
	return &room
}

func (s *testServer) tokenFor(t *testing.T, role models.UserRole) string {
	t.Helper()
	user := models.User{
		FullName: "Staff " + string(role),
		Email:    string(role) + "@example.com",
		Role:     role,
		Active:   true,
	}
	require.NoError(t, s.db.Create(&user).Error)
	token, err := s.auth.IssueToken(&user)
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRegisterVerifyLoginFlow(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"fullName": "Guest One",
		"email":    "guest@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeBody(t, w)["data"].(map[string]interface{})
	code := data["verification_code"].(string)
	require.Len(t, code, 6)

	// not active yet
	w = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "guest@example.com", "password": "supersecret",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(t, http.MethodPost, "/api/auth/verify", "", gin.H{
		"email": "guest@example.com", "code": code,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "guest@example.com", "password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])

	w = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "guest@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookingEndToEnd(t *testing.T) {
	s := newTestServer(t)
	room := s.seedRoom(t, "501")
	customerToken := s.tokenFor(t, models.RoleCustomer)
	receptionistToken := s.tokenFor(t, models.RoleReceptionist)

	payload := gin.H{
		"room_id":        room.ID,
		"check_in":       "2026-10-01",
		"check_out":      "2026-10-04",
		"guests":         3,
		"payment_method": "card",
	}

	// token required
	w := s.do(t, http.MethodPost, "/api/bookings", "", payload)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(t, http.MethodPost, "/api/bookings", customerToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.Equal(t, float64(399500), data["total_price"])
	assert.NotEmpty(t, data["reference_code"])

	// same room again is a state conflict
	w = s.do(t, http.MethodPost, "/api/bookings", customerToken, payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	// the room left the public search
	w = s.do(t, http.MethodGet, "/api/rooms", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"roomNumber":"501"`)

	// customer sees their booking; staff routes stay closed to them
	w = s.do(t, http.MethodGet, "/api/bookings", customerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = s.do(t, http.MethodGet, "/api/staff/bookings", customerToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// receptionist checks the guest out
	bookingID := int(data["id"].(float64))
	w = s.do(t, http.MethodPost, "/api/staff/bookings/"+strconv.Itoa(bookingID)+"/checkout", receptionistToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// the room is bookable again
	w = s.do(t, http.MethodGet, "/api/rooms", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"roomNumber":"501"`)
}

func TestValidationErrorsOverHTTP(t *testing.T) {
	s := newTestServer(t)
	room := s.seedRoom(t, "502")
	token := s.tokenFor(t, models.RoleCustomer)

	w := s.do(t, http.MethodPost, "/api/bookings", token, gin.H{
		"room_id":        room.ID,
		"check_in":       "2026-10-05",
		"check_out":      "2026-10-01",
		"guests":         2,
		"payment_method": "card",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "check_out")

	w = s.do(t, http.MethodPost, "/api/bookings", token, gin.H{
		"room_id":        room.ID,
		"check_in":       "not-a-date",
		"check_out":      "2026-10-03",
		"guests":         2,
		"payment_method": "card",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthAndMetricsEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
