package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"stayhub-backend/models"
	"stayhub-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRoleHasPermission(t *testing.T) {
	cases := []struct {
		role models.UserRole
		perm string
		want bool
	}{
		{models.RoleAdmin, PermSettingsEdit, true},
		{models.RoleAdmin, "anything.at.all", true},
		{models.RoleManager, PermRoomDelete, true},
		{models.RoleManager, PermAuditView, true},
		{models.RoleManager, PermSettingsEdit, false},
		{models.RoleReceptionist, PermBookingEdit, true},
		{models.RoleReceptionist, PermRoomEditStatus, true},
		{models.RoleReceptionist, PermRoomDelete, false},
		{models.RoleReceptionist, PermAuditView, false},
		{models.RoleCustomer, PermBookingView, false},
		{models.RoleCustomer, PermChatView, false},
		{"", PermBookingView, false},
	}
	for _, tc := range cases {
		got := RoleHasPermission(tc.role, tc.perm)
		assert.Equal(t, tc.want, got, "role=%s perm=%s", tc.role, tc.perm)
	}
}

// authorizeTestRouter mounts Authorize behind a stub that injects claims for
// the given role, plus a staff route set matching the permission map keys.
func authorizeTestRouter(role models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(claimsKey, &services.Claims{UserID: 1, Role: role})
	})
	staff := r.Group("/api/staff")
	staff.Use(Authorize())
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	staff.GET("/bookings", ok)
	staff.DELETE("/rooms/:id", ok)
	staff.GET("/audit-log", ok)
	staff.GET("/unmapped", ok)
	return r
}

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name   string
		role   models.UserRole
		method string
		path   string
		want   int
	}{
		{"receptionist can view bookings", models.RoleReceptionist, http.MethodGet, "/api/staff/bookings", http.StatusOK},
		{"receptionist cannot delete rooms", models.RoleReceptionist, http.MethodDelete, "/api/staff/rooms/7", http.StatusForbidden},
		{"manager can delete rooms", models.RoleManager, http.MethodDelete, "/api/staff/rooms/7", http.StatusOK},
		{"manager can read audit log", models.RoleManager, http.MethodGet, "/api/staff/audit-log", http.StatusOK},
		{"customer is denied everywhere", models.RoleCustomer, http.MethodGet, "/api/staff/bookings", http.StatusForbidden},
		{"unmapped route is denied even for admin", models.RoleAdmin, http.MethodGet, "/api/staff/unmapped", http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := authorizeTestRouter(tc.role)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRoutePermissionsAreKnownPermissions(t *testing.T) {
	// every mapped route points at a permission some role (or admin) holds
	for route, perm := range RoutePermissions {
		assert.NotEmpty(t, perm, "route %s has empty permission", route)
		assert.True(t, RoleHasPermission(models.RoleAdmin, perm))
	}
}
