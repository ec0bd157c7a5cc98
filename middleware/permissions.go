package middleware

import (
	"net/http"

	"stayhub-backend/models"
	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
)

// Permission strings for the staff back-office.
const (
	PermBookingView   = "bookingManagement.view"
	PermBookingCreate = "bookingManagement.create"
	PermBookingEdit   = "bookingManagement.edit"

	PermRoomView       = "roomManagement.view"
	PermRoomCreate     = "roomManagement.create"
	PermRoomEdit       = "roomManagement.edit"
	PermRoomDelete     = "roomManagement.delete"
	PermRoomEditStatus = "roomManagement.editStatus"

	PermRoomTypeEdit = "roomTypeManagement.edit"

	PermCustomerView = "customerList.view"
	PermCustomerEdit = "customerList.edit"

	PermComplaintView = "complaintManagement.view"
	PermComplaintEdit = "complaintManagement.edit"

	PermChatView = "chatSupport.view"

	PermSettingsEdit = "settings.edit"
	PermAuditView    = "auditLog.view"
)

// rolePermissions is the full grant table. Admin implicitly holds every
// permission; listing the others keeps the grants reviewable in one place.
var rolePermissions = map[models.UserRole]map[string]bool{
	models.RoleReceptionist: setOf(
		PermBookingView, PermBookingCreate, PermBookingEdit,
		PermRoomView, PermRoomEditStatus,
		PermCustomerView,
		PermComplaintView, PermComplaintEdit,
		PermChatView,
	),
	models.RoleManager: setOf(
		PermBookingView, PermBookingCreate, PermBookingEdit,
		PermRoomView, PermRoomCreate, PermRoomEdit, PermRoomDelete, PermRoomEditStatus,
		PermRoomTypeEdit,
		PermCustomerView, PermCustomerEdit,
		PermComplaintView, PermComplaintEdit,
		PermChatView,
		PermAuditView,
	),
}

func setOf(perms ...string) map[string]bool {
	m := make(map[string]bool, len(perms))
	for _, p := range perms {
		m[p] = true
	}
	return m
}

// RoutePermissions is the declarative route→permission map, keyed by
// "METHOD <gin full path>". It is checked centrally before any handler
// runs; a staff route missing from this map is denied outright, so adding
// an endpoint forces an explicit grant decision.
var RoutePermissions = map[string]string{
	"GET /api/staff/bookings":              PermBookingView,
	"GET /api/staff/bookings/:id":          PermBookingView,
	"GET /api/staff/bookings/:id/payments": PermBookingView,
	"POST /api/staff/bookings/:id/checkin": PermBookingEdit,
	"POST /api/staff/bookings/:id/checkout": PermBookingEdit,

	"GET /api/staff/rooms":               PermRoomView,
	"POST /api/staff/rooms":              PermRoomCreate,
	"PATCH /api/staff/rooms/:id":         PermRoomEdit,
	"PUT /api/staff/rooms/:id":           PermRoomEdit,
	"DELETE /api/staff/rooms/:id":        PermRoomDelete,
	"PATCH /api/staff/rooms/:id/status":  PermRoomEditStatus,

	"POST /api/staff/room-types":       PermRoomTypeEdit,
	"DELETE /api/staff/room-types/:id": PermRoomTypeEdit,

	"GET /api/staff/customers": PermCustomerView,

	"GET /api/staff/complaints":       PermComplaintView,
	"PATCH /api/staff/complaints/:id": PermComplaintEdit,

	"GET /api/staff/chat/pending": PermChatView,
	"POST /api/staff/chat/reply":  PermChatView,

	"PUT /api/staff/settings":  PermSettingsEdit,
	"GET /api/staff/audit-log": PermAuditView,

	"GET /api/staff/users":                 PermCustomerEdit,
	"PATCH /api/staff/users/:id/active":    PermCustomerEdit,
}

// RoleHasPermission reports whether a role holds a permission. Admin holds
// everything.
func RoleHasPermission(role models.UserRole, perm string) bool {
	if role == models.RoleAdmin {
		return true
	}
	grants, ok := rolePermissions[role]
	if !ok {
		return false
	}
	return grants[perm]
}

// Authorize enforces RoutePermissions for the group it is mounted on.
func Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Request.Method + " " + c.FullPath()
		perm, known := RoutePermissions[key]
		if !known {
			utils.JSONError(c, http.StatusForbidden, "route has no permission mapping")
			c.Abort()
			return
		}

		if !RoleHasPermission(CurrentRole(c), perm) {
			utils.JSONError(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}
