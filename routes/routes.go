package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"stayhub-backend/controllers"
	"stayhub-backend/middleware"
	"stayhub-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

type Controllers struct {
	Auth       *controllers.AuthController
	Booking    *controllers.BookingController
	Room       *controllers.RoomController
	Review     *controllers.ReviewController
	Complaint  *controllers.ComplaintController
	Chat       *controllers.ChatController
	Travel     *controllers.TravelController
	User       *controllers.UserController
	Audit      *controllers.AuditController
}

// SetupRouter wires middleware and all route groups. The staff group runs
// the central permission check; customer routes enforce ownership in their
// handlers.
func SetupRouter(
	log zerolog.Logger,
	authService *services.AuthService,
	bookingLimiter *middleware.RateLimiter,
	ctrl Controllers,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.HTTPMetrics())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ctrl.Auth.Register)
			auth.POST("/verify", ctrl.Auth.Verify)
			auth.POST("/login", ctrl.Auth.Login)
		}

		// Public room search
		api.GET("/rooms", ctrl.Room.GetAvailableRooms)
		api.GET("/rooms/:id", ctrl.Room.GetRoom)
		api.GET("/rooms/:id/reviews", ctrl.Review.GetRoomReviews)
		api.GET("/room-types", controllers.GetRoomTypes)
		api.GET("/settings/hotel", controllers.GetHotelSettings)

		// Authenticated customer surface
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(authService))
		{
			bookings := authed.Group("/bookings")
			{
				bookings.POST("", bookingLimiter.Limit(), ctrl.Booking.CreateBooking)
				bookings.GET("", ctrl.Booking.GetMyBookings)
				bookings.GET("/:id", ctrl.Booking.GetBookingDetails)
				bookings.POST("/:id/cancel", ctrl.Booking.CancelBooking)
			}

			authed.POST("/reviews", ctrl.Review.CreateReview)
			authed.POST("/complaints", ctrl.Complaint.CreateComplaint)

			chat := authed.Group("/chat")
			{
				chat.POST("", ctrl.Chat.SendMessage)
				chat.GET("", ctrl.Chat.GetConversation)
			}

			travel := authed.Group("/travel-bookings")
			{
				travel.POST("", ctrl.Travel.CreateTravelBooking)
				travel.GET("", ctrl.Travel.GetMyTravelBookings)
				travel.POST("/:id/cancel", ctrl.Travel.CancelTravelBooking)
			}
		}

		// Staff back-office: every route here must have an entry in the
		// permission map or it is denied.
		staff := api.Group("/staff")
		staff.Use(middleware.RequireAuth(authService), middleware.Authorize())
		{
			staff.GET("/bookings", ctrl.Booking.GetBookings)
			staff.GET("/bookings/:id", ctrl.Booking.GetBookingDetails)
			staff.GET("/bookings/:id/payments", ctrl.Booking.GetPayments)
			staff.POST("/bookings/:id/checkin", ctrl.Booking.CheckIn)
			staff.POST("/bookings/:id/checkout", ctrl.Booking.CheckoutBooking)

			staff.GET("/rooms", ctrl.Room.GetRooms)
			staff.POST("/rooms", ctrl.Room.CreateRoom)
			staff.PATCH("/rooms/:id", ctrl.Room.UpdateRoom)
			staff.PUT("/rooms/:id", ctrl.Room.UpdateRoom)
			staff.PATCH("/rooms/:id/status", ctrl.Room.UpdateRoomStatus)
			staff.DELETE("/rooms/:id", ctrl.Room.DeleteRoom)

			staff.POST("/room-types", controllers.CreateRoomType)
			staff.DELETE("/room-types/:id", controllers.DeleteRoomType)

			staff.GET("/customers", ctrl.User.GetUsers)
			staff.GET("/users", ctrl.User.GetUsers)
			staff.PATCH("/users/:id/active", ctrl.User.SetUserActive)

			staff.GET("/complaints", ctrl.Complaint.GetComplaints)
			staff.PATCH("/complaints/:id", ctrl.Complaint.UpdateComplaintStatus)

			staff.GET("/chat/pending", ctrl.Chat.GetPendingMessages)
			staff.POST("/chat/reply", ctrl.Chat.ReplyToCustomer)

			staff.PUT("/settings", controllers.UpdateHotelSettings)
			staff.GET("/audit-log", ctrl.Audit.GetAuditLog)
		}
	}

	return r
}
