package routes

import (
	"net/http"
	"time"

	"bookit/handlers"
	"bookit/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers the guarded page routes. Guards reproduce
// the client-side navigation contract with HTTP redirects: protected pages
// bounce unauthenticated callers to /login and unverified callers to
// /verify-email; auth pages bounce signed-in verified callers home.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	requireAuth := middleware.RequireAuth(hb.Sessions)
	redirectAuthed := middleware.RedirectIfAuthenticated(hb.Sessions)

	r.GET("/", requireAuth, handlers.DashboardHomeHandler)
	r.GET("/signup", redirectAuthed, handlers.PageHandler("signup"))
	r.GET("/login", redirectAuthed, handlers.PageHandler("login"))
	r.GET("/verify-email", handlers.PageHandler("verify-email"))
	r.GET("/forgot-password", redirectAuthed, handlers.PageHandler("forgot-password"))
	r.GET("/reset-password/:token", redirectAuthed, handlers.PageHandler("reset-password"))

	dashboard := r.Group("/dashboard")
	dashboard.Use(requireAuth)
	{
		dashboard.GET("", func(c *gin.Context) {
			// /dashboard shows the profile page by default.
			c.Redirect(http.StatusFound, "/dashboard/profile")
		})
		dashboard.GET("/profile", hb.Profile.GetProfile)
		dashboard.GET("/bookings", hb.Booking.ListBookings)
		dashboard.GET("/support", hb.Support.ListTickets)
	}

	// Catch-all: unknown paths go home.
	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
}

// RegisterAuthRoutes registers the authentication API.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/signup", hb.SignupHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/verify-email", hb.VerifyEmailHandler)
		api.POST("/forgot-password", hb.ForgotPasswordHandler)
		api.POST("/reset-password/:token", hb.ResetPasswordHandler)

		// check-auth resolves the session but never rejects.
		api.GET("/check-auth", middleware.ResolveSession(hb.Sessions), hb.CheckAuthHandler)

		api.POST("/logout", middleware.RequireSession(hb.Sessions), hb.LogoutHandler)
	}
}

// RegisterDashboardRoutes registers the authenticated dashboard API.
func RegisterDashboardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	api.Use(middleware.RequireSession(hb.Sessions))
	{
		api.GET("/bookings", hb.Booking.ListBookings)
		api.POST("/bookings/:id/confirm", hb.Booking.ConfirmBooking)
		api.POST("/bookings/:id/cancel", hb.Booking.CancelBooking)
		api.GET("/bookings/print", hb.Booking.PrintBookings)

		api.GET("/profile", hb.Profile.GetProfile)
		api.PATCH("/profile", hb.Profile.UpdateProfile)
		api.POST("/profile/schedule/toggle", hb.Profile.ToggleSchedule)
		api.POST("/profile/services", hb.Profile.AddService)
		api.PATCH("/profile/services/:index", hb.Profile.UpdateService)
		api.DELETE("/profile/services/:index", hb.Profile.RemoveService)
		api.POST("/profile/pictures", hb.Profile.AddPictures)

		api.GET("/support/tickets", hb.Support.ListTickets)
		api.POST("/support/tickets", hb.Support.SubmitTicket)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BookIt"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterPageRoutes(r, hb)
	RegisterHealthRoute(r)
}
