package handlers

import (
	"bookit/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle gathers every handler the route table needs.
type HandlerBundle struct {
	// Sessions backs the route guards.
	Sessions middleware.SessionResolver

	// Auth endpoints.
	SignupHandler         gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc
	CheckAuthHandler      gin.HandlerFunc
	VerifyEmailHandler    gin.HandlerFunc
	ForgotPasswordHandler gin.HandlerFunc
	ResetPasswordHandler  gin.HandlerFunc

	// Dashboard endpoints.
	Booking *BookingHandler
	Profile *ProfileHandler
	Support *SupportHandler
}
