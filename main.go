// File: bookit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookit/config"
	"bookit/cron"
	"bookit/database"
	userRepoPkg "bookit/database/repository/user"
	"bookit/handlers"
	"bookit/middleware"
	"bookit/routes"
	"bookit/services/booking"
	"bookit/services/notification"
	"bookit/services/profile"
	"bookit/services/support"
	"bookit/services/user"
	"bookit/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Auth checks depend on both stores, so connect before serving any
	// route: nothing is answered until the session backend is reachable.
	database.InitDB()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()

	// services.
	emailService := notification.NewResendEmailService()
	userService := &user.DefaultUserService{
		Repo:  userRepo,
		Email: emailService,
	}
	handlers.SetUserService(userService)

	bookingRegistry := booking.NewInMemoryBookingRegistry()
	profileService := profile.NewInMemoryProfileService()
	ticketRegistry := support.NewInMemoryTicketRegistry()

	bookingHandler := handlers.NewBookingHandler(bookingRegistry, logger)
	profileHandler := handlers.NewProfileHandler(profileService)
	supportHandler := handlers.NewSupportHandler(ticketRegistry)

	// Background purge of expired unverified accounts.
	cron.InitPurgeWorker(userRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Sessions: userService,

		SignupHandler:         handlers.SignupHandler,
		LoginHandler:          handlers.LoginHandler,
		LogoutHandler:         handlers.LogoutHandler,
		CheckAuthHandler:      handlers.CheckAuthHandler,
		VerifyEmailHandler:    handlers.VerifyEmailHandler,
		ForgotPasswordHandler: handlers.ForgotPasswordHandler,
		ResetPasswordHandler:  handlers.ResetPasswordHandler,

		Booking: bookingHandler,
		Profile: profileHandler,
		Support: supportHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
