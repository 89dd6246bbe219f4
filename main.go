// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	bookingsRepo "voyago/database/repository/bookings"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/booking"
	"voyago/services/conversation"
	"voyago/services/flights"
	"voyago/services/location"
	"voyago/services/ticket"
	"voyago/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo, err := bookingsRepo.NewFileRepo(config.AppConfig.BookingsDir)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking repository: %v", err)
	}

	// services.
	amadeusClient := flights.NewAmadeusClient()
	offerService := &flights.DefaultOfferService{
		Client: amadeusClient,
		Pricer: amadeusClient,
		Logger: logger,
	}

	renderer := ticket.NewHTTPRenderer()
	bookingService := booking.NewBookingService(bookingRepo, renderer, logger)

	locationResolver := location.NewResolver()
	engine := conversation.NewConversationService(locationResolver, offerService, bookingService, logger)

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := conversation.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	chatHandler := handlers.NewChatHandler(sessionStore, engine)
	flightHandler := handlers.NewFlightHandler(offerService, locationResolver)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		HandleChat:      chatHandler.HandleChat,
		ResetChat:       chatHandler.ResetChat,
		SearchFlights:   flightHandler.SearchFlights,
		ResolveLocation: flightHandler.ResolveLocation,
		GetBooking:      bookingHandler.GetBooking,
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
