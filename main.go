// File: cardoctor/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cardoctor/config"
	"cardoctor/database"
	bookingRepoPkg "cardoctor/database/repository/booking"
	serviceRepoPkg "cardoctor/database/repository/service"
	"cardoctor/handlers"
	"cardoctor/middleware"
	"cardoctor/routes"
	bookingSvc "cardoctor/services/booking"
	"cardoctor/services/catalog"
	"cardoctor/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// A failed connection is logged but does not stop the listener:
	// auth and liveness endpoints keep working, storage-backed routes
	// answer with a server error until the database comes back.
	var db *mongo.Database
	client, err := database.Connect(context.Background(), config.AppConfig)
	if err != nil {
		logger.Error("main: failed to connect to MongoDB", zap.Error(err))
	} else {
		logger.Sugar().Info("Connected to MongoDB successfully!")
		db = client.Database(config.AppConfig.DatabaseName)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)

	// services.
	catalogService := &catalog.DefaultCatalogService{Repo: serviceRepo}
	bookingService := &bookingSvc.DefaultBookingService{Repo: bookingRepo}

	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		IssueToken: handlers.IssueTokenHandler,
		Logout:     handlers.LogoutHandler,

		ListServices:   catalogHandler.ListServices,
		GetServiceByID: catalogHandler.GetServiceByID,

		CreateBooking: bookingHandler.CreateBooking,
		ListBookings:  bookingHandler.ListBookings,
		UpdateBooking: bookingHandler.UpdateBooking,
		DeleteBooking: bookingHandler.DeleteBooking,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
