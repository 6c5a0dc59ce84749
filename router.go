package main

import (
	"github.com/arunvm123/eventbooking-demo/auth"
	"github.com/arunvm123/eventbooking-demo/clock"
	"github.com/arunvm123/eventbooking-demo/config"
	"github.com/arunvm123/eventbooking-demo/store"
	"github.com/gin-gonic/gin"
)

func SetupRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	// Initialize admin session handling
	sessions := auth.NewSessionRegistry(auth.NewChecker(cfg.Admin), cfg.Session.TTL(), clock.NewSystem())
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.Session.TTL())

	// Initialize handlers
	eventHandler := NewEventHandler(st)
	bookingHandler := NewBookingHandler(st)
	adminHandler := NewAdminHandler(st, sessions, tokens)
	healthHandler := NewHealthHandler(st, cfg.Storage.Driver)

	// Setup Gin router
	r := gin.New()
	r.Use(gin.Recovery())

	// Add middleware
	r.Use(CORSMiddleware())
	r.Use(LoggingMiddleware())

	// Health check endpoint (no auth required)
	r.GET("/health", healthHandler.HealthCheck)

	// API routes
	api := r.Group("/api")

	// Public event endpoints
	api.GET("/events", eventHandler.ListEvents)
	api.GET("/events/:id", eventHandler.GetEvent)
	api.GET("/events/:id/availability", eventHandler.GetAvailability)
	api.POST("/events/:id/bookings", bookingHandler.SubmitBooking)

	// Admin endpoints
	admin := api.Group("/admin")
	admin.POST("/login", adminHandler.Login)

	protected := admin.Group("")
	protected.Use(AdminAuthMiddleware(tokens, sessions))

	protected.POST("/logout", adminHandler.Logout)
	protected.GET("/session", adminHandler.GetSession)
	protected.POST("/events", adminHandler.CreateEvent)
	protected.GET("/bookings", adminHandler.ListBookings)

	return r
}
