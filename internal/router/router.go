// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ffbazaar/ffbazaar-backend/internal/config"
	"github.com/ffbazaar/ffbazaar-backend/internal/handlers"
	"github.com/ffbazaar/ffbazaar-backend/internal/middleware"
	"github.com/ffbazaar/ffbazaar-backend/internal/services"
	"github.com/ffbazaar/ffbazaar-backend/internal/store"
	"github.com/ffbazaar/ffbazaar-backend/internal/utils"
)

func Initialize(recordStore store.RecordStore, cfg *config.Config) *gin.Engine {
	// Initialize services
	listingService := services.NewListingService(recordStore)
	sellerService := services.NewSellerService(recordStore)
	reviewService := services.NewReviewService(recordStore)
	adminService := services.NewAdminService(listingService, sellerService)
	authService := services.NewAuthService(cfg)
	storageService := services.NewStorageService(cfg)

	// Log every session transition for the lifetime of the process.
	authService.Subscribe(func(e services.SessionEvent) {
		fields := logrus.Fields{"state": e.State}
		if e.User != nil {
			fields["user_id"] = e.User.ID
		}
		logrus.WithFields(fields).Info("Session state changed")
	})

	// Initialize handlers
	listingHandler := handlers.NewListingHandler(listingService, sellerService)
	sellerHandler := handlers.NewSellerHandler(sellerService, listingService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	contactHandler := handlers.NewContactHandler(cfg)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService, listingService, sellerService, storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.Auth.JWTSecret)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Storefront routes
		listings := v1.Group("/listings")
		{
			listings.GET("", listingHandler.GetListings)
			listings.GET("/featured", listingHandler.GetFeaturedListings)
			listings.GET("/:id", listingHandler.GetListing)
		}

		sellers := v1.Group("/sellers")
		{
			sellers.GET("", sellerHandler.GetSellers)
			sellers.GET("/:id", sellerHandler.GetSeller)
		}

		v1.GET("/reviews", reviewHandler.GetReviews)
		v1.GET("/contact/channels", contactHandler.GetChannels)

		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/session", middleware.OptionalAuth(), authHandler.Session)
		}

		// Admin back-office routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired())
		{
			admin.GET("/dashboard/stats", adminHandler.GetDashboard)

			admin.GET("/listings", adminHandler.GetListings)
			admin.POST("/listings", adminHandler.CreateListing)
			admin.PUT("/listings/:id", adminHandler.UpdateListing)
			admin.DELETE("/listings/:id", adminHandler.DeleteListing)

			admin.GET("/sellers", adminHandler.GetSellers)
			admin.POST("/sellers", adminHandler.CreateSeller)
			admin.PUT("/sellers/:id", adminHandler.UpdateSeller)
			admin.DELETE("/sellers/:id", adminHandler.DeleteSeller)

			admin.POST("/uploads", middleware.UploadRateLimit(), adminHandler.UploadImage)
		}
	}

	// 404 handler
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	})

	return r
}
