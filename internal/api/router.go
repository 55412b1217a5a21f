package api

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"ezpickup-backend/config"
	"ezpickup-backend/internal/booking"
	"ezpickup-backend/internal/mw"
	"ezpickup-backend/internal/pricing"
	"ezpickup-backend/internal/store"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(cfg *config.Config, s store.Store, pricer *pricing.Resolver, bookings *booking.Service) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, pricer, bookings)

	if len(cfg.Server.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.Server.AllowedOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		r.Use(cors.New(corsCfg))
	}

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.Server.RateLimitPerSec), cfg.Server.RateLimitBurst)

	cacheTTL := time.Duration(cfg.Server.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	// API group
	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		api.POST("/calculate-price", handler.CalculatePrice)

		api.POST("/bookings", handler.CreateBooking)
		api.GET("/bookings/:referenceCode", handler.GetBookingByReferenceCode)

		// Reference and display data, cacheable
		api.GET("/form-data", caching, handler.GetFormData)
		api.GET("/cities", caching, handler.GetCities)
		api.GET("/testimonials", caching, handler.GetTestimonials)
		api.GET("/stats", caching, handler.GetStats)
		api.GET("/blog", caching, handler.ListBlogPosts)
		api.GET("/blog/:slug", caching, handler.GetBlogPost)

		admin := api.Group("/admin")
		admin.Use(mw.AdminAuth(cfg.Admin.JWTSecret))
		{
			admin.GET("/stats", handler.GetAdminStats)
			admin.GET("/bookings", handler.ListAdminBookings)
			admin.PATCH("/bookings/:id", handler.UpdateAdminBooking)
		}
	}

	return r
}
