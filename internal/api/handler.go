package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ezpickup-backend/internal/apperr"
	"ezpickup-backend/internal/booking"
	"ezpickup-backend/internal/pricing"
	"ezpickup-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store    store.Store
	pricer   *pricing.Resolver
	bookings *booking.Service
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, pricer *pricing.Resolver, bookings *booking.Service) *Handler {
	return &Handler{
		store:    s,
		pricer:   pricer,
		bookings: bookings,
	}
}

// respondError maps service errors to HTTP responses.
func respondError(c *gin.Context, err error) {
	var verr *apperr.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperr.ErrStorageUnavailable), errors.Is(err, apperr.ErrCodeSpaceExhausted):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
