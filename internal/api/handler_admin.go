package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ezpickup-backend/internal/model"
)

const defaultAdminBookingLimit = 50

// GetAdminStats handles the GET /api/admin/stats request.
func (h *Handler) GetAdminStats(c *gin.Context) {
	stats, err := h.store.GetAdminStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// ListAdminBookings handles the GET /api/admin/bookings request.
func (h *Handler) ListAdminBookings(c *gin.Context) {
	limit := defaultAdminBookingLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	bookings, err := h.store.ListRecentBookings(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, toBookingResponse(b))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": responses})
}

type updateBookingRequest struct {
	Status     string `json:"status" binding:"required"`
	FinalPrice *int64 `json:"finalPrice"`
}

// UpdateAdminBooking handles the PATCH /api/admin/bookings/:id request used
// by the back office to advance a booking's status and record the final
// price.
func (h *Handler) UpdateAdminBooking(c *gin.Context) {
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	status := model.BookingStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown booking status"})
		return
	}
	if req.FinalPrice != nil && *req.FinalPrice < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "finalPrice cannot be negative"})
		return
	}

	b, err := h.store.UpdateBooking(c.Request.Context(), c.Param("id"), status, req.FinalPrice)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}
