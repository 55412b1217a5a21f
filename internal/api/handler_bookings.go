package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ezpickup-backend/internal/booking"
	"ezpickup-backend/internal/model"
)

// bookingResponse is the flattened booking shape returned to clients.
type bookingResponse struct {
	ID                string  `json:"id"`
	ReferenceCode     string  `json:"referenceCode"`
	CustomerName      string  `json:"customerName"`
	ContactNumber     string  `json:"contactNumber"`
	Email             *string `json:"email,omitempty"`
	Address           string  `json:"address"`
	Pincode           string  `json:"pincode"`
	City              string  `json:"city"`
	Category          string  `json:"category"`
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	Variant           *string `json:"variant,omitempty"`
	Condition         string  `json:"condition"`
	EstimatedPrice    int64   `json:"estimatedPrice"`
	FinalPrice        *int64  `json:"finalPrice,omitempty"`
	Status            string  `json:"status"`
	PickupDate        string  `json:"pickupDate"`
	PreferredTimeSlot string  `json:"preferredTimeSlot"`
	Notes             *string `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

func toBookingResponse(b model.Booking) bookingResponse {
	resp := bookingResponse{
		ID:                b.ID,
		ReferenceCode:     b.ReferenceCode,
		CustomerName:      b.CustomerName,
		ContactNumber:     b.ContactNumber,
		Email:             b.Email,
		Address:           b.Address,
		Pincode:           b.Pincode,
		City:              b.City.Name,
		Category:          b.Model.Brand.Device.Category.Name,
		Brand:             b.Model.Brand.Name,
		Model:             b.Model.Name,
		Condition:         b.Condition.Name,
		EstimatedPrice:    b.EstimatedPrice,
		FinalPrice:        b.FinalPrice,
		Status:            string(b.Status),
		PickupDate:        b.PickupDate.Format("2006-01-02"),
		PreferredTimeSlot: b.PreferredTimeSlot,
		Notes:             b.Notes,
		CreatedAt:         b.CreatedAt,
	}
	if b.Variant != nil {
		resp.Variant = &b.Variant.Name
	}
	return resp
}

// CreateBooking handles the POST /api/bookings request.
func (h *Handler) CreateBooking(c *gin.Context) {
	var in booking.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed booking payload"})
		return
	}

	b, err := h.bookings.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":       true,
		"referenceCode": b.ReferenceCode,
		"booking": gin.H{
			"id":             b.ID,
			"referenceCode":  b.ReferenceCode,
			"customerName":   b.CustomerName,
			"estimatedPrice": b.EstimatedPrice,
		},
	})
}

// GetBookingByReferenceCode handles the GET /api/bookings/:referenceCode
// request used by the tracking page.
func (h *Handler) GetBookingByReferenceCode(c *gin.Context) {
	b, err := h.bookings.TrackByReferenceCode(c.Request.Context(), c.Param("referenceCode"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": toBookingResponse(b)})
}
