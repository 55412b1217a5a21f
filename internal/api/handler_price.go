package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type calculatePriceRequest struct {
	ModelID     string `json:"modelId" binding:"required"`
	ConditionID string `json:"conditionId" binding:"required"`
}

// CalculatePrice handles the POST /api/calculate-price request.
func (h *Handler) CalculatePrice(c *gin.Context) {
	var req calculatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "modelId and conditionId are required"})
		return
	}

	quote, err := h.pricer.Quote(c.Request.Context(), req.ModelID, req.ConditionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}
