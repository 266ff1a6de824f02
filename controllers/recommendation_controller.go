package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maya-reeves/wardrobe-api/config"
	"github.com/maya-reeves/wardrobe-api/wardrobe"
)

// RecommendationRequest represents the request body for an outfit
// recommendation. WeatherCondition is carried through for the client but
// does not affect band selection.
type RecommendationRequest struct {
	WeatherCondition string   `json:"weatherCondition"`
	Temperature      *float64 `json:"temperature" binding:"required"`
}

// GetRecommendation handles POST /api/v1/recommendations - classifies the
// temperature into a band and assembles an outfit from the caller's
// wardrobe. Empty slots are normal output, never an error.
func GetRecommendation(c *gin.Context) {
	user, ok := currentUser(c, false)
	if !ok {
		return
	}

	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Temperature is required",
				"details": err.Error(),
			},
		})
		return
	}

	band := wardrobe.Classify(*req.Temperature)
	eligible := band.EligibleSubcategories()

	assembler := wardrobe.NewAssembler(&wardrobe.GormItemFinder{DB: config.GetDB()})
	recommendation, err := assembler.Assemble(c.Request.Context(), user.ID, eligible)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to assemble recommendation",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"band":               band,
			"weatherCondition":   req.WeatherCondition,
			"recommendedOutfit":  recommendation,
			"recommendationText": recommendation.Text,
		},
	})
}
