package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maya-reeves/wardrobe-api/services"
)

// GetWeatherForecast handles GET /api/v1/weather/forecast?lat=&lon= -
// proxies the OpenWeather forecast for the given coordinates in imperial
// units
func GetWeatherForecast(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")
	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "MISSING_COORDINATES",
				"message": "Latitude and longitude are required",
			},
		})
		return
	}

	weatherService := services.GetWeatherService()
	forecast, err := weatherService.GetForecast(lat, lon)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "WEATHER_ERROR",
				"message": "Failed to fetch weather data",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    forecast,
	})
}
