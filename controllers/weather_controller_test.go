package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maya-reeves/wardrobe-api/config"
	"github.com/maya-reeves/wardrobe-api/services"
)

func TestGetWeatherForecast(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	mockWeather := services.NewMockWeatherService(&services.WeatherForecast{
		Condition:   "Clouds",
		Temperature: 58.3,
	})
	mockWeather.SetAsMockForTesting()

	router := setupTestRouter()
	router.GET("/weather/forecast", mockAuthMiddleware("auth0|weather", "token"), GetWeatherForecast)

	req, _ := http.NewRequest("GET", "/weather/forecast?lat=41.88&lon=-87.63", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			Condition   string  `json:"condition"`
			Temperature float64 `json:"temperature"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Clouds", response.Data.Condition)
	assert.Equal(t, 58.3, response.Data.Temperature)
}

func TestGetWeatherForecastMissingCoordinates(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	mockWeather := services.NewMockWeatherService(&services.WeatherForecast{})
	mockWeather.SetAsMockForTesting()

	tests := []struct {
		name  string
		query string
	}{
		{"no parameters", ""},
		{"missing longitude", "?lat=41.88"},
		{"missing latitude", "?lon=-87.63"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter()
			router.GET("/weather/forecast", mockAuthMiddleware("auth0|weather", "token"), GetWeatherForecast)

			req, _ := http.NewRequest("GET", "/weather/forecast"+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			errObj := response["error"].(map[string]interface{})
			assert.Equal(t, "MISSING_COORDINATES", errObj["code"])
		})
	}
}

func TestGetWeatherForecastUpstreamFailure(t *testing.T) {
	db := setupTestDB(t)
	config.SetDB(db)

	mockWeather := services.NewMockWeatherService(nil)
	mockWeather.SetError(errors.New("openweather timeout"))
	mockWeather.SetAsMockForTesting()

	router := setupTestRouter()
	router.GET("/weather/forecast", mockAuthMiddleware("auth0|weather", "token"), GetWeatherForecast)

	req, _ := http.NewRequest("GET", "/weather/forecast?lat=41.88&lon=-87.63", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	errObj := response["error"].(map[string]interface{})
	assert.Equal(t, "WEATHER_ERROR", errObj["code"])
}
