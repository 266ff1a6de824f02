package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/maya-reeves/wardrobe-api/config"
)

const openWeatherForecastURL = "https://api.openweathermap.org/data/2.5/forecast"

// WeatherForecast is the OpenWeather forecast payload, narrowed to the
// fields the app reads. Raw carries the full upstream response so the
// client can render whatever it needs.
type WeatherForecast struct {
	Condition   string  `json:"condition"`   // e.g. "Clouds", "Rain"
	Temperature float64 `json:"temperature"` // degrees Fahrenheit
	Raw         any     `json:"raw"`
}

// WeatherService fetches weather forecasts for a coordinate pair
type WeatherService interface {
	GetForecast(lat, lon string) (*WeatherForecast, error)
}

// OpenWeatherService implements WeatherService against the OpenWeather API
type OpenWeatherService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var weatherServiceInstance WeatherService

// InitWeatherService initializes the weather service from configuration
func InitWeatherService(cfg *config.Config) WeatherService {
	weatherServiceInstance = &OpenWeatherService{
		baseURL: openWeatherForecastURL,
		apiKey:  cfg.OpenWeatherAPIKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	return weatherServiceInstance
}

// GetWeatherService returns the initialized weather service instance
func GetWeatherService() WeatherService {
	return weatherServiceInstance
}

// SetWeatherService sets the weather service instance (primarily for testing)
func SetWeatherService(service WeatherService) {
	weatherServiceInstance = service
}

// NewOpenWeatherService creates an OpenWeather client against a custom
// base URL (used by tests)
func NewOpenWeatherService(baseURL, apiKey string) *OpenWeatherService {
	return &OpenWeatherService{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// forecastResponse mirrors the slice of the OpenWeather response we read
type forecastResponse struct {
	List []struct {
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
}

// GetForecast fetches the forecast for a coordinate pair in imperial units
func (s *OpenWeatherService) GetForecast(lat, lon string) (*WeatherForecast, error) {
	params := url.Values{}
	params.Set("lat", lat)
	params.Set("lon", lon)
	params.Set("appid", s.apiKey)
	params.Set("units", "imperial")

	requestURL := s.baseURL + "?" + params.Encode()

	resp, err := s.httpClient.Get(requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to call weather API: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed forecastResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if len(parsed.List) == 0 {
		return nil, fmt.Errorf("weather API returned an empty forecast")
	}

	forecast := &WeatherForecast{
		Temperature: parsed.List[0].Main.Temp,
	}
	if len(parsed.List[0].Weather) > 0 {
		forecast.Condition = parsed.List[0].Weather[0].Main
	}

	// Keep the raw payload for clients that render the full forecast
	var raw any
	if err := json.Unmarshal(body, &raw); err == nil {
		forecast.Raw = raw
	}

	return forecast, nil
}
