package services

import "sync"

// MockWeatherService is a mock implementation of WeatherService for testing
type MockWeatherService struct {
	forecast *WeatherForecast
	err      error
	mu       sync.RWMutex
}

// NewMockWeatherService creates a mock weather service returning the
// given forecast
func NewMockWeatherService(forecast *WeatherForecast) *MockWeatherService {
	return &MockWeatherService{forecast: forecast}
}

// SetAsMockForTesting sets this mock as the global weather service instance for testing
func (m *MockWeatherService) SetAsMockForTesting() {
	SetWeatherService(m)
}

// SetError makes subsequent GetForecast calls fail with err
func (m *MockWeatherService) SetError(err error) {
	m.mu.Lock()
	m.err = err
	m.mu.Unlock()
}

// GetForecast returns the configured forecast or error
func (m *MockWeatherService) GetForecast(lat, lon string) (*WeatherForecast, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.err != nil {
		return nil, m.err
	}
	return m.forecast, nil
}
