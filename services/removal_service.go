package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/maya-reeves/wardrobe-api/config"
)

const photoroomEditURL = "https://image-api.photoroom.com/v2/edit"

// RemovalService strips the background from a clothing photo and returns
// the processed PNG bytes
type RemovalService interface {
	RemoveBackground(fileHeader *multipart.FileHeader) ([]byte, error)
}

// PhotoroomService implements RemovalService against the Photoroom edit API
type PhotoroomService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var removalServiceInstance RemovalService

// InitRemovalService initializes the background removal service
func InitRemovalService(cfg *config.Config) RemovalService {
	removalServiceInstance = &PhotoroomService{
		baseURL: photoroomEditURL,
		apiKey:  cfg.PhotoroomAPIKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	return removalServiceInstance
}

// GetRemovalService returns the initialized removal service instance
func GetRemovalService() RemovalService {
	return removalServiceInstance
}

// SetRemovalService sets the removal service instance (primarily for testing)
func SetRemovalService(service RemovalService) {
	removalServiceInstance = service
}

// NewPhotoroomService creates a Photoroom client against a custom base URL
// (used by tests)
func NewPhotoroomService(baseURL, apiKey string) *PhotoroomService {
	return &PhotoroomService{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// RemoveBackground sends the uploaded image to Photoroom and returns the
// processed PNG with a soft shadow on a white background
func (s *PhotoroomService) RemoveBackground(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	// Build the multipart request body
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("imageFile", fileHeader.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy file into request: %w", err)
	}

	fields := map[string]string{
		"shadow.mode":      "ai.soft",
		"background.color": "FFFFFF",
		"padding":          "0.1",
	}
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize request body: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("Accept", "image/png, application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call background removal API: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			_ = closeErr
		}
	}()

	processed, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read processed image: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("background removal API returned status %d: %s", resp.StatusCode, string(processed))
	}

	return processed, nil
}
