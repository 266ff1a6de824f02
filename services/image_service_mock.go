package services

import (
	"fmt"
	"mime/multipart"
	"sync"

	"github.com/maya-reeves/wardrobe-api/utils"
)

// MockImageService is a mock implementation of ImageService for testing
type MockImageService struct {
	processedImages map[string][]byte // map of public URL to original file content
	processCount    int
	failNext        error
	mu              sync.RWMutex
}

// NewMockImageService creates a new mock image service
func NewMockImageService() *MockImageService {
	return &MockImageService{
		processedImages: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global image service instance for testing
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

// FailNextWith makes the next ProcessImage call return the given error
func (m *MockImageService) FailNextWith(err error) {
	m.mu.Lock()
	m.failNext = err
	m.mu.Unlock()
}

// ProcessImage simulates the full image pipeline: it validates the upload
// and returns a mock public URL
func (m *MockImageService) ProcessImage(fileHeader *multipart.FileHeader) (string, error) {
	m.mu.Lock()
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		m.mu.Unlock()
		return "", err
	}
	m.mu.Unlock()

	// Validate the image file like the real pipeline does
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content := make([]byte, fileHeader.Size)
	_, err = file.Read(content)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	m.mu.Lock()
	m.processCount++
	publicURL := fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/clothing-images/mock-%d.png", m.processCount)
	m.processedImages[publicURL] = content
	m.mu.Unlock()

	return publicURL, nil
}

// DeleteImage simulates deleting a processed image
func (m *MockImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.processedImages, imageKey)
	m.mu.Unlock()

	return nil
}

// GetProcessedImages returns all processed images (for testing assertions)
func (m *MockImageService) GetProcessedImages() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent race conditions
	images := make(map[string][]byte, len(m.processedImages))
	for k, v := range m.processedImages {
		images[k] = v
	}
	return images
}

// Clear removes all images from mock storage
func (m *MockImageService) Clear() {
	m.mu.Lock()
	m.processedImages = make(map[string][]byte)
	m.processCount = 0
	m.failNext = nil
	m.mu.Unlock()
}
