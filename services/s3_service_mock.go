package services

import (
	"fmt"
	"sync"
)

// MockS3Service is a mock implementation of S3Interface for testing
type MockS3Service struct {
	uploadedFiles map[string][]byte // map of S3 key to file content
	uploadCount   int
	mu            sync.RWMutex
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		uploadedFiles: make(map[string][]byte),
	}
}

// SetAsMockForTesting sets this mock as the global S3 service instance for testing
func (m *MockS3Service) SetAsMockForTesting() {
	SetS3Service(m)
}

// UploadBytes simulates uploading processed image bytes to S3
func (m *MockS3Service) UploadBytes(data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.uploadCount++
	s3Key := fmt.Sprintf("clothing-images/mock-%d.png", m.uploadCount)

	content := make([]byte, len(data))
	copy(content, data)
	m.uploadedFiles[s3Key] = content

	return s3Key, nil
}

// GetPublicURL returns a mock public URL for an S3 key
func (m *MockS3Service) GetPublicURL(s3Key string) string {
	if s3Key == "" {
		return ""
	}
	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s", s3Key)
}

// DeleteFile simulates deleting a file from S3
func (m *MockS3Service) DeleteFile(s3Key string) error {
	if s3Key == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.uploadedFiles, s3Key)
	m.mu.Unlock()

	return nil
}

// GetUploadedFiles returns all uploaded files (for testing assertions)
func (m *MockS3Service) GetUploadedFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent race conditions
	files := make(map[string][]byte, len(m.uploadedFiles))
	for k, v := range m.uploadedFiles {
		files[k] = v
	}
	return files
}

// FileExists checks if a file exists in mock storage
func (m *MockS3Service) FileExists(s3Key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.uploadedFiles[s3Key]
	return exists
}

// Clear removes all files from mock storage
func (m *MockS3Service) Clear() {
	m.mu.Lock()
	m.uploadedFiles = make(map[string][]byte)
	m.uploadCount = 0
	m.mu.Unlock()
}
