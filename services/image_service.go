package services

import (
	"fmt"
	"mime/multipart"

	"github.com/maya-reeves/wardrobe-api/utils"
)

// ImageService runs uploaded clothing photos through the processing
// pipeline: validation, background removal, storage.
type ImageService interface {
	// ProcessImage validates the upload, removes its background, stores
	// the result and returns the public URL of the processed image
	ProcessImage(fileHeader *multipart.FileHeader) (string, error)

	// DeleteImage removes a processed image from storage by its key
	DeleteImage(imageKey string) error
}

// PipelineImageService implements ImageService with a background removal
// API and S3-backed storage
type PipelineImageService struct {
	removalService RemovalService
	s3Service      S3Interface
}

var imageServiceInstance ImageService

// InitImageService initializes the image service
func InitImageService(removalService RemovalService, s3Service S3Interface) ImageService {
	imageServiceInstance = &PipelineImageService{
		removalService: removalService,
		s3Service:      s3Service,
	}
	return imageServiceInstance
}

// GetImageService returns the initialized image service instance
func GetImageService() ImageService {
	return imageServiceInstance
}

// SetImageService sets the image service instance (primarily for testing)
func SetImageService(service ImageService) {
	imageServiceInstance = service
}

// ProcessImage validates and processes an uploaded clothing photo
func (s *PipelineImageService) ProcessImage(fileHeader *multipart.FileHeader) (string, error) {
	if err := utils.ValidateImageFile(fileHeader); err != nil {
		return "", err
	}

	processed, err := s.removalService.RemoveBackground(fileHeader)
	if err != nil {
		return "", fmt.Errorf("failed to remove background: %w", err)
	}

	s3Key, err := s.s3Service.UploadBytes(processed, "image/png")
	if err != nil {
		return "", fmt.Errorf("failed to store processed image: %w", err)
	}

	return s.s3Service.GetPublicURL(s3Key), nil
}

// DeleteImage deletes a processed image from S3
func (s *PipelineImageService) DeleteImage(imageKey string) error {
	if imageKey == "" {
		return nil
	}

	if err := s.s3Service.DeleteFile(imageKey); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}
