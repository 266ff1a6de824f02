package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maya-reeves/wardrobe-api/services"
	"github.com/maya-reeves/wardrobe-api/utils"
)

// UploadImage handles POST /api/v1/uploads - accepts a multipart clothing
// photo, removes its background and stores the processed image, returning
// the public URL the client saves on the item or outfit record.
func UploadImage(c *gin.Context) {
	if _, ok := currentUser(c, true); !ok {
		return
	}

	fileHeader, err := c.FormFile("imageFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "imageFile is required",
			},
		})
		return
	}

	imageService := services.GetImageService()
	processedURL, err := imageService.ProcessImage(fileHeader)
	if err != nil {
		var uploadErr *utils.FileUploadError
		if errors.As(err, &uploadErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    uploadErr.Code,
					"message": uploadErr.Message,
				},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "IMAGE_PROCESSING_ERROR",
				"message": "Failed to process image",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"processedImageUrl": processedURL},
	})
}
