package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/maya-reeves/wardrobe-api/config"
	"github.com/maya-reeves/wardrobe-api/models"
	"github.com/maya-reeves/wardrobe-api/wardrobe"
)

// CreateItemRequest represents the request body for saving a clothing item
type CreateItemRequest struct {
	ImageURL     string `json:"imageUrl" binding:"required"`
	Brand        string `json:"brand" binding:"required"`
	Color        string `json:"color" binding:"required"`
	MainCategory string `json:"mainCategory" binding:"required"`
	SubCategory  string `json:"subCategory" binding:"required"`
}

// DeleteItemsRequest represents the request body for bulk-deleting items
type DeleteItemsRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}

// CreateItem handles POST /api/v1/items - saves a clothing item for the
// authenticated user. The subcategory must belong to the main category's
// catalog list.
func CreateItem(c *gin.Context) {
	user, ok := currentUser(c, true)
	if !ok {
		return
	}

	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if !wardrobe.ValidCategory(req.MainCategory, req.SubCategory) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CATEGORY",
				"message": "Subcategory does not belong to the given main category",
			},
		})
		return
	}

	item := models.Item{
		UserID:        user.ID,
		ImageURL:      req.ImageURL,
		Brand:         req.Brand,
		Color:         req.Color,
		MainCategory:  req.MainCategory,
		SubCategory:   req.SubCategory,
		NumberOfWears: 0,
	}

	db := config.GetDB()
	if err := db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save clothing item",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    item,
	})
}

// ListItems handles GET /api/v1/items - lists the caller's clothing items,
// newest first
func ListItems(c *gin.Context) {
	user, ok := currentUser(c, false)
	if !ok {
		return
	}

	db := config.GetDB()
	var items []models.Item
	if err := db.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch clothing items",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"items": items},
	})
}

// groupedCategory is one category block of the grouped wardrobe view
type groupedCategory struct {
	Category  string        `json:"category"`
	Items     []groupedItem `json:"items"`
	PageCount int           `json:"pageCount"`
}

type groupedItem struct {
	models.Item
	Name string `json:"name"`
}

// GetGroupedItems handles GET /api/v1/items/grouped - returns the caller's
// wardrobe grouped by main category in display order, with per-category
// page counts for the client's pagination controls
func GetGroupedItems(c *gin.Context) {
	user, ok := currentUser(c, false)
	if !ok {
		return
	}

	pageSize := wardrobe.DefaultPageSize
	if raw := c.Query("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "VALIDATION_ERROR",
					"message": "page_size must be a positive integer",
				},
			})
			return
		}
		pageSize = parsed
	}

	db := config.GetDB()
	var items []models.Item
	if err := db.Where("user_id = ?", user.ID).Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch clothing items",
			},
		})
		return
	}

	grouped := wardrobe.GroupItems(items)
	paginator := wardrobe.NewPaginator(pageSize)

	// Preserve display order; skip empty categories
	var categories []groupedCategory
	for _, category := range wardrobe.DisplayCategories() {
		categoryItems := grouped[category]
		if len(categoryItems) == 0 {
			continue
		}
		block := groupedCategory{
			Category:  category,
			Items:     make([]groupedItem, 0, len(categoryItems)),
			PageCount: paginator.PageCount(len(categoryItems)),
		}
		for _, item := range categoryItems {
			block.Items = append(block.Items, groupedItem{Item: item, Name: item.DisplayName()})
		}
		categories = append(categories, block)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"categories": categories,
			"pageSize":   pageSize,
		},
	})
}

// DeleteItems handles DELETE /api/v1/items - bulk-deletes items by ID,
// restricted to items owned by the caller
func DeleteItems(c *gin.Context) {
	user, ok := currentUser(c, false)
	if !ok {
		return
	}

	var req DeleteItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "No items to delete",
			},
		})
		return
	}

	db := config.GetDB()
	if err := db.Where("id IN ? AND user_id = ?", req.IDs, user.ID).Delete(&models.Item{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete items",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"message": "Items deleted successfully"},
	})
}
