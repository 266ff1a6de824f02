package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/maya-reeves/wardrobe-api/config"
	"github.com/maya-reeves/wardrobe-api/models"
	"github.com/maya-reeves/wardrobe-api/wardrobe"
)

// CreateOutfitRequest represents the request body for saving today's outfit
type CreateOutfitRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// appTimezone returns the location used for day and month boundaries.
// Falls back to UTC when unset or unparseable.
func appTimezone() *time.Location {
	cfg := config.GetConfig()
	if cfg == nil || cfg.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CreateOutfit handles POST /api/v1/outfits - saves the caller's outfit
// for today
func CreateOutfit(c *gin.Context) {
	user, ok := currentUser(c, true)
	if !ok {
		return
	}

	var req CreateOutfitRequest
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

	outfit := models.Outfit{
		UserID:   user.ID,
		ImageURL: req.ImageURL,
		Name:     req.Name,
		Date:     time.Now(),
	}

	db := config.GetDB()
	if err := db.Create(&outfit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save outfit",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    outfit,
	})
}

// GetOutfitsByMonth handles GET /api/v1/outfits?month=&year= - returns the
// caller's outfits created in the month window, oldest first, together
// with a day-indexed map for the calendar grid
func GetOutfitsByMonth(c *gin.Context) {
	user, ok := currentUser(c, false)
	if !ok {
		return
	}

	month, monthErr := strconv.Atoi(c.Query("month"))
	year, yearErr := strconv.Atoi(c.Query("year"))
	if monthErr != nil || yearErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_MONTH",
				"message": "Month and year are required numeric parameters",
			},
		})
		return
	}

	loc := appTimezone()
	start, end, err := wardrobe.MonthRange(year, month, loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_MONTH",
				"message": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	var outfits []models.Outfit
	if err := db.Where("user_id = ? AND created_at >= ? AND created_at < ?", user.ID, start, end).
		Order("created_at ASC").
		Find(&outfits).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch outfits",
			},
		})
		return
	}

	calendar := wardrobe.NewCalendar(year, month, outfits, loc)
	byDay := make(map[string][]models.Outfit)
	for day := 1; day <= calendar.Days(); day++ {
		if dayOutfits := calendar.ByDay(day); len(dayOutfits) > 0 {
			byDay[strconv.Itoa(day)] = dayOutfits
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"outfits": outfits,
			"byDay":   byDay,
		},
	})
}

// GetOutfitForDate handles GET /api/v1/outfits/date/:date - returns the
// first outfit the caller saved on the given day (YYYY-MM-DD). The lookup
// uses a half-open day range in the configured time zone.
func GetOutfitForDate(c *gin.Context) {
	user, ok := currentUser(c, false)
	if !ok {
		return
	}

	loc := appTimezone()
	day, err := time.ParseInLocation("2006-01-02", c.Param("date"), loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_DATE",
				"message": "Date must be in YYYY-MM-DD format",
			},
		})
		return
	}

	start, end := wardrobe.DayRange(day, loc)

	db := config.GetDB()
	var outfit models.Outfit
	if err := db.Where("user_id = ? AND date >= ? AND date < ?", user.ID, start, end).
		Order("created_at ASC").
		First(&outfit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "OUTFIT_NOT_FOUND",
					"message": "No outfit found for the given date",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to fetch outfit",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"outfit": outfit},
	})
}
