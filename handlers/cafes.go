package handlers

import (
	"net/http"
	"time"

	"berkeley-brew-api/config"
	"berkeley-brew-api/hours"
	"berkeley-brew-api/models"

	"github.com/gin-gonic/gin"
)

// CafeWithStatus decorates a cafe record with its live opening status.
type CafeWithStatus struct {
	models.Cafe
	Opening hours.OpeningStatus `json:"opening"`
}

// ListCafes returns all cafes with cached scores and live opening status (public)
func ListCafes(c *gin.Context) {
	var cafes []models.Cafe
	query := config.DB.Order("name")

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	query.Find(&cafes)

	now := time.Now()
	results := make([]CafeWithStatus, 0, len(cafes))
	for i := range cafes {
		status := hours.Resolve(cafes[i].BusinessHours, now)
		if c.Query("open") == "true" && !status.IsOpen {
			continue
		}
		// The week view is noise on the list endpoint
		status.AllHours = nil
		results = append(results, CafeWithStatus{Cafe: cafes[i], Opening: status})
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(results),
		"cafes": results,
	})
}

// GetCafe returns a single cafe with its reviews and live opening status (public)
func GetCafe(c *gin.Context) {
	var cafe models.Cafe
	if err := config.DB.Preload("Reviews.User").First(&cafe, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
		return
	}

	status := hours.Resolve(cafe.BusinessHours, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"cafe": CafeWithStatus{Cafe: cafe, Opening: status},
	})
}
