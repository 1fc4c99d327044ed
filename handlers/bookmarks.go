package handlers

import (
	"net/http"
	"time"

	"berkeley-brew-api/config"
	"berkeley-brew-api/hours"
	"berkeley-brew-api/middleware"
	"berkeley-brew-api/models"

	"github.com/gin-gonic/gin"
)

type BookmarkRequest struct {
	CafeID string `json:"cafe_id" binding:"required"`
}

// ListBookmarks returns the caller's saved cafes with cached scores and live
// opening status
func ListBookmarks(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var bookmarks []models.Bookmark
	config.DB.Preload("Cafe").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&bookmarks)

	now := time.Now()
	results := make([]gin.H, 0, len(bookmarks))
	for i := range bookmarks {
		status := hours.Resolve(bookmarks[i].Cafe.BusinessHours, now)
		status.AllHours = nil
		results = append(results, gin.H{
			"id":         bookmarks[i].ID,
			"created_at": bookmarks[i].CreatedAt,
			"cafe":       CafeWithStatus{Cafe: bookmarks[i].Cafe, Opening: status},
		})
	}

	c.JSON(http.StatusOK, gin.H{"count": len(results), "bookmarks": results})
}

// CreateBookmark saves a cafe for the caller
func CreateBookmark(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req BookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cafe models.Cafe
	if err := config.DB.First(&cafe, "id = ?", req.CafeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
		return
	}

	var existing models.Bookmark
	if result := config.DB.Where("user_id = ? AND cafe_id = ?", userID, req.CafeID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Cafe already bookmarked"})
		return
	}

	bookmark := models.Bookmark{UserID: userID, CafeID: req.CafeID}
	if err := config.DB.Create(&bookmark).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create bookmark"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Cafe bookmarked", "bookmark": bookmark})
}

// DeleteBookmark removes a saved cafe for the caller
func DeleteBookmark(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cafeID := c.Param("cafeId")

	var bookmark models.Bookmark
	if err := config.DB.Where("user_id = ? AND cafe_id = ?", userID, cafeID).First(&bookmark).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Bookmark not found"})
		return
	}

	config.DB.Delete(&bookmark)
	c.JSON(http.StatusOK, gin.H{"message": "Bookmark removed"})
}
