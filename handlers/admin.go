package handlers

import (
	"net/http"

	"berkeley-brew-api/config"
	"berkeley-brew-api/models"

	"github.com/gin-gonic/gin"
)

type CreateCafeRequest struct {
	Name          string                `json:"name" binding:"required"`
	Address       string                `json:"address" binding:"required"`
	Latitude      float64               `json:"latitude"`
	Longitude     float64               `json:"longitude"`
	ImageURL      string                `json:"image_url"`
	PriceCategory string                `json:"price_category"`
	PlaceID       string                `json:"place_id"`
	BusinessHours *models.BusinessHours `json:"business_hours"`
}

type UpdateCafeRequest struct {
	Name          *string               `json:"name"`
	Address       *string               `json:"address"`
	Latitude      *float64              `json:"latitude"`
	Longitude     *float64              `json:"longitude"`
	ImageURL      *string               `json:"image_url"`
	PriceCategory *string               `json:"price_category"`
	PlaceID       *string               `json:"place_id"`
	BusinessHours *models.BusinessHours `json:"business_hours"`
	PopularTimes  *string               `json:"popular_times"`
}

// AdminCreateCafe registers a new cafe
func AdminCreateCafe(c *gin.Context) {
	var req CreateCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cafe := models.Cafe{
		Name:          req.Name,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		ImageURL:      req.ImageURL,
		PriceCategory: req.PriceCategory,
		PlaceID:       req.PlaceID,
		BusinessHours: req.BusinessHours,
	}
	if err := config.DB.Create(&cafe).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cafe"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Cafe created", "cafe": cafe})
}

// AdminUpdateCafe updates cafe identity fields and the out-of-band data
// columns (business hours, popular times). Cached score fields are never
// writable here; only the review mutation path touches them.
func AdminUpdateCafe(c *gin.Context) {
	var cafe models.Cafe
	if err := config.DB.First(&cafe, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
		return
	}

	var req UpdateCafeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Address != nil {
		update["address"] = *req.Address
	}
	if req.Latitude != nil {
		update["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		update["longitude"] = *req.Longitude
	}
	if req.ImageURL != nil {
		update["image_url"] = *req.ImageURL
	}
	if req.PriceCategory != nil {
		update["price_category"] = *req.PriceCategory
	}
	if req.PlaceID != nil {
		update["place_id"] = *req.PlaceID
	}
	if req.BusinessHours != nil {
		update["business_hours"] = req.BusinessHours
	}
	if req.PopularTimes != nil {
		update["popular_times"] = *req.PopularTimes
	}
	if len(update) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Nothing to update", "cafe": cafe})
		return
	}

	if err := config.DB.Model(&cafe).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cafe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cafe updated", "cafe": cafe})
}

// AdminDeleteCafe removes a cafe along with its reviews and bookmarks
func AdminDeleteCafe(c *gin.Context) {
	var cafe models.Cafe
	if err := config.DB.First(&cafe, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
		return
	}

	config.DB.Where("cafe_id = ?", cafe.ID).Delete(&models.Review{})
	config.DB.Where("cafe_id = ?", cafe.ID).Delete(&models.Bookmark{})
	config.DB.Delete(&cafe)

	c.JSON(http.StatusOK, gin.H{"message": "Cafe deleted"})
}

// AdminGetAllUsers lists every registered user
func AdminGetAllUsers(c *gin.Context) {
	var users []models.User
	config.DB.Order("created_at desc").Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}
