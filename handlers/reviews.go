package handlers

import (
	"net/http"
	"time"

	"berkeley-brew-api/config"
	"berkeley-brew-api/middleware"
	"berkeley-brew-api/models"
	"berkeley-brew-api/monitoring"
	"berkeley-brew-api/scoring"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReviewRequest struct {
	Content                  string   `json:"content"`
	GrindabilityScore        *float64 `json:"grindability_score" binding:"required,gte=0,lte=5"`
	StudentFriendlinessScore *float64 `json:"student_friendliness_score" binding:"required,gte=0,lte=5"`
	CoffeeQualityScore       *float64 `json:"coffee_quality_score" binding:"required,gte=0,lte=5"`
	VibeScore                *float64 `json:"vibe_score" binding:"required,gte=0,lte=5"`
}

// CreateReview adds a review to a cafe (one per user per cafe) and refreshes
// the cafe's cached scores in the same transaction
func CreateReview(c *gin.Context) {
	userID := middleware.GetUserID(c)
	cafeID := c.Param("id")

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cafe models.Cafe
	if err := config.DB.First(&cafe, "id = ?", cafeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cafe not found"})
		return
	}

	var existing models.Review
	if result := config.DB.Where("cafe_id = ? AND user_id = ?", cafeID, userID).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "You have already reviewed this cafe"})
		return
	}

	review := models.Review{
		CafeID:                   cafeID,
		UserID:                   userID,
		Content:                  req.Content,
		GrindabilityScore:        req.GrindabilityScore,
		StudentFriendlinessScore: req.StudentFriendlinessScore,
		CoffeeQualityScore:       req.CoffeeQualityScore,
		VibeScore:                req.VibeScore,
	}
	review.GoldenBearScore = scoring.ReviewScore(&review)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		return recomputeCafeScores(tx, cafeID)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"cafe_id": cafeID, "error": err}).Error("failed to create review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted successfully", "review": review})
}

// UpdateReview edits the caller's own review and refreshes the cafe's cached scores
func UpdateReview(c *gin.Context) {
	userID := middleware.GetUserID(c)
	reviewID := c.Param("id")

	var review models.Review
	if err := config.DB.Where("id = ? AND user_id = ?", reviewID, userID).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found or not owned by user"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review.Content = req.Content
	review.GrindabilityScore = req.GrindabilityScore
	review.StudentFriendlinessScore = req.StudentFriendlinessScore
	review.CoffeeQualityScore = req.CoffeeQualityScore
	review.VibeScore = req.VibeScore
	review.GoldenBearScore = scoring.ReviewScore(&review)

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&review).Error; err != nil {
			return err
		}
		return recomputeCafeScores(tx, review.CafeID)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"review_id": reviewID, "error": err}).Error("failed to update review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully", "review": review})
}

// DeleteReview removes the caller's own review and refreshes the cafe's
// cached scores (back to null when the last review goes)
func DeleteReview(c *gin.Context) {
	userID := middleware.GetUserID(c)
	reviewID := c.Param("id")

	var review models.Review
	if err := config.DB.Where("id = ? AND user_id = ?", reviewID, userID).First(&review).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found or not owned by user"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&review).Error; err != nil {
			return err
		}
		return recomputeCafeScores(tx, review.CafeID)
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{"review_id": reviewID, "error": err}).Error("failed to delete review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// GetMyReviews returns all reviews written by the caller
func GetMyReviews(c *gin.Context) {
	userID := middleware.GetUserID(c)
	var reviews []models.Review
	config.DB.Preload("Cafe").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&reviews)
	c.JSON(http.StatusOK, gin.H{"count": len(reviews), "reviews": reviews})
}

// recomputeCafeScores rereads the cafe's full review set inside the caller's
// transaction, aggregates it, and writes the cached score fields back onto
// the cafe row. Running read and write in one transaction serializes
// concurrent recomputes for the same cafe at the row level.
func recomputeCafeScores(tx *gorm.DB, cafeID string) error {
	var reviews []models.Review
	if err := tx.Where("cafe_id = ?", cafeID).Find(&reviews).Error; err != nil {
		return err
	}

	s := scoring.Aggregate(reviews)
	monitoring.ScoreRecomputeTotal.Inc()
	logrus.WithFields(logrus.Fields{
		"cafe_id":      cafeID,
		"review_count": s.ReviewCount,
	}).Info("recomputed cafe scores")

	// Map update so nil scores are written as NULL, not skipped
	return tx.Model(&models.Cafe{}).Where("id = ?", cafeID).Updates(map[string]interface{}{
		"grindability_score":         s.GrindabilityScore,
		"student_friendliness_score": s.StudentFriendlinessScore,
		"coffee_quality_score":       s.CoffeeQualityScore,
		"vibe_score":                 s.VibeScore,
		"golden_bear_score":          s.GoldenBearScore,
		"review_count":               s.ReviewCount,
		"updated_at":                 time.Now(),
	}).Error
}
