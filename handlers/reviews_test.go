package handlers

import (
	"fmt"
	"testing"

	"berkeley-brew-api/models"
	"berkeley-brew-api/scoring"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("could not open database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Cafe{}, &models.Review{}, &models.Bookmark{}); err != nil {
		t.Fatalf("could not migrate schema: %v", err)
	}
	return db
}

func seedCafe(t *testing.T, db *gorm.DB) models.Cafe {
	cafe := models.Cafe{Name: "Test Cafe", Address: "123 Test St"}
	if err := db.Create(&cafe).Error; err != nil {
		t.Fatalf("could not create cafe: %v", err)
	}
	return cafe
}

var seedSeq int

func seedReview(t *testing.T, db *gorm.DB, cafeID string, grind, student, coffee, vibe float64) models.Review {
	seedSeq++
	user := models.User{
		Username:     fmt.Sprintf("user%d", seedSeq),
		Email:        fmt.Sprintf("user%d@test.edu", seedSeq),
		PasswordHash: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("could not create user: %v", err)
	}
	review := models.Review{
		CafeID:                   cafeID,
		UserID:                   user.ID,
		Content:                  "solid study spot",
		GrindabilityScore:        &grind,
		StudentFriendlinessScore: &student,
		CoffeeQualityScore:       &coffee,
		VibeScore:                &vibe,
	}
	review.GoldenBearScore = scoring.ReviewScore(&review)
	if err := db.Create(&review).Error; err != nil {
		t.Fatalf("could not create review: %v", err)
	}
	return review
}

func TestRecomputeCafeScores(t *testing.T) {
	db := setupTestDB(t)
	cafe := seedCafe(t, db)

	seedReview(t, db, cafe.ID, 4, 3, 5, 4)
	seedReview(t, db, cafe.ID, 2, 5, 3, 2)

	if err := recomputeCafeScores(db, cafe.ID); err != nil {
		t.Fatalf("recompute failed: %v", err)
	}

	var got models.Cafe
	if err := db.First(&got, "id = ?", cafe.ID).Error; err != nil {
		t.Fatalf("could not reload cafe: %v", err)
	}

	if got.GrindabilityScore == nil || *got.GrindabilityScore != 3 {
		t.Errorf("expected grindability 3, got %v", got.GrindabilityScore)
	}
	if got.GoldenBearScore == nil || *got.GoldenBearScore != 3.5 {
		t.Errorf("expected golden bear 3.5, got %v", got.GoldenBearScore)
	}
	if got.ReviewCount != 2 {
		t.Errorf("expected review count 2, got %d", got.ReviewCount)
	}
}

func TestRecomputeCafeScoresAfterLastReviewDeleted(t *testing.T) {
	db := setupTestDB(t)
	cafe := seedCafe(t, db)
	review := seedReview(t, db, cafe.ID, 4, 4, 4, 4)

	if err := recomputeCafeScores(db, cafe.ID); err != nil {
		t.Fatalf("recompute failed: %v", err)
	}

	if err := db.Delete(&review).Error; err != nil {
		t.Fatalf("could not delete review: %v", err)
	}
	if err := recomputeCafeScores(db, cafe.ID); err != nil {
		t.Fatalf("recompute after delete failed: %v", err)
	}

	var got models.Cafe
	if err := db.First(&got, "id = ?", cafe.ID).Error; err != nil {
		t.Fatalf("could not reload cafe: %v", err)
	}

	// Scores reset to null, never to zero
	if got.GrindabilityScore != nil || got.GoldenBearScore != nil {
		t.Errorf("expected nil scores after last review deleted, got %+v", got)
	}
	if got.ReviewCount != 0 {
		t.Errorf("expected review count 0, got %d", got.ReviewCount)
	}
}
