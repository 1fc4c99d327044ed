package routes

import (
	"berkeley-brew-api/handlers"
	"berkeley-brew-api/middleware"
	"berkeley-brew-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Cafes (no auth needed)
		public.GET("/cafes", handlers.ListCafes)
		public.GET("/cafes/:id", handlers.GetCafe)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.PUT("/profile", handlers.UpdateProfile)

		// Reviews
		auth.POST("/cafes/:id/reviews", handlers.CreateReview)
		auth.PATCH("/reviews/:id", handlers.UpdateReview)
		auth.DELETE("/reviews/:id", handlers.DeleteReview)
		auth.GET("/reviews/mine", handlers.GetMyReviews)

		// Bookmarks
		auth.GET("/bookmarks", handlers.ListBookmarks)
		auth.POST("/bookmarks", handlers.CreateBookmark)
		auth.DELETE("/bookmarks/:cafeId", handlers.DeleteBookmark)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.POST("/cafes", handlers.AdminCreateCafe)
		admin.PUT("/cafes/:id", handlers.AdminUpdateCafe)
		admin.DELETE("/cafes/:id", handlers.AdminDeleteCafe)
		admin.GET("/users", handlers.AdminGetAllUsers)
	}
}
