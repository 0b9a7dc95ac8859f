package routes

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"w3liquor_backend/internal/authz"
	"w3liquor_backend/internal/handlers"
	"w3liquor_backend/internal/handlers/liquor"
	"w3liquor_backend/internal/handlers/user"
	"w3liquor_backend/internal/middleware"
)

func RegisterRoutes(r *gin.Engine) {
	corsConfig := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		corsConfig.AllowOrigins = strings.Split(origins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", handlers.Health)

	// Auth
	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimit(), user.Login)
		auth.POST("/logout", middleware.AuthRequired(), user.Logout)
		auth.GET("/me", middleware.AuthRequired(), user.Me)
	}

	// Catalogue, réservé aux admins
	liquors := r.Group("/api/liquors")
	liquors.Use(middleware.AuthRequired(), middleware.RequireAdmin(authz.Default))
	{
		liquors.GET("", liquor.ListLiquors)
		liquors.GET("/:id", liquor.GetLiquor)
		liquors.GET("/:id/gambar-url", liquor.GetLiquorImageURL)
		liquors.POST("", liquor.CreateLiquor)
		liquors.PUT("/:id", liquor.UpdateLiquor)
		liquors.DELETE("/:id", liquor.DeleteLiquor)
	}
}
