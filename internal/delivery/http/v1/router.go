package v1

import (
	"go-mentorship-backend/config"
	"go-mentorship-backend/internal/delivery/http/middleware"
	"go-mentorship-backend/internal/delivery/http/response"
	"go-mentorship-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CatalogUC   domain.CatalogUsecase
	SelectionUC domain.SelectionUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		deps.Config.RateLimitWindowSeconds,
	)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.OK(c, 200, "ok")
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes; there is no authentication anywhere in this API.
	NewMentorHandler(v1, deps.CatalogUC)
	NewSelectionHandler(v1, deps.SelectionUC, middleware.RateLimitMiddleware(middleware.SubmitRateLimitConfig(
		deps.Config.RateLimitSubmitThreshold,
		deps.Config.RateLimitWindowSeconds,
	)))

	return r
}
