package handlers

import (
	"github.com/SscSPs/auctionbay/cmd/docs"
	portssvc "github.com/SscSPs/auctionbay/internal/core/ports/services"
	"github.com/SscSPs/auctionbay/internal/dto"
	"github.com/SscSPs/auctionbay/internal/platform/config"
	"github.com/SscSPs/auctionbay/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// bidLimiter may be nil to disable rate limiting of bid placement.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	bidLimiter *limiter.Limiter,
) error {
	if err := registerBindingValidations(); err != nil {
		return err
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/metrics", metrics.Handler())

	setupAPIV1Routes(r, cfg, services, bidLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// registerBindingValidations adds the custom DTO rules to gin's validator.
func registerBindingValidations() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return dto.RegisterValidations(v)
	}
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	bidLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1")

	registerAuctionRoutes(v1, cfg.JWTSecret, service.Auction, service.Bid, service.Listing, bidLimiter)
	registerProfileRoutes(v1, cfg.JWTSecret, service.Listing)
	registerNotificationRoutes(v1, cfg.JWTSecret, service.Notification)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
