package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/yatradesk/yatradesk-backend/internal/adapters/transport/http/middleware"
	"github.com/yatradesk/yatradesk-backend/internal/app/auth/jwt"
	authsvc "github.com/yatradesk/yatradesk-backend/internal/app/auth/service"
	guidesvc "github.com/yatradesk/yatradesk-backend/internal/app/guide/service"
	"github.com/yatradesk/yatradesk-backend/internal/domain/user"
	"github.com/yatradesk/yatradesk-backend/internal/infra/config"
)

const rateLimitCacheSize = 10_000

// NewRouter assembles the gin engine: middleware chain, auth and guide
// routes, health and metrics endpoints.
func NewRouter(
	cfg *config.Config,
	log *zap.Logger,
	authService authsvc.Service,
	guideService guidesvc.Service,
	tokens jwt.TokenIssuer,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.RateLimitPerIP(cfg.RateLimitRPS, cfg.RateLimitBurst, rateLimitCacheSize, time.Hour))
	router.Use(cors.New(corsConfig(cfg)))
	router.Use(middleware.Timeout(cfg.RequestTimeout))

	authHandler := NewAuthHandler(authService, log)
	guideHandler := NewGuideHandler(guideService, log)

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)

		me := auth.Group("/me", middleware.Auth(tokens))
		me.GET("", authHandler.Me)
		me.PUT("", authHandler.UpdateMe)
	}

	guides := router.Group("/guides")
	{
		guides.GET("", guideHandler.List)
		guides.GET("/:id", guideHandler.Get)

		admin := guides.Group("", middleware.Auth(tokens), middleware.RequireRole(string(user.RoleAdmin)))
		admin.POST("", guideHandler.Create)
		admin.PUT("/:id", guideHandler.Update)
		admin.DELETE("/:id", guideHandler.Delete)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().Unix()})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func corsConfig(cfg *config.Config) cors.Config {
	return cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Accept",
			"Authorization",
			"X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}
}
