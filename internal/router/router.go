package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/unrolled/secure"
	"go.uber.org/zap"

	"github.com/yourusername/shagird-api/internal/handler"
	"github.com/yourusername/shagird-api/internal/middleware"
	"github.com/yourusername/shagird-api/pkg/monitoring"
)

// Deps - зависимости, необходимые для сборки маршрутов
type Deps struct {
	Logger        *zap.Logger
	QuizHandler   *handler.QuizHandler
	HealthHandler *handler.HealthHandler
	Metrics       *monitoring.Metrics
	// RateLimiter может быть nil, если Redis не настроен
	RateLimiter     *middleware.RateLimiter
	SubmitRateLimit middleware.RateLimitConfig
}

// Setup создает Gin роутер со всеми middleware и маршрутами
func Setup(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}

	// Запросы разрешены с любого источника
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	secureMiddleware := secure.New(secure.Options{
		FrameDeny:          true,
		ContentTypeNosniff: true,
	})
	router.Use(func(c *gin.Context) {
		if err := secureMiddleware.Process(c.Writer, c.Request); err != nil {
			c.Abort()
			return
		}
		c.Next()
	})

	quiz := deps.QuizHandler

	router.GET("/", quiz.Home)
	router.GET("/subjects", quiz.ListSubjects)
	router.GET("/quiz/:subject", quiz.GetQuiz)

	submitChain := []gin.HandlerFunc{}
	if deps.RateLimiter != nil {
		submitChain = append(submitChain, deps.RateLimiter.Limit(deps.SubmitRateLimit))
	}
	submitChain = append(submitChain, quiz.Submit)
	router.POST("/submit", submitChain...)

	progress := router.Group("/my-progress/:userId")
	{
		progress.GET("", quiz.GetProgress)
		progress.GET("/export", quiz.ExportProgress)
	}

	if deps.HealthHandler != nil {
		router.GET("/health", deps.HealthHandler.Health)
	}
	if deps.Metrics != nil {
		router.GET("/metrics", deps.Metrics.Handler())
	}

	return router
}
