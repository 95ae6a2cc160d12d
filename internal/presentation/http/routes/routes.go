package routes

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/swarnaabhushan/backoffice-api/internal/config"
	"github.com/swarnaabhushan/backoffice-api/internal/domain/enum"
	domainRepo "github.com/swarnaabhushan/backoffice-api/internal/domain/repository"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/handler"
	"github.com/swarnaabhushan/backoffice-api/internal/presentation/http/middleware"
	"github.com/swarnaabhushan/backoffice-api/pkg/utils"
	"github.com/swarnaabhushan/backoffice-api/pkg/validation"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	User    *handler.UserHandler
	Item    *handler.ItemHandler
	Bill    *handler.BillHandler
	Payment *handler.PaymentHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	Log             *zap.Logger
}

var registerValidation sync.Once

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	registerValidation.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			validation.Register(v)
		}
	})

	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	rateLimiter := middleware.NewRateLimiter(deps.Cfg.RateLimit)

	api := router.Group("/api")
	api.Use(rateLimiter.Middleware())
	{
		// Public routes (no authentication required)
		api.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.POST("/auth/change-password", h.Auth.ChangePassword)

		// Back office routes are for operators only
		admin := protected.Group("")
		admin.Use(middleware.RequireRole(enum.RoleAdmin))

		registerUserRoutes(admin, h)
		registerItemRoutes(admin, h)
		registerBillRoutes(admin, h)
		registerPaymentRoutes(admin, h, deps)
	}

	return router
}

func registerUserRoutes(admin *gin.RouterGroup, h *Handlers) {
	users := admin.Group("/users")
	{
		users.POST("", h.User.Create)
		users.GET("", h.User.List)
		users.POST("/search", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerItemRoutes(admin *gin.RouterGroup, h *Handlers) {
	items := admin.Group("/items")
	{
		items.POST("", h.Item.Create)
		items.GET("", h.Item.List)
		items.POST("/search", h.Item.List)
		items.POST("/import", h.Item.Import)
		items.GET("/:id", h.Item.Get)
		items.PUT("/:id", h.Item.Update)
		items.DELETE("/:id", h.Item.Delete)
	}
}

func registerBillRoutes(admin *gin.RouterGroup, h *Handlers) {
	bills := admin.Group("/billings")
	{
		bills.POST("", h.Bill.Create)
		bills.POST("/search", h.Bill.Search)
		bills.GET("/export", h.Bill.Export)
		bills.GET("/:id", h.Bill.Get)
		bills.PUT("/:id", h.Bill.Update)
		bills.DELETE("/:id", h.Bill.Delete)
		bills.GET("/:id/invoice", h.Bill.Invoice)
	}
}

func registerPaymentRoutes(admin *gin.RouterGroup, h *Handlers, deps *Deps) {
	payments := admin.Group("/payment")
	{
		// Payment creation replays responses for a repeated Idempotency-Key
		payments.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
			Log:  deps.Log,
		}), h.Payment.Create)
		payments.POST("/search", h.Payment.Search)
		payments.GET("/:id", h.Payment.Get)
		payments.DELETE("/:id", h.Payment.Delete)
	}
}
