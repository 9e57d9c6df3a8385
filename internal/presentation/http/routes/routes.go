package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pdvcaixa/caixa-api/internal/config"
	"github.com/pdvcaixa/caixa-api/internal/domain/enum"
	domainRepo "github.com/pdvcaixa/caixa-api/internal/domain/repository"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/handler"
	"github.com/pdvcaixa/caixa-api/internal/presentation/http/middleware"
	"github.com/pdvcaixa/caixa-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Product    *handler.ProductHandler
	Category   *handler.CategoryHandler
	Additional *handler.AdditionalHandler
	Payment    *handler.PaymentMethodHandler
	Sale       *handler.SaleHandler
	Report     *handler.ReportHandler
	Settings   *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-operator rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	adminOnly := middleware.RequireRole(string(enum.RoleAdmin))

	// Auth/Profile routes
	protected.GET("/auth/me", h.Auth.Me)
	protected.PUT("/auth/password", h.Auth.ChangePassword)

	// Cashiers (Admin)
	registerCashierRoutes(protected, h, adminOnly)

	// Products
	registerProductRoutes(protected, h, adminOnly)

	// Categories
	registerCategoryRoutes(protected, h, adminOnly)

	// Additionals and additional categories
	registerAdditionalRoutes(protected, h, adminOnly)

	// Payment methods
	registerPaymentMethodRoutes(protected, h, adminOnly)

	// Sales
	registerSaleRoutes(protected, h, deps, adminOnly)

	// Reports (Admin)
	registerReportRoutes(protected, h, adminOnly)

	// Settings (Admin)
	registerSettingsRoutes(protected, h, adminOnly)
}

func registerCashierRoutes(protected *gin.RouterGroup, h *Handlers, adminOnly gin.HandlerFunc) {
	cashiers := protected.Group("/cashiers")
	cashiers.Use(adminOnly)
	{
		cashiers.GET("", h.User.ListCashiers)
		cashiers.POST("", h.User.CreateCashier)
		cashiers.GET("/:id", h.User.GetCashier)
		cashiers.PUT("/:id", h.User.UpdateCashier)
		cashiers.DELETE("/:id", h.User.DeleteCashier)
		cashiers.PUT("/:id/password", h.User.SetCashierPassword)
		cashiers.DELETE("/:id/password", h.User.ClearCashierPassword)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers, adminOnly gin.HandlerFunc) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.ListProducts)
		products.GET("/:id", h.Product.GetProduct)
		products.GET("/:id/additional-categories", h.Product.GetProductAdditionalCategories)
		products.POST("", adminOnly, h.Product.CreateProduct)
		products.PUT("/:id", adminOnly, h.Product.UpdateProduct)
		products.PUT("/:id/additional-categories", adminOnly, h.Product.SetProductAdditionalCategories)
		products.DELETE("/:id", adminOnly, h.Product.DeleteProduct)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers, adminOnly gin.HandlerFunc) {
	categories := protected.Group("/categories")
	{
		categories.GET("", h.Category.ListCategories)
		categories.GET("/:id/products", h.Category.ListCategoryProducts)
		categories.POST("", adminOnly, h.Category.CreateCategory)
		categories.PUT("/:id", adminOnly, h.Category.UpdateCategory)
		categories.DELETE("/:id", adminOnly, h.Category.DeleteCategory)
		categories.POST("/:id/products", adminOnly, h.Category.AssignProduct)
		categories.DELETE("/:id/products/:pid", adminOnly, h.Category.RemoveProduct)
	}
}

func registerAdditionalRoutes(protected *gin.RouterGroup, h *Handlers, adminOnly gin.HandlerFunc) {
	additionals := protected.Group("/additionals")
	{
		additionals.GET("", h.Additional.ListAdditionals)
		additionals.POST("", adminOnly, h.Additional.CreateAdditional)
		additionals.PUT("/:id", adminOnly, h.Additional.UpdateAdditional)
		additionals.DELETE("/:id", adminOnly, h.Additional.DeleteAdditional)
	}

	additionalCategories := protected.Group("/additional-categories")
	{
		additionalCategories.GET("", h.Additional.ListAdditionalCategories)
		additionalCategories.POST("", adminOnly, h.Additional.CreateAdditionalCategory)
		additionalCategories.PUT("/:id", adminOnly, h.Additional.UpdateAdditionalCategory)
		additionalCategories.DELETE("/:id", adminOnly, h.Additional.DeleteAdditionalCategory)
	}
}

func registerPaymentMethodRoutes(protected *gin.RouterGroup, h *Handlers, adminOnly gin.HandlerFunc) {
	methods := protected.Group("/payment-methods")
	{
		methods.GET("", h.Payment.ListPaymentMethods)
		methods.POST("", adminOnly, h.Payment.CreatePaymentMethod)
		methods.PUT("/:id", adminOnly, h.Payment.UpdatePaymentMethod)
		methods.DELETE("/:id", adminOnly, h.Payment.DeletePaymentMethod)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps, adminOnly gin.HandlerFunc) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.ListSales)
		// Checkout honors an optional Idempotency-Key header so a retried
		// request cannot register the sale twice
		sales.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Sale.CreateSale)
		sales.GET("/:id", h.Sale.GetSale)
		sales.PUT("/:id", adminOnly, h.Sale.UpdateSale)
		sales.DELETE("/:id", adminOnly, h.Sale.DeleteSale)
	}
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers, adminOnly gin.HandlerFunc) {
	reports := protected.Group("/reports")
	reports.Use(adminOnly)
	{
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/revenue-by-day", h.Report.RevenueByDay)
		reports.GET("/series", h.Report.Series)
		reports.GET("/export", h.Report.ExportSales)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers, adminOnly gin.HandlerFunc) {
	settings := protected.Group("/settings")
	settings.Use(adminOnly)
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("", h.Settings.UpdateSettings)
		settings.GET("/fiscal", h.Settings.GetFiscalConfig)
		settings.PUT("/fiscal", h.Settings.UpdateFiscalConfig)
	}
}
