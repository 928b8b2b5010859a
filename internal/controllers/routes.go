package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wokane-be/internal/jwt"
	"wokane-be/internal/middleware"
)

// RouterConfig bundles the controllers and middleware the route table needs.
// Limiters may be nil (no rate limiting), which tests rely on.
type RouterConfig struct {
	Auth           *AuthController
	Users          *UserController
	Expenses       *ExpenseController
	QRCodes        *QRCodeController
	JWTService     *jwt.JWTService
	GeneralLimiter *middleware.RateLimiter
	AuthLimiter    *middleware.RateLimiter
}

// SetupRoutes registers the full HTTP surface on the given router.
func SetupRoutes(router *gin.Engine, cfg RouterConfig) {
	router.GET("/health", Health)

	// Auth routes with stricter rate limiting
	auth := router.Group("/auth")
	if cfg.AuthLimiter != nil {
		auth.Use(cfg.AuthLimiter.LimitMiddleware())
	}
	{
		auth.POST("/register", cfg.Auth.Register)
		auth.POST("/login", cfg.Auth.Login)
	}

	// Protected routes - require JWT authentication
	protected := router.Group("")
	if cfg.GeneralLimiter != nil {
		protected.Use(cfg.GeneralLimiter.LimitMiddleware())
	}
	protected.Use(middleware.AuthMiddleware(cfg.JWTService))
	{
		protected.GET("/users", cfg.Users.GetUsers)
		protected.GET("/users/:id", cfg.Users.GetUser)
		protected.PUT("/users/:id", cfg.Users.UpdateUser)
		protected.DELETE("/users/:id", cfg.Users.DeleteUser)

		protected.POST("/expenses", cfg.Expenses.CreateExpense)
		protected.GET("/expenses", cfg.Expenses.GetExpenses)
		protected.GET("/expenses/:id", cfg.Expenses.GetExpense)
		protected.DELETE("/expenses/:id", cfg.Expenses.DeleteExpense)

		// gin's router cannot register /expenses/uploads/:filename next to
		// /expenses/:id, so the two-segment routes share one pattern and
		// dispatch on the segments.
		protected.GET("/expenses/:id/:filename", func(c *gin.Context) {
			switch {
			case c.Param("id") == "uploads":
				cfg.Expenses.GetReceipt(c)
			case c.Param("filename") == "qrcode":
				cfg.QRCodes.GenerateQRCode(c)
			default:
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			}
		})
	}
}
