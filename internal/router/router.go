package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"cardledger/internal/config"
	"cardledger/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	cardHandler *handler.CardHandler,
	cycleHandler *handler.CycleHandler,
	paymentHandler *handler.PaymentHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Card routes
	secured.POST("/cards", cardHandler.CreateCard)
	secured.GET("/cards", cardHandler.ListCards)
	secured.GET("/cards/:id", cardHandler.GetCard)
	secured.PUT("/cards/:id", cardHandler.UpdateCard)
	secured.DELETE("/cards/:id", cardHandler.DeleteCard)
	secured.GET("/cards/:id/secure", cardHandler.GetSecureDetails)

	// Cycle routes
	secured.POST("/cards/:id/cycles/current", cycleHandler.EnsureCurrentCycle)
	secured.GET("/cards/:id/cycles", cycleHandler.GetBillHistory)
	secured.POST("/cards/:id/bill", cycleHandler.RecordBill)
	secured.PUT("/cycles/:id/rewards", cycleHandler.RecordReward)

	// Payment routes
	secured.POST("/cards/:id/payments", paymentHandler.ApplyPayment)
	secured.POST("/cards/:id/payments/full", paymentHandler.ApplyFullPayment)
	secured.GET("/cards/:id/payments", paymentHandler.GetPaymentHistory)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
