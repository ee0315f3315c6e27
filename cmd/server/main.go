package main

import (
	"log"
	"net/http"

	_ "cardledger/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cardledger/internal/auth"
	"cardledger/internal/cache"
	"cardledger/internal/config"
	"cardledger/internal/db"
	"cardledger/internal/handler"
	"cardledger/internal/model"
	"cardledger/internal/repository"
	"cardledger/internal/router"
	"cardledger/internal/secrets"
	"cardledger/internal/service"
)

// @title Card Ledger API
// @version 1.0
// @description Personal credit-card tracker: cards, monthly billing cycles, payments, and rewards.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Card{},
		&model.BillCycle{},
		&model.Payment{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	secretStore := secrets.NewRedisStore(cacheClient.Redis())

	// Initialize repositories
	cardRepo := repository.NewCardRepository(gormDB)
	cycleRepo := repository.NewCycleRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(cfg.PasscodeHash, jwtService, tokenStore)
	cardService := service.NewCardService(cardRepo, secretStore, cacheClient)
	ledgerService := service.NewLedgerService(cardRepo, cycleRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	cardHandler := handler.NewCardHandler(cardService)
	cycleHandler := handler.NewCycleHandler(ledgerService)
	paymentHandler := handler.NewPaymentHandler(ledgerService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		cardHandler,
		cycleHandler,
		paymentHandler,
	)

	if cfg.PasscodeHash == "" {
		log.Println("Warning: PASSCODE_HASH not set, login is disabled")
	}

	addr := ":" + cfg.ServerPort
	log.Printf("Swagger documentation available at: http://localhost%s/swagger/index.html", addr)
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
