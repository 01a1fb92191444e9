package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/mycontact/contacts-api/docs"
	"github.com/mycontact/contacts-api/internal/api/handler"
	"github.com/mycontact/contacts-api/internal/api/middleware"
	"github.com/mycontact/contacts-api/internal/core/service"
	mongoinfra "github.com/mycontact/contacts-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/mycontact/contacts-api/internal/infrastructure/db/redis"
	"github.com/mycontact/contacts-api/internal/pkg/config"
)

const apiVersion = "1.0.0"

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit sink may be nil (auditing disabled, e.g. in tests).
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit handler.AuditSink, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("contacts"))

	// --- Dependencies ---
	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	throttle := redisinfra.NewLoginThrottle(rdb, cfg.LoginMaxFailures, cfg.LoginFailureWindow)

	authRepo := mongoinfra.NewAuthRepository(db)
	contactRepo := mongoinfra.NewContactRepository(db)

	authService := service.NewAuthService(authRepo, hasher, tokens, throttle, log)
	contactService := service.NewContactService(contactRepo, log)

	authHandler := handler.NewAuthHandler(authService, audit)
	contactHandler := handler.NewContactHandler(contactService)
	rootHandler := handler.NewRootHandler(apiVersion)

	requireAuth := middleware.RequireAuth(tokens, authRepo, log)
	optionalAuth := middleware.OptionalAuth(tokens, authRepo, log)

	// --- Root (authentication optional, never required) ---
	e.GET("/", rootHandler.Info, optionalAuth)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/profile", authHandler.Profile, requireAuth)
	auth.GET("/verify", authHandler.Verify, requireAuth)

	// --- Contact routes (all behind the auth gate) ---
	contacts := e.Group("/contacts", requireAuth)
	contacts.GET("", contactHandler.List)
	contacts.POST("", contactHandler.Create)
	contacts.DELETE("", contactHandler.DeleteAll)
	contacts.GET("/:id", contactHandler.Get)
	contacts.PATCH("/:id", contactHandler.Update)
	contacts.DELETE("/:id", contactHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/api-docs/*", echoswagger.WrapHandler)

	return e, nil
}
