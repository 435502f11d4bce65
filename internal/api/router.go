package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/openlance/marketplace-api/internal/api/handler"
	"github.com/openlance/marketplace-api/internal/api/middleware"
	"github.com/openlance/marketplace-api/internal/core/domain"
	"github.com/openlance/marketplace-api/internal/core/ports"
	"github.com/openlance/marketplace-api/internal/core/service"
	mongodb "github.com/openlance/marketplace-api/internal/infrastructure/db/mongo"
	redisdb "github.com/openlance/marketplace-api/internal/infrastructure/db/redis"
)

// RouterOptions carries the runtime settings the router needs beyond its
// infrastructure handles.
type RouterOptions struct {
	JWTSecret    string
	TokenTTL     time.Duration
	CookieSecure bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, activity ports.ActivitySink, opts RouterOptions, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("marketplace"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	jobRepo := mongodb.NewJobRepository(db)
	proposalRepo := mongodb.NewProposalRepository(db)
	denyList := redisdb.NewTokenDenyList(rdb)

	authService := service.NewAuthService(userRepo, denyList, opts.JWTSecret, opts.TokenTTL)
	jobService := service.NewJobService(jobRepo, userRepo, activity, log)
	proposalService := service.NewProposalService(proposalRepo, jobRepo, userRepo, activity, log)

	authHandler := handler.NewAuthHandler(authService, opts.TokenTTL, opts.CookieSecure)
	jobHandler := handler.NewJobHandler(jobService)
	proposalHandler := handler.NewProposalHandler(proposalService)

	authRequired := middleware.Auth(opts.JWTSecret, denyList)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)

	// --- Job routes ---
	e.POST("/jobs", jobHandler.Create, authRequired, middleware.RequireRole(domain.RoleClient))
	e.GET("/jobs", jobHandler.List)

	// --- Proposal routes ---
	e.POST("/proposals", proposalHandler.Submit, authRequired, middleware.RequireRole(domain.RoleFreelancer))
	e.GET("/jobs/:jobId/proposals", proposalHandler.ListForJob, authRequired)
	e.POST("/proposals/:proposalId/accept", proposalHandler.Accept, authRequired, middleware.RequireRole(domain.RoleClient))
	e.POST("/proposals/:proposalId/reject", proposalHandler.Reject, authRequired, middleware.RequireRole(domain.RoleClient))

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}
