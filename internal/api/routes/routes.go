package routes

import (
	"context"
	"net/http"

	"field-marketing-backend/internal/api/handlers"
	"field-marketing-backend/internal/api/middleware"
	"field-marketing-backend/internal/auth"
	"field-marketing-backend/internal/config"
	"field-marketing-backend/internal/repository"
	"field-marketing-backend/internal/seed"
	"field-marketing-backend/internal/service"
	"field-marketing-backend/internal/storage"
	"field-marketing-backend/internal/workspace"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

const defaultRedirectURL = "http://localhost:7008"

// Options overrides infrastructure that tests replace
type Options struct {
	Registerer prometheus.Registerer
	AuthConfig *auth.AuthConfig
	PhotoStore storage.PhotoStoreInterface
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	return SetupRoutesWithOptions(db, cfg, nil)
}

// SetupRoutesWithOptions configures all the routes with injected infrastructure
func SetupRoutesWithOptions(db *gorm.DB, cfg *config.Config, opts *Options) *gin.Engine {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Registerer == nil {
		opts.Registerer = prometheus.DefaultRegisterer
	}

	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(middleware.NewHTTPMetrics(opts.Registerer)))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	teamMemberRepo := repository.NewTeamMemberRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	provisionRepo := repository.NewProvisionRepository(db)

	// Photo storage is optional; check-ins with a photo fail with 503 without it
	photoStore := opts.PhotoStore
	if photoStore == nil && cfg.PhotoStorageEnabled() {
		store, err := storage.NewS3PhotoStore(context.Background(), cfg)
		if err != nil {
			logrus.Warnf("Photo storage disabled: %v", err)
		} else {
			photoStore = store
		}
	}

	// Demo provisioning for first sign-in
	var provisioningService service.ProvisioningServiceInterface
	if cfg.DemoProvisioningEnabled {
		dataset, err := seed.Demo()
		if err != nil {
			logrus.Warnf("Demo provisioning disabled: %v", err)
		} else {
			provisioningService = service.NewProvisioningService(provisionRepo, dataset)
		}
	}

	// Initialize services
	loader := workspace.NewLoader(
		service.NewRepositorySource(teamMemberRepo, visitRepo, leadRepo, activityRepo),
		cfg.ActivityFeedLimit,
	)
	teamMemberService := service.NewTeamMemberService(teamMemberRepo, activityRepo, validate)
	visitService := service.NewVisitService(visitRepo, teamMemberRepo, activityRepo, photoStore, validate, cfg.PhotoMaxBytes)
	leadService := service.NewLeadService(leadRepo, teamMemberRepo, activityRepo, validate)
	activityService := service.NewActivityService(activityRepo, cfg.ActivityFeedLimit)
	dashboardService := service.NewDashboardService(loader)
	workspaceService := service.NewWorkspaceService(loader, provisioningService)
	directoryService := service.NewDirectoryService(cfg)

	// Initialize auth configuration and services
	authConfig := opts.AuthConfig
	if authConfig == nil {
		loaded, err := auth.LoadAuthConfig("config/auth.yaml")
		if err != nil {
			logrus.Warnf("Failed to load auth config, sign-in providers disabled: %v", err)
			loaded = &auth.AuthConfig{JWTSecret: cfg.JWTSecret, RedirectURL: defaultRedirectURL}
		}
		authConfig = loaded
	}

	var authHandler *auth.AuthHandler
	var authMiddleware *auth.AuthMiddleware
	authService, err := auth.NewAuthService(authConfig)
	if err != nil {
		logrus.Errorf("Failed to initialize auth service: %v", err)
	} else {
		authHandler = auth.NewAuthHandler(authService)
		authMiddleware = auth.NewAuthMiddleware(authService)
	}

	// Initialize handlers
	location := cfg.Location()
	healthHandler := handlers.NewHealthHandler(db, map[string]bool{
		"photo_storage":     photoStore != nil,
		"directory":         cfg.DirectoryEnabled(),
		"demo_provisioning": provisioningService != nil,
	})
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService, location)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, location)
	teamMemberHandler := handlers.NewTeamMemberHandler(teamMemberService)
	visitHandler := handlers.NewVisitHandler(visitService, location)
	leadHandler := handlers.NewLeadHandler(leadService)
	activityHandler := handlers.NewActivityHandler(activityService, location)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Health check routes
	registerHealthRoutes(router, healthHandler)

	// Metrics and swagger documentation routes
	router.GET("/metrics", middleware.MetricsHandler())
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	if authHandler != nil {
		authGroup := router.Group("/api/auth")
		{
			authGroup.GET("/providers", authHandler.ListProviders)

			providerGroup := authGroup.Group("/:provider")
			{
				providerGroup.GET("/start", authHandler.Start)
				providerGroup.GET("/handler/frame", authHandler.HandlerFrame)
				providerGroup.POST("/refresh", authHandler.Refresh)
				providerGroup.POST("/logout", authHandler.Logout)
			}

			authGroup.POST("/validate", authHandler.ValidateToken)
		}
	}

	v1 := router.Group("/api/v1")

	// The session endpoint reports signed-out callers instead of rejecting them
	session := v1.Group("")
	if authMiddleware != nil {
		session.Use(authMiddleware.OptionalAuth())
	}
	session.GET("/workspace", workspaceHandler.GetSession)

	// Everything else requires a signed-in owner
	api := v1.Group("")
	if authMiddleware != nil {
		api.Use(authMiddleware.RequireAuth())
	}
	{
		api.GET("/workspace/views/:tab", workspaceHandler.GetView)
		api.GET("/dashboard", dashboardHandler.GetOverview)
		api.GET("/analytics", dashboardHandler.GetAnalytics)

		teamMembers := api.Group("/team-members")
		{
			teamMembers.GET("", teamMemberHandler.ListTeamMembers)
			teamMembers.POST("", teamMemberHandler.CreateTeamMember)
		}

		visits := api.Group("/visits")
		{
			visits.GET("", visitHandler.ListVisits)
			visits.POST("", visitHandler.CheckIn)
		}

		leads := api.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.POST("", leadHandler.CreateLead)
			leads.GET("/pipeline", leadHandler.GetPipeline)
		}

		api.GET("/activities", activityHandler.GetFeed)
		api.GET("/directory/people", directoryHandler.SearchPeople)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString(middleware.RequestIDKey),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	registerHealthRoutes(router, handlers.NewHealthHandler(db, nil))
	return router
}

func registerHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
}
