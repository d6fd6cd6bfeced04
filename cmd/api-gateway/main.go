package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/student-jobs-api/api/swagger"
	"github.com/noah-isme/student-jobs-api/internal/analysis"
	"github.com/noah-isme/student-jobs-api/internal/handler"
	"github.com/noah-isme/student-jobs-api/internal/middleware"
	"github.com/noah-isme/student-jobs-api/internal/repository"
	"github.com/noah-isme/student-jobs-api/internal/service"
	"github.com/noah-isme/student-jobs-api/pkg/cache"
	"github.com/noah-isme/student-jobs-api/pkg/config"
	"github.com/noah-isme/student-jobs-api/pkg/database"
	"github.com/noah-isme/student-jobs-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/student-jobs-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/student-jobs-api/pkg/middleware/requestid"
)

// @title Student Jobs API
// @version 0.1.0
// @description Schedule analysis and part-time job matching for students.
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Env, cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The job-board cache is an optimization, never a dependency.
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if redisClient != nil && cfg.Jobs.CacheEnabled {
		cacheRepo := repository.NewCacheRepository(redisClient, logr)
		cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Jobs.CacheTTL, logr, true)
	}

	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	jobRepo := repository.NewJobRepository(db)

	analyzer := analysis.New(analysis.Config{
		OverloadThresholdHours: cfg.Balance.OverloadThresholdHours,
		OverloadHighHours:      cfg.Balance.OverloadHighHours,
		OverloadCriticalHours:  cfg.Balance.OverloadCriticalHours,
		MinSlotMinutes:         cfg.Balance.MinSlotMinutes,
		RestSeverePercent:      cfg.Balance.RestSeverePercent,
		RestLowPercent:         cfg.Balance.RestLowPercent,
		RestShortPercent:       cfg.Balance.RestShortPercent,
		RestIdealMax:           cfg.Balance.RestIdealMax,
		WakingHoursPerDay:      cfg.Balance.WakingHoursPerDay,
	})

	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	eventSvc := service.NewEventService(eventRepo, validate, logr)
	availabilitySvc := service.NewAvailabilityService(availabilityRepo, validate, logr)
	scheduleSvc := service.NewScheduleService(eventRepo, availabilityRepo, analyzer, metricsSvc, logr)
	jobSvc := service.NewJobService(jobRepo, scheduleSvc, cacheSvc, validate, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	eventHandler := handler.NewEventHandler(eventSvc)
	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	jobHandler := handler.NewJobHandler(jobSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.JWT(authSvc))
	{
		authed.GET("/schedule/events", eventHandler.List)
		authed.POST("/schedule/events", eventHandler.Create)
		authed.PATCH("/schedule/events/:id", eventHandler.Update)
		authed.DELETE("/schedule/events/:id", eventHandler.Delete)

		authed.GET("/availability", availabilityHandler.List)
		authed.POST("/availability", availabilityHandler.Create)
		authed.DELETE("/availability/:id", availabilityHandler.Delete)

		authed.GET("/schedule/analysis", scheduleHandler.Analyze)
		authed.GET("/schedule/analysis/export", scheduleHandler.Export)

		authed.GET("/jobs", jobHandler.List)
		authed.POST("/jobs", jobHandler.Create)
		authed.DELETE("/jobs/:id", jobHandler.Delete)
		authed.GET("/jobs/match", jobHandler.Match)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
