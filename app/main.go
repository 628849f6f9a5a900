package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"gearguard/internal/controllers"
	"gearguard/internal/repositories"
	"gearguard/internal/routes"
	"gearguard/internal/services"
	"gearguard/pkg/config"
	"gearguard/pkg/customvalidator"
	"gearguard/pkg/database/postgresql"
	"gearguard/pkg/logger"
	"gearguard/pkg/middleware"
	"gearguard/pkg/service"
	"gearguard/pkg/utils"
)

func main() {
	log := logger.NewLogger()
	defer log.Sync()

	cfg := config.New()
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Postgres.RunMigrations {
		if err := postgresql.Migrate(cfg.Postgres.DSN); err != nil {
			log.Fatal("migrations failed", zap.Error(err))
		}
		log.Info("migrations applied")
	}

	pool, err := postgresql.Connect(ctx, cfg.Postgres)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, dashboard stats caching degraded", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		log.Fatal("registering validations failed", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	jwtService := service.NewJWTService(cfg.JWT.Secret, cfg.JWT.TokenTTL, log)
	authMW := middleware.NewAuthMiddleware(jwtService, log)

	txManager := repositories.NewTxManager(pool, log)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	companyRepo := repositories.NewCompanyRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	equipmentRepo := repositories.NewEquipmentRepository(pool)
	categoryRepo := repositories.NewCategoryRepository(pool)
	teamRepo := repositories.NewTeamRepository(pool, txManager)
	requestRepo := repositories.NewRequestRepository(pool, txManager)
	dashboardRepo := repositories.NewDashboardRepository(pool)

	authService := services.NewAuthService(userRepo, companyRepo, jwtService, cfg.DefaultCompany, log)
	equipmentService := services.NewEquipmentService(equipmentRepo, log)
	categoryService := services.NewCategoryService(categoryRepo, userRepo, log)
	teamService := services.NewTeamService(teamRepo, log)
	requestService := services.NewRequestService(requestRepo, cacheRepo, log)
	dashboardService := services.NewDashboardService(dashboardRepo, cacheRepo, cfg.StatsCacheTTL, log)
	reportService := services.NewReportService(requestRepo, log)

	routes.InitRouter(e,
		controllers.NewHealthController(pool, companyRepo, log),
		controllers.NewAuthController(authService, log),
		controllers.NewEquipmentController(equipmentService, log),
		controllers.NewCategoryController(categoryService, log),
		controllers.NewTeamController(teamService, log),
		controllers.NewRequestController(requestService, log),
		controllers.NewDashboardController(dashboardService, requestService, log),
		controllers.NewReportController(reportService, log),
		authMW,
	)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal("server stopped", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", cfg.Server.Port))

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
