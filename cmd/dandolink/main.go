package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/matsumoto-collab/dandolink-sub002/internal/config"
	"github.com/matsumoto-collab/dandolink-sub002/internal/entity"
	"github.com/matsumoto-collab/dandolink-sub002/internal/handler"
	"github.com/matsumoto-collab/dandolink-sub002/internal/middleware"
	"github.com/matsumoto-collab/dandolink-sub002/internal/repository"
	"github.com/matsumoto-collab/dandolink-sub002/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// .env ファイルの読み込み
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := initLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("Starting dandolink service",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)

	db, err := initDatabase(cfg.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Project{},
		&entity.Quotation{},
		&entity.BillingRecord{},
		&entity.DailyReport{},
		&entity.WorkRecord{},
		&entity.Assignment{},
		&entity.Vehicle{},
		&entity.RateSettings{},
		&entity.Attachment{},
	); err != nil {
		zapLogger.Warn("AutoMigrate warning", zap.Error(err))
	}
	zapLogger.Info("Database migration completed")

	rdb := initRedis(cfg.Redis)

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, cfg)
	handlers := handler.NewHandlers(services, cfg)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(zapLogger))
	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	registerRoutes(router, handlers, cfg)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zapLogger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exited")
}

func initLogger(cfg config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config

	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	switch cfg.Level {
	case "debug":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		zapCfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zapCfg.Build()
}

func initDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return db, nil
}

func initRedis(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

func registerRoutes(r *gin.Engine, h *handler.Handlers, cfg *config.Config) {
	// ヘルスチェック
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// バージョン情報
	r.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"version":    Version,
			"build_time": BuildTime,
		})
	})

	// Prometheusメトリクス
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := r.Group("/api/v1")
	{
		// 認証 (ログイン不要)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/register", h.Auth.Register)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// 要認証
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(cfg.JWT.Secret))
		{
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.POST("/auth/logout", h.Auth.Logout)

			// 案件管理
			projects := authorized.Group("/projects")
			{
				projects.GET("", h.Project.List)
				projects.POST("", h.Project.Create)
				projects.GET("/:id", h.Project.Get)
				projects.PUT("/:id", h.Project.Update)
				projects.PATCH("/:id/status", h.Project.UpdateStatus)
				projects.DELETE("/:id", h.Project.Delete)

				// 案件別採算
				projects.GET("/:id/profit", h.Profit.GetProjectProfit)
			}

			// 採算ダッシュボード
			profits := authorized.Group("/profits")
			{
				profits.GET("", h.Profit.GetDashboard)
				profits.GET("/export", h.Profit.Export)
			}

			// 見積管理
			quotations := authorized.Group("/quotations")
			{
				quotations.GET("", h.Quotation.List)
				quotations.POST("", h.Quotation.Create)
				quotations.GET("/:id", h.Quotation.Get)
				quotations.PUT("/:id", h.Quotation.Update)
				quotations.DELETE("/:id", h.Quotation.Delete)
			}

			// 請求管理
			billings := authorized.Group("/billings")
			{
				billings.GET("", h.Billing.List)
				billings.POST("", h.Billing.Create)
				billings.GET("/:id", h.Billing.Get)
				billings.PUT("/:id", h.Billing.Update)
				billings.PATCH("/:id/paid", h.Billing.MarkPaid)
				billings.DELETE("/:id", h.Billing.Delete)
			}

			// 日報管理
			reports := authorized.Group("/reports")
			{
				reports.GET("", h.Report.List)
				reports.POST("", h.Report.Create)
				reports.GET("/:id", h.Report.Get)
				reports.PUT("/:id", h.Report.Update)
				reports.DELETE("/:id", h.Report.Delete)
				reports.POST("/:id/work-records", h.Report.AddWorkRecord)
				reports.DELETE("/:id/work-records/:recordId", h.Report.RemoveWorkRecord)

				// 日報添付
				reports.GET("/:id/attachments", h.Attachment.List)
				reports.POST("/:id/attachments", h.Attachment.Upload)
			}

			// 添付ファイルダウンロード
			authorized.GET("/attachments/:id/url", h.Attachment.GetURL)
			authorized.GET("/attachments/:id/download", h.Attachment.Download)

			// 段取り管理
			assignments := authorized.Group("/assignments")
			{
				assignments.GET("", h.Assignment.List)
				assignments.POST("", h.Assignment.Create)
				assignments.GET("/:id", h.Assignment.Get)
				assignments.PUT("/:id", h.Assignment.Update)
				assignments.DELETE("/:id", h.Assignment.Delete)
			}

			// 車両マスタ
			vehicles := authorized.Group("/vehicles")
			{
				vehicles.GET("", h.Vehicle.List)
				vehicles.POST("", h.Vehicle.Create)
				vehicles.GET("/:id", h.Vehicle.Get)
				vehicles.PUT("/:id", h.Vehicle.Update)
				vehicles.DELETE("/:id", h.Vehicle.Delete)
			}

			// 単価設定（更新は管理者のみ）
			settings := authorized.Group("/settings")
			{
				settings.GET("/rates", h.Settings.GetRates)
				settings.PUT("/rates", middleware.RequireRole("admin"), h.Settings.UpdateRates)
			}
		}
	}
}
