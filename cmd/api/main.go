package main

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/alipouryousefi/task-manager-back/internal/adapter/db"
	httpadapter "github.com/alipouryousefi/task-manager-back/internal/adapter/http"
	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/handlers"
	httpmiddleware "github.com/alipouryousefi/task-manager-back/internal/adapter/http/middleware"
	appservice "github.com/alipouryousefi/task-manager-back/internal/app/service"
	"github.com/alipouryousefi/task-manager-back/internal/config"
	"github.com/alipouryousefi/task-manager-back/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET must be set")
	}

	database, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	defer func() {
		if err := database.Client().Disconnect(context.Background()); err != nil {
			logger.Warn("failed to disconnect from mongodb", zap.Error(err))
		}
	}()

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logger.Fatal("failed to create upload directory", zap.Error(err))
	}

	userRepository := dbadapter.NewUserRepository(database)
	taskRepository := dbadapter.NewTaskRepository(database)

	authService := appservice.NewAuthService(userRepository, cfg.JWTSecret, cfg.TokenTTL, cfg.AdminInviteToken)
	taskService := appservice.NewTaskService(taskRepository, userRepository)
	userService := appservice.NewUserService(userRepository, taskRepository)
	reportService := appservice.NewReportService(taskRepository, userRepository)

	authMiddleware := httpmiddleware.NewAuthMiddleware(userRepository, cfg.JWTSecret)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}
	if cfg.ClientOrigin != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins: []string{cfg.ClientOrigin},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
			AllowHeaders: []string{"Content-Type", "Authorization"},
		}))
	}

	httpadapter.RegisterRoutes(r, authMiddleware, httpadapter.Handlers{
		Health:  handlers.NewHealthHandler(database),
		Auth:    handlers.NewAuthHandler(authService),
		Upload:  handlers.NewUploadHandler(cfg.UploadDir),
		Users:   handlers.NewUserHandler(userService),
		Tasks:   handlers.NewTaskHandler(taskService),
		Reports: handlers.NewReportHandler(reportService),
	}, cfg.UploadDir)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
