// @title ABSSS Backend API
// @version 1.0
// @description Content and administration API for the ABSSS society website.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "absss-backend/docs"

	"absss-backend/bootstrap"
	"absss-backend/config"
	"absss-backend/database"
	"absss-backend/internal/auth"
	"absss-backend/internal/controllers"
	"absss-backend/internal/logger"
	"absss-backend/internal/repository"
	"absss-backend/internal/routes"
	"absss-backend/internal/services"
	"absss-backend/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Uploads are capped at 10 MB; leave room for the multipart framing.
const bodyLimit = services.MaxPDFSize + 1<<20

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	client, err := database.ConnectMongo(ctx, database.Options{
		URI:         cfg.MongoURI,
		MaxPoolSize: cfg.MongoMaxPool,
		MinPoolSize: cfg.MongoMinPool,
		Timeout:     cfg.MongoTimeout,
	})
	if err != nil {
		cancel()
		zl.Fatal("connect mongo", zap.Error(err))
	}
	db := client.Database(cfg.MongoDB)

	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		cancel()
		zl.Fatal("ensure indexes", zap.Error(err))
	}

	media, err := storage.New(ctx, cfg.Media)
	cancel()
	if err != nil {
		zl.Fatal("media store", zap.Error(err))
	}
	if media == nil {
		zl.Warn("MEDIA_PROVIDER not set, uploads are disabled")
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL, cfg.JWTIssuer)
	users := repository.NewUserRepository(db)

	app := fiber.New(fiber.Config{
		AppName:      "absss-backend",
		ErrorHandler: controllers.ErrorHandler(zl),
		BodyLimit:    bodyLimit,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(logger.Middleware(zl))

	app.Get("/docs/*", swagger.HandlerDefault)

	routes.Register(app, routes.Services{
		Tokens:       tokens,
		Auth:         services.NewAuthService(users, tokens),
		Users:        services.NewUserService(users),
		Events:       services.NewEventService(repository.NewEventRepository(db)),
		Publications: services.NewPublicationService(repository.NewPublicationRepository(db)),
		Members:      services.NewMemberService(repository.NewMemberRepository(db)),
		Blogs:        services.NewBlogService(repository.NewBlogRepository(db)),
		Contacts:     services.NewContactService(repository.NewContactRepository(db)),
		Dashboard:    services.NewDashboardService(repository.NewDashboardRepository(db), zl),
		Uploads:      services.NewUploadService(media),
		PingDatabase: func(ctx context.Context) error {
			return database.Ping(ctx, client)
		},
	})

	go func() {
		zl.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down")

	if err := app.ShutdownWithTimeout(15 * time.Second); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
	dctx, dcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer dcancel()
	if err := client.Disconnect(dctx); err != nil {
		zl.Error("mongo disconnect", zap.Error(err))
	}
}
