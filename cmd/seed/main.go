package main

import (
	"context"
	"flag"
	"log"
	"time"

	"absss-backend/bootstrap"
	"absss-backend/config"
	"absss-backend/database"
	"absss-backend/internal/logger"
	"absss-backend/internal/repository"
	"absss-backend/internal/services"

	"go.uber.org/zap"
)

func main() {
	demo := flag.Bool("demo", false, "also insert sample events, publications, members and blogs")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := database.ConnectMongo(ctx, database.Options{
		URI:         cfg.MongoURI,
		MaxPoolSize: cfg.MongoMaxPool,
		MinPoolSize: cfg.MongoMinPool,
		Timeout:     cfg.MongoTimeout,
	})
	if err != nil {
		zl.Fatal("connect mongo", zap.Error(err))
	}
	defer func() {
		dctx, dcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dcancel()
		_ = client.Disconnect(dctx)
	}()

	db := client.Database(cfg.MongoDB)
	if err := bootstrap.EnsureIndexes(ctx, db); err != nil {
		zl.Fatal("ensure indexes", zap.Error(err))
	}

	if _, err := bootstrap.SeedAdmin(ctx, repository.NewUserRepository(db), cfg.Admin, zl); err != nil {
		zl.Fatal("seed admin", zap.Error(err))
	}

	if *demo {
		err := bootstrap.SeedDemo(ctx, bootstrap.DemoContent{
			Events:       services.NewEventService(repository.NewEventRepository(db)),
			Publications: services.NewPublicationService(repository.NewPublicationRepository(db)),
			Members:      services.NewMemberService(repository.NewMemberRepository(db)),
			Blogs:        services.NewBlogService(repository.NewBlogRepository(db)),
		}, zl)
		if err != nil {
			zl.Fatal("seed demo content", zap.Error(err))
		}
	}
	zl.Info("seeding finished", zap.String("database", cfg.MongoDB))
}
