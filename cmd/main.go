package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/lingnite/user-service/config"
	"github.com/lingnite/user-service/db"
	"github.com/lingnite/user-service/internal/auth/handler"
	repo "github.com/lingnite/user-service/internal/auth/repository/postgres"
	"github.com/lingnite/user-service/internal/auth/service"
	"github.com/lingnite/user-service/pkg/response"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	dbPool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := db.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	userRepo := repo.NewPostgresRepository(dbPool)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	mailer := service.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	verification := service.NewVerificationService(redisClient, mailer)
	authService := service.NewAuthService(userRepo, verification, cfg)
	authHandler := handler.NewAuthHandler(authService, verification, tokenService, userRepo, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: response.ErrorHandler,
	})
	handler.RegisterRoutes(app, authHandler, userRepo, tokenService)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
