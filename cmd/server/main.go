package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"recruit_backend/internal/app/di"
	"recruit_backend/internal/app/router"
	authadapters "recruit_backend/internal/feature/auth/adapters"
	authhandler "recruit_backend/internal/feature/auth/transport/handler"
	authusecase "recruit_backend/internal/feature/auth/usecase"
	enquiryadapters "recruit_backend/internal/feature/enquiries/adapters"
	enquiryhandler "recruit_backend/internal/feature/enquiries/transport/handler"
	enquiryusecase "recruit_backend/internal/feature/enquiries/usecase"
	jobadapters "recruit_backend/internal/feature/jobs/adapters"
	jobhandler "recruit_backend/internal/feature/jobs/transport/handler"
	jobusecase "recruit_backend/internal/feature/jobs/usecase"
	platformdb "recruit_backend/internal/platform/db"
	"recruit_backend/internal/platform/http/handler"
	platformredis "recruit_backend/internal/platform/redis"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}

	// db
	db := platformdb.OpenDB()

	// Redis (optional: the limiter fails open without it)
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without rate limiting.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	jobRepo := jobadapters.NewJobRepository(db)
	enquiryRepo := enquiryadapters.NewEnquiryRepository(db)

	// Usecase
	tokens := di.NewTokenIssuer()
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	jobUC := jobusecase.NewJobUsecase(jobRepo)
	enquiryUC := enquiryusecase.NewEnquiryUsecase(enquiryRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	jobH := jobhandler.NewJobHandler(jobUC)
	enquiryH := enquiryhandler.NewEnquiryHandler(enquiryUC)
	healthH := handler.NewHealthHandler(db)

	r := router.NewRouter(authH, jobH, enquiryH, healthH, di.NewRateLimiter(rdb))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
