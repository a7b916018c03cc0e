// Command seed bootstraps the database with the dashboard administrator
// and, optionally, a few sample postings for a fresh environment.
//
// Required env: DATABASE_URL, ADMIN_EMAIL, ADMIN_PASSWORD.
// Optional env: ADMIN_NAME, SEED_SAMPLE_JOBS=true.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	authadapters "recruit_backend/internal/feature/auth/adapters"
	authentity "recruit_backend/internal/feature/auth/domain/entity"
	authusecase "recruit_backend/internal/feature/auth/usecase"
	jobadapters "recruit_backend/internal/feature/jobs/adapters"
	jobentity "recruit_backend/internal/feature/jobs/domain/entity"
	jobusecase "recruit_backend/internal/feature/jobs/usecase"
	platformdb "recruit_backend/internal/platform/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded:", err)
	}

	email := authusecase.NormalizeEmail(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	db := platformdb.OpenDB()
	ctx := context.Background()

	users := authadapters.NewUserRepository(db)
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal("failed to hash admin password:", err)
	}

	admin := &authentity.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     authentity.RoleAdmin,
	}
	switch err := users.Create(ctx, admin); {
	case err == nil:
		log.Printf("admin user created: %s (id=%d)", email, admin.ID)
	case errors.Is(err, authusecase.ErrEmailAlreadyExists):
		log.Printf("admin user already exists: %s", email)
	default:
		log.Fatal("failed to create admin user:", err)
	}

	if os.Getenv("SEED_SAMPLE_JOBS") != "true" {
		return
	}

	jobs := jobusecase.NewJobUsecase(jobadapters.NewJobRepository(db))
	samples := []jobentity.Job{
		{Title: "Senior Accountant", Company: "Meridian Textiles", Location: "Rajkot", Industry: "Manufacturing", Salary: "6-8 LPA"},
		{Title: "Production Engineer", Company: "Shakti Forgings", Location: "Rajkot", Industry: "Engineering", Salary: "4-6 LPA"},
		{Title: "HR Executive", Company: "Saurashtra Agro", Location: "Ahmedabad", Industry: "Agriculture", Salary: "3-4 LPA"},
	}
	for i := range samples {
		if err := jobs.Create(ctx, &samples[i]); err != nil {
			log.Fatal("failed to seed job:", err)
		}
		log.Printf("sample job created: %s (id=%d)", samples[i].Title, samples[i].ID)
	}
}
