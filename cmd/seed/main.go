// Seeds the initial super admin account. Safe to run repeatedly: it
// exits without writing when a super admin already exists.
package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/thequickanswers/subsite-backend/config"
	"github.com/thequickanswers/subsite-backend/internal/admins/domain"
	"github.com/thequickanswers/subsite-backend/internal/admins/repository"
	"github.com/thequickanswers/subsite-backend/internal/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	email := os.Getenv("SEED_SUPER_ADMIN_EMAIL")
	password := os.Getenv("SEED_SUPER_ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("SEED_SUPER_ADMIN_EMAIL and SEED_SUPER_ADMIN_PASSWORD are required")
	}

	ctx := context.Background()

	db, err := database.Open(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	repo := repository.New(db)

	exists, err := repo.ExistsSuperAdmin(ctx)
	if err != nil {
		log.Fatalf("check super admin: %v", err)
	}
	if exists {
		log.Println("Super admin already exists!")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	if _, err := repo.Create(ctx, email, string(hash), domain.RoleSuperAdmin); err != nil {
		log.Fatalf("create super admin: %v", err)
	}

	log.Println("Super admin created successfully!")
}
