package main

import (
	"context"
	"errors"
	"log"
	"os"

	"gorm.io/gorm"

	"forumhub/internal/auth"
	"forumhub/internal/config"
	"forumhub/internal/db"
	"forumhub/internal/model"
	"forumhub/internal/repository"
)

// Seeds the initial admin account. The registration API always assigns the
// 'user' role, so the first admin has to come from here.
func main() {
	log.Println("Starting admin seed...")

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@forum.local"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD must be set")
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)

	if existing, err := users.FindByEmail(ctx, email); err == nil && existing != nil {
		log.Printf("Admin %s already exists (id=%d), nothing to do", email, existing.ID)
		return
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check existing admin: %v", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &model.User{
		FirstName:    "Forum",
		LastName:     "Admin",
		Email:        email,
		PhoneNumber:  "00000000000",
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Seeded admin %s (id=%d)", email, admin.ID)
}
