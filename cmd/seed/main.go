package main

import (
	"context"
	"log"

	"taskhub/internal/config"
	"taskhub/internal/db"
	"taskhub/internal/model"
	"taskhub/internal/repository"
	"taskhub/internal/service"
)

// seedUser pairs a demo login with its plaintext password. The hashes
// land in the database, never the plaintext.
type seedUser struct {
	Email    string
	Password string
}

var seedUsers = []seedUser{
	{Email: "test1@hahn.com", Password: "test123"},
	{Email: "test2@hahn.com", Password: "test1234"},
}

// Development bootstrap: inserts demo users when the users table is
// empty. Run it explicitly; the server never seeds on its own.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Project{}, &model.Task{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)

	count, err := userRepo.Count(ctx)
	if err != nil {
		log.Fatalf("Failed to count users: %v", err)
	}
	if count > 0 {
		log.Printf("Users table already has %d rows, nothing to do", count)
		return
	}

	for _, su := range seedUsers {
		hash, err := service.HashPassword(su.Password)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.Email, err)
		}
		user := &model.User{
			Email:        su.Email,
			PasswordHash: hash,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.Email, err)
		}
		log.Printf("Seeded user %s (id=%d)", user.Email, user.ID)
	}

	log.Println("Seed completed")
}
