package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/database"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/domain"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/modules/auth"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/repository"
)

type account struct {
	username string
	password string
	name     string
	role     domain.Role
}

var defaultAccounts = []account{
	{"admin", "admin123", "Administrator", domain.RoleAdmin},
	{"operations", "ops123", "Operations Desk", domain.RoleOperations},
	{"technician1", "tech123", "Technician 1", domain.RoleTechnician},
	{"technician2", "tech123", "Technician 2", domain.RoleTechnician},
	{"customer_service", "cs123", "Customer Service", domain.RoleCustomerService},
}

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "josck.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	users := repository.NewUserRepository(db)
	ctx := context.Background()

	log.Println("Creating default accounts...")
	for _, acc := range defaultAccounts {
		_, err := users.GetByUsername(ctx, acc.username)
		if err == nil {
			log.Printf("exists, skipping: %s", acc.username)
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatal(err)
		}

		hash, err := auth.HashPassword(acc.password)
		if err != nil {
			log.Fatal(err)
		}

		u := &domain.User{
			Username:     acc.username,
			PasswordHash: hash,
			Name:         acc.name,
			Role:         acc.role,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal(err)
		}
		log.Printf("created: %s / %s (%s)", acc.username, acc.password, acc.role)
	}

	log.Println("Seed completed")
}
