package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/muhammedeluveyfi-prog/josck-system/internal/database"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/middleware"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/modules/admin"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/modules/auth"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/modules/device"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/modules/events"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/modules/notification"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/modules/user"
	jwtsvc "github.com/muhammedeluveyfi-prog/josck-system/internal/pkg/jwt"
	"github.com/muhammedeluveyfi-prog/josck-system/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "josck.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)

	j := jwtsvc.New(secret, 7*24*time.Hour)

	hub := events.NewHub()
	defer hub.Close()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	deviceService := device.NewService(deviceRepo, userRepo, hub)
	deviceHandler := device.NewHandler(deviceService)

	notificationService := notification.NewService(deviceRepo)
	notificationHandler := notification.NewHandler(notificationService)

	adminService := admin.NewService(userRepo, deviceRepo)
	adminHandler := admin.NewHandler(adminService)

	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})
		authHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterRoutes(protected)
			deviceHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			adminHandler.RegisterRoutes(protected)
			eventsHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
