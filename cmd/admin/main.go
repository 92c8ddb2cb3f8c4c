// Command admin provides role management utilities for Inkwell accounts.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/middleware"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin/main.go promote <user_id>     - Promote user to admin")
		fmt.Println("  go run ./cmd/admin/main.go demote <user_id>      - Demote user from admin")
		fmt.Println("  go run ./cmd/admin/main.go list-admins           - List all admins")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	middleware.InitMiddleware(cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	switch os.Args[1] {
	case "promote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin/main.go promote <user_id>")
			os.Exit(1)
		}
		setRole(db, os.Args[2], models.RoleAdmin)

	case "demote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin/main.go demote <user_id>")
			os.Exit(1)
		}
		setRole(db, os.Args[2], models.RoleUser)

	case "list-admins":
		listAdmins(db)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func setRole(db *gorm.DB, userID, role string) {
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("User with ID %s not found\n", userID)
		} else {
			log.Fatalf("Database error: %v", err)
		}
		os.Exit(1)
	}

	if user.Role == role {
		fmt.Printf("User %s (ID: %d) already has role %s\n", user.Username, user.ID, role)
		return
	}

	user.Role = role
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update role: %v", err)
	}

	fmt.Printf("User %s (ID: %d) now has role %s\n", user.Username, user.ID, role)
}

func listAdmins(db *gorm.DB) {
	var admins []models.User
	if err := db.Where("role = ?", models.RoleAdmin).Find(&admins).Error; err != nil {
		log.Fatalf("Failed to fetch admins: %v", err)
	}

	if len(admins) == 0 {
		fmt.Println("No admins found")
		return
	}

	for _, admin := range admins {
		fmt.Printf("ID: %d | Username: %s | Email: %s\n", admin.ID, admin.Username, admin.Email)
	}
}
