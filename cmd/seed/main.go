// Command seed populates the database with demo content for development.
package main

import (
	"flag"
	"log"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/middleware"
	"inkwell/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	numPosts := flag.Int("posts", 25, "Number of posts to create")
	commentsPerPost := flag.Int("comments", 4, "Max root comments per post")
	password := flag.String("password", "", "Password for all seeded accounts (default built-in)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	middleware.InitMiddleware(cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db, seed.Options{
		NumUsers:        *numUsers,
		NumPosts:        *numPosts,
		CommentsPerPost: *commentsPerPost,
		Password:        *password,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seeding complete")
}
