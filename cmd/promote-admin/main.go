package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/partyspace/partyspace-api/internal/config"
	"github.com/partyspace/partyspace-api/internal/database"
	"github.com/partyspace/partyspace-api/internal/profile"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: promote-admin <email>")
		os.Exit(1)
	}

	email := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := profile.NewStore(db)

	affected, err := store.SetAdmin(ctx, email, true)
	if err != nil {
		log.Fatalf("Failed to update profile: %v", err)
	}
	if affected == 0 {
		log.Fatalf("No profile found with email: %s", email)
	}

	fmt.Printf("Successfully promoted %s to admin\n", email)
}
