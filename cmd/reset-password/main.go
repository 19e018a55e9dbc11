package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go-warehouse-ws/internal/config"
	"go-warehouse-ws/internal/repository"
	"go-warehouse-ws/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// reset-password overwrites a user's password without knowing the old one.
//
//	go run ./cmd/reset-password -number 09120000000 -password newsecret
func main() {
	number := flag.String("number", "", "login number of the user")
	password := flag.String("password", "", "new password (min 6 characters)")
	flag.Parse()

	if *number == "" || len(*password) < 6 {
		log.Fatal("usage: reset-password -number <number> -password <new password, min 6 chars>")
	}

	// 1. Load Env
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Setup Database
	db, err := database.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	users := repository.NewUserRepo(db)

	// 3. Find User
	user, err := users.FindByNumber(ctx, *number)
	if err != nil {
		log.Fatalf("User %s not found in database: %v", *number, err)
	}

	// 4. Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update
	if err := users.UpdatePassword(ctx, user.ObjectID, string(hashedPassword)); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Password for %s (%s) has been reset", user.Number, user.UserCode)
}
