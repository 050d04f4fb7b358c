// Command reset-password resets a user's password directly in the database.
// Operator tool for recovering locked-out accounts.
//
//	go run ./cmd/reset-password -email admin@stockpilot.local -password newsecret
package main

import (
	"flag"
	"fmt"
	"os"

	"go-stockpilot/internal/model"
	"go-stockpilot/pkg/config"
	"go-stockpilot/pkg/database"
	"go-stockpilot/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email of the account to reset")
	password := flag.String("password", "", "new password")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: reset-password -email <email> -password <new-password>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{ServiceName: "reset-password", Level: cfg.LogLevel, Console: true})

	db, err := database.Connect(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	var user model.User
	if err := db.Where("email = ?", *email).First(&user).Error; err != nil {
		log.Fatal().Str("email", *email).Err(err).Msg("user not found")
	}

	if err := user.SetPassword(*password); err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}
	if err := db.Model(&user).Update("password", user.Password).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to update password")
	}

	log.Info().Str("email", *email).Msg("password reset")
}
