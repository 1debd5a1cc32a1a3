package main

import (
	"log"

	"github.com/arnav-sinha2713/trading-journal/cmd"

	"github.com/joho/godotenv"
)

func main() {
	// .env is a local development convenience; absent in production.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		log.Fatalf("could not start application: %v", err)
	}
}
