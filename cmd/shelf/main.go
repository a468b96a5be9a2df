package main

import (
	"log"

	"shelf/internal/app"
)

func main() {
	dashboard, err := app.New()
	if err != nil {
		log.Fatalf("Failed to start dashboard: %v", err)
	}

	if err := dashboard.Run(); err != nil {
		log.Fatalf("Dashboard stopped with error: %v", err)
	}
}
