package main

import (
	"log"

	"github.com/upandey0/bookmarks/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ bookmarks failed to start: %v", err)
	}
}
