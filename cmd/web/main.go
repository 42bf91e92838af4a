package main

import (
	"schoolhub_backend/internal/app"

	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments inject environment directly.
	_ = godotenv.Load()

	app.Run()
}
