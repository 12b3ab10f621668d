package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/roihacks/interiorgen"
)

func main() {
	// A missing .env is fine in production where the environment is real.
	_ = godotenv.Load()

	cfg, err := interiorgen.ConfigFromEnv()
	if err != nil {
		log.Fatal(err)
	}

	app := interiorgen.New(cfg)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
