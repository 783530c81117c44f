package main

import (
	"log"

	"github.com/duyhunghd6/pysig-cli/internal/config"
	"github.com/joho/godotenv"
)

var version = "0.1.0-dev"

func main() {
	// Load global config from ~/.pysig/config.yaml first.
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: config load: %v", err)
		cfg = &config.PysigConfig{DefaultFormat: "text"}
	}
	// Then load local .env (env vars take precedence over YAML).
	_ = godotenv.Load()

	rootCmd := buildRootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
