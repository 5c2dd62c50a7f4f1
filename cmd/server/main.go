package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/agenthands/healthchat/internal/config"
	"github.com/agenthands/healthchat/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	srv := server.NewServer(cfg)
	r := srv.SetupRouter()

	port := cfg.Server.Port
	log.Printf("🤖 AI Health Assistant Server")
	log.Printf("✅ Starting server on port %s (predictor: %s)", port, srv.Predictor.Name())
	log.Printf("🔌 Health Check: http://localhost:%s/api/health", port)
	log.Printf("📚 API Info: http://localhost:%s/api/info", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
