package main

import (
	"os"

	_ "major_home/docs"
	"major_home/internal/adapter/http/routes"
	"major_home/internal/config"
	"major_home/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quote Pricing API
// @version         1.0
// @description     Instant quotes, leads and appointments for exterior home services, backed by DynamoDB.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
