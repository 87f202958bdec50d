package config

import (
	"log"

	"go.uber.org/zap"
)

// Logger is replaced by InitLogger; until then everything logs into a no-op core.
var Logger = zap.NewNop()

func InitLogger(env string) {
	var err error
	if env == "production" {
		Logger, err = zap.NewProduction()
	} else {
		Logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}

	Logger.Info("Zap logger initialized", zap.String("env", env))
}
