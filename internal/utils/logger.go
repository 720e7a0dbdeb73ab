package utils

import (
	"log"

	"go.uber.org/zap"
)

// Logger defaults to a no-op so packages can log before InitLogger runs
// (and so tests don't need to initialize it).
var Logger = zap.NewNop()

func InitLogger() {
	l, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	Logger = l
}
