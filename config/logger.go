package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Log  *zap.Logger
	SLog *zap.SugaredLogger
)

// InitLogger sets up the global zap logger. LOG_LEVEL controls verbosity,
// APP_ENV=development switches to the human-readable encoder.
func InitLogger() {
	level := zapcore.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zapcore.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	var cfg zap.Config
	if os.Getenv("APP_ENV") == "development" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	Log = logger
	SLog = logger.Sugar()
}

func init() {
	// Tests and tools get a usable logger without calling InitLogger.
	if Log == nil {
		Log = zap.NewNop()
		SLog = Log.Sugar()
	}
}
