package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the process-level configuration. Domain parameters
// (stock, target, threshold, passwords) live in the record store, not
// here.
type AppConfig struct {
	DataPath string
	DBPath   string
	LogDir   string
}

// Load reads configuration from .env files and environment variables. The
// binary directory takes priority over the working directory, which keeps
// installed deployments self-contained.
func Load() (*AppConfig, error) {
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	dbPath := getEnv("DB_PATH", filepath.Join(dataPath, "archistat.db"))
	logDir := getEnv("LOGS_FOLDER", filepath.Join(dataPath, "logs"))

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Warn().Err(err).Str("path", logDir).Msg("Failed to create log directory")
	}

	return &AppConfig{
		DataPath: dataPath,
		DBPath:   dbPath,
		LogDir:   logDir,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
