package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ZonesJson   string
	DBPath      string
	TuningPath  string
	LogPath     string
	BiteWaitMin int
	BiteWaitMax int
}

// LoadConfig reads .env when present; everything has a sensible
// default so a bare `angler` just works.
func LoadConfig() (*Config, error) {
	// a missing .env is fine, the environment may carry the keys
	_ = godotenv.Load()

	zonesJson := os.Getenv("ZONES_JSON")
	if zonesJson == "" {
		zonesJson = "data/zones.json"
	}
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "angler.db"
	}
	tuningPath := os.Getenv("TUNING_PATH")
	if tuningPath == "" {
		tuningPath = "tuning.yaml"
	}
	logPath := os.Getenv("LOG_PATH")
	if logPath == "" {
		logPath = "angler.log"
	}

	biteWaitMin, err := loadInt("BITE_WAIT_MIN", 2)
	if err != nil {
		return nil, err
	}
	biteWaitMax, err := loadInt("BITE_WAIT_MAX", 6)
	if err != nil {
		return nil, err
	}

	return &Config{
		ZonesJson:   zonesJson,
		DBPath:      dbPath,
		TuningPath:  tuningPath,
		LogPath:     logPath,
		BiteWaitMin: biteWaitMin,
		BiteWaitMax: biteWaitMax,
	}, nil
}

func loadInt(key string, defValue int) (int, error) {
	value := os.Getenv(key)
	if value != "" {
		return strconv.Atoi(value)
	}

	return defValue, nil
}
