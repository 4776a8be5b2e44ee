package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort  = "8080"
	defaultDBPort    = "5432"
	defaultDBSslMode = "disable"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// SeedFile is a YAML seed document; empty selects the built-in seed.
	SeedFile string

	AdvisorURL    string
	AdvisorAPIKey string
	AdvisorModel  string

	ReportSchedule string
	AdviceSchedule string
}

// LoadConfig reads the environment after merging envFile into it. A missing
// envFile is not an error; variables already set take precedence.
func LoadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	return Config{
		HTTPPort:       getEnv("HTTP_PORT", defaultHTTPPort),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         getEnv("DB_PORT", defaultDBPort),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBSslMode:      getEnv("DB_SSLMODE", defaultDBSslMode),
		SeedFile:       os.Getenv("SEED_FILE"),
		AdvisorURL:     os.Getenv("ADVISOR_URL"),
		AdvisorAPIKey:  os.Getenv("ADVISOR_API_KEY"),
		AdvisorModel:   os.Getenv("ADVISOR_MODEL"),
		ReportSchedule: os.Getenv("REPORT_SCHEDULE"),
		AdviceSchedule: os.Getenv("ADVICE_SCHEDULE"),
	}, nil
}

// DSN is the libpq connection string for the configured database.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
