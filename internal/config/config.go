package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	ContactsFile string
	StoreDriver  string

	DBPath     string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Set from command line flags, never from the environment.
	Verbose bool
	Quiet   bool
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		logrus.WithField("type", "config").Debug("no .env file loaded, using process environment")
	}

	return &Config{
		ContactsFile: getEnv("CONTACTS_FILE", "contacts.json"),
		StoreDriver:  getEnv("STORE_DRIVER", DriverJSON),
		DBPath:       getEnv("DB_PATH", "./contacts.db"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", ""),
		DBName:       getEnv("DB_NAME", "contacts"),
		DBSSLMode:    getEnv("DB_SSLMODE", "disable"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
