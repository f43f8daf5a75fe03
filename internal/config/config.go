package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Services ServiceConfig
	Defaults DefaultCoordinates
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type ServiceConfig struct {
	NominatimBaseURL string
	RiskAPIBaseURL   string
}

// DefaultCoordinates is the fallback position used when the client never
// reported a device location. 0,0 doubles as the "unset" sentinel the
// dashboard guard checks before calling the risk service.
type DefaultCoordinates struct {
	Latitude  float64
	Longitude float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3001"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Services: ServiceConfig{
			NominatimBaseURL: getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
			RiskAPIBaseURL:   getEnv("RISK_API_BASE_URL", "https://harvestguard-70re.onrender.com"),
		},
		Defaults: DefaultCoordinates{
			Latitude:  getEnvAsFloat("DEFAULT_LATITUDE", 0),
			Longitude: getEnvAsFloat("DEFAULT_LONGITUDE", 0),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
