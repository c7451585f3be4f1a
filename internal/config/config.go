package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	API      APIConfig
	Location LocationConfig
	App      AppConfig
}

// APIConfig holds connection settings for the HRIS backend.
type APIConfig struct {
	BaseURL     string
	AccessToken string
	CompanyID   string
}

// LocationConfig selects how device coordinates are acquired for
// check-in/check-out. Provider is "static", "ip" or "none".
type LocationConfig struct {
	Provider  string
	Latitude  float64
	Longitude float64
	IPService string
	// Office coordinates, used to display the distance to the branch.
	OfficeLatitude  float64
	OfficeLongitude float64
}

// AppConfig holds application configuration
type AppConfig struct {
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	config := &Config{}

	config.API = APIConfig{
		BaseURL:     getEnv("HRIS_API_URL", "http://localhost:8080/api/v1"),
		AccessToken: getEnv("HRIS_ACCESS_TOKEN", ""),
		CompanyID:   getEnv("HRIS_COMPANY_ID", ""),
	}

	lat, err := getEnvFloat("HRIS_LATITUDE", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid HRIS_LATITUDE: %w", err)
	}
	lon, err := getEnvFloat("HRIS_LONGITUDE", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid HRIS_LONGITUDE: %w", err)
	}
	officeLat, err := getEnvFloat("HRIS_OFFICE_LATITUDE", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid HRIS_OFFICE_LATITUDE: %w", err)
	}
	officeLon, err := getEnvFloat("HRIS_OFFICE_LONGITUDE", 0)
	if err != nil {
		return nil, fmt.Errorf("invalid HRIS_OFFICE_LONGITUDE: %w", err)
	}

	config.Location = LocationConfig{
		Provider:        strings.ToLower(getEnv("HRIS_LOCATION_PROVIDER", "static")),
		Latitude:        lat,
		Longitude:       lon,
		IPService:       getEnv("HRIS_IP_LOCATION_URL", "http://ip-api.com/json"),
		OfficeLatitude:  officeLat,
		OfficeLongitude: officeLon,
	}

	config.App = AppConfig{
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("HRIS_API_URL is required")
	}
	switch c.Location.Provider {
	case "static", "ip", "none":
	default:
		return fmt.Errorf("HRIS_LOCATION_PROVIDER must be one of: static, ip, none")
	}
	if c.Location.Provider == "ip" && c.Location.IPService == "" {
		return fmt.Errorf("HRIS_IP_LOCATION_URL is required for the ip provider")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(value, 64)
}
