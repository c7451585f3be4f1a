package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "static", cfg.Location.Provider)
	assert.Equal(t, "http://ip-api.com/json", cfg.Location.IPService)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HRIS_API_URL", "https://hris.example.com/api/v1")
	t.Setenv("HRIS_ACCESS_TOKEN", "token-123")
	t.Setenv("HRIS_COMPANY_ID", "company-1")
	t.Setenv("HRIS_LOCATION_PROVIDER", "IP")
	t.Setenv("HRIS_LATITUDE", "-6.2")
	t.Setenv("HRIS_LONGITUDE", "106.8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://hris.example.com/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "token-123", cfg.API.AccessToken)
	assert.Equal(t, "company-1", cfg.API.CompanyID)
	assert.Equal(t, "ip", cfg.Location.Provider)
	assert.Equal(t, -6.2, cfg.Location.Latitude)
	assert.Equal(t, 106.8, cfg.Location.Longitude)
}

func TestLoad_InvalidCoordinate(t *testing.T) {
	t.Setenv("HRIS_LATITUDE", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HRIS_LATITUDE")
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Setenv("HRIS_LOCATION_PROVIDER", "gps")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HRIS_LOCATION_PROVIDER")
}

func TestValidate_IPProviderNeedsServiceURL(t *testing.T) {
	cfg := &Config{
		API:      APIConfig{BaseURL: "http://localhost:8080/api/v1"},
		Location: LocationConfig{Provider: "ip"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Location.IPService = "http://ip-api.com/json"
	assert.NoError(t, cfg.Validate())
}
