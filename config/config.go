package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Platform PlatformConfig
	Storage  StorageConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port        string
	GinMode     string
	Environment string
}

type PlatformConfig struct {
	// Domain is the platform apex domain, e.g. "shopfront.dev".
	// Tenant storefronts live on subdomains of it.
	Domain string
}

type StorageConfig struct {
	// DataFile is the path of the JSON document holding all shops.
	DataFile string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("SERVER_PORT", "3012"),
			GinMode:     getEnv("GIN_MODE", "debug"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Platform: PlatformConfig{
			Domain: getEnv("PLATFORM_DOMAIN", "shopfront.dev"),
		},
		Storage: StorageConfig{
			DataFile: getEnv("DATA_FILE", "data/store.json"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	return config, nil
}

// IsProduction reports whether the server runs in production mode,
// which selects the https display-URL scheme for new shops.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// PlatformName returns the first label of the platform domain.
// It is reserved and never resolves to a tenant.
func (c *PlatformConfig) PlatformName() string {
	if i := strings.IndexByte(c.Domain, '.'); i > 0 {
		return c.Domain[:i]
	}
	return c.Domain
}

// MainSiteURL returns the platform landing page URL.
func (c *Config) MainSiteURL() string {
	if c.Server.IsProduction() {
		return fmt.Sprintf("https://%s", c.Platform.Domain)
	}
	return fmt.Sprintf("http://localhost:%s", c.Server.Port)
}

// ShopURL builds the public URL shown to a shop owner after creation.
func (c *Config) ShopURL(slug string) string {
	if c.Server.IsProduction() {
		return fmt.Sprintf("https://%s.%s", slug, c.Platform.Domain)
	}
	return fmt.Sprintf("http://%s.localhost:%s", slug, c.Server.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for i := 0; i < len(s); {
		end := i
		for end < len(s) && s[end] != ',' {
			end++
		}
		result = append(result, s[i:end])
		i = end + 1
	}
	return result
}
