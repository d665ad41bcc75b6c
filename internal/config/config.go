package config

import (
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Catalog struct {
		BaseURL          string        `yaml:"base_url" default:"http://localhost:8080/api"`
		RequestTimeout   time.Duration `yaml:"request_timeout" default:"15s"`
		DefaultPageSize  int           `yaml:"default_page_size" default:"20"`
		ProviderPageSize int           `yaml:"provider_page_size" default:"500"`
	} `yaml:"catalog"`

	Barometer struct {
		TopMatches int `yaml:"top_matches" default:"8"`
		PageSize   int `yaml:"page_size" default:"100"`
	} `yaml:"barometer"`

	Cache struct {
		RegionsTTL      time.Duration `yaml:"regions_ttl" default:"1h"`
		ProvidersTTL    time.Duration `yaml:"providers_ttl" default:"1h"`
		RefreshInterval time.Duration `yaml:"refresh_interval" default:"30m"`
	} `yaml:"cache"`

	Sessions struct {
		TTL time.Duration `yaml:"ttl" default:"720h"`
	} `yaml:"sessions"`

	RateLimit struct {
		RequestsPerSecond float64 `yaml:"requests_per_second" default:"20"`
		Burst             int     `yaml:"burst" default:"40"`
	} `yaml:"rate_limit"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`
		Output string `yaml:"output" default:"stdout"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	// Expand ${VAR} syntax
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	// Expand $VAR syntax (but avoid replacing ${VAR} that was already processed)
	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Catalog.BaseURL = "http://localhost:8080/api"
	config.Catalog.RequestTimeout = 15 * time.Second
	config.Catalog.DefaultPageSize = 20
	config.Catalog.ProviderPageSize = 500

	config.Barometer.TopMatches = 8
	config.Barometer.PageSize = 100

	config.Cache.RegionsTTL = time.Hour
	config.Cache.ProvidersTTL = time.Hour
	config.Cache.RefreshInterval = 30 * time.Minute

	config.Sessions.TTL = 30 * 24 * time.Hour

	config.RateLimit.RequestsPerSecond = 20
	config.RateLimit.Burst = 40

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if baseURL := os.Getenv("CATALOG_BASE_URL"); baseURL != "" {
		c.Catalog.BaseURL = baseURL
	}

	if timeout := os.Getenv("CATALOG_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Catalog.RequestTimeout = d
		}
	}

	if pageSize := os.Getenv("CATALOG_DEFAULT_PAGE_SIZE"); pageSize != "" {
		if size, err := strconv.Atoi(pageSize); err == nil && size > 0 {
			c.Catalog.DefaultPageSize = size
		}
	}

	if topMatches := os.Getenv("BAROMETER_TOP_MATCHES"); topMatches != "" {
		if n, err := strconv.Atoi(topMatches); err == nil && n > 0 {
			c.Barometer.TopMatches = n
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}

	if sessionTTL := os.Getenv("SESSION_TTL"); sessionTTL != "" {
		if ttl, err := time.ParseDuration(sessionTTL); err == nil {
			c.Sessions.TTL = ttl
		}
	}

	if refreshInterval := os.Getenv("CACHE_REFRESH_INTERVAL"); refreshInterval != "" {
		if d, err := time.ParseDuration(refreshInterval); err == nil {
			c.Cache.RefreshInterval = d
		}
	}
}
