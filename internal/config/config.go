package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"
)

// Config represents the process configuration.
type Config struct {
	Telemetry TelemetryConfig
	Pricing   PricingConfig
	OTLP      OTLPConfig
	Server    ServerConfig
	CORS      CORSConfig
}

// TelemetryConfig holds the SDK feature toggles.
// Each flag is true only when its value equals "true", ignoring case.
type TelemetryConfig struct {
	Tracing      Flag `env:"ANYWAY_TRACING_ENABLED" envDefault:"true"`
	TraceContent Flag `env:"ANYWAY_TRACE_CONTENT"   envDefault:"true"`
	Metrics      Flag `env:"ANYWAY_METRICS_ENABLED" envDefault:"true"`
	Logging      Flag `env:"ANYWAY_LOGGING_ENABLED" envDefault:"false"`
}

// PricingConfig selects the pricing catalog source.
type PricingConfig struct {
	File  string `env:"ANYWAY_PRICING_FILE"`
	Watch Flag   `env:"ANYWAY_PRICING_WATCH" envDefault:"false"`
}

// OTLPConfig contains span export settings. An empty endpoint disables export.
type OTLPConfig struct {
	Endpoint    string `env:"ANYWAY_OTLP_ENDPOINT"`
	Insecure    Flag   `env:"ANYWAY_OTLP_INSECURE" envDefault:"false"`
	ServiceName string `env:"ANYWAY_SERVICE_NAME"  envDefault:"anyway"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int `env:"SERVER_PORT"          envDefault:"8080"`
	ReadTimeout  int `env:"SERVER_READ_TIMEOUT"  envDefault:"30"`
	WriteTimeout int `env:"SERVER_WRITE_TIMEOUT" envDefault:"30"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*TelemetryConfig
	*PricingConfig
	*OTLPConfig
	*ServerConfig
	*CORSConfig
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Telemetry,
		&cfg.Pricing,
		&cfg.OTLP,
		&cfg.Server,
		&cfg.CORS,
	}
}
