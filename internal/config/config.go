package config

import (
	"strings"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort               string   `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL            string   `env:"DATABASE_URL"`
	LLMProvider            string   `env:"LLM_PROVIDER" envDefault:"gateway"`
	LLMAPIKey              string   `env:"LLM_API_KEY"`
	LLMBaseURL             string   `env:"LLM_BASE_URL" envDefault:"https://ai.gateway.lovable.dev/v1"`
	LLMModel               string   `env:"LLM_MODEL" envDefault:"google/gemini-2.5-flash"`
	LLMTimeoutSeconds      int      `env:"LLM_TIMEOUT_SECONDS" envDefault:"60"`
	RedisAddr              string   `env:"REDIS_ADDR"`
	RedisPassword          string   `env:"REDIS_PASSWORD"`
	RedisDB                int      `env:"REDIS_DB" envDefault:"0"`
	InsightCacheTTLMin     int      `env:"INSIGHT_CACHE_TTL_MINUTES" envDefault:"60"`
	InsightCacheMaxEntries int      `env:"INSIGHT_CACHE_MAX_ENTRIES" envDefault:"1024"`
	AIRateLimitPerMin      int      `env:"AI_RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	AIRateLimitWindowSec   int      `env:"AI_RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
	AuthTokenSecret        string   `env:"AUTH_TOKEN_SECRET"`
	AuthTokenTTLMin        int      `env:"AUTH_TOKEN_TTL_MINUTES" envDefault:"1440"`
	CORSAllowedOrigins     []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	EmissionFactorsFile    string   `env:"EMISSION_FACTORS_FILE"`
	OTelEnabled            bool     `env:"OTEL_ENABLED" envDefault:"false"`
	OTelServiceName        string   `env:"OTEL_SERVICE_NAME" envDefault:"carbon-edu"`
	OTelEndpoint           string   `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTelInsecure           bool     `env:"OTEL_EXPORTER_OTLP_INSECURE" envDefault:"false"`
	OTelSampleRatio        float64  `env:"OTEL_SAMPLER_RATIO" envDefault:"0.1"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	cfg.LLMProvider = strings.ToLower(strings.TrimSpace(cfg.LLMProvider))
	return &cfg, nil
}

// LLMEnabled indica si hay credenciales para el proveedor de LLM.
func (c *Config) LLMEnabled() bool {
	return strings.TrimSpace(c.LLMAPIKey) != ""
}
