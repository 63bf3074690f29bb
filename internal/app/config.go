package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/unisync/unisync-backend/internal/platform/envutil"
	"github.com/unisync/unisync-backend/internal/platform/logger"
)

type Config struct {
	Port        string
	DataDir     string
	CORSOrigins []string

	JWTSecretKey   string
	AccessTokenTTL time.Duration

	LLM LLMConfig
}

type LLMConfig struct {
	BaseURL    string
	Model      string
	APIKeys    []string
	MaxRetries int
	Timeout    time.Duration
}

// fileConfig is the optional YAML overlay named by UNISYNC_CONFIG.
// Environment variables win over file values.
type fileConfig struct {
	Port        string   `yaml:"port"`
	DataDir     string   `yaml:"data_dir"`
	CORSOrigins []string `yaml:"cors_origins"`
	LLM         struct {
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
	} `yaml:"llm"`
}

func LoadConfig(log *logger.Logger) (Config, error) {
	var fc fileConfig
	if path := strings.TrimSpace(os.Getenv("UNISYNC_CONFIG")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		log.Info("Loaded config file", "path", path)
	}

	cfg := Config{
		Port:           envutil.GetEnv("PORT", fallback(fc.Port, "8080"), log),
		DataDir:        envutil.GetEnv("DATA_DIR", fallback(fc.DataDir, "data"), log),
		CORSOrigins:    fc.CORSOrigins,
		JWTSecretKey:   envutil.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		AccessTokenTTL: time.Duration(envutil.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)) * time.Second,
		LLM: LLMConfig{
			BaseURL:    envutil.GetEnv("LLM_BASE_URL", fallback(fc.LLM.BaseURL, ""), log),
			Model:      envutil.GetEnv("LLM_MODEL", fallback(fc.LLM.Model, ""), log),
			APIKeys:    splitKeys(os.Getenv("LLM_API_KEYS")),
			MaxRetries: envutil.GetEnvAsInt("LLM_MAX_RETRIES", 3, log),
			Timeout:    time.Duration(envutil.GetEnvAsInt("LLM_TIMEOUT_SECONDS", 60, log)) * time.Second,
		},
	}
	if raw := os.Getenv("CORS_ORIGINS"); strings.TrimSpace(raw) != "" {
		cfg.CORSOrigins = splitKeys(raw)
	}
	return cfg, nil
}

func fallback(val, def string) string {
	if strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func splitKeys(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
