package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultThinkDelayMS = 1200

// Config aggregates every setting the assistant reads at startup.
type Config struct {
	Server    ServerConfig
	Assistant AssistantConfig
	Log       LogConfig
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	assistant, err := loadAssistantConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:    server,
		Assistant: assistant,
		Log:       loadLogConfig(),
	}, nil
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	addr := port
	if !strings.Contains(port, ":") {
		if strings.Contains(port, " ") {
			return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
		}
		// Accept both ":8080" style addresses and bare port numbers.
		addr = ":" + port
	}

	return ServerConfig{
		Addr:           addr,
		AllowedOrigins: parseListEnv("ALLOWED_ORIGINS", []string{"*"}),
	}, nil
}

// AssistantConfig tunes the canned-response engine.
type AssistantConfig struct {
	// ThinkDelay paces replies so the typing indicator is visible.
	ThinkDelay time.Duration
	// Seed fixes the advisor's random fillers; zero keeps them random.
	Seed int64
	// PlaybookPath points at an optional YAML content override.
	PlaybookPath string
}

func loadAssistantConfig() (AssistantConfig, error) {
	delayMS := defaultThinkDelayMS
	if override, err := parseOptionalIntEnv("ASSISTANT_THINK_DELAY_MS"); err != nil {
		return AssistantConfig{}, err
	} else if override != nil {
		if *override < 0 {
			return AssistantConfig{}, fmt.Errorf("invalid ASSISTANT_THINK_DELAY_MS value %d: must not be negative", *override)
		}
		delayMS = *override
	}

	var seed int64
	if override, err := parseOptionalInt64Env("ASSISTANT_SEED"); err != nil {
		return AssistantConfig{}, err
	} else if override != nil {
		seed = *override
	}

	return AssistantConfig{
		ThinkDelay:   time.Duration(delayMS) * time.Millisecond,
		Seed:         seed,
		PlaybookPath: strings.TrimSpace(os.Getenv("ASSISTANT_PLAYBOOK")),
	}, nil
}

// LogConfig describes where and how verbosely to log.
type LogConfig struct {
	Level slog.Level
	File  string
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level: parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		File:  strings.TrimSpace(os.Getenv("LOG_FILE")),
	}
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseListEnv(key string, defaultValue []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}

func parseOptionalInt64Env(key string) (*int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
