package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/gestaozabele/hashsvc/internal/hashing"
)

// Config centraliza a configuração carregada do ambiente.
type Config struct {
	Port            int
	MetricsAddr     string
	AllowOrigins    []string
	LogLevel        string
	LogFormat       string
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
	Hashing         HashingConfig
}

// HashingConfig representa os tetos de custo aceitos pelo serviço.
type HashingConfig struct {
	MaxMemoryKiB   uint32
	MaxIterations  uint32
	MaxParallelism uint32
	MaxScryptCost  uint8
	MaxHashLength  uint32
}

// Load carrega variáveis de ambiente e aplica defaults seguros.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 {
		return nil, errors.New("PORT inválida")
	}
	cfg.Port = port

	cfg.MetricsAddr = strings.TrimSpace(getEnv("METRICS_ADDR", ":9090"))

	allowOrigins := strings.Split(getEnv("ALLOW_ORIGINS", ""), ",")
	cfg.AllowOrigins = nil
	for _, origin := range allowOrigins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			cfg.AllowOrigins = append(cfg.AllowOrigins, origin)
		}
	}

	cfg.LogLevel = strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info")))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("LOG_LEVEL deve ser debug, info, warn ou error")
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(getEnv("LOG_FORMAT", "console")))
	if cfg.LogFormat == "" {
		cfg.LogFormat = "console"
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return nil, errors.New("LOG_FORMAT deve ser console ou json")
	}

	maxBody, err := parseUintEnv("MAX_BODY_BYTES", 64*1024, 63)
	if err != nil {
		return nil, err
	}
	if maxBody == 0 {
		return nil, errors.New("MAX_BODY_BYTES inválido")
	}
	cfg.MaxBodyBytes = int64(maxBody)

	shutdown, err := parseDurationEnv("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout = shutdown

	defaults := hashing.DefaultLimits()

	maxMemory, err := parseUintEnv("HASH_MAX_MEMORY_KIB", uint64(defaults.MaxMemoryKiB), 32)
	if err != nil {
		return nil, err
	}
	maxIterations, err := parseUintEnv("HASH_MAX_ITERATIONS", uint64(defaults.MaxIterations), 32)
	if err != nil {
		return nil, err
	}
	maxParallelism, err := parseUintEnv("HASH_MAX_PARALLELISM", uint64(defaults.MaxParallelism), 32)
	if err != nil {
		return nil, err
	}
	maxCost, err := parseUintEnv("HASH_MAX_SCRYPT_COST", uint64(defaults.MaxScryptCost), 8)
	if err != nil {
		return nil, err
	}
	maxLength, err := parseUintEnv("HASH_MAX_LENGTH", uint64(defaults.MaxHashLength), 32)
	if err != nil {
		return nil, err
	}
	cfg.Hashing = HashingConfig{
		MaxMemoryKiB:   uint32(maxMemory),
		MaxIterations:  uint32(maxIterations),
		MaxParallelism: uint32(maxParallelism),
		MaxScryptCost:  uint8(maxCost),
		MaxHashLength:  uint32(maxLength),
	}

	return cfg, nil
}

// Limits converte a configuração nos tetos usados pelo hashing.
func (c *Config) Limits() hashing.Limits {
	return hashing.Limits{
		MaxMemoryKiB:   c.Hashing.MaxMemoryKiB,
		MaxIterations:  c.Hashing.MaxIterations,
		MaxParallelism: c.Hashing.MaxParallelism,
		MaxScryptCost:  c.Hashing.MaxScryptCost,
		MaxHashLength:  c.Hashing.MaxHashLength,
	}
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	dur, err := time.ParseDuration(val)
	if err != nil {
		return 0, errors.New(key + " inválido")
	}
	return dur, nil
}

func parseUintEnv(key string, def uint64, bitSize int) (uint64, error) {
	val := strings.TrimSpace(getEnv(key, ""))
	if val == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(val, 10, bitSize)
	if err != nil {
		return 0, errors.New(key + " inválido")
	}
	return n, nil
}
