package cli

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/mcoot/wordgrid/internal/factory"
	"github.com/mcoot/wordgrid/internal/model"
	redisstorage "github.com/mcoot/wordgrid/internal/storage/redis"
)

// Config holds CLI configuration
type Config struct {
	DictionaryPath string
	Layout         string
	StorageType    string
	RedisURL       string
	HandSize       int
	Seed           uint64
	Output         string
	Verbose        bool
}

// DefaultConfig returns a Config with defaults taken from the environment
func DefaultConfig() *Config {
	return &Config{
		DictionaryPath: getEnvOrDefault("WORDGRID_DICTIONARY", "data/words.txt"),
		Layout:         getEnvOrDefault("WORDGRID_LAYOUT", model.LayoutStandard),
		StorageType:    getEnvOrDefault("WORDGRID_STORAGE", factory.StorageTypeMemory),
		RedisURL:       getEnvOrDefault("WORDGRID_REDIS_URL", "redis://localhost:6379/0"),
		HandSize:       getEnvIntOrDefault("WORDGRID_HAND_SIZE", model.DefaultHandCapacity),
		Seed:           getEnvSeed("WORDGRID_SEED"),
		Output:         "text",
		Verbose:        false,
	}
}

// FactoryConfig builds the application config from the CLI config
func (c *Config) FactoryConfig(logger *slog.Logger) factory.Config {
	fc := factory.Config{
		DictionaryPath: c.DictionaryPath,
		Logger:         logger,
		StorageType:    c.StorageType,
		Seed:           c.Seed,
	}
	if c.StorageType == factory.StorageTypeRedis {
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = c.RedisURL
		fc.RedisConfig = &redisCfg
	}
	return fc
}

// loadEnvFile loads variables from a dotenv file. A missing file is fine;
// variables already set in the environment win.
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	val, err := strconv.Atoi(os.Getenv(key))
	if err != nil || val <= 0 {
		return defaultVal
	}
	return val
}

// getEnvSeed returns 0, meaning unseeded, when the variable is unset or invalid
func getEnvSeed(key string) uint64 {
	val, err := strconv.ParseUint(os.Getenv(key), 10, 64)
	if err != nil {
		return 0
	}
	return val
}
