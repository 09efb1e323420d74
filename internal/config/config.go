package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DataRoot string
	Debug    bool
}

// Load reads an optional .env file, then the process environment.
// The returned bool reports whether a .env file was found.
func Load() (Config, bool) {
	found := godotenv.Load() == nil
	return FromEnv(), found
}

func FromEnv() Config {
	return Config{
		Port:     GetEnvString("PORT", "8081"),
		DataRoot: GetEnvString("DATA_ROOT", "./projects"),
		Debug:    GetEnvBool("DEBUG", false),
	}
}

func (c Config) Addr() string { return ":" + c.Port }

func GetEnvString(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func GetEnvBool(key string, defaultValue bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
