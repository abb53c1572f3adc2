package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth     int    // Default maze width when none is given on the command line
	MazeHeight    int    // Default maze height when none is given on the command line
	Seed          int64  // Random seed for maze generation; 0 seeds from the clock
	MaxIterations int    // Cap on solver iterations; 0 uses the solver default
	Format        string // Output format (text, png, pb)
}

const (
	defaultMazeSize = 10
	defaultFormat   = "text"
)

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		MazeWidth:     getEnvAsIntWithDefault("MAZE_WIDTH", defaultMazeSize),
		MazeHeight:    getEnvAsIntWithDefault("MAZE_HEIGHT", defaultMazeSize),
		Seed:          int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		MaxIterations: getEnvAsIntWithDefault("MAZE_MAX_ITERATIONS", 0),
		Format:        getEnvWithDefault("MAZE_FORMAT", defaultFormat),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back to defaultValue
// when it is unset or cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer, using %d: %v", key, defaultValue, err)
		return defaultValue
	}
	return value
}
