package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads a local .env file when present. Missing files are fine,
// deployed environments inject variables directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Print("no .env file found, relying on environment")
	}
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}
