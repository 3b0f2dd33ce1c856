// Package config provides shared configuration utilities: environment
// lookups for the commands and the optional YAML game settings file.
package config

import (
	"os"
	"strconv"
	"strings"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// GetEnvInt returns the integer value of the environment variable named by
// the key, or fallback if the variable is not set or not a number.
func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

// GetEnvPositiveInt is GetEnvInt that also falls back when the value is
// zero or negative.
func GetEnvPositiveInt(key string, fallback int) int {
	if n := GetEnvInt(key, fallback); n > 0 {
		return n
	}
	return fallback
}

// GetEnvBool returns the boolean value of the environment variable named by
// the key, or fallback if the variable is not set or not a boolean.
func GetEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return b
}
