package env

import (
	"os"
	"strconv"
)

func Env(key string, fallback ...string) string {
	if len(fallback) > 1 {
		panic("only one fallback value is allowed")
	}
	value := os.Getenv(key)
	if value == "" && len(fallback) > 0 {
		return fallback[0]
	}
	return value
}

// Bool reads a boolean variable; unset or unparsable values fall back.
func Bool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
