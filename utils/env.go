package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// GetEnv reads an environment variable into a string, int or bool, falling
// back to defaultValue when unset or empty.
func GetEnv[T string | int | bool](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	parsed, err := parseEnv[T](envVar, envValue)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return parsed
}

func GetRequiredEnv[T string | int | bool](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	parsed, err := parseEnv[T](envVar, envValue)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return parsed
}

func parseEnv[T string | int | bool](envVar, envValue string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case string:
		return any(envValue).(T), nil
	case int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return zero, fmt.Errorf(
				"environment variable %s is not valid: %q is not an integer", envVar, envValue)
		}
		return any(intValue).(T), nil
	case bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return zero, fmt.Errorf(
				"environment variable %s is not valid: %q is not a boolean", envVar, envValue)
		}
		return any(boolValue).(T), nil
	}
	return zero, fmt.Errorf("unsupported type for environment variable %s", envVar)
}
