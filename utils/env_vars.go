package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type EnvValue interface {
	~string | ~int | ~bool | time.Duration
}

// GetEnv reads an environment variable and converts it to the type of the
// default value. An unset or empty variable yields the default, a value that
// cannot be converted panics at startup.
func GetEnv[T EnvValue](name string, defaultValue T) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		return defaultValue
	}
	value, err := parseEnv[T](name, raw)
	if err != nil {
		panic(err)
	}
	return value
}

// GetRequiredEnv is GetEnv for variables without a sensible default. Exits the
// process when the variable is missing.
func GetRequiredEnv[T EnvValue](name string) T {
	raw, ok := os.LookupEnv(name)
	if !ok || raw == "" {
		log.Fatalf("%s environment variable is required", name)
	}
	value, err := parseEnv[T](name, raw)
	if err != nil {
		log.Fatal(err)
	}
	return value
}

func parseEnv[T EnvValue](name, raw string) (T, error) {
	var zero T

	switch any(zero).(type) {
	case string:
		return any(raw).(T), nil
	case int:
		intValue, err := strconv.Atoi(raw)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s: %q is not an integer", name, raw)
		}
		return any(intValue).(T), nil
	case bool:
		boolValue, err := strconv.ParseBool(raw)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s: %q is not a boolean", name, raw)
		}
		return any(boolValue).(T), nil
	case time.Duration:
		durationValue, err := time.ParseDuration(raw)
		if err != nil {
			return zero, fmt.Errorf("environment variable %s: %q is not a duration", name, raw)
		}
		return any(durationValue).(T), nil
	default:
		return zero, fmt.Errorf("environment variable %s: unsupported type %T", name, zero)
	}
}
