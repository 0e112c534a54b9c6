package cli

import "os"

// GetEnvDefault returns the value of key, or defaultValue when it is unset or empty.
func GetEnvDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
