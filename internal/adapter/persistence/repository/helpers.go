package repository

import (
	"os"
	"strings"
)

// resolveTableName picks the explicit name, then envKey, then def.
func resolveTableName(explicit, envKey, def string) string {
	if v := strings.TrimSpace(explicit); v != "" {
		return v
	}
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return def
}
