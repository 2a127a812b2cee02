package dbquery

import (
	"encoding/base64"
	"os"
	"strings"
)

// DecodePassword decodes a base64-encoded password value inside a
// keyword/value connection string ("password=..." for libpq style,
// "Pwd=..." for ODBC style). Values that do not decode cleanly pass
// through unchanged, so plain-text passwords keep working.
func DecodePassword(dsn string) string {
	sep := " "
	if strings.Contains(dsn, ";") {
		sep = ";"
	}

	parts := strings.Split(dsn, sep)
	for i, part := range parts {
		key, value, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(key))
		if k != "password" && k != "pwd" {
			continue
		}
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(value))
		if err != nil {
			continue
		}
		parts[i] = key + "=" + string(decoded)
	}
	return strings.Join(parts, sep)
}

// BuildDSNFromEnv assembles a libpq connection URL from PG_* environment
// variables, with sensible local defaults.
func BuildDSNFromEnv() string {
	host := envOr("PG_HOST", "localhost")
	port := envOr("PG_PORT", "5432")
	user := envOr("PG_USER", "postgres")
	name := envOr("PG_DB", "carcara")
	ssl := envOr("PG_SSLMODE", "disable")

	dsn := "postgres://" + user
	if pass := os.Getenv("PG_PASSWORD"); pass != "" {
		dsn += ":" + pass
	}
	dsn += "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
	return dsn
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
