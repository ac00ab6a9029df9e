package storage

import "strings"

// IsPostgresConnString reports whether config names a PostgreSQL database
// rather than a SQLite file path.
func IsPostgresConnString(config string) bool {
	return strings.HasPrefix(config, "postgres://") ||
		strings.HasPrefix(config, "postgresql://") ||
		strings.Contains(config, "host=")
}
