package app

import (
	"strings"

	"github.com/lib/pq"
)

// dbNameFromURL returns the dbname of a postgres:// URL or key=value DSN, or
// "" when none is set. URLs are converted with pq.ParseURL so both forms are
// read the same way.
func dbNameFromURL(raw string) string {
	dsn := strings.TrimSpace(raw)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		converted, err := pq.ParseURL(dsn)
		if err != nil {
			return ""
		}
		dsn = converted
	}

	for _, field := range strings.Fields(dsn) {
		key, value, ok := strings.Cut(field, "=")
		if ok && key == "dbname" {
			return strings.Trim(value, `'"`)
		}
	}
	return ""
}
