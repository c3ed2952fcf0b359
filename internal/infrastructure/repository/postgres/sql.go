package postgres

import (
	"errors"

	"github.com/lib/pq"
)

// sqlState formats the SQLSTATE of a server-side error for log and error
// messages, or returns "" for anything else.
func sqlState(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code != "" {
		return " (SQLSTATE " + string(pqErr.Code) + ")"
	}
	return ""
}
