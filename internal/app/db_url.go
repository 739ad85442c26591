package app

import (
	"net/url"
	"strings"

	"github.com/lib/pq"
)

const preparedBinaryFlag = "disable_prepared_binary_result"

// NormalizeDBURL sets disable_prepared_binary_result=yes unless the DSN
// already carries the flag. Both URL and key/value DSNs are accepted.
func NormalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !disablePreparedBinaryResult || strings.Contains(raw, preparedBinaryFlag) {
		return raw
	}
	if !isURLDSN(raw) {
		return raw + " " + preparedBinaryFlag + "=yes"
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	query := parsed.Query()
	query.Set(preparedBinaryFlag, "yes")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}

// dbNameFromURL reads dbname for the otelsql db.name attribute. URL DSNs go
// through pq's own URL conversion first.
func dbNameFromURL(raw string) string {
	dsn := strings.TrimSpace(raw)
	if isURLDSN(dsn) {
		converted, err := pq.ParseURL(dsn)
		if err != nil {
			return ""
		}
		dsn = converted
	}

	for _, token := range strings.Fields(dsn) {
		if name, ok := strings.CutPrefix(token, "dbname="); ok {
			return strings.Trim(name, `"'`)
		}
	}
	return ""
}

func isURLDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
