package config

import (
	"regexp"
	"strings"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// NormalizedDSN returns the postgres DSN trimmed of quotes and extra spaces.
// URL style DSNs are returned as-is; key=value lists get sslmode=disable when
// no sslmode is given.
func (d DatabaseConfig) NormalizedDSN() string {
	s := strings.Trim(strings.TrimSpace(d.DSN), "\"'")
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	// not a key=value list, let the driver report it
	if !kvPairRegex.MatchString(s) {
		return s
	}
	cleaned := strings.Join(strings.Fields(s), " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

var passwordRegex = regexp.MustCompile(`(password=)([^\s]+)`)

// MaskedDSN hides the password for diagnostics.
func (d DatabaseConfig) MaskedDSN() string {
	return passwordRegex.ReplaceAllString(d.NormalizedDSN(), `${1}***`)
}
