package core

import (
	"strings"
	"time"
)

// ISODateFormat is the wire format of all date fields held by the record
// store (YYYY-MM-DD).
const ISODateFormat = "2006-01-02"

// Today returns the current UTC date in ISODateFormat.
func Today() string {
	return time.Now().UTC().Format(ISODateFormat)
}

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}
