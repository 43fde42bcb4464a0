// Package timestamp renders the time formats used throughout the PGE
// log format: ISO-8601 with microseconds for record time tags, a
// compact filename-safe form for default log file names, and a
// nanosecond-padded form for catalog metadata.
package timestamp

import "time"

const (
	isoLayout      = "2006-01-02T15:04:05.000000Z"
	filenameLayout = "20060102T150405"
)

// Now returns the current UTC time in ISO-8601 format with
// microsecond precision, e.g. 2026-08-26T15:51:39.955666Z.
func Now() string {
	return ISO(time.Now())
}

// ISO renders t in ISO-8601 format with microsecond precision.
func ISO(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// ForFilename renders t as YYYYMMDDTHHMMSS, safe for use inside file
// names.
func ForFilename(t time.Time) string {
	return t.UTC().Format(filenameLayout)
}

// ForCatalogMetadata renders t like ISO but with the fractional part
// padded to ten digits, the precision catalog metadata records expect.
func ForCatalogMetadata(t time.Time) string {
	s := t.UTC().Format("2006-01-02T15:04:05.000000")
	return s + "0000Z"
}
