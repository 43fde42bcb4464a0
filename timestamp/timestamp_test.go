package timestamp

import (
	"regexp"
	"strings"
	"testing"
	"time"
)

var isoRe = regexp.MustCompile(
	`^(\d{4})-(1[0-2]|0[1-9])-(3[01]|0[1-9]|[12][0-9])T(2[0-3]|[01][0-9]):([0-5][0-9]):([0-5][0-9])(\.[0-9]+)?Z$`)

func TestNow_MatchesISOPattern(t *testing.T) {
	got := Now()
	if !isoRe.MatchString(got) {
		t.Errorf("Now() = %q, does not match ISO pattern", got)
	}
}

func TestISO(t *testing.T) {
	at := time.Date(2021, 11, 2, 15, 51, 39, 955666000, time.UTC)
	if got, want := ISO(at), "2021-11-02T15:51:39.955666Z"; got != want {
		t.Errorf("ISO() = %q, want %q", got, want)
	}

	// Malformed variants must not slip through the pattern the tests
	// above rely on.
	bad := []string{
		"20211102T15:51:39.95566Z",
		"2021-11-02T155139.955666Z",
		"202-11-02T15:51:39.955666Z",
		"2021-1a-02T15:51:39.955666Z",
		"2021-11-0215:51:39.955666Z",
		"2021-11-02T15:5:39.955666Z",
		"2021-11-02T15:51:3.955666Z",
		"2021-11-02T15:51:39.955666",
	}
	for _, s := range bad {
		if isoRe.MatchString(s) {
			t.Errorf("pattern unexpectedly matched %q", s)
		}
	}
}

func TestISO_ConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	at := time.Date(2021, 11, 2, 17, 51, 39, 0, loc)
	if got, want := ISO(at), "2021-11-02T15:51:39.000000Z"; got != want {
		t.Errorf("ISO() = %q, want %q", got, want)
	}
}

func TestForFilename(t *testing.T) {
	filenameRe := regexp.MustCompile(`^\d{8}T\d{6}$`)
	at := time.Date(2021, 11, 3, 10, 23, 28, 0, time.UTC)
	got := ForFilename(at)
	if got != "20211103T102328" {
		t.Errorf("ForFilename() = %q, want 20211103T102328", got)
	}
	if !filenameRe.MatchString(got) {
		t.Errorf("ForFilename() = %q, does not match pattern", got)
	}

	for _, s := range []string{"202a1103T102328", "2021103T102328", "20211103102328"} {
		if filenameRe.MatchString(s) {
			t.Errorf("pattern unexpectedly matched %q", s)
		}
	}
}

func TestForCatalogMetadata(t *testing.T) {
	nanoRe := regexp.MustCompile(`^\d{10}Z$`)
	got := ForCatalogMetadata(time.Now())
	frac := got[strings.LastIndex(got, ".")+1:]
	if !nanoRe.MatchString(frac) {
		t.Errorf("fractional part %q does not match ten-digit pattern", frac)
	}
}
