package severity

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pgekit/pgelog/errorcode"
)

// Severity is the canonical classification of a log record.
type Severity string

const (
	Debug    Severity = "Debug"
	Info     Severity = "Info"
	Warning  Severity = "Warning"
	Critical Severity = "Critical"
)

// Canonical lists the four severities in the order they appear in log
// summaries.
var Canonical = [4]Severity{Debug, Info, Warning, Critical}

var titleCaser = cases.Title(language.Und)

// Normalize folds an arbitrary severity label to its canonical
// title-cased form. If the folded value is not one of the four
// canonical severities it is still returned, along with an error;
// callers treat that as a soft condition and log a warning rather
// than propagating it.
func Normalize(label string) (Severity, error) {
	s := Severity(titleCaser.String(label))
	switch s {
	case Debug, Info, Warning, Critical:
		return s, nil
	}
	return s, fmt.Errorf("unknown severity %q", label)
}

// FromOffset maps an error-code offset to a severity using the range
// boundaries of the shared code table. Only the offset modulo
// errorcode.RangeModulus matters. The lowest band is Info and the band
// above it is Debug; the inversion comes from the table, not from this
// function.
func FromOffset(offset errorcode.Offset) Severity {
	o := int(offset) % errorcode.RangeModulus
	if o < 0 {
		o += errorcode.RangeModulus
	}

	switch {
	case o < errorcode.DebugRangeStart:
		return Info
	case o < errorcode.WarningRangeStart:
		return Debug
	case o < errorcode.CriticalRangeStart:
		return Warning
	}
	return Critical
}
