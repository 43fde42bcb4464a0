package severity

import "fmt"

// Tally counts log records per canonical severity. The key set is
// always exactly the four canonical severities.
type Tally map[Severity]int

// NewTally returns a tally with every canonical severity zeroed.
func NewTally() Tally {
	return Tally{
		Debug:    0,
		Info:     0,
		Warning:  0,
		Critical: 0,
	}
}

// Increment adds one to the count for s. Non-canonical severities leave
// the tally untouched and return an error.
func (t Tally) Increment(s Severity) error {
	if _, ok := t[s]; !ok {
		return fmt.Errorf("could not increment severity level %q", s)
	}
	t[s]++
	return nil
}

// Count returns the count for s, or 0 and an error if s is not
// canonical.
func (t Tally) Count(s Severity) (int, error) {
	count, ok := t[s]
	if !ok {
		return 0, fmt.Errorf("no messages logged with severity %q", s)
	}
	return count, nil
}

// Copy returns an independent copy of the tally.
func (t Tally) Copy() Tally {
	out := make(Tally, len(t))
	for s, n := range t {
		out[s] = n
	}
	return out
}
