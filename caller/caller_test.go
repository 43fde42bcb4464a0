package caller

import (
	"strconv"
	"strings"
	"testing"
)

func TestLocation_ImmediateCaller(t *testing.T) {
	loc := Location(0)

	i := strings.LastIndex(loc, ":")
	if i < 0 {
		t.Fatalf("Location(0) = %q, want file:line", loc)
	}
	file, lineStr := loc[:i], loc[i+1:]

	if !strings.HasSuffix(file, "caller_test.go") {
		t.Errorf("file = %q, want this test file", file)
	}
	line, err := strconv.Atoi(lineStr)
	if err != nil || line <= 0 {
		t.Errorf("line = %q, want a positive integer", lineStr)
	}
}

func TestLocation_SkipOneFrame(t *testing.T) {
	var loc string
	wrapper := func() { loc = Location(1) }
	wrapper()

	if !strings.HasSuffix(strings.Split(loc, ":")[0], "caller_test.go") {
		t.Errorf("Location(1) = %q, want the wrapper's caller in this file", loc)
	}
}

// A skip past the bottom of the stack must fall back to a real frame
// rather than returning unknown:0.
func TestLocation_BoundedWalk(t *testing.T) {
	loc := Location(1000)
	if loc == "unknown:0" {
		t.Errorf("Location(1000) = %q, want fallback to the deepest real frame", loc)
	}
}

func TestFile(t *testing.T) {
	if f := File(0); !strings.HasSuffix(f, "caller_test.go") {
		t.Errorf("File(0) = %q, want this test file", f)
	}
}
