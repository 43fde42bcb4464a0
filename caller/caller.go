// Package caller resolves call-site locations by walking the active
// call stack. The walk is bounded: asking for a frame deeper than the
// stack falls back to the deepest frame that exists instead of failing.
package caller

import (
	"runtime"
	"strconv"
)

// maxWalkDepth caps how far Location will look up the stack.
const maxWalkDepth = 64

// Location returns the "file:line" of the frame skip levels above the
// caller of Location. skip 0 is the immediate caller. If the requested
// frame does not exist the deepest available frame is used; if no
// frame can be resolved at all the result is "unknown:0".
func Location(skip int) string {
	file, line, ok := frame(skip)
	if !ok {
		return "unknown:0"
	}
	return file + ":" + strconv.Itoa(line)
}

// File returns just the file path of the frame skip levels above the
// caller of File, or "unknown" if none can be resolved.
func File(skip int) string {
	file, _, ok := frame(skip)
	if !ok {
		return "unknown"
	}
	return file
}

func frame(skip int) (file string, line int, ok bool) {
	if skip < 0 {
		skip = 0
	}
	if skip > maxWalkDepth {
		skip = maxWalkDepth
	}

	// The +2 accounts for frame() and its exported wrapper.
	for s := skip + 2; s >= 2; s-- {
		if _, file, line, ok := runtime.Caller(s); ok {
			return file, line, true
		}
	}
	return "", 0, false
}
