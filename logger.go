package pgelog

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/pgekit/pgelog/caller"
	"github.com/pgekit/pgelog/errorcode"
	"github.com/pgekit/pgelog/metrics"
	"github.com/pgekit/pgelog/record"
	"github.com/pgekit/pgelog/severity"
	"github.com/pgekit/pgelog/timestamp"
)

// loggerModule is the module name stamped on records the logger writes
// about itself.
const loggerModule = "PgeLogger"

// Logger buffers rendered log lines in memory and persists them as one
// unit when finalized. Construct one with New or the Builder.
type Logger struct {
	mu        sync.Mutex
	buf       bytes.Buffer
	tally     severity.Tally
	workflow  string
	codeBase  errorcode.Code
	filename  string
	fs        afero.Fs
	collector metrics.Collector
	start     time.Time
	closed    bool
}

// Write appends one record at the given severity label. The label is
// folded to canonical form; an unrecognized label still produces a
// record carrying the folded label, plus a warning record, and is not
// counted. additionalBackFrames shifts the reported source location up
// the call stack so convenience wrappers can report their caller.
// Returns ErrClosed after the logger has been finalized.
func (l *Logger) Write(severityLabel, module string, offset errorcode.Offset,
	description string, additionalBackFrames int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writeLocked(severityLabel, module, offset, description, 2+additionalBackFrames)
}

// Debug appends a Debug record.
func (l *Logger) Debug(module string, offset errorcode.Offset, description string) error {
	return l.Write(string(severity.Debug), module, offset, description, 1)
}

// Info appends an Info record.
func (l *Logger) Info(module string, offset errorcode.Offset, description string) error {
	return l.Write(string(severity.Info), module, offset, description, 1)
}

// Warning appends a Warning record.
func (l *Logger) Warning(module string, offset errorcode.Offset, description string) error {
	return l.Write(string(severity.Warning), module, offset, description, 1)
}

// Critical appends a Critical record, finalizes and persists the log,
// and returns a *FatalError. The caller is expected to stop normal
// execution. If the logger was already closed nothing is written and
// ErrClosed is returned instead.
func (l *Logger) Critical(module string, offset errorcode.Offset, description string) error {
	if err := l.Write(string(severity.Critical), module, offset, description, 1); err != nil {
		return err
	}
	// Close errors are secondary to the fatal signal itself; the
	// summary and buffer content survive in memory regardless.
	_ = l.Close()

	return &FatalError{
		Module:      module,
		Code:        l.ErrorCodeBase().WithOffset(offset),
		Description: description,
	}
}

// Log appends a record whose severity is derived from the error-code
// offset via the shared code table.
func (l *Logger) Log(module string, offset errorcode.Offset, description string,
	additionalBackFrames int) error {
	sev := severity.FromOffset(offset)
	return l.Write(string(sev), module, offset, description, additionalBackFrames+1)
}

// LogOneMetric appends one "name: value" metric record at the summary
// stats offset.
func (l *Logger) LogOneMetric(module, metricName string, metricValue any,
	additionalBackFrames int) error {
	msg := fmt.Sprintf("%s: %v", metricName, metricValue)
	return l.Log(module, errorcode.SummaryStatsMessage, msg, additionalBackFrames+1)
}

// IncrementCount adds one to the tally for the given severity label.
// An unrecognized label leaves the tally unchanged and produces a
// warning record.
func (l *Logger) IncrementCount(severityLabel string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sev, _ := severity.Normalize(severityLabel)
	if err := l.tally.Increment(sev); err != nil {
		l.warnLocked(errorcode.CouldNotIncrementSeverity,
			fmt.Sprintf("Could not increment severity level: '%s'", severityLabel))
	}
}

// Count returns how many records were written at the given severity
// label. An unrecognized label produces a warning record and returns 0.
func (l *Logger) Count(severityLabel string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	sev, _ := severity.Normalize(severityLabel)
	n, err := l.tally.Count(sev)
	if err != nil {
		l.warnLocked(errorcode.RequestedSeverityNotFound,
			fmt.Sprintf("No messages logged with severity: '%s'", severityLabel))
		return 0
	}
	return n
}

// Counts returns a copy of the per-severity tally.
func (l *Logger) Counts() severity.Tally {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tally.Copy()
}

// WarningCount returns the number of Warning records written so far.
func (l *Logger) WarningCount() int {
	return l.Count(string(severity.Warning))
}

// CriticalCount returns the number of Critical records written so far.
func (l *Logger) CriticalCount() int {
	return l.Count(string(severity.Critical))
}

// Workflow returns the workflow name stamped on records.
func (l *Logger) Workflow() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.workflow
}

// SetWorkflow changes the workflow name stamped on subsequent records.
func (l *Logger) SetWorkflow(workflow string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.workflow = workflow
}

// ErrorCodeBase returns the base added to record offsets.
func (l *Logger) ErrorCodeBase() errorcode.Code {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.codeBase
}

// SetErrorCodeBase changes the base added to subsequent record offsets.
func (l *Logger) SetErrorCodeBase(base errorcode.Code) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.codeBase = base
}

// Filename returns the path the buffer persists to.
func (l *Logger) Filename() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.filename
}

// Contents returns the full buffered log text.
func (l *Logger) Contents() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.buf.String()
}

// writeLocked is the single write path. locSkip is the caller.Location
// skip measured from writeLocked's own frame.
func (l *Logger) writeLocked(label, module string, offset errorcode.Offset,
	description string, locSkip int) error {
	if l.closed {
		return ErrClosed
	}

	sev, _ := severity.Normalize(label)
	if err := l.tally.Increment(sev); err != nil {
		l.warnLocked(errorcode.CouldNotIncrementSeverity,
			fmt.Sprintf("Could not increment severity level: '%s'", label))
	}

	l.appendLocked(sev, module, offset, description, locSkip+1)
	return nil
}

// appendLocked renders one record into the buffer. It does not touch
// the tally; incrementing is the caller's job.
func (l *Logger) appendLocked(sev severity.Severity, module string,
	offset errorcode.Offset, description string, locSkip int) {
	rec := record.Record{
		Timestamp:   timestamp.Now(),
		Severity:    sev,
		Workflow:    l.workflow,
		Module:      module,
		Code:        l.codeBase.WithOffset(offset),
		Location:    caller.Location(locSkip),
		Description: description,
	}
	rec.AppendTo(&l.buf)
}

// warnLocked writes a Warning record about an internal soft failure.
// After close the warning is dropped; the buffer must not grow anymore.
func (l *Logger) warnLocked(offset errorcode.Offset, description string) {
	if l.closed {
		return
	}
	_ = l.tally.Increment(severity.Warning)
	l.appendLocked(severity.Warning, loggerModule, offset, description, 2)
}

// infoLocked writes an Info record about the logger's own lifecycle.
func (l *Logger) infoLocked(offset errorcode.Offset, description string) {
	_ = l.tally.Increment(severity.Info)
	l.appendLocked(severity.Info, loggerModule, offset, description, 2)
}
