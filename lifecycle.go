package pgelog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/pgekit/pgelog/errorcode"
	"github.com/pgekit/pgelog/severity"
)

// Close finalizes the log: it appends a closing Info record, writes the
// summary block, persists the buffer to the configured path, and marks
// the logger closed. Close runs at most once; later calls are no-ops
// returning nil, whether they come from user code, from Critical, or
// from the exit-hook registry.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.infoLocked(errorcode.ClosingLogFile,
		fmt.Sprintf("Closing log file %s", l.filename))
	l.writeSummaryLocked()

	err := l.persistLocked(l.filename)
	l.closed = true
	return err
}

// Save logs where the stream is being written and persists the buffer
// to the current path. The buffer stays open, so more records (and a
// later Move) are still possible.
func (l *Logger) Save() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	l.infoLocked(errorcode.SavingLogFile,
		fmt.Sprintf("Writing log stream to %s", l.filename))
	return l.persistLocked(l.filename)
}

// Move persists the buffer to the current path and then switches the
// logger to newFilename without closing the buffer. It exists for the
// start-with-a-default-name workflow: the log opens under a timestamp
// name and is renamed once the conventional name is known.
func (l *Logger) Move(newFilename string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	l.infoLocked(errorcode.SavingLogFile,
		fmt.Sprintf("Moving logging to %s. %s will be closed and saved.",
			newFilename, l.filename))
	l.infoLocked(errorcode.SavingLogFile,
		fmt.Sprintf("Writing log stream to %s", l.filename))
	if err := l.persistLocked(l.filename); err != nil {
		return err
	}

	l.filename = newFilename
	return nil
}

// AppendFile appends the full text of the named file verbatim to the
// buffer, merging a log produced outside this logger (for example by
// an external subprocess). A missing file is a soft failure recorded
// as a warning.
func (l *Logger) AppendFile(sourceFilename string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	ok, err := afero.Exists(l.fs, sourceFilename)
	if err != nil {
		return fmt.Errorf("checking %s: %w", sourceFilename, err)
	}
	if !ok {
		l.warnLocked(errorcode.SourceFileMissing,
			fmt.Sprintf("Cannot append text from file: %s does not exist.", sourceFilename))
		return nil
	}

	data, err := afero.ReadFile(l.fs, sourceFilename)
	if err != nil {
		return fmt.Errorf("reading %s: %w", sourceFilename, err)
	}
	l.buf.Write(data)
	return nil
}

// Resync recomputes the per-severity tally by re-scanning the buffered
// text, picking up records appended from outside the write API. Lines
// are split on commas with field index 1 as the severity; lines with
// fewer than two fields are skipped. An unrecognized severity produces
// a warning through this same logger — that warning lands in the
// buffer being scanned but, like every record written during the scan,
// is not part of the recomputed tally.
func (l *Logger) Resync() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}

	fresh := severity.NewTally()
	for _, line := range strings.Split(l.buf.String(), "\n") {
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			continue
		}
		sev, err := severity.Normalize(strings.TrimSpace(fields[1]))
		if err != nil {
			l.warnLocked(errorcode.ResyncFailed,
				"Unable to resync the log count by severity.")
			continue
		}
		fresh[sev]++
	}

	l.tally = fresh
	return nil
}

// writeSummaryLocked appends the closing metric block: per-severity
// message totals, OS metrics, and elapsed seconds since construction.
func (l *Logger) writeSummaryLocked() {
	counts := l.tally.Copy()
	for _, sev := range severity.Canonical {
		l.metricLocked("overall.log_messages."+strings.ToLower(string(sev)), counts[sev])
	}

	osMetrics := l.collector.Collect()
	names := make([]string, 0, len(osMetrics))
	for name := range osMetrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		l.metricLocked("overall."+name, osMetrics[name])
	}

	l.metricLocked("overall.elapsed_seconds", time.Since(l.start).Seconds())
}

// metricLocked appends one metric record at the summary stats offset.
func (l *Logger) metricLocked(name string, value any) {
	sev := severity.FromOffset(errorcode.SummaryStatsMessage)
	_ = l.tally.Increment(sev)
	l.appendLocked(sev, loggerModule, errorcode.SummaryStatsMessage,
		fmt.Sprintf("%s: %v", name, value), 2)
}

// persistLocked overwrites the target file with the buffer's entire
// current content. It neither truncates nor closes the buffer.
func (l *Logger) persistLocked(path string) error {
	if err := afero.WriteFile(l.fs, path, l.buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("persisting log to %s: %w", path, err)
	}
	return nil
}
