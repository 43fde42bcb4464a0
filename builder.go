package pgelog

import (
	"path/filepath"
	"time"

	"github.com/spf13/afero"

	"github.com/pgekit/pgelog/caller"
	"github.com/pgekit/pgelog/errorcode"
	"github.com/pgekit/pgelog/metrics"
	"github.com/pgekit/pgelog/severity"
	"github.com/pgekit/pgelog/timestamp"
)

// Builder assembles a Logger. Every option has a default, so an empty
// builder still produces a working logger.
type Builder struct {
	workflow  string
	codeBase  errorcode.Code
	filename  string
	fs        afero.Fs
	collector metrics.Collector
	noHook    bool
}

// NewBuilder creates a new logger builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithWorkflow sets the workflow name stamped on every record.
// Default: "pge_init::" plus the base name of the constructing source
// file.
func (b *Builder) WithWorkflow(workflow string) *Builder {
	b.workflow = workflow
	return b
}

// WithErrorCodeBase sets the base added to every record's offset.
// Default: errorcode.LoggerCodeBase.
func (b *Builder) WithErrorCodeBase(base errorcode.Code) *Builder {
	b.codeBase = base
	return b
}

// WithLogFilename sets the path the buffer is persisted to.
// Default: DefaultLogFilename().
func (b *Builder) WithLogFilename(filename string) *Builder {
	b.filename = filename
	return b
}

// WithFs sets the filesystem the log is persisted to and external
// files are appended from. Default: the OS filesystem.
func (b *Builder) WithFs(fs afero.Fs) *Builder {
	b.fs = fs
	return b
}

// WithMetrics sets the collector queried for the finalize summary.
// Default: metrics.OS.
func (b *Builder) WithMetrics(c metrics.Collector) *Builder {
	b.collector = c
	return b
}

// WithoutExitHook skips registering the logger with the exit-hook
// registry. Meant for short-lived loggers owned by tests.
func (b *Builder) WithoutExitHook() *Builder {
	b.noHook = true
	return b
}

// Build creates the Logger, records its monotonic start time, and
// registers it for finalize-on-exit unless WithoutExitHook was given.
func (b *Builder) Build() *Logger {
	l := &Logger{
		workflow:  b.workflow,
		codeBase:  b.codeBase,
		filename:  b.filename,
		fs:        b.fs,
		collector: b.collector,
		tally:     severity.NewTally(),
		start:     time.Now(),
	}

	if l.workflow == "" {
		l.workflow = "pge_init::" + filepath.Base(caller.File(1))
	}
	if l.codeBase == 0 {
		l.codeBase = errorcode.LoggerCodeBase
	}
	if l.filename == "" {
		l.filename = DefaultLogFilename()
	}
	if l.fs == nil {
		l.fs = afero.NewOsFs()
	}
	if l.collector == nil {
		l.collector = metrics.OS{}
	}

	if !b.noHook {
		registerExitHook(l)
	}
	return l
}

// New returns a Logger with all defaults applied.
func New() *Logger {
	return NewBuilder().Build()
}

// DefaultLogFilename returns a log file name derived from the current
// time only, so a log can be opened before anything about the workflow
// is known. The file is expected to be renamed with Move once the
// final naming is available.
func DefaultLogFilename() string {
	return "pge_" + timestamp.ForFilename(time.Now()) + ".log"
}
