// Package pgelog is a process-local, buffered logger for PGE (Product
// Generation Executive) workflows.
//
// A Logger accumulates rendered log lines in an in-memory buffer for
// its whole lifetime and tracks how many records were written at each
// of the four canonical severities. Nothing reaches disk until the log
// is persisted: explicitly via Save or Move, or as part of the
// finalize sequence that runs exactly once — at Close, on a Critical
// record, or from the exit-hook registry if the process ends without
// an explicit Close. Finalization appends a summary block (per-severity
// counts, OS resource metrics, elapsed seconds) before the buffer is
// written out.
//
// A record's severity comes either from the write method used (Info,
// Debug, Warning, Critical) or, for Log, from the numeric error-code
// offset via the shared code table. Critical is terminal: it finalizes
// the log and returns a *FatalError that the caller is expected to
// stop on.
//
// A Logger is built with the Builder:
//
//	log := pgelog.NewBuilder().
//	    WithWorkflow("pge_dswx").
//	    WithErrorCodeBase(100000).
//	    Build()
//	defer log.Close()
//
// Every option has a documented default, so pgelog.New() alone yields
// a working logger that persists to pge_<timestamp>.log.
//
// Each Logger owns its buffer exclusively. A single mutex guards the
// buffer, the tally, and the closed flag as one unit, so a buffer
// append and its tally increment are atomic even if an implementation
// chooses to share one instance between goroutines.
package pgelog
