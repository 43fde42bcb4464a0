// Package metrics collects OS-level resource figures for the log
// summary block written at finalization.
//
// The Collector interface exists so the logger can be handed a fake
// during tests; the real OS implementation reads getrusage for the
// process and its children plus whole-system RAM figures.
package metrics
