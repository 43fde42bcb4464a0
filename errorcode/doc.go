// Package errorcode defines the numeric error-code table shared by all
// PGE workflows.
//
// A full error code is the sum of a workflow's code base and a small
// per-module offset. Only the offset, reduced modulo RangeModulus,
// determines the severity of the code: the table partitions the offset
// space into four ascending ranges. Note that the lowest range is Info
// and the range above it is Debug — the table has always been laid out
// this way and downstream tooling parses logs against it, so the
// ordering is fixed.
package errorcode
