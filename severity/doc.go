// Package severity defines the four canonical severity levels of the
// PGE log format and the two ways a record acquires one: by name
// (Normalize) or by numeric error-code offset (FromOffset).
//
// The two paths must agree with the shared error-code table in package
// errorcode; in particular the table puts the Info range below the
// Debug range, so FromOffset maps small offsets to Info, not Debug.
//
// A Tally tracks how many records were written at each severity. Its
// key set is exactly the four canonical severities; operations on any
// other key fail with an error that callers are expected to downgrade
// to a warning rather than propagate.
package severity
