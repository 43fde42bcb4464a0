// Package record renders single log records into the persisted PGE log
// line format.
//
// The format is plain comma-separated text:
//
//	timestamp, severity, workflow, module,code, location, "description"
//
// The missing space between the module field's comma and the code is a
// long-standing property of the format; parsers strip whitespace per
// field, so it is preserved rather than corrected. No escaping is
// performed — a comma inside the description will break any later
// comma-split parse of the line, and avoiding that is the caller's
// responsibility.
package record
