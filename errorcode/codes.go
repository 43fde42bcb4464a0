package errorcode

// Code is a full error code: a workflow code base plus an Offset.
type Code int

// Offset is the per-module portion of a Code. Its value modulo
// RangeModulus selects the severity range.
type Offset int

// LoggerCodeBase is the default code base assigned to loggers that are
// constructed without an explicit base. It places the logger's own
// records in the Info band of the code space.
const LoggerCodeBase Code = 900000

// Severity range boundaries over offset mod RangeModulus, checked in
// ascending order. Offsets below DebugRangeStart are Info.
const (
	DebugRangeStart    = 3000
	WarningRangeStart  = 6000
	CriticalRangeStart = 9000
	RangeModulus       = 10000
)

// Offsets used by the logger itself.
const (
	ClosingLogFile      Offset = 900
	SavingLogFile       Offset = 901
	SummaryStatsMessage Offset = 902

	RequestedSeverityNotFound Offset = 6200
	CouldNotIncrementSeverity Offset = 6201
	ResyncFailed              Offset = 6202
	SourceFileMissing         Offset = 6203
)

// WithOffset returns the full code formed from base c and the given
// offset.
func (c Code) WithOffset(o Offset) Code {
	return c + Code(o)
}
