package record

import (
	"bytes"
	"io"
	"strconv"

	"github.com/pgekit/pgelog/errorcode"
	"github.com/pgekit/pgelog/severity"
	"github.com/pgekit/pgelog/timestamp"
)

// Record is one structured log event. Records are ephemeral: they are
// rendered to text immediately and never stored.
type Record struct {
	Timestamp   string
	Severity    severity.Severity
	Workflow    string
	Module      string
	Code        errorcode.Code
	Location    string
	Description string
}

// AppendTo renders the record as one log line, newline-terminated, into
// buf.
func (r Record) AppendTo(buf *bytes.Buffer) {
	buf.WriteString(r.Timestamp)
	buf.WriteString(", ")
	buf.WriteString(string(r.Severity))
	buf.WriteString(", ")
	buf.WriteString(r.Workflow)
	buf.WriteString(", ")
	buf.WriteString(r.Module)
	buf.WriteByte(',')
	buf.WriteString(strconv.Itoa(int(r.Code)))
	buf.WriteString(", ")
	buf.WriteString(r.Location)
	buf.WriteString(", \"")
	buf.WriteString(r.Description)
	buf.WriteString("\"\n")
}

// String returns the rendered log line.
func (r Record) String() string {
	var buf bytes.Buffer
	r.AppendTo(&buf)
	return buf.String()
}

// Write renders one record stamped with the current time and writes it
// to w. It may be used directly in lieu of a Logger when a caller
// already holds a sink.
func Write(w io.Writer, sev severity.Severity, workflow, module string,
	code errorcode.Code, location, description string) error {
	r := Record{
		Timestamp:   timestamp.Now(),
		Severity:    sev,
		Workflow:    workflow,
		Module:      module,
		Code:        code,
		Location:    location,
		Description: description,
	}
	_, err := io.WriteString(w, r.String())
	return err
}
