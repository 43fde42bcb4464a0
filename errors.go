package pgelog

import (
	"errors"
	"fmt"

	"github.com/pgekit/pgelog/errorcode"
)

// ErrClosed is returned by any operation attempted after the logger
// has been finalized.
var ErrClosed = errors.New("pgelog: logger is closed")

// FatalError is returned by Critical after the log has been finalized
// and persisted. Receiving one means the workflow hit an unrecoverable
// error and is expected to stop.
type FatalError struct {
	Module      string
	Code        errorcode.Code
	Description string
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("pgelog: critical error in %s (code %d): %s",
		e.Module, e.Code, e.Description)
}
