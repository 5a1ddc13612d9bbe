// Package ingest turns one uploaded spreadsheet file into seating records.
// CSV files are parsed in process; other spreadsheet formats are delegated
// to an external worker command that parses and persists the rows itself and
// reports a JSON summary on stdout.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rdharshinir/student-app/internal/model"
)

// DefaultDate is assigned to rows that carry no date column when the caller
// supplied no override.
const DefaultDate = "25.10.2025"

// ErrUnsupportedFormat is returned for file extensions no parser handles and
// no external worker is configured for.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// Parser extracts seating rows from a spreadsheet file on disk.
// Implementations must not persist anything; persistence is the Service's
// concern.  dateOverride, when non-empty, replaces whatever date the rows
// carry.
type Parser interface {
	Parse(ctx context.Context, path, dateOverride string) ([]model.SeatingRecord, error)
}

// Summary reports the outcome of one completed ingest.
type Summary struct {
	Inserted int `json:"inserted"`
}

// MissingColumnsError names the required header columns absent from an
// uploaded file.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}
