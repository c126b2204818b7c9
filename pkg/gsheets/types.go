package gsheets

import (
	"errors"
	"regexp"
)

const (
	// DefaultRange covers the first sheet of a spreadsheet.
	DefaultRange = "A1:Z"

	// DefaultMaxRows caps how many rows are pulled into a prompt.
	DefaultMaxRows = 200
)

// ErrNotSpreadsheet is returned when a reference names no Google Sheets document.
var ErrNotSpreadsheet = errors.New("gsheets: reference is not a Google Sheets URL or ID")

var (
	urlIDRe  = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)
	bareIDRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{25,}$`)
)

// ReadRequest selects the cells to read.
type ReadRequest struct {
	SpreadsheetID string
	Range         string // defaults to DefaultRange
	MaxRows       int    // defaults to DefaultMaxRows
}
