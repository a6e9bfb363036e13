// Package porttrack extracts per-section statistics tables from the
// Port of Newcastle monthly workbook.
package porttrack

// ExtractOptions configures section extraction from a workbook.
type ExtractOptions struct {
	// SheetName is the sheet holding the statistics grid.
	SheetName string
	// HeaderRow is the zero-based row whose non-empty cells mark
	// section starts.
	HeaderRow int
	// DataStartRow is the zero-based first row of section data. Its
	// first row is promoted to column headers. Must be greater than
	// HeaderRow.
	DataStartRow int
	// DateColumn is the column header renamed to "Date" and parsed as
	// a date-time.
	DateColumn string
	// DateLayout is the fixed layout date cells must match.
	DateLayout string
}

// DefaultExtractOptions returns the options matching the published
// Port of Newcastle workbook layout.
func DefaultExtractOptions() ExtractOptions {
	return ExtractOptions{
		SheetName:    "Port of Newcastle",
		HeaderRow:    2,
		DataStartRow: 3,
		DateColumn:   "Month",
		DateLayout:   "2006-01-02 15:04:05",
	}
}
