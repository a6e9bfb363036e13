package models

// SectionRange identifies one logically distinct block of columns within
// the main data sheet, derived from a labeled header cell. The column
// range is half-open: [Start, End).
type SectionRange struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Record is one row of a section, as a column-header to value mapping
// after header promotion.
type Record map[string]CellValue

// SectionTable is the extracted form of one section: its records in
// original row order, plus the column keys in selection order (date
// column first).
type SectionTable struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}
