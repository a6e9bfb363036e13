package porttrack

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nclports/porttrack/pkg/porttrack/models"
)

// DateKey is the canonical name given to the date column in extracted
// records.
const DateKey = "Date"

// yearKey is dropped from records as redundant with the date column.
const yearKey = "Year"

// FindSectionRanges scans the header row left to right. Each non-empty
// cell starts a section named by its value; the section's column range
// runs up to the next non-empty header cell, or to the grid's column
// count for the last section.
func FindSectionRanges(grid models.Grid, headerRow int) ([]models.SectionRange, error) {
	var ranges []models.SectionRange
	for col := 0; col < grid.Cols(); col++ {
		cell := grid.Cell(headerRow, col)
		if cell.IsEmpty() {
			continue
		}
		if n := len(ranges); n > 0 {
			ranges[n-1].End = col
		}
		ranges = append(ranges, models.SectionRange{Name: cell.String(), Start: col})
	}

	if len(ranges) == 0 {
		return nil, NewStructureError("header row %d contains no section headings", headerRow)
	}
	ranges[len(ranges)-1].End = grid.Cols()
	return ranges, nil
}

// ExtractSection reshapes one section's column range into a table. The
// date column (column 0) is always selected first, the first data row is
// promoted to record keys, a "Year" column is dropped, and the
// configured date column is renamed to "Date" with its values parsed
// against the fixed layout.
func ExtractSection(grid models.Grid, rng models.SectionRange, opts ExtractOptions) (*models.SectionTable, error) {
	cols := []int{0}
	for c := rng.Start; c < rng.End; c++ {
		if c != 0 {
			cols = append(cols, c)
		}
	}

	// Header promotion: the first selected row names the columns.
	type column struct {
		key    string
		index  int
		isDate bool
	}
	var columns []column
	for _, c := range cols {
		key := grid.Cell(opts.DataStartRow, c).String()
		if key == yearKey {
			continue
		}
		isDate := key == opts.DateColumn
		if isDate {
			key = DateKey
		}
		columns = append(columns, column{key: key, index: c, isDate: isDate})
	}

	table := &models.SectionTable{Name: rng.Name}
	for _, col := range columns {
		table.Columns = append(table.Columns, col.key)
	}

	for row := opts.DataStartRow + 1; row < grid.Rows(); row++ {
		record := make(models.Record, len(columns))
		for _, col := range columns {
			cell := grid.Cell(row, col.index)
			if col.isDate {
				parsed, err := parseDateCell(cell, opts.DateLayout)
				if err != nil {
					return nil, &ParseError{
						Section: rng.Name,
						Column:  col.key,
						Value:   cell.String(),
						Err:     err,
					}
				}
				cell = parsed
			}
			record[col.key] = cell
		}
		table.Records = append(table.Records, record)
	}

	return table, nil
}

// parseDateCell converts a date-column cell to a DateTime value using
// the fixed layout. Cells that do not match fail the section.
func parseDateCell(cell models.CellValue, layout string) (models.CellValue, error) {
	if cell.Kind() == models.KindDateTime {
		return cell, nil
	}
	t, err := time.Parse(layout, cell.String())
	if err != nil {
		return models.Empty(), err
	}
	return models.DateTime(t), nil
}

// ExtractAllSections discovers section ranges and extracts each one.
// A section that fails extraction is logged and skipped so that format
// drift in one section does not lose the others; if no section
// survives, the whole operation fails with ErrNoSectionsParsed.
func ExtractAllSections(grid models.Grid, opts ExtractOptions) (map[string]*models.SectionTable, error) {
	if err := validateGrid(grid, opts); err != nil {
		return nil, err
	}

	ranges, err := FindSectionRanges(grid, opts.HeaderRow)
	if err != nil {
		return nil, err
	}

	tables := make(map[string]*models.SectionTable, len(ranges))
	for _, rng := range ranges {
		table, err := ExtractSection(grid, rng, opts)
		if err != nil {
			log.Warn().
				Str("section", rng.Name).
				Err(err).
				Msg("Skipping section")
			continue
		}
		tables[table.Name] = table
	}

	if len(tables) == 0 {
		return nil, ErrNoSectionsParsed
	}
	return tables, nil
}

// validateGrid rejects grids that cannot possibly hold the expected
// layout before any section work starts.
func validateGrid(grid models.Grid, opts ExtractOptions) error {
	if opts.HeaderRow >= opts.DataStartRow {
		return NewStructureError("header row %d must precede data start row %d",
			opts.HeaderRow, opts.DataStartRow)
	}
	if grid.Rows() <= opts.DataStartRow {
		return NewStructureError("sheet has %d rows, need more than %d",
			grid.Rows(), opts.DataStartRow)
	}
	for col := 0; col < grid.Cols(); col++ {
		if !grid.Cell(opts.HeaderRow, col).IsEmpty() {
			return nil
		}
	}
	return NewStructureError("header row %d contains no section headings", opts.HeaderRow)
}
