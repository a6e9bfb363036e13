// Package parser turns raw workbook bytes into grids and extracts
// section tables from them.
package parser

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/nclports/porttrack/pkg/porttrack/models"
)

// ParseWorkbook reads xlsx bytes and returns one grid per sheet, keyed
// by sheet name. No header inference is performed; cells are promoted to
// numbers where they parse as such and kept as text otherwise.
func ParseWorkbook(data []byte) (map[string]models.Grid, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	grids := make(map[string]models.Grid)
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}

		cells := make([][]models.CellValue, len(rows))
		for i, row := range rows {
			cells[i] = make([]models.CellValue, len(row))
			for j, raw := range row {
				cells[i][j] = parseCell(raw)
			}
		}
		grids[sheetName] = models.NewGrid(cells)
	}

	return grids, nil
}

// parseCell promotes a raw cell string to a typed value. Numbers are
// detected first; everything else non-empty stays text.
func parseCell(s string) models.CellValue {
	if s == "" {
		return models.Empty()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.Number(float64(i))
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.Number(f)
	}
	return models.Text(s)
}
