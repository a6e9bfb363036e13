package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/nclports/porttrack/pkg/porttrack/models"
)

func TestParseWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	require.NoError(t, f.SetCellValue(sheetName, "A1", "Header1"))
	require.NoError(t, f.SetCellValue(sheetName, "B1", "Header2"))
	require.NoError(t, f.SetCellValue(sheetName, "A2", 100))
	require.NoError(t, f.SetCellValue(sheetName, "B2", 200.5))
	require.NoError(t, f.SetCellValue(sheetName, "A3", "Text"))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	grids, err := ParseWorkbook(buf.Bytes())
	require.NoError(t, err)

	grid, ok := grids[sheetName]
	require.True(t, ok)
	assert.Equal(t, 3, grid.Rows())
	assert.Equal(t, 2, grid.Cols())

	assert.True(t, grid.Cell(0, 0).Equal(models.Text("Header1")))
	assert.True(t, grid.Cell(1, 0).Equal(models.Number(100)))
	assert.True(t, grid.Cell(1, 1).Equal(models.Number(200.5)))
	assert.True(t, grid.Cell(2, 0).Equal(models.Text("Text")))

	// Ragged row: B3 was never set.
	assert.True(t, grid.Cell(2, 1).IsEmpty())
	// Out-of-range access yields the empty value.
	assert.True(t, grid.Cell(99, 99).IsEmpty())
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	_, err := ParseWorkbook([]byte("definitely not xlsx"))
	require.Error(t, err)
}

func TestParseCell(t *testing.T) {
	tests := []struct {
		input    string
		expected models.CellValue
	}{
		{"123", models.Number(123)},
		{"123.45", models.Number(123.45)},
		{"-100", models.Number(-100)},
		{"hello", models.Text("hello")},
		{"2023-01-01 00:00:00", models.Text("2023-01-01 00:00:00")},
		{"", models.Empty()},
	}

	for _, tt := range tests {
		result := parseCell(tt.input)
		if !result.Equal(tt.expected) {
			t.Errorf("parseCell(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
