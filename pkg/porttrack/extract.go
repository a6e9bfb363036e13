package porttrack

import (
	"github.com/rs/zerolog/log"

	"github.com/nclports/porttrack/pkg/porttrack/models"
	"github.com/nclports/porttrack/pkg/porttrack/parser"
)

// ExtractWorkbook parses raw xlsx bytes and extracts every section
// table from the configured sheet.
func ExtractWorkbook(data []byte, opts ExtractOptions) (map[string]*models.SectionTable, error) {
	grids, err := parser.ParseWorkbook(data)
	if err != nil {
		return nil, err
	}

	grid, ok := grids[opts.SheetName]
	if !ok {
		return nil, NewStructureError("workbook has no sheet named %q", opts.SheetName)
	}

	tables, err := ExtractAllSections(grid, opts)
	if err != nil {
		return nil, err
	}

	log.Info().Int("sections", len(tables)).Msg("Parsed data sections")
	return tables, nil
}
