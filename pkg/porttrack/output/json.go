// Package output writes extracted section tables as JSON files.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/nclports/porttrack/pkg/porttrack/models"
)

// Filename returns the output file name for a section:
// lowercased, spaces replaced with underscores, ".json" appended.
func Filename(section string) string {
	return strings.ReplaceAll(strings.ToLower(section), " ", "_") + ".json"
}

// WriteSections writes one pretty-printed JSON file per section table
// into dir, creating the directory if needed. Each file holds a single
// object keyed by the section name, with the section's records as an
// array.
func WriteSections(dir string, tables map[string]*models.SectionTable) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}

	for name, table := range tables {
		filename := Filename(name)
		log.Info().Str("file", filename).Msg("Saving section")

		records := table.Records
		if records == nil {
			records = []models.Record{}
		}
		wrapped := map[string][]models.Record{name: records}
		data, err := json.MarshalIndent(wrapped, "", "    ")
		if err != nil {
			return fmt.Errorf("marshal section %q: %w", name, err)
		}

		path := filepath.Join(dir, filename)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %q: %w", path, err)
		}
	}

	return nil
}
