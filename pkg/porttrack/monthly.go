package porttrack

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/nclports/porttrack/pkg/porttrack/config"
	"github.com/nclports/porttrack/pkg/porttrack/output"
	"github.com/nclports/porttrack/pkg/porttrack/scrape"
)

// RunMonthly downloads the monthly statistics workbook, extracts its
// section tables and writes one JSON file per section into outputDir.
func RunMonthly(ctx context.Context, cfg *config.Config, outputDir string) error {
	log.Info().Msg("Starting monthly data scraper")

	client := scrape.NewClient(cfg.HTTPTimeout)
	data, err := client.FetchWorkbook(ctx, cfg.PortalURL, cfg.FallbackExcelURL)
	if err != nil {
		return err
	}

	tables, err := ExtractWorkbook(data, DefaultExtractOptions())
	if err != nil {
		return err
	}

	if err := output.WriteSections(outputDir, tables); err != nil {
		return err
	}

	log.Info().Msg("Monthly data scraping completed")
	return nil
}
