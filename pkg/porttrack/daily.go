package porttrack

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/nclports/porttrack/pkg/porttrack/config"
	"github.com/nclports/porttrack/pkg/porttrack/models"
	"github.com/nclports/porttrack/pkg/porttrack/scrape"
)

// RunDaily scrapes the daily vessel movements table and returns the
// parsed movements.
func RunDaily(ctx context.Context, cfg *config.Config) ([]models.Movement, error) {
	log.Info().Msg("Starting daily movements scraper")

	client := scrape.NewClient(cfg.HTTPTimeout)
	movements, err := client.FetchMovements(ctx, cfg.MovementsURL)
	if err != nil {
		return nil, err
	}

	log.Info().Int("count", len(movements)).Msg("Daily movements scraping completed")
	return movements, nil
}
