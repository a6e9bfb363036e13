package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cast"

	"github.com/nclports/porttrack/pkg/porttrack/models"
)

// movementTableSelector locates the vessel movements table on the Port
// Authority page.
const movementTableSelector = ".view-vessel-movement .view-content table"

// movementTimeLayout matches the page's date cells once the current
// year is prefixed, e.g. "2026 Tue 02 Sep14:30". The page renders no
// space between the month and the time.
const movementTimeLayout = "2006 Mon 02 Jan15:04"

// FetchMovements downloads and parses the daily vessel movements table.
// A missing or restructured table yields an empty result with a
// warning, matching how the page behaves outside operating hours.
func (c *Client) FetchMovements(ctx context.Context, url string) ([]models.Movement, error) {
	log.Info().Msg("Fetching daily vessel movements")

	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	return ParseMovements(body, time.Now().Year())
}

// ParseMovements extracts vessel movements from the page HTML. The
// year parameter supplies the year absent from the page's date cells.
func ParseMovements(html []byte, year int) ([]models.Movement, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse movements page: %w", err)
	}

	table := doc.Find(movementTableSelector).First()
	thead := table.Find("thead").First()
	tbody := table.Find("tbody").First()
	if table.Length() == 0 || thead.Length() == 0 || tbody.Length() == 0 {
		log.Warn().Msg("Table structure has changed or is missing")
		return nil, nil
	}

	var headings []string
	thead.Find("th").Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, strings.TrimSpace(s.Text()))
	})
	log.Debug().Strs("headings", headings).Msg("Found table headings")

	var movements []models.Movement
	var rowErr error
	tbody.Find("tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		var cells []string
		row.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(cells) == 0 {
			return true
		}

		when, err := time.Parse(movementTimeLayout, fmt.Sprintf("%d %s", year, cells[0]))
		if err != nil {
			rowErr = fmt.Errorf("parse movement time %q: %w", cells[0], err)
			return false
		}

		fields := make(models.Record, len(cells))
		for i, cell := range cells {
			if i >= len(headings) {
				break
			}
			if i == 0 {
				fields[headings[i]] = models.DateTime(when)
				continue
			}
			fields[headings[i]] = promoteCell(cell)
		}

		movements = append(movements, models.Movement{Time: when, Fields: fields})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	log.Info().Int("count", len(movements)).Msg("Found vessel movements")
	return movements, nil
}

// promoteCell types a table cell: numeric text becomes a number,
// anything else non-empty stays text.
func promoteCell(s string) models.CellValue {
	if s == "" {
		return models.Empty()
	}
	if f, err := cast.ToFloat64E(s); err == nil {
		return models.Number(f)
	}
	return models.Text(s)
}
