package scrape

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"
)

// openDataHost marks the anchor on the portal page that leads to the
// Transport Open Data dataset page.
const openDataHost = "opendata.transport.nsw.gov.au"

// ResolveDownloadURL follows the freight-data portal page to the open
// data dataset page and returns the current workbook download link.
// Any failure along the way falls back to the static known URL.
func (c *Client) ResolveDownloadURL(ctx context.Context, portalURL, fallbackURL string) string {
	url, err := c.resolveDynamic(ctx, portalURL)
	if err != nil {
		log.Warn().Err(err).Str("fallback", fallbackURL).Msg("Dynamic URL resolution failed, using static URL")
		return fallbackURL
	}

	// The resource URL has been observed to change between releases;
	// note when the saved static URL is stale.
	if url != fallbackURL {
		log.Info().Str("url", url).Msg("Saved static URL different to dynamic URL, using new URL")
	}
	return url
}

func (c *Client) resolveDynamic(ctx context.Context, portalURL string) (string, error) {
	log.Info().Msg("Fetching dynamic URL from NSW Transport website")

	body, err := c.Get(ctx, portalURL)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse portal page: %w", err)
	}

	datasetURL := findHref(doc, "a", func(href string) bool {
		return strings.Contains(href, openDataHost)
	})
	if datasetURL == "" {
		return "", fmt.Errorf("no link to %s on portal page", openDataHost)
	}

	body, err = c.Get(ctx, datasetURL)
	if err != nil {
		return "", err
	}

	doc, err = goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse dataset page: %w", err)
	}

	downloadURL := findHref(doc, "a.resource-url-analytics", func(string) bool { return true })
	if downloadURL == "" {
		return "", fmt.Errorf("no resource download link on dataset page")
	}

	log.Debug().Str("url", downloadURL).Msg("Found dynamic URL")
	return downloadURL, nil
}

// findHref returns the href of the first element matching the selector
// whose href passes the filter.
func findHref(doc *goquery.Document, selector string, match func(string) bool) string {
	var found string
	doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, ok := s.Attr("href")
		if ok && href != "" && match(href) {
			found = href
			return false
		}
		return true
	})
	return found
}

// FetchWorkbook resolves the current download URL and retrieves the
// monthly statistics workbook bytes.
func (c *Client) FetchWorkbook(ctx context.Context, portalURL, fallbackURL string) ([]byte, error) {
	log.Info().Msg("Downloading Excel file with monthly data")

	url := c.ResolveDownloadURL(ctx, portalURL, fallbackURL)
	data, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	log.Info().Int("bytes", len(data)).Msg("Downloaded workbook")
	return data, nil
}
