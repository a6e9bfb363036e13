package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newPortalServer serves a portal page linking to a dataset page on the
// same server. The dataset link carries the open-data host as a query
// value so the resolver's substring match stays on the test server.
func newPortalServer(t *testing.T, workbook []byte) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	mux.HandleFunc("/portal", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body>
			<a href="%s/other">Unrelated</a>
			<a href="%s/dataset?site=opendata.transport.nsw.gov.au">Open Data</a>
		</body></html>`, server.URL, server.URL)
	})
	mux.HandleFunc("/dataset", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body>
			<a class="btn" href="%s/nope">Not this one</a>
			<a class="resource-url-analytics" href="%s/download/port-of-newcastle.xlsx">Download</a>
		</body></html>`, server.URL, server.URL)
	})
	mux.HandleFunc("/download/port-of-newcastle.xlsx", func(w http.ResponseWriter, r *http.Request) {
		w.Write(workbook)
	})

	return server
}

func TestResolveDownloadURL(t *testing.T) {
	server := newPortalServer(t, nil)
	client := NewClient(5 * time.Second)

	url := client.ResolveDownloadURL(context.Background(), server.URL+"/portal", "https://example.invalid/static.xlsx")
	assert.Equal(t, server.URL+"/download/port-of-newcastle.xlsx", url)
}

func TestResolveDownloadURLFallback(t *testing.T) {
	const fallback = "https://example.invalid/static.xlsx"
	client := NewClient(5 * time.Second)

	t.Run("portal unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "down", http.StatusInternalServerError)
		}))
		defer server.Close()

		url := client.ResolveDownloadURL(context.Background(), server.URL, fallback)
		assert.Equal(t, fallback, url)
	})

	t.Run("no open data link", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `<html><body><a href="/elsewhere">Nothing here</a></body></html>`)
		}))
		defer server.Close()

		url := client.ResolveDownloadURL(context.Background(), server.URL, fallback)
		assert.Equal(t, fallback, url)
	})
}

func TestFetchWorkbook(t *testing.T) {
	workbook := []byte("PK\x03\x04 pretend xlsx payload")
	server := newPortalServer(t, workbook)

	client := NewClient(5 * time.Second)
	data, err := client.FetchWorkbook(context.Background(), server.URL+"/portal", "https://example.invalid/static.xlsx")
	require.NoError(t, err)
	assert.Equal(t, workbook, data)
}
