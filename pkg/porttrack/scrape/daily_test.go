package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nclports/porttrack/pkg/porttrack/models"
)

const movementsHTML = `<html><body>
<div class="view-vessel-movement">
  <div class="view-content">
    <table>
      <thead>
        <tr><th>Date</th><th>Vessel</th><th>Movement</th><th>Berth</th></tr>
      </thead>
      <tbody>
        <tr><td>Tue 02 Sep14:30</td><td>PACIFIC TRIUMPH</td><td>Arrival</td><td>K4</td></tr>
        <tr><td>Tue 02 Sep16:00</td><td>GLOBAL HARMONY</td><td>Departure</td><td>D2</td></tr>
      </tbody>
    </table>
  </div>
</div>
</body></html>`

func TestParseMovements(t *testing.T) {
	movements, err := ParseMovements([]byte(movementsHTML), 2025)
	require.NoError(t, err)
	require.Len(t, movements, 2)

	first := movements[0]
	assert.Equal(t, time.Date(2025, 9, 2, 14, 30, 0, 0, time.UTC), first.Time)
	assert.True(t, first.Fields["Vessel"].Equal(models.Text("PACIFIC TRIUMPH")))
	assert.True(t, first.Fields["Movement"].Equal(models.Text("Arrival")))
	assert.Equal(t, models.KindDateTime, first.Fields["Date"].Kind())

	second := movements[1]
	assert.Equal(t, 16, second.Time.Hour())
	assert.True(t, second.Fields["Berth"].Equal(models.Text("D2")))
}

func TestParseMovementsMissingTable(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"no table at all", `<html><body><p>maintenance</p></body></html>`},
		{"table without tbody", `<div class="view-vessel-movement"><div class="view-content">
			<table><thead><tr><th>Date</th></tr></thead></table></div></div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movements, err := ParseMovements([]byte(tt.html), 2025)
			require.NoError(t, err)
			assert.Empty(t, movements)
		})
	}
}

func TestParseMovementsBadDate(t *testing.T) {
	html := `<div class="view-vessel-movement"><div class="view-content"><table>
		<thead><tr><th>Date</th><th>Vessel</th></tr></thead>
		<tbody><tr><td>sometime soon</td><td>MYSTERY SHIP</td></tr></tbody>
	</table></div></div>`

	_, err := ParseMovements([]byte(html), 2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sometime soon")
}

func TestFetchMovements(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write([]byte(movementsHTML))
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	movements, err := client.FetchMovements(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, movements, 2)

	// Requests carry one of the pooled browser User-Agents.
	assert.Contains(t, userAgents, gotUA)
}

func TestClientGetBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(5 * time.Second)
	_, err := client.Get(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
