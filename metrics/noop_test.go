// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	server := httptest.NewServer(HTTPHandler())

	t.Cleanup(func() {
		server.Close()
	})

	// meters are inert but must not break before initialization
	count := Counter("noop_count")
	count.Add(1)

	CounterVec("noop_count_vec", []string{"type"}).
		AddWithLabel(1, map[string]string{"thisIsNonsense": "butDoesntBreak"})

	gauge := Gauge("noop_gauge")
	gauge.Add(3)
	gauge.Set(-1)

	Histogram("noop_hist", nil).Observe(42)

	resp, err := http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	// nothing is served by the noop implementation
	require.Equal(t, resp.StatusCode, 404)
}
