// Copyright (c) 2025 The Freya developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	// 2 ways of accessing it - useful to avoid lookups
	count1 := Counter("count1")
	Counter("count2")
	countVec := CounterVec("count_vec1", []string{"zeroOrOne"})
	gauge1 := Gauge("gauge1")
	hist := Histogram("hist1", nil)

	count1.Add(1)
	for range 5 {
		Counter("count2").Add(1)
	}

	totalCountVec := 0
	for i := range 4 {
		countVec.AddWithLabel(int64(i), map[string]string{"zeroOrOne": strconv.Itoa(i % 2)})
		totalCountVec += i
	}

	gauge1.Add(10)
	gauge1.Set(7)

	histTotal := 0
	for i := range 6 {
		hist.Observe(int64(i))
		histTotal += i
	}

	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer}
	metricFamilies, err := gatherers.Gather()
	require.NoError(t, err)

	families := make(map[string]*dto.MetricFamily)
	for _, mf := range metricFamilies {
		families[mf.GetName()] = mf
	}

	require.Equal(t, float64(1), families["freya_metrics_count1"].Metric[0].GetCounter().GetValue())
	require.Equal(t, float64(5), families["freya_metrics_count2"].Metric[0].GetCounter().GetValue())
	require.Equal(t, float64(7), families["freya_metrics_gauge1"].Metric[0].GetGauge().GetValue())
	require.Equal(t, float64(histTotal), families["freya_metrics_hist1"].Metric[0].GetHistogram().GetSampleSum())

	sumVec := float64(0)
	for _, m := range families["freya_metrics_count_vec1"].Metric {
		sumVec += m.GetCounter().GetValue()
	}
	require.Equal(t, float64(totalCountVec), sumVec)

	server := httptest.NewServer(HTTPHandler())
	t.Cleanup(func() {
		server.Close()
	})

	resp, err := http.Get(server.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, resp.StatusCode, 200)
}
