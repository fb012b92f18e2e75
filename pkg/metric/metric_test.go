package metric

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCounterWithRegistry(reg, "test_requests_total", "Test requests.", "status")

	c.Increment("200")
	c.Increment("200")
	c.Increment("500")

	vec := c.(*Counter).vec
	assert.InDelta(t, 2, testutil.ToFloat64(vec.WithLabelValues("200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(vec.WithLabelValues("500")), 0)

	NopCounter{}.Increment("ignored")
}

func TestHistogramStopwatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	sw := NewStopwatchWithRegistry(reg, "test_span_duration_seconds", "Test spans.")

	base := time.Unix(0, 0)
	ticks := []time.Time{base, base.Add(250 * time.Millisecond)}
	sw.now = func() time.Time {
		now := ticks[0]
		ticks = ticks[1:]
		return now
	}

	sp := sw.Start("build")
	sp.Stop()
	sp.Stop()

	n, err := testutil.GatherAndCount(reg, "test_span_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	srv := httptest.NewServer(GetHandlerForRegistry(reg))
	defer srv.Close()

	res, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer res.Body.Close()

	buf := new(strings.Builder)
	_, err = io.Copy(buf, res.Body)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `test_span_duration_seconds_sum{span="build"} 0.25`)
	assert.Contains(t, buf.String(), `test_span_duration_seconds_count{span="build"} 1`)
}

func TestNopStopwatch(t *testing.T) {
	var sw Stopwatch = NopStopwatch{}
	sw.Start("anything").Stop()
}
