package auth0endpoints

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopMetrics(t *testing.T) {
	metrics := &NoopMetrics{}

	metrics.IncCounter("test_counter", map[string]string{"tag": "value"})
	metrics.ObserveHistogram("test_histogram", 1.5, map[string]string{"tag": "value"})
	metrics.SetGauge("test_gauge", 2.5, map[string]string{"tag": "value"})
}

func TestPrometheusMetrics(t *testing.T) {
	metrics := NewPrometheusMetrics(prometheus.NewRegistry())
	promMetrics, ok := metrics.(*PrometheusMetrics)
	require.True(t, ok)

	t.Run("IncCounter", func(t *testing.T) {
		tags := map[string]string{"tag1": "value1", "tag2": "value2"}

		metrics.IncCounter("test_counter", tags)
		metrics.IncCounter("test_counter", tags)

		counter, ok := promMetrics.counters["test_counter"]
		require.True(t, ok, "Counter should be registered")

		metric := &dto.Metric{}
		err := counter.With(prometheus.Labels(tags)).(prometheus.Metric).Write(metric)
		assert.NoError(t, err)
		assert.Equal(t, float64(2), *metric.Counter.Value)
	})

	t.Run("ObserveHistogram", func(t *testing.T) {
		metrics.ObserveHistogram("test_histogram", 2.5, map[string]string{"tag1": "value1"})

		hist, ok := promMetrics.histograms["test_histogram"]
		assert.True(t, ok, "Histogram should be registered")
		assert.NotNil(t, hist)
	})

	t.Run("SetGauge", func(t *testing.T) {
		tags := map[string]string{"tag1": "value1"}
		metrics.SetGauge("test_gauge", 4.5, tags)

		gauge, ok := promMetrics.gauges["test_gauge"]
		require.True(t, ok, "Gauge should be registered")

		metric := &dto.Metric{}
		err := gauge.With(prometheus.Labels(tags)).(prometheus.Metric).Write(metric)
		assert.NoError(t, err)
		assert.Equal(t, 4.5, *metric.Gauge.Value)
	})
}

func TestNew_RecordsMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewPrometheusMetrics(registry)

	for _, domain := range []string{"tenant.auth0.com", "a.auth0.com", "tenant.eu.auth0.com", "custom.example.com"} {
		_, err := New("id", domain, WithMetrics(metrics))
		require.NoError(t, err)
	}

	a, err := New("id", "", WithMetrics(metrics))
	require.NoError(t, err)
	_, err = a.AuthorizeURL()
	require.Error(t, err)

	counters := metrics.(*PrometheusMetrics).counters
	resolutions := counters[MetricResolutions]
	require.NotNil(t, resolutions)
	assert.Equal(t, float64(2), testutil.ToFloat64(resolutions.WithLabelValues(string(SourceDefaultCDN))))
	assert.Equal(t, float64(1), testutil.ToFloat64(resolutions.WithLabelValues(string(SourceRegionalCDN))))
	assert.Equal(t, float64(1), testutil.ToFloat64(resolutions.WithLabelValues(string(SourceDomain))))
	assert.Equal(t, float64(1), testutil.ToFloat64(resolutions.WithLabelValues(string(SourceNone))))

	buildErrors := counters[MetricURLBuildErrors]
	require.NotNil(t, buildErrors)
	assert.Equal(t, float64(1), testutil.ToFloat64(buildErrors.With(prometheus.Labels{
		"endpoint": "authorize",
		"code":     ErrorCodeDomainMissing,
	})))
}

func TestKeys(t *testing.T) {
	result := keys(map[string]string{
		"key2": "value2",
		"key1": "value1",
		"key3": "value3",
	})

	assert.Equal(t, []string{"key1", "key2", "key3"}, result)
}

func TestPrometheusMetrics_SharedRegisterer(t *testing.T) {
	registry := prometheus.NewRegistry()

	var sinks []*PrometheusMetrics
	for _, domain := range []string{"tenant.auth0.com", "other.auth0.com"} {
		metrics := NewPrometheusMetrics(registry)
		require.NotPanics(t, func() {
			_, err := New("id", domain, WithMetrics(metrics))
			require.NoError(t, err)
		})
		sinks = append(sinks, metrics.(*PrometheusMetrics))
	}

	first := sinks[0].counters[MetricResolutions]
	second := sinks[1].counters[MetricResolutions]
	require.NotNil(t, first)
	assert.Same(t, first, second, "both sinks should feed the registered collector")
	assert.Equal(t, float64(2), testutil.ToFloat64(first.WithLabelValues(string(SourceDefaultCDN))))

	require.NotPanics(t, func() {
		sinks[0].SetGauge("shared_gauge", 1, map[string]string{"tag": "a"})
		sinks[1].SetGauge("shared_gauge", 3, map[string]string{"tag": "a"})
		sinks[0].ObserveHistogram("shared_histogram", 1, map[string]string{"tag": "a"})
		sinks[1].ObserveHistogram("shared_histogram", 2, map[string]string{"tag": "a"})
	})
	assert.Equal(t, float64(3), testutil.ToFloat64(sinks[0].gauges["shared_gauge"].WithLabelValues("a")))
	assert.Same(t, sinks[0].histograms["shared_histogram"], sinks[1].histograms["shared_histogram"])
}
