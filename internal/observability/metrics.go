package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/i474232898/weather-mock-mcp/internal/weather"
)

const namespace = "weather_mock"

// Metrics holds the Prometheus collectors for tool activity and self-checks.
type Metrics struct {
	CityLookups     *prometheus.CounterVec // labels: outcome={hit,miss}
	WeatherReadings *prometheus.CounterVec // labels: outcome={hit,miss}, condition
	Temperature     prometheus.Histogram
	SelfCheckOK     prometheus.Gauge
	SelfChecks      *prometheus.CounterVec // labels: result={ok,failed}
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CityLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "city_lookups_total",
			Help:      "get_cities calls by whether the country was known.",
		}, []string{"outcome"}),
		WeatherReadings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_readings_total",
			Help:      "get_weather readings by city resolution and condition.",
		}, []string{"outcome", "condition"}),
		Temperature: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "temperature_celsius",
			Help:      "Distribution of synthesized temperatures.",
			Buckets:   prometheus.LinearBuckets(weather.MinTemperature, 5, 10),
		}),
		SelfCheckOK: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "selfcheck_ok",
			Help:      "1 when the last catalog self-check passed, 0 otherwise.",
		}),
		SelfChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "selfchecks_total",
			Help:      "Self-check runs by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(
		m.CityLookups,
		m.WeatherReadings,
		m.Temperature,
		m.SelfCheckOK,
		m.SelfChecks,
	)

	return m
}

// CitiesListed implements weather.Recorder.
func (m *Metrics) CitiesListed(_ string, found bool) {
	m.CityLookups.WithLabelValues(outcome(found)).Inc()
}

// WeatherSynthesized implements weather.Recorder.
func (m *Metrics) WeatherSynthesized(r weather.Reading) {
	m.WeatherReadings.WithLabelValues(outcome(r.City != nil), string(r.Condition)).Inc()
	m.Temperature.Observe(r.Temperature)
}

// SelfCheckCompleted records the result of a self-check run.
func (m *Metrics) SelfCheckCompleted(err error) {
	if err != nil {
		m.SelfCheckOK.Set(0)
		m.SelfChecks.WithLabelValues("failed").Inc()
		return
	}
	m.SelfCheckOK.Set(1)
	m.SelfChecks.WithLabelValues("ok").Inc()
}

func outcome(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
