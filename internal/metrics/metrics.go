// Package metrics exposes hardware snapshots as Prometheus gauges.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/CristiGvl/picoSysMon/internal/cpu"
	"github.com/CristiGvl/picoSysMon/internal/hardware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "picosysmon"

// Metrics owns a private registry so several instances can coexist in tests.
type Metrics struct {
	registry   *prometheus.Registry
	handler    http.Handler
	coreFreq   *prometheus.GaugeVec
	coreOnline *prometheus.GaugeVec
	zoneTemp   *prometheus.GaugeVec
	coreCount  prometheus.Gauge
	samples    prometheus.Counter
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		coreFreq: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cpu_core_frequency_hertz",
			Help:      "Current clock of each online core.",
		}, []string{"core"}),
		coreOnline: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cpu_core_online",
			Help:      "1 if the core reported a clock, 0 if it is sleeping or offline.",
		}, []string{"core"}),
		zoneTemp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "thermal_zone_celsius",
			Help:      "Temperature of each plausible thermal zone.",
		}, []string{"zone", "type"}),
		coreCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cpu_cores_detected",
			Help:      "Number of cores found by the last scan.",
		}),
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "samples_total",
			Help:      "Hardware snapshots taken.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.coreFreq,
		m.coreOnline,
		m.zoneTemp,
		m.coreCount,
		m.samples,
	)
	m.handler = promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})

	return m
}

// Observe replaces the gauges with the contents of snap. Cores and zones
// that disappeared since the previous snapshot are dropped.
func (m *Metrics) Observe(snap hardware.Snapshot) {
	m.samples.Inc()

	m.coreFreq.Reset()
	m.coreOnline.Reset()
	for _, c := range snap.Cores {
		core := strconv.Itoa(c.Index)
		if c.State == cpu.CoreActive {
			m.coreOnline.WithLabelValues(core).Set(1)
			m.coreFreq.WithLabelValues(core).Set(float64(c.FreqKHz) * 1000)
			continue
		}
		m.coreOnline.WithLabelValues(core).Set(0)
	}
	m.coreCount.Set(float64(len(snap.Cores)))

	m.zoneTemp.Reset()
	for _, z := range snap.Thermal.Zones {
		m.zoneTemp.WithLabelValues(strconv.Itoa(z.Index), z.Label).Set(z.Temperature)
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return m.handler
}
