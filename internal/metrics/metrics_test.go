package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/CristiGvl/picoSysMon/internal/cpu"
	"github.com/CristiGvl/picoSysMon/internal/hardware"
	"github.com/CristiGvl/picoSysMon/internal/temps"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot() hardware.Snapshot {
	return hardware.Snapshot{
		Cores: []cpu.CoreFrequency{cpu.Active(0, 1200000), cpu.Offline(1)},
		Thermal: temps.Report{Zones: []temps.Zone{
			{Index: 0, Label: "cpu", Temperature: 45},
		}},
	}
}

func TestObserve(t *testing.T) {
	m := New()
	m.Observe(snapshot())

	assert.Equal(t, 1.2e9, testutil.ToFloat64(m.coreFreq.WithLabelValues("0")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.coreOnline.WithLabelValues("0")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.coreOnline.WithLabelValues("1")))
	assert.Equal(t, 45.0, testutil.ToFloat64(m.zoneTemp.WithLabelValues("0", "cpu")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.coreCount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.samples))
	assert.Equal(t, 1, testutil.CollectAndCount(m.coreFreq))
}

func TestObserveDropsVanishedSeries(t *testing.T) {
	m := New()
	m.Observe(snapshot())
	m.Observe(hardware.Snapshot{Thermal: temps.Report{Zones: []temps.Zone{}, NoSensors: true}})

	assert.Equal(t, 0, testutil.CollectAndCount(m.coreFreq))
	assert.Equal(t, 0, testutil.CollectAndCount(m.zoneTemp))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.samples))
}

func TestHandler(t *testing.T) {
	m := New()
	m.Observe(snapshot())

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "picosysmon_cpu_core_frequency_hertz")
	assert.Contains(t, body, `picosysmon_thermal_zone_celsius{type="cpu",zone="0"} 45`)
	assert.Contains(t, body, "go_goroutines")
}
