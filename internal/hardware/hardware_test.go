package hardware_test

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/CristiGvl/picoSysMon/internal/cpu"
	"github.com/CristiGvl/picoSysMon/internal/hardware"
	"github.com/CristiGvl/picoSysMon/internal/temps"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func deviceFs(t *testing.T) afero.Fs {
	fsys := afero.NewMemMapFs()
	for i := 0; i < 2; i++ {
		write(t, fsys, fmt.Sprintf("/devices/system/cpu/cpu%d/cpufreq/scaling_cur_freq", i), "1200000\n")
	}
	write(t, fsys, "/class/thermal/thermal_zone0/type", "cpu\n")
	write(t, fsys, "/class/thermal/thermal_zone0/temp", "45000\n")
	write(t, fsys, "/class/thermal/thermal_zone1/type", "battery\n")
	write(t, fsys, "/class/thermal/thermal_zone1/temp", "-999999\n")
	return fsys
}

func TestSample(t *testing.T) {
	snap := hardware.NewSysfsSampler(deviceFs(t)).Sample()

	assert.Equal(t, []cpu.CoreFrequency{cpu.Active(0, 1200000), cpu.Active(1, 1200000)}, snap.Cores)
	assert.Equal(t, temps.Report{Zones: []temps.Zone{{Index: 0, Label: "cpu", Temperature: 45}}}, snap.Thermal)
}

func TestSampleEmptyDevice(t *testing.T) {
	snap := hardware.NewSysfsSampler(afero.NewMemMapFs()).Sample()

	assert.Empty(t, snap.Cores)
	assert.True(t, snap.Thermal.NoSensors)
}

func TestSampleIdempotent(t *testing.T) {
	s := hardware.NewSysfsSampler(deviceFs(t))

	assert.Equal(t, s.Sample(), s.Sample())
}

func TestSampleConcurrent(t *testing.T) {
	s := hardware.NewSysfsSampler(deviceFs(t))
	want := s.Sample()

	var wg sync.WaitGroup
	results := make([]hardware.Snapshot, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Sample()
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

type fixedCores []cpu.CoreFrequency

func (f fixedCores) CoreFrequencies() []cpu.CoreFrequency { return f }

type fixedZones struct {
	report temps.Report
}

func (f fixedZones) Zones() *temps.Report {
	r := f.report
	return &r
}

func TestNewSamplerUsesSources(t *testing.T) {
	cores := fixedCores{cpu.Active(0, 1), cpu.Offline(1)}
	zones := fixedZones{report: temps.Report{Zones: []temps.Zone{}, NoSensors: true}}

	snap := hardware.NewSampler(cores, zones).Sample()

	assert.Equal(t, []cpu.CoreFrequency(cores), snap.Cores)
	assert.True(t, snap.Thermal.NoSensors)
}
