//go:build linux

package temps

import (
	"context"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/afero"
)

// LinuxReader implements temperature monitoring for Linux and Android
type LinuxReader struct {
	*ZoneSampler
}

// newPlatformReader creates a new Linux temperature reader
func newPlatformReader(sysfsRoot afero.Fs) Reader {
	return &LinuxReader{ZoneSampler: NewZoneSampler(sysfsRoot)}
}

// GetInfo returns hwmon temperature sensors
func (r *LinuxReader) GetInfo(ctx context.Context) (*Info, error) {
	temps, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil && len(temps) == 0 {
		// gopsutil returns partial results alongside per-sensor warnings
		return nil, err
	}

	info := newInfo()
	for _, temp := range temps {
		info.add(&Sensor{
			Name:        temp.SensorKey,
			Label:       temp.SensorKey,
			Temperature: temp.Temperature,
			Critical:    temp.Critical,
			Max:         temp.High,
		})
	}

	return info, nil
}

func newInfo() *Info {
	return &Info{
		CPU:    []*Sensor{},
		GPU:    []*Sensor{},
		System: []*Sensor{},
		Drives: []*Sensor{},
	}
}

// add files a sensor under the category its name suggests
func (info *Info) add(sensor *Sensor) {
	name := strings.ToLower(sensor.Name)
	switch {
	case containsAny(name, []string{"cpu", "core", "processor", "k10temp", "coretemp"}):
		info.CPU = append(info.CPU, sensor)
	case containsAny(name, []string{"gpu", "nvidia", "amdgpu", "radeon"}):
		info.GPU = append(info.GPU, sensor)
	case containsAny(name, []string{"drive", "disk", "nvme", "sda", "sdb"}):
		info.Drives = append(info.Drives, sensor)
	default:
		info.System = append(info.System, sensor)
	}
}

func containsAny(str string, substrings []string) bool {
	for _, substr := range substrings {
		if strings.Contains(str, substr) {
			return true
		}
	}
	return false
}
