package temps

import (
	"context"

	"github.com/spf13/afero"
)

// Sensor represents an hwmon temperature sensor
type Sensor struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Temperature float64 `json:"temperature_celsius"`
	Critical    float64 `json:"critical_celsius"`
	Max         float64 `json:"max_celsius"`
}

// Info groups hwmon sensors by what they measure
type Info struct {
	CPU    []*Sensor `json:"cpu"`
	GPU    []*Sensor `json:"gpu"`
	System []*Sensor `json:"system"`
	Drives []*Sensor `json:"drives"`
}

// Reader interface for temperature monitoring
type Reader interface {
	// GetInfo returns hwmon sensors.
	GetInfo(ctx context.Context) (*Info, error)
	// Zones samples the thermal zones. It never fails.
	Zones() *Report
}

// NewReader creates a new temperature reader for the current platform.
// sysfs must be rooted at the sysfs mount point.
func NewReader(sysfs afero.Fs) Reader {
	return newPlatformReader(sysfs)
}
