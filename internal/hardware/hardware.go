// Package hardware combines the per-core frequency scan and the thermal zone
// scan into a single immutable Snapshot for display.
package hardware

import (
	"github.com/CristiGvl/picoSysMon/internal/cpu"
	"github.com/CristiGvl/picoSysMon/internal/temps"
	"github.com/spf13/afero"
)

// CoreSource yields per-core clock samples.
type CoreSource interface {
	CoreFrequencies() []cpu.CoreFrequency
}

// ZoneSource yields thermal zone samples.
type ZoneSource interface {
	Zones() *temps.Report
}

// Snapshot is one poll of the hardware. It carries no timestamp, so two
// polls of unchanged hardware compare equal.
type Snapshot struct {
	Cores   []cpu.CoreFrequency `json:"cores"`
	Thermal temps.Report        `json:"thermal"`
}

// Sampler takes Snapshots. Every call is independent.
type Sampler struct {
	cores CoreSource
	zones ZoneSource
}

// NewSampler creates a Sampler from explicit sources.
func NewSampler(cores CoreSource, zones ZoneSource) *Sampler {
	return &Sampler{cores: cores, zones: zones}
}

// NewSysfsSampler creates a Sampler reading a filesystem rooted at sysfs.
func NewSysfsSampler(sysfsRoot afero.Fs) *Sampler {
	return NewSampler(cpu.NewFrequencySampler(sysfsRoot), temps.NewZoneSampler(sysfsRoot))
}

// Sample reads the cores and thermal zones.
func (s *Sampler) Sample() Snapshot {
	return Snapshot{
		Cores:   s.cores.CoreFrequencies(),
		Thermal: *s.zones.Zones(),
	}
}
