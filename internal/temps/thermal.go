package temps

import (
	"fmt"
	"math"

	"github.com/CristiGvl/picoSysMon/internal/logger"
	"github.com/CristiGvl/picoSysMon/internal/sysfs"
	"github.com/spf13/afero"
)

const (
	// MaxZones bounds the thermal zone scan.
	MaxZones = 30

	// Readings outside (MinValid, MaxValid) are dropped as implausible.
	MinValid = -20.0
	MaxValid = 150.0

	// UnknownLabel replaces a zone type that can't be read.
	UnknownLabel = "Unknown"

	// NoSensorsMessage is shown when no zone survives filtering.
	NoSensorsMessage = "No accessible thermal sensors"

	zoneDirPattern = "/class/thermal/thermal_zone%d"

	// unreadableTemp is below absolute zero so the range filter always drops it.
	unreadableTemp = -274.0
)

// Zone is a thermal zone reading in degrees Celsius.
type Zone struct {
	Index       int     `json:"index"`
	Label       string  `json:"label"`
	Temperature float64 `json:"temperature_celsius"`
}

// Report is the result of a thermal scan. NoSensors is set when no zone
// passed the plausibility filter, so callers can show a message instead of
// an empty list.
type Report struct {
	Zones     []Zone `json:"zones"`
	NoSensors bool   `json:"no_sensors"`
}

// Normalize converts a raw reading to degrees. Values whose magnitude
// exceeds 1000 are taken as millidegrees.
func Normalize(raw float64) float64 {
	if math.Abs(raw) > 1000 {
		return raw / 1000
	}
	return raw
}

// Valid reports whether a normalized temperature is plausible.
func Valid(celsius float64) bool {
	return celsius > MinValid && celsius < MaxValid
}

// ZoneSampler scans /sys/class/thermal. It holds no state between calls and
// is safe for concurrent use.
type ZoneSampler struct {
	fs afero.Fs
}

// NewZoneSampler creates a sampler over a filesystem rooted at sysfs.
func NewZoneSampler(sysfsRoot afero.Fs) *ZoneSampler {
	return &ZoneSampler{fs: sysfsRoot}
}

// Zones probes every zone index; gaps don't end the scan.
func (s *ZoneSampler) Zones() *Report {
	report := &Report{Zones: []Zone{}}

	for i := 0; i < MaxZones; i++ {
		zone, ok := s.zone(i)
		if !ok {
			continue
		}
		report.Zones = append(report.Zones, zone)
	}

	report.NoSensors = len(report.Zones) == 0
	return report
}

func (s *ZoneSampler) zone(i int) (Zone, bool) {
	dir := fmt.Sprintf(zoneDirPattern, i)
	if !sysfs.DirExists(s.fs, dir) {
		return Zone{}, false
	}

	label, err := sysfs.ReadString(s.fs, dir+"/type")
	if err != nil || label == "" {
		label = UnknownLabel
	}

	raw, err := sysfs.ReadFloat(s.fs, dir+"/temp")
	if err != nil {
		logger.Debug().Err(err).Int("zone", i).Msg("thermal zone unreadable")
		raw = unreadableTemp
	}

	celsius := Normalize(raw)
	if !Valid(celsius) {
		return Zone{}, false
	}

	return Zone{Index: i, Label: label, Temperature: celsius}, true
}
