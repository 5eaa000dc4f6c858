// Package battery reads the first battery exposed under
// /sys/class/power_supply.
package battery

import (
	"path"

	"github.com/CristiGvl/picoSysMon/internal/sysfs"
	"github.com/spf13/afero"
)

// Heat classifies battery temperature for display.
type Heat string

const (
	HeatCool Heat = "cool"
	HeatWarm Heat = "warm"
	HeatHot  Heat = "hot"
)

const (
	warmThreshold = 38.0
	hotThreshold  = 42.0

	supplyGlob = "/class/power_supply/*/type"
)

// Info represents battery state. Only Present is meaningful when no battery
// was found. Temperature and Heat are unset when temp could not be read.
type Info struct {
	Present     bool    `json:"present"`
	Name        string  `json:"name,omitempty"`
	Level       int     `json:"level_percent"`
	Temperature *float64 `json:"temperature_celsius,omitempty"`
	Heat        Heat    `json:"heat,omitempty"`
	Status      string  `json:"status,omitempty"`
}

// ClassifyHeat maps a temperature to its heat class.
func ClassifyHeat(celsius float64) Heat {
	switch {
	case celsius < warmThreshold:
		return HeatCool
	case celsius < hotThreshold:
		return HeatWarm
	default:
		return HeatHot
	}
}

// Reader reads battery state from sysfs.
type Reader struct {
	fs afero.Fs
}

// NewReader creates a reader over a filesystem rooted at sysfs.
func NewReader(sysfsRoot afero.Fs) *Reader {
	return &Reader{fs: sysfsRoot}
}

// GetInfo returns the first supply whose type is Battery.
func (r *Reader) GetInfo() *Info {
	dir, ok := r.find()
	if !ok {
		return &Info{Present: false}
	}

	info := &Info{
		Present: true,
		Name:    path.Base(dir),
		Level:   r.level(dir),
	}

	// temp is in tenths of a degree
	if tenths, err := sysfs.ReadInt(r.fs, dir+"/temp"); err == nil {
		celsius := float64(tenths) / 10
		info.Temperature = &celsius
		info.Heat = ClassifyHeat(celsius)
	}

	if status, err := sysfs.ReadString(r.fs, dir+"/status"); err == nil {
		info.Status = status
	}

	return info
}

func (r *Reader) find() (string, bool) {
	matches, err := afero.Glob(r.fs, supplyGlob)
	if err != nil {
		return "", false
	}
	for _, m := range matches {
		kind, err := sysfs.ReadString(r.fs, m)
		if err == nil && kind == "Battery" {
			return path.Dir(m), true
		}
	}
	return "", false
}

// level prefers capacity and falls back to charge_now/charge_full.
func (r *Reader) level(dir string) int {
	if pct, err := sysfs.ReadInt(r.fs, dir+"/capacity"); err == nil {
		return clampPercent(pct)
	}

	now, errNow := sysfs.ReadInt(r.fs, dir+"/charge_now")
	full, errFull := sysfs.ReadInt(r.fs, dir+"/charge_full")
	if errNow != nil || errFull != nil || now <= 0 || full <= 0 {
		return 0
	}
	return clampPercent(int64(float64(now) / float64(full) * 100))
}

func clampPercent(v int64) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}
