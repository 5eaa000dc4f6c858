package cpu

import (
	"fmt"

	"github.com/CristiGvl/picoSysMon/internal/logger"
	"github.com/CristiGvl/picoSysMon/internal/sysfs"
	"github.com/spf13/afero"
)

// Paths relative to the sysfs mount point.
const (
	coreFreqPattern = "/devices/system/cpu/cpu%d/cpufreq/scaling_cur_freq"
	scalingCurFreq  = "/devices/system/cpu/cpu0/cpufreq/scaling_cur_freq"
	cpuinfoCurFreq  = "/devices/system/cpu/cpu0/cpufreq/cpuinfo_cur_freq"
)

// FrequencySampler reads clock speeds from cpufreq. It holds no state
// between calls and is safe for concurrent use.
type FrequencySampler struct {
	fs afero.Fs
}

// NewFrequencySampler creates a sampler over a filesystem rooted at sysfs.
func NewFrequencySampler(sysfsRoot afero.Fs) *FrequencySampler {
	return &FrequencySampler{fs: sysfsRoot}
}

// Core probes a single core.
func (s *FrequencySampler) Core(i int) CoreFrequency {
	path := fmt.Sprintf(coreFreqPattern, i)
	if !sysfs.Exists(s.fs, path) {
		return Absent(i)
	}

	khz, err := sysfs.ReadInt(s.fs, path)
	if err != nil {
		logger.Debug().Err(err).Int("core", i).Msg("core frequency unreadable")
		return Offline(i)
	}
	if khz < 0 {
		return Offline(i)
	}

	return Active(i, uint64(khz))
}

// CoreFrequencies scans cores from 0 and stops at the first absent one.
// Cores are assumed contiguous, so a gap hides every core after it.
func (s *FrequencySampler) CoreFrequencies() []CoreFrequency {
	cores := make([]CoreFrequency, 0, MaxCores)
	for i := 0; i < MaxCores; i++ {
		c := s.Core(i)
		if c.State == CoreAbsent {
			break
		}
		cores = append(cores, c)
	}
	return cores
}

// CurrentFrequency returns cpu0's clock in kHz, preferring the governor's
// view over the hardware-reported one. Zero when neither can be read.
func (s *FrequencySampler) CurrentFrequency() uint64 {
	for _, path := range []string{scalingCurFreq, cpuinfoCurFreq} {
		khz, err := sysfs.ReadInt(s.fs, path)
		if err == nil && khz >= 0 {
			return uint64(khz)
		}
	}
	return 0
}
