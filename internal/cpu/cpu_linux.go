//go:build linux

package cpu

import (
	"bufio"
	"bytes"
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/spf13/afero"
)

// LinuxReader implements CPU monitoring for Linux and Android
type LinuxReader struct {
	*FrequencySampler
	rootfs afero.Fs
}

// newPlatformReader creates a new Linux CPU reader
func newPlatformReader(sysfsRoot, rootfs afero.Fs) Reader {
	return &LinuxReader{
		FrequencySampler: NewFrequencySampler(sysfsRoot),
		rootfs:           rootfs,
	}
}

// GetInfo returns CPU information
func (r *LinuxReader) GetInfo(ctx context.Context) (*Info, error) {
	cpuInfo, err := cpu.InfoWithContext(ctx)
	if err != nil {
		cpuInfo = nil // ARM kernels often lack the fields gopsutil wants
	}

	usage, err := r.GetUsage(ctx)
	if err != nil {
		usage = 0
	}

	stats := parseCPUInfo(r.readCPUInfo())

	info := &Info{
		Model:        stats.model(cpuInfo),
		Threads:      len(cpuInfo),
		Usage:        usage,
		FrequencyKHz: r.CurrentFrequency(),
	}
	if info.Threads == 0 {
		info.Threads = stats.processors
	}

	// Prefer the physical/core id pairs, then the header, then threads.
	switch {
	case stats.physicalCores() > 0:
		info.Cores = stats.physicalCores()
	case len(cpuInfo) > 0 && cpuInfo[0].Cores > 0 && int(cpuInfo[0].Cores) <= info.Threads:
		info.Cores = int(cpuInfo[0].Cores)
	default:
		info.Cores = info.Threads
	}

	if info.FrequencyKHz == 0 && len(cpuInfo) > 0 {
		info.FrequencyKHz = uint64(cpuInfo[0].Mhz * 1000)
	}

	return info, nil
}

// GetUsage returns CPU usage percentage
func (r *LinuxReader) GetUsage(ctx context.Context) (float64, error) {
	percentages, err := cpu.PercentWithContext(ctx, time.Second, false)
	if err != nil {
		return 0, err
	}

	if len(percentages) == 0 {
		return 0, nil
	}

	return percentages[0], nil
}

func (r *LinuxReader) readCPUInfo() []byte {
	content, err := afero.ReadFile(r.rootfs, "/proc/cpuinfo")
	if err != nil {
		return nil
	}
	return content
}

// cpuInfoStats is what we pull out of /proc/cpuinfo
type cpuInfoStats struct {
	hardware   string
	modelName  string
	processors int
	coreHeader int
	coreIDs    map[string]bool
}

func (s cpuInfoStats) physicalCores() int {
	if len(s.coreIDs) > 0 {
		return len(s.coreIDs)
	}
	return s.coreHeader
}

// model picks the best available CPU name. Android kernels report the SoC
// on the "Hardware" line and leave "model name" generic or empty.
func (s cpuInfoStats) model(gopsutilInfo []cpu.InfoStat) string {
	if len(gopsutilInfo) > 0 {
		if name := strings.TrimSpace(gopsutilInfo[0].ModelName); name != "" {
			return name
		}
	}
	if s.modelName != "" {
		return s.modelName
	}
	if s.hardware != "" {
		return s.hardware
	}
	return "Not identified"
}

func parseCPUInfo(content []byte) cpuInfoStats {
	stats := cpuInfoStats{coreIDs: make(map[string]bool)}

	var currentPhysicalID, currentCoreID string
	flush := func() {
		if currentPhysicalID != "" && currentCoreID != "" {
			stats.coreIDs[currentPhysicalID+":"+currentCoreID] = true
		}
		currentPhysicalID, currentCoreID = "", ""
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			flush()
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "processor":
			stats.processors++
		case "Hardware":
			stats.hardware = value
		case "model name":
			if stats.modelName == "" {
				stats.modelName = value
			}
		case "cpu cores":
			if stats.coreHeader == 0 {
				stats.coreHeader = atoiOrZero(value)
			}
		case "physical id":
			currentPhysicalID = value
		case "core id":
			currentCoreID = value
		}
	}
	flush()

	return stats
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
