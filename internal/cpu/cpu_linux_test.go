//go:build linux

package cpu

import (
	"testing"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/stretchr/testify/assert"
)

const x86CPUInfo = `processor	: 0
model name	: Intel(R) Core(TM) i7-3770 CPU @ 3.40GHz
physical id	: 0
core id		: 0
cpu cores	: 4

processor	: 1
model name	: Intel(R) Core(TM) i7-3770 CPU @ 3.40GHz
physical id	: 0
core id		: 1
cpu cores	: 4

processor	: 2
model name	: Intel(R) Core(TM) i7-3770 CPU @ 3.40GHz
physical id	: 0
core id		: 0
cpu cores	: 4
`

const armCPUInfo = `processor	: 0
BogoMIPS	: 38.40

processor	: 1
BogoMIPS	: 38.40

Hardware	: Qualcomm Technologies, Inc SM8250
`

func TestParseCPUInfoX86(t *testing.T) {
	stats := parseCPUInfo([]byte(x86CPUInfo))

	assert.Equal(t, 3, stats.processors)
	assert.Equal(t, 2, stats.physicalCores())
	assert.Equal(t, "Intel(R) Core(TM) i7-3770 CPU @ 3.40GHz", stats.model(nil))
}

func TestParseCPUInfoAndroid(t *testing.T) {
	stats := parseCPUInfo([]byte(armCPUInfo))

	assert.Equal(t, 2, stats.processors)
	assert.Equal(t, 0, stats.physicalCores())
	assert.Equal(t, "Qualcomm Technologies, Inc SM8250", stats.model(nil))
	assert.Equal(t, "Kryo", stats.model([]cpu.InfoStat{{ModelName: "Kryo"}}))
}

func TestParseCPUInfoEmpty(t *testing.T) {
	stats := parseCPUInfo(nil)

	assert.Equal(t, "Not identified", stats.model([]cpu.InfoStat{{ModelName: "  "}}))
	assert.Equal(t, 0, stats.physicalCores())
}
