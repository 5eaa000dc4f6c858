package temps

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zoneFixture struct {
	label *string
	temp  *string
}

func str(s string) *string { return &s }

func newZoneFs(t *testing.T, zones map[int]zoneFixture) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for i, z := range zones {
		dir := fmt.Sprintf(zoneDirPattern, i)
		require.NoError(t, fsys.MkdirAll(dir, 0o755))
		if z.label != nil {
			require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "type"), []byte(*z.label+"\n"), 0o644))
		}
		if z.temp != nil {
			require.NoError(t, afero.WriteFile(fsys, filepath.Join(dir, "temp"), []byte(*z.temp+"\n"), 0o644))
		}
	}
	return fsys
}

func TestZonesScenario(t *testing.T) {
	fsys := newZoneFs(t, map[int]zoneFixture{
		0: {label: str("cpu"), temp: str("45000")},
		1: {label: str("battery"), temp: str("-999999")},
	})

	report := NewZoneSampler(fsys).Zones()

	assert.False(t, report.NoSensors)
	assert.Equal(t, []Zone{{Index: 0, Label: "cpu", Temperature: 45.0}}, report.Zones)
}

func TestZonesDoNotShortCircuit(t *testing.T) {
	fsys := newZoneFs(t, map[int]zoneFixture{
		2:  {label: str("soc"), temp: str("38000")},
		17: {label: str("skin"), temp: str("31")},
		29: {label: str("pa"), temp: str("40500")},
		30: {label: str("beyond"), temp: str("40000")},
	})

	report := NewZoneSampler(fsys).Zones()

	require.Len(t, report.Zones, 3)
	assert.Equal(t, []int{2, 17, 29}, []int{report.Zones[0].Index, report.Zones[1].Index, report.Zones[2].Index})
	assert.Equal(t, 31.0, report.Zones[1].Temperature)
	assert.Equal(t, 40.5, report.Zones[2].Temperature)
}

func TestZonesLabelFallback(t *testing.T) {
	fsys := newZoneFs(t, map[int]zoneFixture{
		0: {temp: str("50000")},
		1: {label: str(""), temp: str("51000")},
	})

	report := NewZoneSampler(fsys).Zones()

	require.Len(t, report.Zones, 2)
	assert.Equal(t, UnknownLabel, report.Zones[0].Label)
	assert.Equal(t, UnknownLabel, report.Zones[1].Label)
}

func TestZonesUnreadableTempExcluded(t *testing.T) {
	fsys := newZoneFs(t, map[int]zoneFixture{
		0: {label: str("cpu")},
		1: {label: str("gpu"), temp: str("not a number")},
	})

	report := NewZoneSampler(fsys).Zones()

	assert.True(t, report.NoSensors)
	assert.Empty(t, report.Zones)
}

func TestZonesNoSensors(t *testing.T) {
	report := NewZoneSampler(afero.NewMemMapFs()).Zones()

	assert.True(t, report.NoSensors)
	assert.NotNil(t, report.Zones)
	assert.Empty(t, report.Zones)
}

func TestZonesRangeFilter(t *testing.T) {
	fsys := newZoneFs(t, map[int]zoneFixture{
		0: {label: str("a"), temp: str("-20")},
		1: {label: str("b"), temp: str("150")},
		2: {label: str("c"), temp: str("150000")},
		3: {label: str("d"), temp: str("-19")},
		4: {label: str("e"), temp: str("149999")},
		5: {label: str("f"), temp: str("1000")},
		6: {label: str("g"), temp: str("1001")},
	})

	report := NewZoneSampler(fsys).Zones()

	for _, z := range report.Zones {
		assert.True(t, Valid(z.Temperature), "zone %d: %v", z.Index, z.Temperature)
	}
	require.Len(t, report.Zones, 3)
	assert.Equal(t, "d", report.Zones[0].Label)
	assert.Equal(t, "e", report.Zones[1].Label)
	assert.InDelta(t, 149.999, report.Zones[1].Temperature, 1e-9)
	assert.Equal(t, "g", report.Zones[2].Label)
	assert.InDelta(t, 1.001, report.Zones[2].Temperature, 1e-9)
}

func TestZonesIdempotent(t *testing.T) {
	fsys := newZoneFs(t, map[int]zoneFixture{
		0: {label: str("cpu"), temp: str("45000")},
		3: {temp: str("27")},
	})

	s := NewZoneSampler(fsys)
	assert.Equal(t, s.Zones(), s.Zones())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{45000, 45},
		{-999999, -999.999},
		{1000, 1000},
		{-1000, -1000},
		{1001, 1.001},
		{-1500, -1.5},
		{45, 45},
		{0, 0},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.want, Normalize(tt.raw), 1e-9, "raw %v", tt.raw)
	}
}

type lockedFs struct {
	afero.Fs
	locked map[string]bool
}

func (f lockedFs) Open(name string) (afero.File, error) {
	if f.locked[name] {
		return nil, &os.PathError{Op: "open", Path: name, Err: syscall.EACCES}
	}
	return f.Fs.Open(name)
}

func TestZonesTempReadFailure(t *testing.T) {
	fsys := newZoneFs(t, map[int]zoneFixture{
		0: {label: str("cpu"), temp: str("45000")},
		1: {label: str("gpu"), temp: str("50000")},
	})
	locked := lockedFs{Fs: fsys, locked: map[string]bool{
		filepath.Join(fmt.Sprintf(zoneDirPattern, 1), "temp"): true,
	}}

	report := NewZoneSampler(locked).Zones()

	assert.False(t, report.NoSensors)
	assert.Equal(t, []Zone{{Index: 0, Label: "cpu", Temperature: 45}}, report.Zones)
	assert.False(t, Valid(unreadableTemp))
}
