package cpu

import "fmt"

// CoreState is the outcome of probing one core's frequency source.
type CoreState uint8

const (
	// CoreAbsent means the source does not exist: the index is past the last core.
	CoreAbsent CoreState = iota
	// CoreOffline means the source exists but could not be read or parsed.
	CoreOffline
	// CoreActive means a clock value was read.
	CoreActive
)

var coreStateNames = [...]string{
	CoreAbsent:  "absent",
	CoreOffline: "offline",
	CoreActive:  "active",
}

func (s CoreState) String() string {
	if int(s) < len(coreStateNames) {
		return coreStateNames[s]
	}
	return fmt.Sprintf("CoreState(%d)", uint8(s))
}

// MarshalText encodes the state by name.
func (s CoreState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a state name.
func (s *CoreState) UnmarshalText(text []byte) error {
	for i, name := range coreStateNames {
		if name == string(text) {
			*s = CoreState(i)
			return nil
		}
	}
	return fmt.Errorf("unknown core state %q", text)
}

// CoreFrequency is one core's sample. FreqKHz is meaningful only when State
// is CoreActive.
type CoreFrequency struct {
	Index   int       `json:"index"`
	State   CoreState `json:"state"`
	FreqKHz uint64    `json:"freq_khz"`
}

// Active returns an active sample for core i.
func Active(i int, khz uint64) CoreFrequency {
	return CoreFrequency{Index: i, State: CoreActive, FreqKHz: khz}
}

// Offline returns an offline sample for core i.
func Offline(i int) CoreFrequency {
	return CoreFrequency{Index: i, State: CoreOffline}
}

// Absent returns an absent sample for core i.
func Absent(i int) CoreFrequency {
	return CoreFrequency{Index: i, State: CoreAbsent}
}

// MHz returns the frequency in whole MHz.
func (c CoreFrequency) MHz() uint64 {
	return c.FreqKHz / 1000
}
