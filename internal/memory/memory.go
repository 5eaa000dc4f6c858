package memory

import "context"

const gib = 1 << 30

// Info represents memory information
type Info struct {
	Total     uint64  `json:"total_bytes"`
	Used      uint64  `json:"used_bytes"`
	Available uint64  `json:"available_bytes"`
	TotalGB   float64 `json:"total_gb"`
	UsedGB    float64 `json:"used_gb"`
	Usage     int     `json:"usage_percent"`
}

// Reader interface for memory monitoring
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

// NewReader creates a new memory reader for the current platform
func NewReader() Reader {
	return newPlatformReader()
}

// newInfo computes usage from total and available, the way the kernel's
// MemAvailable is meant to be read.
func newInfo(total, available uint64) *Info {
	if available > total {
		available = total
	}
	info := &Info{
		Total:     total,
		Available: available,
		Used:      total - available,
		TotalGB:   float64(total) / gib,
	}
	info.UsedGB = float64(info.Used) / gib
	if total > 0 {
		info.Usage = int(info.UsedGB / info.TotalGB * 100)
	}
	return info
}
