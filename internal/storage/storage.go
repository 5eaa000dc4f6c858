package storage

import "context"

const gib = 1 << 30

// Info represents usage of the filesystem holding the data path
type Info struct {
	Path    string  `json:"path"`
	Total   uint64  `json:"total_bytes"`
	Used    uint64  `json:"used_bytes"`
	Free    uint64  `json:"free_bytes"`
	TotalGB float64 `json:"total_gb"`
	UsedGB  float64 `json:"used_gb"`
	Usage   int     `json:"usage_percent"`
}

// Reader interface for storage monitoring
type Reader interface {
	GetInfo(ctx context.Context) (*Info, error)
}

// NewReader creates a new storage reader for path on the current platform
func NewReader(path string) Reader {
	return newPlatformReader(path)
}

// newInfo derives the display figures from raw byte counts. Free is the
// space available to unprivileged users, so used counts reserved blocks.
func newInfo(path string, total, free uint64) *Info {
	info := &Info{Path: path, Total: total, Free: free}
	if free > total {
		info.Free = total
	}
	info.Used = total - info.Free
	info.TotalGB = float64(total) / gib
	info.UsedGB = float64(info.Used) / gib
	if total > 0 {
		info.Usage = int(info.Used * 100 / total)
	}
	return info
}
