// Package system reports uptime, host identity and whether an su binary is
// reachable on the device.
package system

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/spf13/afero"
)

// suPaths are the usual locations of su on rooted Android devices.
var suPaths = []string{
	"/sbin/su",
	"/system/bin/su",
	"/system/xbin/su",
	"/data/local/xbin/su",
	"/data/local/bin/su",
	"/system/sd/xbin/su",
	"/system/bin/failsafe/su",
	"/data/local/su",
}

// Info represents host state
type Info struct {
	Hostname        string `json:"hostname"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	KernelVersion   string `json:"kernel_version"`
	Arch            string `json:"arch"`
	UptimeSeconds   uint64 `json:"uptime_seconds"`
	Uptime          string `json:"uptime"`
	Rooted          bool   `json:"rooted"`
}

// Reader reads host state
type Reader struct {
	rootfs afero.Fs
}

// NewReader creates a reader. rootfs is the filesystem the su probe runs against.
func NewReader(rootfs afero.Fs) *Reader {
	return &Reader{rootfs: rootfs}
}

// GetInfo returns host identity, uptime and root exposure
func (r *Reader) GetInfo(ctx context.Context) (*Info, error) {
	hostInfo, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}

	info := &Info{
		Hostname:        hostInfo.Hostname,
		Platform:        hostInfo.Platform,
		PlatformVersion: hostInfo.PlatformVersion,
		KernelVersion:   hostInfo.KernelVersion,
		Arch:            hostInfo.KernelArch,
		UptimeSeconds:   hostInfo.Uptime,
		Uptime:          FormatUptime(time.Duration(hostInfo.Uptime) * time.Second),
		Rooted:          r.Rooted(),
	}
	if info.Arch == "" {
		info.Arch = runtime.GOARCH
	}

	return info, nil
}

// Rooted reports whether any known su binary exists. A path that cannot be
// stat'ed, including on permission errors, does not count.
func (r *Reader) Rooted() bool {
	for _, p := range suPaths {
		if _, err := r.rootfs.Stat(p); err == nil {
			return true
		}
	}
	return false
}

// FormatUptime renders d as HH:MM:SS. Hours are not wrapped at 24.
func FormatUptime(d time.Duration) string {
	s := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}
