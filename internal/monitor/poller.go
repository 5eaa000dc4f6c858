// Package monitor polls the hardware sampler on a fixed interval and keeps
// the most recent snapshot for readers.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/CristiGvl/picoSysMon/internal/hardware"
	"github.com/CristiGvl/picoSysMon/internal/logger"
)

// Sampler takes hardware snapshots.
type Sampler interface {
	Sample() hardware.Snapshot
}

// Observer is told about every new snapshot.
type Observer interface {
	Observe(hardware.Snapshot)
}

// Poller runs a Sampler periodically. Snapshots are immutable, so readers
// get them by value without copying slices.
type Poller struct {
	sampler   Sampler
	interval  time.Duration
	observers []Observer

	mu      sync.RWMutex
	latest  hardware.Snapshot
	takenAt time.Time
}

// New creates a Poller. Observers are called on the polling goroutine.
func New(sampler Sampler, interval time.Duration, observers ...Observer) *Poller {
	return &Poller{
		sampler:   sampler,
		interval:  interval,
		observers: observers,
	}
}

// Poll takes one snapshot, stores it and notifies observers. It returns the
// snapshot together with the time recorded for it.
func (p *Poller) Poll() (hardware.Snapshot, time.Time) {
	snap := p.sampler.Sample()
	now := time.Now()

	p.mu.Lock()
	p.latest = snap
	p.takenAt = now
	p.mu.Unlock()

	for _, o := range p.observers {
		o.Observe(snap)
	}

	logger.Debug().
		Int("cores", len(snap.Cores)).
		Int("zones", len(snap.Thermal.Zones)).
		Msg("hardware sampled")

	return snap, now
}

// Latest returns the most recent snapshot and when it was taken. ok is false
// until the first poll completes.
func (p *Poller) Latest() (snap hardware.Snapshot, takenAt time.Time, ok bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.latest, p.takenAt, !p.takenAt.IsZero()
}

// Run polls immediately and then every interval until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	logger.Info().Dur("interval", p.interval).Msg("hardware poller started")
	defer func() {
		logger.Info().Msg("hardware poller stopped")
	}()

	p.Poll()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Poll()
		}
	}
}
