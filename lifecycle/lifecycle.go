// Package lifecycle installs process-termination hooks that sweep tracked
// temporary paths before the process ends.
package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/tmpkeep/tmpkeep/logging"
	"github.com/tmpkeep/tmpkeep/sweep"
)

var log = logging.Module("tmpkeep/lifecycle")

// Manager coordinates at-most-once installation of termination hooks for a
// sweeper. Hooks are installed lazily, on first EnsureInstalled call, so a
// process that never creates a tracked resource has no ambient signal
// handlers.
type Manager struct {
	sweeper *sweep.Sweeper

	installOnce sync.Once

	// exit terminates the process; overridable in tests.
	exit func(code int)

	mu sync.Mutex
	// +checklocks:mu
	simulated map[Signal]chan bool
}

// NewManager returns a Manager that drains the given sweeper's registry on
// process termination.
func NewManager(sweeper *sweep.Sweeper) *Manager {
	return &Manager{
		sweeper:   sweeper,
		exit:      os.Exit,
		simulated: map[Signal]chan bool{},
	}
}

// EnsureInstalled installs interrupt and terminate handlers which sweep all
// tracked paths and then exit with success status. Repeated calls are no-ops.
func (m *Manager) EnsureInstalled(ctx context.Context) {
	m.installOnce.Do(func() {
		m.onSig(SignalInterrupt, func() { m.sweepAndExit(ctx, SignalInterrupt) })
		m.onSig(SignalTerminate, func() { m.sweepAndExit(ctx, SignalTerminate) })
	})
}

// Shutdown performs the final sweep and returns the number of paths removed.
// It exists for normal process exit and for embedding environments where no
// signal is ever delivered; callers typically defer it in main.
func (m *Manager) Shutdown(ctx context.Context) int {
	return m.sweeper.All(ctx)
}

// SweepOnPanic sweeps all tracked paths when the calling goroutine is
// panicking and then resumes the panic, so the process still terminates with
// a failure status. Intended to be deferred at the top of main.
func (m *Manager) SweepOnPanic(ctx context.Context) {
	if r := recover(); r != nil {
		m.sweeper.All(ctx)
		panic(r)
	}
}

// Simulate delivers a fake signal to a previously installed handler.
func (m *Manager) Simulate(sig Signal) {
	m.mu.Lock()
	chn := m.simulated[sig]
	m.mu.Unlock()

	if chn != nil {
		chn <- true
	}
}

func (m *Manager) sweepAndExit(ctx context.Context, sig Signal) {
	n := m.sweeper.All(ctx)
	log(ctx).Debugf("removed %v temporary paths on %v", n, sig)
	m.exit(0)
}

// onSig invokes f once when either a real or simulated signal is delivered.
func (m *Manager) onSig(sig Signal, f func()) {
	s := make(chan os.Signal, 1)

	osig, err := signalLocalToSignalOS(sig)
	if err != nil {
		log(context.Background()).Warnf("ignoring signal %v", sig)
		return
	}

	chn := make(chan bool, 1)

	m.mu.Lock()
	m.simulated[sig] = chn
	m.mu.Unlock()

	signal.Notify(s, osig)

	go func() {
		// invoke the function when either real or simulated signal is delivered
		select {
		case v := <-chn:
			if !v {
				return
			}

		case <-s:
		}

		f()
	}()
}
