package lifecycle

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tmpkeep/tmpkeep/internal/testlogging"
	"github.com/tmpkeep/tmpkeep/internal/testutil"
	"github.com/tmpkeep/tmpkeep/registry"
	"github.com/tmpkeep/tmpkeep/sweep"
)

func newTestManager(t *testing.T) (*Manager, *registry.Registry, chan int) {
	t.Helper()

	reg := registry.New()
	m := NewManager(sweep.New(reg))

	exited := make(chan int, 1)
	m.exit = func(code int) {
		exited <- code
	}

	return m, reg, exited
}

func TestSimulatedInterruptSweepsAndExits(t *testing.T) {
	ctx := testlogging.Context(t)

	m, reg, exited := newTestManager(t)

	f := filepath.Join(testutil.TempDirectory(t), "f.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o600))
	reg.Register(f)

	m.EnsureInstalled(ctx)
	m.Simulate(SignalInterrupt)

	select {
	case code := <-exited:
		require.Equal(t, 0, code, "interrupt must produce an orderly success exit")
	case <-time.After(5 * time.Second):
		t.Fatal("signal handler did not run")
	}

	require.NoFileExists(t, f)
	require.Empty(t, reg.List())
}

func TestSimulatedTerminate(t *testing.T) {
	ctx := testlogging.Context(t)

	m, reg, exited := newTestManager(t)

	f := filepath.Join(testutil.TempDirectory(t), "f.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o600))
	reg.Register(f)

	m.EnsureInstalled(ctx)
	m.Simulate(SignalTerminate)

	select {
	case code := <-exited:
		require.Equal(t, 0, code)
	case <-time.After(5 * time.Second):
		t.Fatal("signal handler did not run")
	}

	require.NoFileExists(t, f)
}

func TestEnsureInstalledIsIdempotent(t *testing.T) {
	ctx := testlogging.Context(t)

	m, _, _ := newTestManager(t)

	m.EnsureInstalled(ctx)

	m.mu.Lock()
	first := m.simulated[SignalInterrupt]
	m.mu.Unlock()

	m.EnsureInstalled(ctx)
	m.EnsureInstalled(ctx)

	m.mu.Lock()
	second := m.simulated[SignalInterrupt]
	m.mu.Unlock()

	require.Equal(t, first, second, "handlers must be installed at most once")
}

func TestSimulateBeforeInstallIsNoop(t *testing.T) {
	m, _, _ := newTestManager(t)

	// must not block or panic
	m.Simulate(SignalInterrupt)
}

func TestShutdown(t *testing.T) {
	ctx := testlogging.Context(t)

	m, reg, _ := newTestManager(t)

	f := filepath.Join(testutil.TempDirectory(t), "f.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o600))
	reg.Register(f)

	require.Equal(t, 1, m.Shutdown(ctx))
	require.NoFileExists(t, f)
	require.Equal(t, 0, m.Shutdown(ctx))
}

func TestSweepOnPanic(t *testing.T) {
	ctx := testlogging.Context(t)

	m, reg, _ := newTestManager(t)

	f := filepath.Join(testutil.TempDirectory(t), "f.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o600))
	reg.Register(f)

	require.PanicsWithValue(t, "boom", func() {
		defer m.SweepOnPanic(ctx)
		panic("boom")
	})

	require.NoFileExists(t, f, "panic path must still sweep tracked files")
}

func TestSweepOnPanicWithoutPanic(t *testing.T) {
	ctx := testlogging.Context(t)

	m, reg, _ := newTestManager(t)
	reg.Register("/tmp/whatever")

	func() {
		defer m.SweepOnPanic(ctx)
	}()

	// without a panic nothing is swept
	require.Equal(t, []string{"/tmp/whatever"}, reg.List())
}

func TestSignalString(t *testing.T) {
	require.Equal(t, "interrupt", SignalInterrupt.String())
	require.Equal(t, "terminate", SignalTerminate.String())
	require.Equal(t, "unknown", Signal(99).String())
}

func TestSignalLocalToSignalOS(t *testing.T) {
	for _, sig := range []Signal{SignalInterrupt, SignalTerminate} {
		osig, err := signalLocalToSignalOS(sig)
		require.NoError(t, err)
		require.NotNil(t, osig)
	}

	_, err := signalLocalToSignalOS(Signal(99))
	require.ErrorIs(t, err, ErrInvalidSignal)
}
