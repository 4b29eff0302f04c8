package lifecycle

import (
	"os"
	"syscall"

	"github.com/pkg/errors"
)

// Signal is a local representation of a process-termination signal.
type Signal int

// ErrInvalidSignal is returned when a signal has no OS-level equivalent.
var ErrInvalidSignal = errors.New("invalid signal")

// SignalTerminate requests orderly termination of the process.
// SignalInterrupt interrupts the process, typically via Ctrl-C.
const (
	SignalTerminate Signal = iota + 1
	SignalInterrupt
)

func (s Signal) String() string {
	switch s {
	case SignalTerminate:
		return "terminate"
	case SignalInterrupt:
		return "interrupt"
	}

	return "unknown"
}

func signalLocalToSignalOS(sig Signal) (os.Signal, error) {
	switch sig {
	case SignalTerminate:
		return syscall.SIGTERM, nil
	case SignalInterrupt:
		return os.Interrupt, nil
	}

	return nil, ErrInvalidSignal
}
