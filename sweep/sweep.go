// Package sweep implements best-effort removal of tracked temporary paths.
package sweep

import (
	"context"
	"os"

	"github.com/tmpkeep/tmpkeep/logging"
	"github.com/tmpkeep/tmpkeep/registry"
)

var log = logging.Module("tmpkeep/sweep")

// Sweeper removes temporary files and directories recorded in a registry.
type Sweeper struct {
	reg *registry.Registry
}

// New returns a Sweeper draining the provided registry.
func New(reg *registry.Registry) *Sweeper {
	return &Sweeper{reg: reg}
}

// One removes a single path, recursively if it is a directory. A path that no
// longer exists counts as success since absence is the desired end state.
// Removal failures are logged as warnings and reported as false, never
// propagated. The path is unconditionally unregistered afterwards so a
// failing path is not retried automatically.
func (s *Sweeper) One(ctx context.Context, path string) bool {
	defer s.reg.Unregister(path)

	fi, err := os.Lstat(path)

	switch {
	case os.IsNotExist(err):
		return true

	case err != nil:
		log(ctx).Warnf("unable to stat %v: %v", path, err)
		return false
	}

	if fi.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}

	if err != nil {
		log(ctx).Warnf("unable to remove %v: %v", path, err)
		return false
	}

	return true
}

// All drains the registry and attempts to remove every drained path. It
// returns the number of paths successfully removed, which may be lower than
// the number attempted. Calling All on an empty registry returns 0.
func (s *Sweeper) All(ctx context.Context) int {
	removed := 0

	for _, p := range s.reg.Drain() {
		if s.One(ctx, p) {
			removed++
		}
	}

	return removed
}
