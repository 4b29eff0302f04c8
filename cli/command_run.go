package cli

import (
	"context"
	"os"
	"os/exec"

	"github.com/pkg/errors"

	"github.com/tmpkeep/tmpkeep/internal/ospath"
	"github.com/tmpkeep/tmpkeep/tempfile"
)

// scratchDirEnvVar tells the child command where its scratch directory is.
const scratchDirEnvVar = "TMPKEEP_SCRATCH_DIR"

type commandRun struct {
	command []string
	dir     string
	keep    bool

	svc appServices
	out textOutput
}

func (c *commandRun) setup(svc appServices, parent commandParent) {
	cmd := parent.Command("run", "Run a command with a tracked scratch directory that is removed when tmpkeep exits, even on interrupt")
	cmd.Arg("command", "Command and arguments to run").Required().StringsVar(&c.command)
	cmd.Flag("dir", "Create the scratch directory under this directory").StringVar(&c.dir)
	cmd.Flag("keep", "Leave the scratch directory behind").BoolVar(&c.keep)
	cmd.Action(svc.tempAction(c.run))

	c.svc = svc
	c.out.setup(svc)
}

func (c *commandRun) run(ctx context.Context, tf *tempfile.Manager) error {
	dir := c.dir
	if dir != "" {
		dir = ospath.ResolveUserFriendlyPath(dir, false)
	}

	scratch, err := tf.MkdirTemp(ctx, &tempfile.Options{
		Dir:    dir,
		Prefix: "tmpkeep-run-",
		Keep:   c.keep,
	})
	if err != nil {
		return errors.Wrap(err, "error creating scratch directory")
	}

	log(ctx).Debugf("scratch directory %v", scratch)

	cmd := exec.CommandContext(ctx, c.command[0], c.command[1:]...) //nolint:gosec
	cmd.Stdin = c.svc.stdin()
	cmd.Stdout = c.svc.stdout()
	cmd.Stderr = c.svc.stderr()
	cmd.Env = append(os.Environ(), scratchDirEnvVar+"="+scratch)

	// The child shares the process group, so an interrupt reaches it at the
	// same time tmpkeep's own termination hooks sweep the scratch directory.
	return errors.Wrap(cmd.Run(), "command failed")
}
