package cli

import (
	"context"

	"github.com/pkg/errors"

	"github.com/tmpkeep/tmpkeep/tempfile"
)

type commandMkdir struct {
	create creationFlags
	out    textOutput
}

func (c *commandMkdir) setup(svc appServices, parent commandParent) {
	cmd := parent.Command("mkdir", "Create a temporary directory and print its path")
	c.create.setup(cmd, "700")
	cmd.Action(svc.tempAction(c.run))

	c.out.setup(svc)
}

func (c *commandMkdir) run(ctx context.Context, tf *tempfile.Manager) error {
	opts, err := c.create.toOptions()
	if err != nil {
		return err
	}

	path, err := tf.MkdirTemp(ctx, opts)
	if err != nil {
		return errors.Wrap(err, "error creating temporary directory")
	}

	c.out.printStdout("%v\n", path)

	return nil
}
