package cli

import (
	"context"

	"github.com/pkg/errors"

	"github.com/tmpkeep/tmpkeep/internal/ospath"
	"github.com/tmpkeep/tmpkeep/tempfile"
)

type commandCopy struct {
	source    string
	extension string

	create creationFlags
	out    textOutput
}

func (c *commandCopy) setup(svc appServices, parent commandParent) {
	cmd := parent.Command("copy", "Copy an existing file into a new temporary file and print its path")
	cmd.Arg("source", "File to copy").Required().StringVar(&c.source)
	cmd.Flag("extension", "File extension (defaults to the source's extension)").Short('e').StringVar(&c.extension)
	c.create.setup(cmd, "600")
	cmd.Action(svc.tempAction(c.run))

	c.out.setup(svc)
}

func (c *commandCopy) run(ctx context.Context, tf *tempfile.Manager) error {
	opts, err := c.create.toOptions()
	if err != nil {
		return err
	}

	path, err := tf.Copy(ctx, ospath.ResolveUserFriendlyPath(c.source, false), c.extension, opts)
	if err != nil {
		return errors.Wrap(err, "error copying to temporary file")
	}

	c.out.printStdout("%v\n", path)

	return nil
}
