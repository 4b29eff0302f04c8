package cli

import (
	"context"

	"github.com/pkg/errors"

	"github.com/tmpkeep/tmpkeep/tempfile"
)

type commandWrite struct {
	content   string
	fromStdin bool
	extension string

	create creationFlags
	svc    appServices
	out    textOutput
}

func (c *commandWrite) setup(svc appServices, parent commandParent) {
	cmd := parent.Command("write", "Create a temporary file with the provided content and print its path")
	cmd.Arg("content", "Content to write; use --stdin to read it from standard input instead").StringVar(&c.content)
	cmd.Flag("stdin", "Read content from standard input").BoolVar(&c.fromStdin)
	cmd.Flag("extension", "File extension, with or without the leading dot").Short('e').StringVar(&c.extension)
	c.create.setup(cmd, "600")
	cmd.Action(svc.tempAction(c.run))

	c.svc = svc
	c.out.setup(svc)
}

func (c *commandWrite) run(ctx context.Context, tf *tempfile.Manager) error {
	content := []byte(c.content)

	if c.fromStdin {
		b, err := readAllStdin(c.svc)
		if err != nil {
			return err
		}

		content = b
	}

	opts, err := c.create.toOptions()
	if err != nil {
		return err
	}

	path, err := tf.Write(ctx, content, c.extension, opts)
	if err != nil {
		return errors.Wrap(err, "error writing temporary file")
	}

	c.out.printStdout("%v\n", path)

	return nil
}
