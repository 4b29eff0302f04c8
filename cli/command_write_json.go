package cli

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/tmpkeep/tmpkeep/tempfile"
)

type commandWriteJSON struct {
	document  string
	fromStdin bool

	create creationFlags
	svc    appServices
	out    textOutput
}

func (c *commandWriteJSON) setup(svc appServices, parent commandParent) {
	cmd := parent.Command("write-json", "Re-indent a JSON document into a temporary .json file and print its path")
	cmd.Arg("document", "JSON document; use --stdin to read it from standard input instead").StringVar(&c.document)
	cmd.Flag("stdin", "Read the document from standard input").BoolVar(&c.fromStdin)
	c.create.setup(cmd, "600")
	cmd.Action(svc.tempAction(c.run))

	c.svc = svc
	c.out.setup(svc)
}

func (c *commandWriteJSON) run(ctx context.Context, tf *tempfile.Manager) error {
	doc := []byte(c.document)

	if c.fromStdin {
		b, err := readAllStdin(c.svc)
		if err != nil {
			return err
		}

		doc = b
	}

	var value interface{}

	if err := json.Unmarshal(doc, &value); err != nil {
		return errors.Wrap(err, "invalid JSON document")
	}

	opts, err := c.create.toOptions()
	if err != nil {
		return err
	}

	path, err := tf.WriteJSON(ctx, value, opts)
	if err != nil {
		return errors.Wrap(err, "error writing temporary JSON file")
	}

	c.out.printStdout("%v\n", path)

	return nil
}
