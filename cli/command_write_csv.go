package cli

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/tmpkeep/tmpkeep/tempfile"
)

type commandWriteCSV struct {
	rows      string
	fromStdin bool
	delimiter string

	create creationFlags
	svc    appServices
	out    textOutput
}

func (c *commandWriteCSV) setup(svc appServices, parent commandParent) {
	cmd := parent.Command("write-csv", "Format a JSON array of rows as CSV in a temporary .csv file and print its path")
	cmd.Arg("rows", "JSON array of cell arrays or of uniform objects; use --stdin to read it from standard input instead").StringVar(&c.rows)
	cmd.Flag("stdin", "Read the rows from standard input").BoolVar(&c.fromStdin)
	cmd.Flag("delimiter", "Cell delimiter").Default(",").StringVar(&c.delimiter)
	c.create.setup(cmd, "600")
	cmd.Action(svc.tempAction(c.run))

	c.svc = svc
	c.out.setup(svc)
}

func (c *commandWriteCSV) run(ctx context.Context, tf *tempfile.Manager) error {
	doc := []byte(c.rows)

	if c.fromStdin {
		b, err := readAllStdin(c.svc)
		if err != nil {
			return err
		}

		doc = b
	}

	var rows interface{}

	if err := json.Unmarshal(doc, &rows); err != nil {
		return errors.Wrap(err, "invalid rows document")
	}

	delim, err := parseDelimiter(c.delimiter)
	if err != nil {
		return err
	}

	opts, err := c.create.toOptions()
	if err != nil {
		return err
	}

	opts.Delimiter = delim

	path, err := tf.WriteCSV(ctx, rows, opts)
	if err != nil {
		return errors.Wrap(err, "error writing temporary CSV file")
	}

	c.out.printStdout("%v\n", path)

	return nil
}

func parseDelimiter(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, errors.Errorf("delimiter must be a single character, got %q", s)
	}

	return r[0], nil
}
