package cli

import (
	"os"
	"strconv"

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"

	"github.com/tmpkeep/tmpkeep/internal/ospath"
	"github.com/tmpkeep/tmpkeep/tempfile"
)

// creationFlags are the flags shared by all commands that create a temporary
// file or directory. The CLI defaults to --keep because its registry only
// lives for the duration of a single command; without it every created path
// would be removed again the moment tmpkeep exits.
type creationFlags struct {
	dir    string
	prefix string
	mode   string
	keep   bool
}

func (c *creationFlags) setup(cmd *kingpin.CmdClause, defaultMode string) {
	cmd.Flag("dir", "Target directory (defaults to the system temp root)").StringVar(&c.dir)
	cmd.Flag("prefix", "Name prefix").Default("temp-").StringVar(&c.prefix)
	cmd.Flag("mode", "Permission mode (octal)").Default(defaultMode).StringVar(&c.mode)
	cmd.Flag("keep", "Leave the path behind when tmpkeep exits").Default("true").BoolVar(&c.keep)
}

func (c *creationFlags) toOptions() (*tempfile.Options, error) {
	mode, err := strconv.ParseUint(c.mode, 8, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid mode %q", c.mode)
	}

	dir := c.dir
	if dir != "" {
		dir = ospath.ResolveUserFriendlyPath(dir, false)
	}

	return &tempfile.Options{
		Dir:    dir,
		Prefix: c.prefix,
		Keep:   c.keep,
		Mode:   os.FileMode(mode),
	}, nil
}
