/*
Command-line tool for creating temporary files and directories that are
reliably removed when the process exits.

Usage:

	$ tmpkeep [<flags>] <subcommand> [<args> ...]

Use 'tmpkeep help' to see more details.
*/
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"

	"github.com/tmpkeep/tmpkeep/cli"
)

func main() {
	app := kingpin.New("tmpkeep", "Create temporary files and directories with guaranteed cleanup.")

	cli.NewApp().Attach(app)

	kingpin.MustParse(app.Parse(os.Args[1:]))
}
