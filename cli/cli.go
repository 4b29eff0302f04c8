// Package cli implements command-line commands for the tmpkeep tool.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/mattn/go-colorable"
	"github.com/pkg/errors"

	"github.com/tmpkeep/tmpkeep/logging"
	"github.com/tmpkeep/tmpkeep/tempfile"
)

var log = logging.Module("tmpkeep/cli")

// appServices are the methods of *App that command implementations use.
type appServices interface {
	tempAction(act func(ctx context.Context, tf *tempfile.Manager) error) func(*kingpin.ParseContext) error

	stdin() io.Reader
	stdout() io.Writer
	stderr() io.Writer
}

// commandParent is implemented by both *kingpin.Application and *kingpin.CmdClause.
type commandParent interface {
	Command(name, help string) *kingpin.CmdClause
}

// App contains per-invocation flags and command state of the tmpkeep CLI.
type App struct {
	logLevel     string
	disableColor bool
	forceColor   bool

	tf *tempfile.Manager

	stdinReader  io.Reader
	stdoutWriter io.Writer
	stderrWriter io.Writer

	commands appCommands
}

type appCommands struct {
	write     commandWrite
	writeJSON commandWriteJSON
	writeCSV  commandWriteCSV
	mkdir     commandMkdir
	copy      commandCopy
	run       commandRun
}

// NewApp returns a new instance of the CLI application bound to the
// process-wide temporary file manager and the standard streams.
func NewApp() *App {
	return &App{
		tf:           tempfile.Default(),
		stdinReader:  os.Stdin,
		stdoutWriter: colorable.NewColorableStdout(),
		stderrWriter: colorable.NewColorableStderr(),
	}
}

// Attach registers the application's flags and commands with a kingpin application.
func (c *App) Attach(app *kingpin.Application) {
	app.Flag("log-level", "Console log level").Default("info").Envar("TMPKEEP_LOG_LEVEL").EnumVar(&c.logLevel, "debug", "info", "warn", "error")
	app.Flag("disable-color", "Disable color output").Envar("TMPKEEP_DISABLE_COLOR").BoolVar(&c.disableColor)
	app.Flag("force-color", "Force color output").Envar("TMPKEEP_FORCE_COLOR").BoolVar(&c.forceColor)

	c.commands.write.setup(c, app)
	c.commands.writeJSON.setup(c, app)
	c.commands.writeCSV.setup(c, app)
	c.commands.mkdir.setup(c, app)
	c.commands.copy.setup(c, app)
	c.commands.run.setup(c, app)
}

// tempAction wraps a command callback with a logging context, a panic sweep
// and a final shutdown sweep of the temporary file manager.
func (c *App) tempAction(act func(ctx context.Context, tf *tempfile.Manager) error) func(*kingpin.ParseContext) error {
	return func(_ *kingpin.ParseContext) error {
		ctx := logging.WithLogger(context.Background(), c.loggerFactory())

		defer c.tf.Lifecycle().SweepOnPanic(ctx)

		err := act(ctx, c.tf)

		if n := c.tf.Shutdown(ctx); n > 0 {
			log(ctx).Debugf("removed %v temporary paths", n)
		}

		return err
	}
}

func readAllStdin(svc appServices) ([]byte, error) {
	b, err := io.ReadAll(svc.stdin())

	return b, errors.Wrap(err, "unable to read standard input")
}

func (c *App) stdin() io.Reader {
	return c.stdinReader
}

func (c *App) stdout() io.Writer {
	return c.stdoutWriter
}

func (c *App) stderr() io.Writer {
	return c.stderrWriter
}
