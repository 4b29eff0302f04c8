package cli

import (
	"fmt"
	"io"
)

// textOutput encapsulates output to stdout and stderr.
type textOutput struct {
	stdoutWriter io.Writer
	stderrWriter io.Writer
}

func (o *textOutput) setup(svc appServices) {
	o.stdoutWriter = svc.stdout()
	o.stderrWriter = svc.stderr()
}

func (o *textOutput) printStdout(msg string, args ...interface{}) {
	fmt.Fprintf(o.stdoutWriter, msg, args...) //nolint:errcheck
}

func (o *textOutput) printStderr(msg string, args ...interface{}) {
	fmt.Fprintf(o.stderrWriter, msg, args...) //nolint:errcheck
}
