package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jwalton/gchalk"
	"github.com/spf13/cobra"

	"github.com/nexusfetch/nexusfetch/internals/merrors"
)

var (
	errOut io.Writer = os.Stderr
	exit             = os.Exit
)

type Command struct {
	*cobra.Command
	runner Runner
}

type Runner interface {
	RunE(cmd *cobra.Command, args []string) error
}

// New wires run into cmd. A returned error is printed as a single line to
// stderr and the process exits with status 1.
func New(cmd *cobra.Command, run Runner) *Command {
	build := &Command{
		cmd,
		run,
	}
	build.Command.Run = func(cmd *cobra.Command, args []string) {
		if err := run.RunE(cmd, args); err != nil {
			fmt.Fprintln(errOut, gchalk.Red(ErrorLine(err)))
			exit(1)
		}
	}

	return build
}

// ErrorLine formats err the way it is shown to the user
func ErrorLine(err error) string {
	var httpErr *merrors.HTTPError
	if errors.As(err, &httpErr) {
		return "HTTP error: " + oneLine(httpErr.Error())
	}
	return "Error: " + oneLine(err.Error())
}

func oneLine(s string) string {
	for i, r := range s {
		if r == '\n' || r == '\r' {
			return s[:i]
		}
	}
	return s
}
