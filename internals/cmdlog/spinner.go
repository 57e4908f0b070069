package cmdlog

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

// MaybeSpinner is a spinner that can also just log text
type MaybeSpinner struct {
	Spin    bool
	Spinner *spinner.Spinner
	out     io.Writer
}

// Start might start the spinner
func (m *MaybeSpinner) Start(msg string) {
	if m.Spin {
		m.Spinner.Suffix = " " + msg
		m.Spinner.Start()
	} else if msg != "" {
		fmt.Fprintln(m.out, msg)
	}
}

// Stop will stop the spinner
func (m *MaybeSpinner) Stop() {
	if m.Spin {
		m.Spinner.Stop()
	}
}

// NewMaybeSpinner will return a new MaybeSpinner writing to out. It only spins
// when out is a terminal.
func NewMaybeSpinner(out io.Writer) *MaybeSpinner {
	spin := false
	if f, ok := out.(*os.File); ok {
		spin = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	s := &MaybeSpinner{
		Spin:    spin,
		Spinner: spinner.New(spinner.CharSets[9], 120*time.Millisecond, spinner.WithWriter(out)),
		out:     out,
	}
	s.Spinner.Prefix = " "
	return s
}
