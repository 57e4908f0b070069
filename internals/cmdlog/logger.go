package cmdlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/jwalton/gchalk"
)

// Logger loggs pretty stuff to the console
type Logger struct {
	out       io.Writer
	emojis    bool
	indention int
}

// helper for indention
func (l *Logger) println(a string) {
	fmt.Fprintln(l.out, strings.Repeat(" ", l.indention)+a)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

// Out returns the writer everything is printed to
func (l *Logger) Out() io.Writer {
	return l.out
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	fmt.Fprintln(l.out, l.sprintEmoji("⚠️")+gchalk.WithYellow().Bold(s))
}

// Indent returns a copy of the logger that indents "normal" lines by n spaces
func (l *Logger) Indent(n int) *Logger {
	logger := *l
	logger.indention += n
	return &logger
}

// NewTask returns a new Task logger
func (l *Logger) NewTask(end int) *Task {
	logger := *l
	return &Task{&logger, 0, end}
}

// New returns a new Logger printing to stdout
func New() *Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter returns a new Logger printing to w
func NewWithWriter(w io.Writer) *Logger {
	emojis := runtime.GOOS != "windows"

	// no emojis for CI
	if os.Getenv("CI") != "" {
		emojis = false
	}
	return &Logger{out: w, emojis: emojis}
}

// DisableColor turns off colored output for the whole process
func DisableColor() {
	gchalk.SetLevel(gchalk.LevelNone)
}

// Task logs but with progress
type Task struct {
	*Logger
	current int
	end     int
}

// Step prints progress
func (l *Task) Step(e string, s string) {
	l.current++
	text := gchalk.Cyan(fmt.Sprintf(
		"[%d/%d] %s%s",
		l.current,
		l.end,
		l.sprintEmoji(e),
		s,
	))

	// we don't use l.println here, because step headlines should have no indentation
	fmt.Fprintln(l.out, text)
}
