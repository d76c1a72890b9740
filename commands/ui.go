package commands

import (
	"fmt"

	"pdftoolbox/pdf"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

func (a *app) success(format string, args ...any) {
	successColor.Fprintf(a.out, "✓ "+format+"\n", args...)
}

func (a *app) warning(format string, args ...any) {
	warningColor.Fprintf(a.out, "! "+format+"\n", args...)
}

func (a *app) info(format string, args ...any) {
	infoColor.Fprintf(a.out, format+"\n", args...)
}

// openResult opens path with the OS handler when requested; failures only warn
func (a *app) openResult(open bool, path string) {
	if !open {
		return
	}
	if err := pdf.OpenInShell(path); err != nil {
		a.logger.Warn().Err(err).Str("path", path).Msg("could not open result")
		a.warning("Could not open %s", path)
	}
}

// userError is an error whose message is already fit for the terminal
type userError struct {
	msg string
	err error
}

func (e *userError) Error() string { return e.msg }
func (e *userError) Unwrap() error { return e.err }

func newUserError(err error, format string, args ...any) error {
	return &userError{msg: fmt.Sprintf(format, args...), err: err}
}
