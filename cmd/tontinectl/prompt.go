package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/errors"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// prompter reads answers from the command input. Secrets are read without echo when the
// input is a terminal.
type prompter struct {
	in       *bufio.Reader
	out      io.Writer
	fd       int
	terminal bool
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	p := &prompter{
		in:  bufio.NewReader(in),
		out: cmd.OutOrStdout(),
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.terminal = true
	}

	return p
}

// line reads one line, without its line terminator.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	text, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && text != "") {
		return "", errors.Wrapf(err, "read %s", strings.ToLower(label))
	}

	return strings.TrimRight(text, "\r\n"), nil
}

func (p *prompter) secret(label string) (string, error) {
	if !p.terminal {
		return p.line(label)
	}

	fmt.Fprintf(p.out, "%s: ", label)
	value, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", strings.ToLower(label))
	}

	return string(value), nil
}

// describeError renders usecase errors the way the app shell shows them.
func describeError(err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return err
	}

	if appErr.Details() == "" {
		return errors.New(appErr.Message())
	}

	return errors.Errorf("%s: %s", appErr.Message(), appErr.Details())
}
