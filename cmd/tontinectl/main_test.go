package main

import (
	"bufio"
	"bytes"
	"log/slog"
	"strings"
	"testing"

	mockUsecase "tontine/internal/mocks/usecase"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appFixtures struct {
	app      *app
	auth     *mockUsecase.MockAuthUsecase
	forms    *mockUsecase.MockPasswordFormUsecase
	tontines *mockUsecase.MockTontineUsecase
	logs     *bytes.Buffer
}

func createTestApp(t *testing.T) appFixtures {
	auth := mockUsecase.NewMockAuthUsecase(t)
	forms := mockUsecase.NewMockPasswordFormUsecase(t)
	tontines := mockUsecase.NewMockTontineUsecase(t)
	logs := new(bytes.Buffer)

	return appFixtures{
		app: &app{
			session:  mockUsecase.NewMockSessionUsecase(t),
			auth:     auth,
			forms:    forms,
			tontines: tontines,
			logger:   slog.New(slog.NewTextHandler(logs, nil)),
		},
		auth:     auth,
		forms:    forms,
		tontines: tontines,
		logs:     logs,
	}
}

// useApp makes commands run against a instead of a configured backend.
func useApp(t *testing.T, a *app) {
	t.Helper()

	previous := openApp
	openApp = func(*cobra.Command) (*app, error) { return a, nil }
	t.Cleanup(func() { openApp = previous })
}

// runRoot executes the root command with args, feeding input to the prompts.
func runRoot(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func newTestPrompter(input string) (*prompter, *bytes.Buffer) {
	out := new(bytes.Buffer)

	return &prompter{in: bufio.NewReader(strings.NewReader(input)), out: out}, out
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	output, err := runRoot(t, "", "--help")
	require.NoError(t, err)

	for _, sub := range []string{"login", "password", "tontines", "tirages", "qrcode"} {
		assert.Contains(t, output, sub, "Help missing %q command", sub)
	}
	assert.Contains(t, output, "--config")
	assert.Contains(t, output, "--identifier")
}

func TestPrompter_Line(t *testing.T) {
	p, out := newTestPrompter("alice@example.com\r\nlast")

	first, err := p.line("Identifier")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", first)
	assert.Equal(t, "Identifier: ", out.String())

	// A final line without terminator is still returned.
	second, err := p.secret("Password")
	require.NoError(t, err)
	assert.Equal(t, "last", second)

	_, err = p.line("Again")
	assert.Error(t, err)
}
