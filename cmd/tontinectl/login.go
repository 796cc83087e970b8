package main

import (
	"context"
	"fmt"
	"io"

	"tontine/internal/domain/entity"
	"tontine/internal/usecase"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in and replace a temporary password",
		Long: `Sign in with a member identifier and password. When the backend reports a
first login, the forced password change runs immediately and the session ends
once the new password is accepted.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app, p *prompter) error {
				_, err := signIn(ctx, cmd.OutOrStdout(), a, p)

				return err
			})
		},
	}
}

// withApp opens the app, runs fn and releases the app.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app, p *prompter) error) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	return describeError(fn(cmd.Context(), a, newPrompter(cmd)))
}

// signIn prompts for credentials and opens a session. A first login runs the forced change,
// which ends signed out, and reports false.
func signIn(ctx context.Context, out io.Writer, a *app, p *prompter) (bool, error) {
	id := identifier
	if id == "" {
		var err error
		if id, err = p.line("Identifier"); err != nil {
			return false, err
		}
	}

	password, err := p.secret("Password")
	if err != nil {
		return false, err
	}

	result, err := a.auth.SignIn(ctx, usecase.SignInInput{Identifier: id, Password: password})
	if err != nil {
		return false, err
	}

	fmt.Fprintf(out, "Signed in as %s\n", displayName(result.User))

	if result.FirstLogin {
		fmt.Fprintln(out, "Your password is temporary and must be changed now.")

		return false, changePassword(ctx, out, a, p, usecase.VariantForcedFirstChange)
	}

	return true, nil
}

func displayName(user *entity.UserIdentity) string {
	if user == nil {
		return "unknown member"
	}
	if user.Name != "" {
		return user.Name
	}

	return user.Email
}

func printNotice(out io.Writer, notice *entity.Notice) {
	if notice == nil {
		return
	}

	fmt.Fprintf(out, "%s\n%s\n", notice.Title, notice.Message)
	for i, step := range notice.Steps {
		fmt.Fprintf(out, "  %d. %s\n", i+1, step)
	}
}
