package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"tontine/internal/domain/entity"
	domainerrors "tontine/internal/domain/errors"
	"tontine/internal/errors"
	"tontine/internal/usecase"

	"github.com/spf13/cobra"
)

// maxChangeAttempts bounds how often the new password is asked for before giving up.
const maxChangeAttempts = 3

func newPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Manage the member password",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "change",
		Short: "Change the password, confirmed by email",
		Long: `Sign in, then request a password change. The backend applies the new
password once the link sent by email is followed; the session ends either way.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app, p *prompter) error {
				ok, err := signIn(ctx, cmd.OutOrStdout(), a, p)
				if err != nil || !ok {
					return err
				}

				return changePassword(ctx, cmd.OutOrStdout(), a, p, usecase.VariantConfirmedChange)
			})
		},
	})

	return cmd
}

// changePassword drives one password form until the backend accepts the change, the
// session ends or the attempts run out.
func changePassword(ctx context.Context, out io.Writer, a *app, p *prompter, variant usecase.PasswordVariant) error {
	opened, err := a.forms.OpenForm(ctx, variant)
	if err != nil {
		return err
	}
	defer func() {
		// Forms that ended signed out are already gone.
		if err := a.forms.CloseForm(ctx, opened.ID); err != nil && !errors.Is(err, domainerrors.ErrFormNotFound) {
			a.logger.Warn("Failed to close password form",
				slog.String("formID", opened.ID.String()),
				slog.Any("error", err),
			)
		}
	}()

	if opened.State == usecase.StateLoggedOut {
		printNotice(out, opened.Notice)

		return nil
	}

	for attempt := 0; attempt < maxChangeAttempts; attempt++ {
		if err := fillForm(ctx, a, p, opened); err != nil {
			return err
		}

		result, err := a.forms.Submit(ctx, opened.ID)
		if err != nil {
			return err
		}

		switch {
		case result.Succeeded:
			printNotice(out, result.Notice)
			if _, err := p.line("Press Enter to sign out"); err != nil {
				return err
			}
			if _, err := a.forms.Acknowledge(ctx, opened.ID); err != nil {
				return err
			}
			fmt.Fprintln(out, "Signed out.")

			return nil
		case result.Submitted:
			printNotice(out, result.Notice)
		case result.Notice != nil:
			// Refused before any remote call; retrying cannot help.
			printNotice(out, result.Notice)

			return errors.New("password not changed")
		default:
			printFieldErrors(out, result.Form.Errors)
		}

		if result.State == usecase.StateLoggedOut {
			return nil
		}
	}

	return errors.Errorf("password not changed after %d attempts", maxChangeAttempts)
}

func fillForm(ctx context.Context, a *app, p *prompter, opened *usecase.FormOutput) error {
	fields := []struct {
		field entity.PasswordField
		label string
	}{
		{entity.FieldNewPassword, "New password"},
		{entity.FieldConfirmPassword, "Confirm new password"},
	}

	for _, f := range fields {
		value, err := p.secret(f.label)
		if err != nil {
			return err
		}
		if _, err := a.forms.EditField(ctx, opened.ID, f.field, value); err != nil {
			return err
		}
		if _, err := a.forms.BlurField(ctx, opened.ID, f.field); err != nil {
			return err
		}
	}

	return nil
}

func printFieldErrors(out io.Writer, errs map[entity.PasswordField]string) {
	for _, field := range []entity.PasswordField{
		entity.FieldOldPassword,
		entity.FieldNewPassword,
		entity.FieldConfirmPassword,
	} {
		if msg := errs[field]; msg != "" {
			fmt.Fprintf(out, "%s: %s\n", field, msg)
		}
	}
}
