package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"tontine/internal/domain/entity"
	"tontine/internal/errors"
	"tontine/internal/usecase"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

// listConfig holds the filter flags shared by the list commands.
type listConfig struct {
	status string
	query  string
}

func newTontinesCmd() *cobra.Command {
	cfg := &listConfig{}

	cmd := &cobra.Command{
		Use:   "tontines",
		Short: "List the tontines you belong to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *app, p *prompter) error {
				ok, err := signIn(ctx, cmd.OutOrStdout(), a, p)
				if err != nil || !ok {
					return err
				}

				tontines, err := a.tontines.ListTontines(ctx, usecase.TontineFilter{
					Status: entity.TontineStatus(cfg.status),
					Query:  cfg.query,
				})
				if err != nil {
					return err
				}

				printTontines(cmd.OutOrStdout(), tontines)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&cfg.status, "status", "", "only tontines in this status (pending, active, completed)")
	cmd.Flags().StringVarP(&cfg.query, "query", "q", "", "match on name or code")

	return cmd
}

func newTiragesCmd() *cobra.Command {
	cfg := &listConfig{}

	cmd := &cobra.Command{
		Use:   "tirages <tontine-id>",
		Short: "Show the draw history of a tontine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tontineID, err := uuid.Parse(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid tontine id")
			}

			return withApp(cmd, func(ctx context.Context, a *app, p *prompter) error {
				ok, err := signIn(ctx, cmd.OutOrStdout(), a, p)
				if err != nil || !ok {
					return err
				}

				tirages, err := a.tontines.ListTirages(ctx, tontineID, usecase.TirageFilter{
					Status: entity.TirageStatus(cfg.status),
					Query:  cfg.query,
				})
				if err != nil {
					return err
				}

				printTirages(cmd.OutOrStdout(), tirages)

				return nil
			})
		},
	}

	cmd.Flags().StringVar(&cfg.status, "status", "", "only draws in this status (scheduled, completed, cancelled)")
	cmd.Flags().StringVarP(&cfg.query, "query", "q", "", "match on beneficiary name")

	return cmd
}

func newQRCodeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "qrcode <tontine-id>",
		Short: "Write the invitation QR code of a tontine as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tontineID, err := uuid.Parse(args[0])
			if err != nil {
				return errors.Wrap(err, "invalid tontine id")
			}

			return withApp(cmd, func(ctx context.Context, a *app, p *prompter) error {
				ok, err := signIn(ctx, cmd.OutOrStdout(), a, p)
				if err != nil || !ok {
					return err
				}

				png, err := a.tontines.InvitationQRCode(ctx, tontineID)
				if err != nil {
					return err
				}

				if err := os.WriteFile(output, png, 0o644); err != nil {
					return errors.Wrap(err, "write qr code")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Invitation written to %s\n", output)

				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "invitation.png", "PNG file to write")

	return cmd
}

func printTontines(out io.Writer, tontines []*entity.Tontine) {
	if len(tontines) == 0 {
		fmt.Fprintln(out, "No tontines.")

		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tNAME\tSTATUS\tCONTRIBUTION\tFREQUENCY\tSTART")
	for _, t := range tontines {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Code, t.Name, t.Status,
			formatAmount(t.ContributionAmount, t.Currency), t.Frequency, t.StartDate.Format(dateLayout))
	}
	_ = w.Flush()
}

func printTirages(out io.Writer, tirages []*entity.Tirage) {
	if len(tirages) == 0 {
		fmt.Fprintln(out, "No draws.")

		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ROUND\tSTATUS\tBENEFICIARY\tAMOUNT\tSCHEDULED\tCOMPLETED")
	for _, t := range tirages {
		completed := "-"
		if t.CompletedAt != nil {
			completed = t.CompletedAt.Format(dateLayout)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			t.Round, t.Status, t.BeneficiaryName, t.Amount, t.ScheduledAt.Format(dateLayout), completed)
	}
	_ = w.Flush()
}

// formatAmount renders minor units with two decimals.
func formatAmount(minor int64, currency string) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}

	return fmt.Sprintf("%s%d.%02d %s", sign, minor/100, minor%100, currency)
}
