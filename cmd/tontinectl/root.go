package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var (
	configDir  string
	identifier string
)

// NewRootCmd creates the root command for the tontine terminal client.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tontinectl",
		Short: "tontinectl - terminal client for tontine members",
		Long: `tontinectl signs a member in against the tontine backend, runs the
password change flows and lists the member's tontines and their draws.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configDir, "config", "", "directory holding config.yaml")
	cmd.PersistentFlags().StringVarP(&identifier, "identifier", "u", "", "member identifier used to sign in")

	cmd.AddCommand(newLoginCmd())
	cmd.AddCommand(newPasswordCmd())
	cmd.AddCommand(newTontinesCmd())
	cmd.AddCommand(newTiragesCmd())
	cmd.AddCommand(newQRCodeCmd())

	return cmd
}
