package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runLogout(d)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runLogout(d *deps) error {
	wasAuthenticated := d.sessions.Current().IsAuthenticated

	if err := d.sessions.Logout(); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	if wasAuthenticated {
		d.printer.Success("Logged out")
	} else {
		d.printer.Print("Not logged in.")
	}
	return nil
}
