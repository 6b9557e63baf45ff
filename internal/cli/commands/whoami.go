package commands

import (
	"github.com/spf13/cobra"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	var serverAlias string

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runWhoami(d)
		},
	}

	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runWhoami(d *deps) error {
	state := d.sessions.Current()
	if !state.IsAuthenticated {
		d.printer.Print("Not logged in. Run 'stocktake login' to authenticate.")
		return nil
	}

	d.printer.Print("%s (%s)", state.User.Name, state.User.Email)
	if state.User.Role != "" {
		d.printer.Dim("Role: %s", state.User.Role)
	}
	return nil
}
