package commands

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewLoginCmd creates the login command
func NewLoginCmd() *cobra.Command {
	var email, password, serverAlias string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with a stocktake server",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runLogin(d, email, password)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address (or set STOCKTAKE_EMAIL)")
	cmd.Flags().StringVar(&password, "password", "", "Password (or set STOCKTAKE_PASSWORD, will prompt if not provided)")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runLogin(d *deps, email, password string) error {
	// Check for environment variables (useful for CI/CD)
	if email == "" {
		email = os.Getenv("STOCKTAKE_EMAIL")
	}
	if password == "" {
		password = os.Getenv("STOCKTAKE_PASSWORD")
	}

	if email == "" {
		return fmt.Errorf("email is required (use --email flag or STOCKTAKE_EMAIL env var)")
	}

	// Prompt for password if not provided via flag or env var
	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password: ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag or STOCKTAKE_PASSWORD env var)")
		}
	}

	resp, err := d.api.Login(email, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	if err := d.sessions.Login(resp.Token, resp.User); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	d.printer.Success("Logged in as %s (%s)", resp.User.Name, resp.User.Email)
	if resp.User.Role != "" {
		d.printer.Dim("Role: %s", resp.User.Role)
	}

	return nil
}
