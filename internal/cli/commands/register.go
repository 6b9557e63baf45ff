package commands

import (
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewRegisterCmd creates the register command
func NewRegisterCmd() *cobra.Command {
	var email, password, name, role, serverAlias string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account on a stocktake server",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps(serverAlias)
			if err != nil {
				return err
			}
			return runRegister(d, email, password, name, role)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Password (will prompt if not provided)")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&role, "role", "staff", "Account role")
	cmd.Flags().StringVar(&serverAlias, "server", "", "Server alias from stocktake.json")

	return cmd
}

func runRegister(d *deps, email, password, name, role string) error {
	if email == "" {
		return fmt.Errorf("email is required (use --email flag)")
	}
	if name == "" {
		return fmt.Errorf("name is required (use --name flag)")
	}

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
			return fmt.Errorf("password is required in non-interactive mode (use --password flag)")
		}
	}

	resp, err := d.api.Register(email, password, name, role)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	// The server logs the new account straight in
	if err := d.sessions.Login(resp.Token, resp.User); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	d.printer.Success("Account created for %s (%s)", resp.User.Name, resp.User.Email)
	return nil
}
