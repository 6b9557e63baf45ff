package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stocktake-dev/stocktake/internal/cli/theme"
)

// NewThemeCmd creates the theme command
func NewThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme [light|dark|toggle]",
		Short: "Show or change the color theme",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDeps("")
			if err != nil {
				return err
			}

			var action string
			if len(args) > 0 {
				action = args[0]
			}
			return runTheme(d, action)
		},
	}

	return cmd
}

func runTheme(d *deps, action string) error {
	switch action {
	case "":
		d.printer.Print("Current theme: %s", d.themes.Current())
		return nil
	case "toggle":
		next, err := d.themes.Toggle()
		if err != nil {
			return err
		}
		d.printer.Success("Theme is now %s", next)
		return nil
	case "light", "dark":
		if err := d.themes.Set(theme.Theme(action)); err != nil {
			return err
		}
		d.printer.Success("Theme is now %s", action)
		return nil
	default:
		return fmt.Errorf("unknown theme %q (use light, dark or toggle)", action)
	}
}
