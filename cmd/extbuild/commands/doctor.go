package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the external build tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := c.app.Doctor(cmd.Context(), sourceDir(cmd))
			for _, s := range statuses {
				mark := "ok"
				switch {
				case s.Satisfied:
				case s.Requirement.Optional:
					mark = "--"
				default:
					mark = "!!"
				}
				line := mark + " " + s.Requirement.Name
				if s.Version != "" {
					line += " " + s.Version
				}
				if s.Problem != "" {
					line += ": " + s.Problem
				}
				writeln(cmd, line)
			}
			return err
		},
	}
}
