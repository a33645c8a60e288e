package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the last successful build of the current preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Status(cmd.Context(), sourceDir(cmd))
			if err != nil {
				return err
			}

			record := report.Record
			if record == nil {
				writef(cmd, "%s: no successful build recorded\n", report.Target.Preset)
				return nil
			}

			writef(cmd, "preset:      %s\n", record.Preset)
			writef(cmd, "version:     %s\n", record.Version)
			writef(cmd, "fingerprint: %s\n", record.Fingerprint)
			writef(cmd, "install:     %s\n", record.InstallRoot)
			writef(cmd, "completed:   %s\n", record.CompletedAt.Format(time.RFC3339))
			writef(cmd, "outputs:     %d\n", len(record.Outputs))
			for _, rel := range report.Missing {
				writef(cmd, "missing:     %s\n", rel)
			}
			return nil
		},
	}
}
