package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/extbuild/internal/app"
)

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().String("ext-dir", "", "Install root of the native extension")
	cmd.Flags().String("python-root", "", "Python installation prefix (default: queried from the interpreter)")
	cmd.Flags().String("python", "", "Interpreter queried for its prefix")
	_ = cmd.MarkFlagRequired("ext-dir")
}

func buildRequest(cmd *cobra.Command) app.BuildRequest {
	extDir, _ := cmd.Flags().GetString("ext-dir")
	pythonRoot, _ := cmd.Flags().GetString("python-root")
	python, _ := cmd.Flags().GetString("python")
	return app.BuildRequest{
		SourceDir:  sourceDir(cmd),
		ExtDir:     extDir,
		PythonRoot: pythonRoot,
		Python:     python,
	}
}

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Configure, build and install the native extension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			record, err := c.app.Build(cmd.Context(), buildRequest(cmd))
			if err != nil {
				return err
			}
			if record != nil {
				writef(cmd, "built %s (%s), %d files installed in %s\n",
					record.Preset, record.Fingerprint, len(record.Outputs), record.InstallRoot)
			}
			return nil
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the resolved target and configure arguments without building",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := c.app.Plan(cmd.Context(), buildRequest(cmd))
			if err != nil {
				return err
			}

			writef(cmd, "preset: %s\n", plan.Target.Preset)
			if plan.Skipped {
				writeln(cmd, "native build disabled")
				return nil
			}
			for _, arg := range plan.Arguments {
				writeln(cmd, arg)
			}
			writef(cmd, "fingerprint: %s\n", plan.Fingerprint)
			return nil
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Build, then rebuild whenever a source file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), buildRequest(cmd))
		},
	}
	addBuildFlags(cmd)
	return cmd
}
