package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBundleDataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle-data",
		Short: "Copy the auxiliary data directory into the package build output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			buildLib, _ := cmd.Flags().GetString("build-lib")
			_, err := c.app.BundleData(cmd.Context(), sourceDir(cmd), buildLib)
			return err
		},
	}
	cmd.Flags().String("build-lib", "", "Build output directory of the packaging layer")
	_ = cmd.MarkFlagRequired("build-lib")
	return cmd
}

func (c *CLI) newPackageVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package-version",
		Short: "Print the package version read from the version header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := c.app.PackageVersion(sourceDir(cmd))
			if err != nil {
				return err
			}
			writeln(cmd, v.String())
			return nil
		},
	}
}
