package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.trai.ch/crate/internal/app"
)

func (c *CLI) newPackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack [dir]",
		Short: "Build the project and package the result into an archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(args)
			if err != nil {
				return err
			}

			output, _ := cmd.Flags().GetString("output")
			skipBuild, _ := cmd.Flags().GetBool("skip-build")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			plain, _ := cmd.Flags().GetBool("plain")

			opts := app.RunOptions{
				SkipBuild:  skipBuild,
				OutputPath: output,
				Timeout:    timeout,
				Decide:     c.decider(cmd, plain),
			}

			var report *app.Report
			err = c.runPipeline(cmd, func() error {
				var runErr error
				report, runErr = c.app.Run(cmd.Context(), root, opts)
				return runErr
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "packaged %s -> %s\n", root, report.Artifact.Path)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Artifact path (default: <project>.<ext> inside the project)")
	cmd.Flags().Bool("skip-build", false, "Archive without running the build step")
	cmd.Flags().BoolP("yes", "y", false, "Continue past recoverable conditions without prompting")
	cmd.Flags().Duration("timeout", 0, "Abort the build command after this duration")

	return cmd
}
