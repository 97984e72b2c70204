package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Run the project's build and validate the output, without archiving",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(args)
			if err != nil {
				return err
			}

			timeout, _ := cmd.Flags().GetDuration("timeout")
			plain, _ := cmd.Flags().GetBool("plain")

			opts := app.RunOptions{
				Timeout: timeout,
				Decide:  c.decider(cmd, plain),
			}

			var report *app.Report
			err = c.runPipeline(cmd, func() error {
				var runErr error
				report, runErr = c.app.Build(cmd.Context(), root, opts)
				return runErr
			})
			if err != nil {
				return err
			}

			if report.Build != nil && !report.Build.Success {
				return domain.ErrBuildFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), "build succeeded")
			return nil
		},
	}

	cmd.Flags().BoolP("yes", "y", false, "Continue past recoverable conditions without prompting")
	cmd.Flags().Duration("timeout", 0, "Abort the build command after this duration")

	return cmd
}
