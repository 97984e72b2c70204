package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect [dir]",
		Short: "Show the detected project type and the effective build configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(args)
			if err != nil {
				return err
			}

			report, err := c.app.Detect(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			fmt.Fprintf(out, "project:         %s\n", report.Project.Name())
			fmt.Fprintf(out, "type:            %s\n", report.Project.Type)
			fmt.Fprintf(out, "typescript:      %t\n", report.Project.TypeScript)
			fmt.Fprintf(out, "package manager: %s\n", report.PackageManager)
			fmt.Fprintf(out, "build command:   %s\n", orNone(report.Config.BuildCommand))
			fmt.Fprintf(out, "format:          %s\n", report.Config.CompressionFormat)
			for _, msg := range report.Messages {
				fmt.Fprintf(out, "warning: %s\n", msg)
			}
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the full report as JSON")

	return cmd
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
