package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"go.trai.ch/crate/internal/adapters/config"
	"go.trai.ch/crate/internal/core/domain"
)

func (c *CLI) newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a seed crate.json with type-specific defaults",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := projectRoot(args)
			if err != nil {
				return err
			}

			force, _ := cmd.Flags().GetBool("force")

			path, err := c.app.InitConfig(root, force)
			if errors.Is(err, domain.ErrOverrideExists) && !force {
				if !interactive() || !c.prompter.ConfirmOverwrite(config.OverridePath(root)) {
					return err
				}
				path, err = c.app.InitConfig(root, true)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing crate.json")

	return cmd
}
