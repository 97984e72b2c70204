// Package commands implements the CLI commands for the crate packaging tool.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"go.trai.ch/crate/internal/adapters/telemetry"
	"go.trai.ch/crate/internal/adapters/telemetry/progrock"
	"go.trai.ch/crate/internal/app"
	"go.trai.ch/crate/internal/core/domain"
	"go.trai.ch/crate/internal/core/ports"
	"go.trai.ch/crate/internal/tui"
)

// CLI represents the command line interface for crate.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	prompter ports.Prompter
	// progress is the settings-file preference: fancy, plain or quiet.
	progress string
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "crate",
		Short:         "Build and package Node.js projects into deployable archives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("plain", false, "Disable the terminal progress view")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress progress output entirely")

	c := &CLI{
		app:      a,
		rootCmd:  rootCmd,
		prompter: NewStdinPrompter(os.Stdin, os.Stderr),
	}

	rootCmd.AddCommand(c.newPackCmd())
	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newDetectCmd())
	rootCmd.AddCommand(c.newInitCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command output and error streams. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// SetPrompter replaces the interactive prompter. Used for testing.
func (c *CLI) SetPrompter(p ports.Prompter) {
	c.prompter = p
}

// SetProgressMode applies the settings-file progress preference.
func (c *CLI) SetProgressMode(mode string) {
	c.progress = mode
}

// projectRoot resolves the positional project directory argument, defaulting
// to the current working directory.
func projectRoot(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return os.Getwd()
}

// interactive reports whether stdout is attached to a terminal.
func interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// decider resolves pipeline decision points from flags and, when allowed,
// from interactive confirmation. When the progress view owns the terminal
// the prompter cannot be used, so undecided conditions abort.
func (c *CLI) decider(cmd *cobra.Command, allowPrompt bool) app.Decider {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return app.ContinueAll
	}
	if allowPrompt && interactive() {
		return func(_ domain.Condition, detail string) bool {
			return c.prompter.ConfirmContinue(detail)
		}
	}
	return app.AbortAll
}

// runPipeline executes fn, wiring the terminal progress view around it when
// stdout is a terminal and neither the --plain flag nor the settings file
// disable it.
func (c *CLI) runPipeline(cmd *cobra.Command, fn func() error) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet || c.progress == "quiet" {
		c.app.WithSink(telemetry.NewNoopSink())
		return fn()
	}
	plain, _ := cmd.Flags().GetBool("plain")
	if plain || c.progress == "plain" || !interactive() {
		return fn()
	}

	pipe := progrock.NewPipe()
	sink := progrock.NewSink(pipe)
	c.app.WithSink(sink)

	program := tea.NewProgram(tui.NewModel(pipe), tea.WithOutput(os.Stderr), tea.WithoutSignalHandler())
	viewDone := make(chan error, 1)
	go func() {
		_, err := program.Run()
		// Once the view is gone nothing drains the pipe; detach it so
		// the pipeline never blocks on progress delivery.
		pipe.Detach()
		viewDone <- err
	}()

	err := fn()

	_ = sink.Close()
	if viewErr := <-viewDone; viewErr != nil && err == nil {
		err = viewErr
	}
	return err
}
