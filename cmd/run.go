package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CrueChan/Timer/internal/adapters/tui"
)

var plainOutput bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a countdown in line mode",
	Long: `Start a countdown immediately and show it below the prompt.
The command exits when the countdown completes. Without a terminal, or
with --plain, each displayed second is printed on its own line.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := setupSignalHandler()
		if plainOutput || !tui.IsTerminal() {
			return runPlain(ctx, cmd)
		}
		return runInline(ctx)
	},
}

func init() {
	runCmd.Flags().BoolVar(&plainOutput, "plain", false, "Print one line per second instead of the inline view")
}

func runInline(ctx context.Context) error {
	sink := tui.NewFrameSink()
	engine := newEngine(sink)
	defer engine.Close()

	sheet := tui.NewStylesheet()
	app.theme.Attach(sheet)

	model := tui.NewInlineModel(engine, app.localizer, sheet, sink, tui.Options{
		PrimaryKey: app.config.Keys.Primary,
		ResetKey:   app.config.Keys.Reset,
	})
	if err := engine.Start(); err != nil {
		return fmt.Errorf("failed to start countdown: %w", err)
	}

	_, err := tui.NewInlineApp(model, sink).Run(ctx)
	return err
}

func runPlain(ctx context.Context, cmd *cobra.Command) error {
	display := tui.NewPlainDisplay(cmd.OutOrStdout(), app.localizer)
	engine := newEngine(display)
	defer engine.Close()

	stop := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		display.Run(stop)
	}()

	if err := engine.Start(); err != nil {
		close(stop)
		<-finished
		return fmt.Errorf("failed to start countdown: %w", err)
	}

	select {
	case <-display.Done():
	case <-ctx.Done():
		close(stop)
	}
	<-finished
	return nil
}
