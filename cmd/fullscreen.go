package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/CrueChan/Timer/internal/adapters/tui"
)

// runFullscreen opens the fullscreen countdown.
func runFullscreen(cmd *cobra.Command, args []string) error {
	ctx := setupSignalHandler()

	sink := tui.NewFrameSink()
	engine := newEngine(sink)
	defer engine.Close()

	sheet := tui.NewStylesheet()
	app.theme.Attach(sheet)

	model := tui.NewModel(ctx, engine, app.localizer, app.theme, sheet, sink, tui.Options{
		PrimaryKey: app.config.Keys.Primary,
		ResetKey:   app.config.Keys.Reset,
		Pulse:      time.Duration(app.config.Alert.Pulse),
	})
	program := tui.NewApp(model, sink)
	watchAppearance(program.Refresh)

	_, err := program.Run(ctx)
	return err
}
