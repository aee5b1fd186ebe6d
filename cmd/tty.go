package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/orbitfield/internal/panel"
	"github.com/iburimskiy/orbitfield/internal/sky"
	"github.com/iburimskiy/orbitfield/internal/tty"
	"github.com/iburimskiy/orbitfield/internal/ui"
)

func ttyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tty",
		Short: "Render the star field in the terminal",
		Long:  "Run the same simulation inside the terminal. Mouse hover and clicks work where the terminal reports them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			// tcell owns the terminal until Fini
			ui.SetOutput(io.Discard)
			defer ui.SetOutput(os.Stderr)

			// Star orbits are sized for the terminal at startup; growing the
			// terminal later leaves the outer area sparse.
			cols, rows := screen.Size()
			params, err := cfg.Params(pageName, float64(cols*tty.CellW), float64(rows*tty.CellH))
			if err != nil {
				return err
			}
			field := sky.NewField(params, cfg.AnchorSource(), panel.Log{})
			defer field.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return tty.New(screen, field, sky.NewClock(nil)).Run(ctx)
		},
	}
}
