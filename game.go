package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/scene"
	"github.com/OpticalFlyer/strata/ui"
)

// Strata implements ebiten.Game.
type Strata struct {
	ui *ui.Controller
}

func (g *Strata) Update() error {
	return g.ui.Update()
}

func (g *Strata) Draw(screen *ebiten.Image) {
	g.ui.Draw(screen)
}

func (g *Strata) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func newRunCmd() *cobra.Command {
	var flags sceneFlags

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open a window with the scroll viewer",
		Long: `Open a window with the scroll viewer inside a movable panel.

Drag the content, use the mouse wheel or the arrow keys to scroll. A custom
axis is scrolled with its scrollbar. F1 toggles the debug overlay.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, rows, err := flags.load(logger)
			if err != nil {
				return err
			}

			ecm := ecs.NewManager()
			sc := scene.Build(ecm, cfg, rows)
			panel := ui.PanelFor(cfg.Viewer, fmt.Sprintf("%d rows", len(rows)))
			game := &Strata{ui: ui.NewController(logger, ecm, sc, cfg.Theme, panel)}

			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetWindowTitle(cfg.Window.Title)
			ebiten.SetVsyncEnabled(true)

			logger.Debug("opening window", "width", cfg.Window.Width, "height", cfg.Window.Height)
			if err := ebiten.RunGame(game); err != nil {
				return fmt.Errorf("running window: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
