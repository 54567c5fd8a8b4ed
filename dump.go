package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/strata/config"
	"github.com/OpticalFlyer/strata/ecs"
	"github.com/OpticalFlyer/strata/layout"
	"github.com/OpticalFlyer/strata/scene"
	"github.com/OpticalFlyer/strata/snapshot"
	"github.com/OpticalFlyer/strata/source"
)

var (
	colorCyan = lipgloss.Color("36")
	colorDim  = lipgloss.Color("240")

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)

// frameRecord is the viewer state after one frame.
type frameRecord struct {
	Frame   uint64
	Dirty   bool
	Offset  layout.Point
	Content layout.Rectangle
}

// dumpOptions drive a headless run.
type dumpOptions struct {
	Frames int
	Delta  layout.Point
	PNG    string
}

func newDumpCmd() *cobra.Command {
	var (
		flags sceneFlags
		opts  dumpOptions
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Run frames headless and print the scroll state",
		Long: `Run frames without a window, applying the same drag delta to the viewer
on every frame, and print the offset and content bounds after each one.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			cfg, rows, err := flags.load(logger)
			if err != nil {
				return err
			}
			if opts.Frames < 1 {
				return fmt.Errorf("frames must be at least 1, got %d", opts.Frames)
			}

			records, err := dump(cmd.Context(), layout.NewContext(logger), cfg, rows, opts)
			if err != nil {
				return err
			}
			writeTable(cmd.OutOrStdout(), records)
			if opts.PNG != "" {
				logger.Info("wrote snapshot", "path", opts.PNG)
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&opts.Frames, "frames", "n", 1, "number of frames to run")
	cmd.Flags().Float64Var(&opts.Delta.X, "dx", 0, "horizontal drag delta per frame")
	cmd.Flags().Float64Var(&opts.Delta.Y, "dy", 0, "vertical drag delta per frame")
	cmd.Flags().StringVar(&opts.PNG, "png", "", "write a snapshot of the last frame to this file")
	return cmd
}

// dump builds the scene and runs opts.Frames frames on it. It stops between
// frames once ctx is done.
func dump(ctx context.Context, lctx *layout.Context, cfg config.Config, rows []source.Row, opts dumpOptions) ([]frameRecord, error) {
	ecm := ecs.NewManager()
	sc := scene.Build(ecm, cfg, rows)
	th := cfg.Theme
	window := layout.Size{Width: float64(cfg.Window.Width), Height: float64(cfg.Window.Height)}
	store := ecm.Store()

	records := make([]frameRecord, 0, opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("dump interrupted after %d frames: %w", len(records), err)
		}
		layout.SetDelta(store, sc.Viewer, opts.Delta)
		frame := lctx.Frame
		_, dirty := layout.Run(lctx, sc.Host, ecm, sc.Layouts, &th, window)
		records = append(records, frameRecord{
			Frame:   frame,
			Dirty:   dirty,
			Offset:  layout.ScrollOffset(store, sc.Viewer),
			Content: layout.Bounds(store, sc.Content),
		})
	}

	if opts.PNG != "" {
		r := snapshot.NewRenderer(cfg.Window.Width, cfg.Window.Height)
		r.Render(ecm, sc, &th)
		if err := r.SavePNG(opts.PNG); err != nil {
			return nil, err
		}
	}
	return records, nil
}

func writeTable(w io.Writer, records []frameRecord) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleBorder).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		}).
		Headers("frame", "dirty", "offset x", "offset y", "content x", "content y", "width", "height")

	for _, r := range records {
		t.Row(
			fmt.Sprint(r.Frame),
			fmt.Sprint(r.Dirty),
			fmt.Sprintf("%.1f", r.Offset.X),
			fmt.Sprintf("%.1f", r.Offset.Y),
			fmt.Sprintf("%.1f", r.Content.X),
			fmt.Sprintf("%.1f", r.Content.Y),
			fmt.Sprintf("%.1f", r.Content.Width),
			fmt.Sprintf("%.1f", r.Content.Height),
		)
	}
	fmt.Fprintln(w, t.String())
}
