package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/OpticalFlyer/strata/config"
	"github.com/OpticalFlyer/strata/source"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "strata",
		Short:         "Lay out and scroll a list of rows",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRunCmd())
	root.AddCommand(newDumpCmd())
	return root
}

// sceneFlags are shared by the commands that build a scene.
type sceneFlags struct {
	config    string
	shapefile string
	field     string
}

func (f *sceneFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "TOML configuration file")
	cmd.Flags().StringVar(&f.shapefile, "shapefile", "", "read rows from a shapefile's attribute table")
	cmd.Flags().StringVar(&f.field, "field", "", "attribute used as the row label (default: first)")
}

// load returns the configuration and the rows it describes.
func (f *sceneFlags) load(logger *log.Logger) (config.Config, []source.Row, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return config.Config{}, nil, err
		}
		logger.Debug("loaded config", "path", f.config)
	}
	if f.shapefile != "" {
		cfg.Content.Shapefile = f.shapefile
	}
	if f.field != "" {
		cfg.Content.Field = f.field
	}

	if cfg.Content.Shapefile == "" {
		return cfg, source.Synthetic(cfg.Content.Rows), nil
	}
	rows, err := source.Shapefile(cfg.Content.Shapefile, cfg.Content.Field, cfg.Content.Rows)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("loading rows: %w", err)
	}
	logger.Info("loaded rows", "shapefile", cfg.Content.Shapefile, "rows", len(rows))
	return cfg, rows, nil
}
