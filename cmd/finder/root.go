package main

import (
	"context"
	"fmt"
	"slices"

	"github.com/matst80/portfolio-finder/pkg/common"
	"github.com/matst80/portfolio-finder/pkg/controller"
	"github.com/matst80/portfolio-finder/pkg/metrics"
	"github.com/matst80/portfolio-finder/pkg/storage"
	"github.com/spf13/cobra"
)

var validFormats = []string{"text", "json"}

type rootOptions struct {
	Format      string
	DataDir     string
	MetricsAddr string
	Profiling   bool

	debug *common.DebugServer
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "finder",
		Short: "Search, filter and sort portfolio collections",
		Long: `Filter projects, skills, achievements and learning milestones with free
text search, facets, ranges and sort keys. Collections are YAML or JSON files.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(validFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, validFormats)
			}
			if opts.MetricsAddr == "" {
				return nil
			}
			cfg := common.LoadTimeoutConfig(common.DefaultTimeouts)
			opts.debug = common.NewDebugServer("debug server", opts.MetricsAddr, metrics.Handler(opts.Profiling), cfg)
			_, err := opts.debug.Start()
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug == nil {
				return nil
			}
			return opts.debug.Shutdown(context.Background())
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", common.GetEnv("FINDER_DEFAULT_FORMAT", "text"), "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.DataDir, "data-dir", common.GetEnv("FINDER_DATA_DIR", "."), "folder relative collection paths resolve against")
	cmd.PersistentFlags().StringVar(&opts.MetricsAddr, "metrics-addr", common.GetEnv("FINDER_METRICS_ADDR", ""), "serve /metrics on this address while running")
	cmd.PersistentFlags().BoolVar(&opts.Profiling, "profiling", false, "also serve pprof endpoints on the metrics address")

	cmd.AddCommand(newKindsCommand(opts))
	cmd.AddCommand(newFacetsCommand(opts))
	cmd.AddCommand(newQueryCommand(opts))
	cmd.AddCommand(newSuggestCommand(opts))
	cmd.AddCommand(newBrowseCommand(opts))
	cmd.AddCommand(newConvertCommand(opts))

	return cmd
}

func (o *rootOptions) storage() *storage.DiskStorage {
	return storage.NewDiskStorage(o.DataDir)
}

func (o *rootOptions) load(name string) (*storage.Collection, error) {
	c, err := o.storage().LoadCollection(name)
	if err != nil {
		return nil, err
	}
	metrics.CollectionLoaded(c.Kind, len(c.Items))
	return c, nil
}

func (o *rootOptions) controller(c *storage.Collection, opts ...controller.Option) *controller.Controller {
	opts = append([]controller.Option{controller.WithObserver(metrics.NewRecorder(c.Kind))}, opts...)
	return controller.New(c.Schema, c.Items, nil, opts...)
}
