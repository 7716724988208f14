// Command ringdemo renders ring progress indicators to PNG files.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// viewport holds the flags shared by commands that lay out a ring.
type viewport struct {
	width, height int
	padding       float64
}

func (vp *viewport) bind(cmd *cobra.Command) {
	cmd.Flags().IntVar(&vp.width, "width", 200, "viewport width in pixels")
	cmd.Flags().IntVar(&vp.height, "height", 200, "viewport height in pixels")
	cmd.Flags().Float64Var(&vp.padding, "padding", 0, "padding on every side in pixels")
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		logLevel   string
		cfg        ring.Config
	)

	root := &cobra.Command{
		Use:           "ringdemo",
		Short:         "Render circular progress indicators",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogging(logLevel); err != nil {
				return err
			}
			var err error
			cfg, err = config.Load(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "style file (toml, yaml or json)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newRenderCmd(&cfg),
		newGeometryCmd(&cfg),
		newVersionCmd(),
	)
	return root
}

func setupLogging(level string) error {
	if level == "" {
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	ring.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

func newGeometryCmd(cfg *ring.Config) *cobra.Command {
	var vp viewport
	cmd := &cobra.Command{
		Use:   "geometry",
		Short: "Print the resolved ring geometry for a viewport",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := ring.Resolve(cfg.Request(float64(vp.width), float64(vp.height), ring.Uniform(vp.padding)))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "center:       (%g, %g)\n", g.Center.X, g.Center.Y)
			fmt.Fprintf(out, "limit:        %g\n", g.Limit)
			fmt.Fprintf(out, "radius:       %g\n", g.Radius)
			fmt.Fprintf(out, "stroke width: %g\n", g.StrokeWidth)
			return nil
		},
	}
	vp.bind(cmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ringdemo %s\n", ring.Version)
		},
	}
}
