package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/gogpu/gg"
	"github.com/gogpu/ring"
	"github.com/gogpu/ring/config"
	"github.com/gogpu/ring/ggsurface"
)

func newRenderCmd(cfg *ring.Config) *cobra.Command {
	var (
		vp         viewport
		output     string
		background string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a ring to a PNG file",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := *cfg
			flags := cmd.Flags()
			if flags.Changed("progress") {
				c.Progress, _ = flags.GetInt("progress")
			}
			if flags.Changed("max") {
				c.Max, _ = flags.GetInt("max")
			}
			if flags.Changed("round-cap") {
				c.StrokeCapRound, _ = flags.GetBool("round-cap")
			}
			if flags.Changed("hide-label") {
				hide, _ := flags.GetBool("hide-label")
				c.LabelVisible = !hide
			}

			var fill *gg.RGBA
			if background != "" {
				c, err := config.ParseColor(background)
				if err != nil {
					return fmt.Errorf("invalid --background: %w", err)
				}
				fill = &c
			}

			dc := gg.NewContext(vp.width, vp.height)
			defer func() { _ = dc.Close() }()
			if fill != nil {
				dc.ClearWithColor(*fill)
			}

			surf, err := ggsurface.NewRaster(dc)
			if err != nil {
				return err
			}

			v := ring.NewView(ring.WithConfig(c))
			v.Layout(float64(vp.width), float64(vp.height), ring.Uniform(vp.padding))
			v.Draw(surf)

			if err := dc.SavePNG(output); err != nil {
				return fmt.Errorf("failed to save %s: %w", output, err)
			}
			log.Printf("Ring saved to %s (%dx%d, %s)", output, vp.width, vp.height, ring.PercentText(c.Progress, c.Max))
			return nil
		},
	}

	vp.bind(cmd)
	cmd.Flags().StringVarP(&output, "out", "o", "ring.png", "output file")
	cmd.Flags().StringVar(&background, "background", "", "canvas fill color, transparent if empty")
	cmd.Flags().Int("progress", ring.DefaultProgress, "progress value")
	cmd.Flags().Int("max", ring.DefaultMax, "progress maximum")
	cmd.Flags().Bool("round-cap", false, "round arc caps")
	cmd.Flags().Bool("hide-label", false, "hide the percentage label")
	return cmd
}
