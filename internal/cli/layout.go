package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plinyoo/starfield/pkg/galaxy"
	"github.com/plinyoo/starfield/pkg/pipeline"
)

// layoutFlags are the frame flags shared by layout, render and preview.
type layoutFlags struct {
	width     float64
	height    float64
	padding   float64
	topMargin float64
	noCache   bool
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.width, "width", 0, "frame width (default: config render.width)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "frame height (default: config render.height)")
	cmd.Flags().Float64Var(&f.padding, "padding", 0, fmt.Sprintf("outer padding and gap between elements (default %g)", galaxy.DefaultPadding))
	cmd.Flags().Float64Var(&f.topMargin, "top-margin", 0, fmt.Sprintf("space reserved above the sky (default padding + %g)", galaxy.DefaultTopMargin-galaxy.DefaultPadding))
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
}

// apply copies the flags into opts. top-margin is only honored when set, so
// an explicit 0 removes the heading band.
func (f *layoutFlags) apply(cmd *cobra.Command, c *CLI, opts *pipeline.Options) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	opts.Width, opts.Height = cfg.Render.Width, cfg.Render.Height
	if f.width != 0 {
		opts.Width = f.width
	}
	if f.height != 0 {
		opts.Height = f.height
	}
	opts.Padding = f.padding
	if cmd.Flags().Changed("top-margin") {
		opts.TopMargin = pipeline.TopMargin(f.topMargin)
	}
	opts.Refresh = f.noCache
	opts.Logger = c.Logger
	return nil
}

// layoutCommand creates the layout command for computing scene layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout <stars>",
		Short: "Compute the positioned scene for a star count",
		Long: `Compute the positioned scene for a star count.

The output is a layout.json file holding every galaxy, solar system, planet
and star with its coordinates. Render it later with 'starfield visualize'.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseStarCount(args[0])
			if err != nil {
				return err
			}
			opts := pipeline.Options{Stars: n}
			if err := flags.apply(cmd, c, &opts); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), opts, output, flags.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout (default: stars-<n>.layout.json)")
	flags.register(cmd)

	return cmd
}

// runLayout computes the layout and writes it.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Arranging %d stars...", opts.Stars))
	spinner.Start()

	l, cacheHit, err := runner.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = defaultName(opts.Stars) + ".layout.json"
	}

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := galaxy.WriteLayout(l, out); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	if outputPath == "-" {
		return nil
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(l.Structure, cacheHit)
	printNewline()
	printNextStep("Render", appName+" visualize "+outputPath)

	return nil
}

// defaultName is the output base name for a star count.
func defaultName(stars int) string {
	return "stars-" + strconv.Itoa(stars)
}
