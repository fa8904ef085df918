package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plinyoo/starfield/pkg/pipeline"
)

// renderFlags are the presentation flags shared by render and visualize.
type renderFlags struct {
	formats    string
	style      string
	title      string
	orbits     bool
	vizType    string
	background string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&f.style, "style", "", "visual style: simple, glow (default: config render.style)")
	cmd.Flags().StringVar(&f.title, "title", "", "caption drawn in the heading band")
	cmd.Flags().BoolVar(&f.orbits, "orbits", false, "draw orbit rings around suns")
	cmd.Flags().StringVarP(&f.vizType, "type", "t", pipeline.DefaultVizType, "visualization type: grid (default), tree")
	cmd.Flags().StringVar(&f.background, "background", "", "background fill color (default: transparent)")
}

func (f *renderFlags) apply(c *CLI, opts *pipeline.Options) error {
	cfg, err := c.config()
	if err != nil {
		return err
	}
	opts.Formats = parseFormats(f.formats)
	opts.Style = f.style
	if opts.Style == "" {
		opts.Style = cfg.Render.Style
	}
	opts.Title = f.title
	opts.Orbits = f.orbits
	opts.VizType = f.vizType
	opts.Background = f.background
	return opts.ValidateForRender()
}

// renderCommand runs the full pipeline from a star count to files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output string
		lf     layoutFlags
		rf     renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render <stars>",
		Short: "Render a star count to SVG, PNG, PDF or JSON",
		Long: `Render a star count to SVG, PNG, PDF or JSON.

This is 'layout' followed by 'visualize' in one step. With several formats,
-o is treated as a base path and each format gets its own extension.

PNG and PDF output need rsvg-convert (librsvg) on PATH.`,
		Example: `  starfield render 247
  starfield render 1200 -f svg,png --style glow --title "Our community"
  starfield render 58 -t tree -o sky.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseStarCount(args[0])
			if err != nil {
				return err
			}
			opts := pipeline.Options{Stars: n}
			if err := lf.apply(cmd, c, &opts); err != nil {
				return err
			}
			if err := rf.apply(c, &opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), opts, output, lf.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	lf.register(cmd)
	rf.register(cmd)

	return cmd
}

func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d stars...", opts.Stars))
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d elements in %d rows", result.Stats.Elements, result.Stats.Rows))

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      basePath(output, defaultName(opts.Stars)),
		output:    output,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}
	printStats(result.Layout.Structure, result.CacheInfo.LayoutHit)
	return nil
}
