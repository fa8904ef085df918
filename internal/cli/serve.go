package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plinyoo/starfield/internal/server"
	"github.com/plinyoo/starfield/pkg/pipeline"
)

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the galaxy and lead capture HTTP API",
		Long: `Serve the galaxy and lead capture HTTP API.

Settings come from the config file, a .env file and STARFIELD_* environment
variables. See 'starfield config show' for the effective values.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.config()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			verbose := c.Logger.GetLevel() <= LogDebug
			logger := newServiceLogger(os.Stderr, cfg.Log, verbose)
			server.RegisterLogHooks(logger)

			st, keyer, err := openCache(ctx, cfg.Cache, false)
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			runner := pipeline.NewRunner(st, keyer, logger)
			runner.TTL = cfg.Cache.TTL
			defer runner.Close()

			svc, err := openLeadService(ctx, cfg.Leads, logger)
			if err != nil {
				return fmt.Errorf("open lead store: %w", err)
			}
			defer svc.Close()
			if cfg.Leads.DemoMode {
				printWarning("Demo mode: lead submissions are logged, not stored")
			}

			logger.Info("starting",
				"addr", cfg.Server.Addr,
				"cache", cfg.Cache.Backend,
				"leads", cfg.Leads.Backend,
				"rate_limit", cfg.RateLimit.Enabled,
			)
			return server.New(*cfg, runner, svc, logger).Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default: config server.addr)")
	return cmd
}
