package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/elifdikmn/elif-dev/internal/config"
	"github.com/elifdikmn/elif-dev/internal/content"
	"github.com/elifdikmn/elif-dev/internal/logging"
	"github.com/elifdikmn/elif-dev/internal/store"
	"github.com/elifdikmn/elif-dev/internal/tui"
	"github.com/elifdikmn/elif-dev/internal/web"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "elif-dev",
		Short:        "Elif Dikmen's portfolio, on the web and in the terminal",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("content", "", "site content file (.yaml, .yml or .toml); defaults to the built-in copy")
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	root.AddCommand(newServeCmd(), newTUICmd(), newVersionCmd())
	return root
}

// loadConfig reads the environment and applies flags the user set.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentPath, _ = flags.GetString("content")
	}
	if v, _ := flags.GetBool("verbose"); v {
		cfg.LogLevel = "debug"
	}
	if flags.Lookup("port") != nil && flags.Changed("port") {
		cfg.Port, _ = flags.GetString("port")
	}
	if flags.Lookup("db") != nil && flags.Changed("db") {
		cfg.DatabaseDSN, _ = flags.GetString("db")
	}
	if flags.Lookup("resume") != nil && flags.Changed("resume") {
		cfg.ResumePath, _ = flags.GetString("resume")
	}
	if flags.Lookup("watch") != nil && flags.Changed("watch") {
		cfg.WatchContent, _ = flags.GetBool("watch")
	}
	if flags.Lookup("reduced-motion") != nil && flags.Changed("reduced-motion") {
		cfg.ReducedMotion, _ = flags.GetBool("reduced-motion")
	}
	logging.Configure(cfg.LogLevel, cfg.LogFormat)
	return cfg
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)
			if cfg.GinMode != "" {
				gin.SetMode(cfg.GinMode)
			}
			logger := logging.NewLogger("serve")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			site, err := content.Load(cfg.ContentPath)
			if err != nil {
				return err
			}
			sites := content.NewStore(site)

			stats, err := store.Open(ctx, cfg.DatabaseDSN)
			if err != nil {
				return err
			}
			defer stats.Close()

			var opts []web.Option
			if cfg.WatchContent {
				if cfg.ContentPath == "" {
					logger.Warn("--watch needs --content; built-in content never changes")
				} else {
					lr := web.NewLiveReload()
					w, err := content.NewWatcher(cfg.ContentPath, sites, func(*content.Site) { lr.Broadcast() })
					if err != nil {
						return fmt.Errorf("watch %s: %w", cfg.ContentPath, err)
					}
					go w.Run(ctx)
					opts = append(opts, web.WithLiveReload(lr))
					logger.Infof("watching %s for changes", cfg.ContentPath)
				}
			}

			srv, err := web.New(cfg, sites, stats, opts...)
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
	cmd.Flags().String("port", "8080", "listen port or host:port (env PORT)")
	cmd.Flags().String("db", config.DefaultDSN, "SQLite DSN for visit statistics (env PORTFOLIO_DB)")
	cmd.Flags().String("resume", "", "resume document served at /resume (env PORTFOLIO_RESUME)")
	cmd.Flags().Bool("watch", false, "reload content and refresh open pages when the content file changes")
	cmd.Flags().Bool("reduced-motion", false, "skip the intro splash (env REDUCED_MOTION)")
	return cmd
}

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the site in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd)

			// Log lines would tear the alternate screen.
			logFile, _ := cmd.Flags().GetString("log-file")
			if logFile == "" {
				logging.SetOutput(io.Discard)
			} else {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				logging.SetOutput(f)
			}

			site, err := content.Load(cfg.ContentPath)
			if err != nil {
				return err
			}
			return tui.Run(tui.New(site, tui.Options{ReducedMotion: cfg.ReducedMotion}))
		},
	}
	cmd.Flags().Bool("reduced-motion", false, "show text immediately and skip the intro (env REDUCED_MOTION)")
	cmd.Flags().String("log-file", "", "write logs to this file while the terminal UI runs")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
