package main

import (
	"context"
	"fmt"
	"os"
	ossignal "os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Zachkp/folio/internal/config"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/logger"
	"github.com/Zachkp/folio/internal/prefs"
	"github.com/Zachkp/folio/internal/prefs/signal"
	"github.com/Zachkp/folio/internal/prefs/store"
	"github.com/Zachkp/folio/internal/tui"
	"github.com/Zachkp/folio/internal/web"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "folio",
	Short:   "Personal portfolio site",
	Version: version,
}

var (
	flagPort  string
	flagStore string
)

func init() {
	serveCmd.Flags().StringVarP(&flagPort, "port", "p", "", "listen port (overrides PORT)")
	serveCmd.Flags().StringVar(&flagStore, "store", "", "preference store: cookie, sqlite, redis or mongo (overrides FOLIO_STORE)")
	rootCmd.AddCommand(serveCmd, previewCmd, pruneCmd)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagPort != "" {
		cfg.Port = flagPort
	}
	if flagStore != "" {
		if cfg.Store, err = config.ParseStoreKind(flagStore); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := logger.NewStderr(cfg.LogLevel, cfg.LogFormat)
		gin.SetMode(cfg.GinMode)

		ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		portfolio, err := content.LoadFile(cfg.ContentPath)
		if err != nil {
			return err
		}

		backend, err := openBackend(ctx, cfg, log)
		if err != nil {
			return err
		}
		if backend != nil {
			defer backend.Close()
		}

		srv, err := web.New(portfolio, backend, web.Options{
			Log:           logger.Component(log, "web"),
			ImagesDir:     cfg.ImagesDir,
			SecureCookies: cfg.SecureCookie,
		})
		if err != nil {
			return fmt.Errorf("build server: %w", err)
		}
		return srv.Run(ctx, ":"+cfg.Port)
	},
}

// openBackend returns nil for the cookie store, which needs no server state.
func openBackend(ctx context.Context, cfg *config.Config, log zerolog.Logger) (store.Backend, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	switch cfg.Store {
	case config.StoreCookie:
		log.Info().Msg("preferences stored in visitor cookies")
		return nil, nil
	case config.StoreSQLite:
		db, err := store.OpenSQLite(dialCtx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		go prune(context.Background(), db, cfg.Retention, logger.Component(log, "retention"))
		log.Info().Str("path", cfg.DBPath).Msg("preferences stored in sqlite")
		return db, nil
	case config.StoreRedis:
		r, err := store.DialRedis(dialCtx, cfg.RedisAddr, cfg.RedisTTL)
		if err != nil {
			return nil, err
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("preferences stored in redis")
		return r, nil
	case config.StoreMongo:
		m, err := store.DialMongo(dialCtx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		log.Info().Str("db", cfg.MongoDB).Msg("preferences stored in mongo")
		return m, nil
	}
	return nil, fmt.Errorf("%w: %s", store.ErrUnknownStore, cfg.Store)
}

func prune(ctx context.Context, db *store.SQLite, retention time.Duration, log zerolog.Logger) {
	n, err := db.Prune(ctx, time.Now().Add(-retention))
	if err != nil {
		log.Error().Err(err).Msg("preference cleanup failed")
		return
	}
	if n > 0 {
		log.Info().Int64("removed", n).Dur("retention", retention).Msg("removed stale preferences")
	}
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		portfolio, err := content.LoadFile(cfg.ContentPath)
		if err != nil {
			return err
		}

		// The theme still toggles without a database, it just isn't remembered.
		var prefStore prefs.Store
		if db, err := store.OpenSQLite(cmd.Context(), cfg.DBPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v; theme will not be saved\n", err)
		} else {
			defer db.Close()
			prefStore = store.Bind(db, "local")
		}

		// Query the background before bubbletea owns the tty; the model
		// still applies the answer after its first frame.
		ambient := signal.Resolve(cmd.Context(), signal.Terminal{})
		model := tui.New(cmd.Context(), portfolio, prefStore, ambient, zerolog.Nop())
		_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
		return err
	},
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete server-side preferences older than the retention window (sqlite)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		db, err := store.OpenSQLite(cmd.Context(), cfg.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		n, err := db.Prune(cmd.Context(), time.Now().Add(-cfg.Retention))
		if err != nil {
			return err
		}
		fmt.Printf("removed %d preference(s) older than %s\n", n, cfg.Retention)
		return nil
	},
}
