// Package cli is the console surface: cobra commands for the attendance
// session and the employee, attendance and task list screens.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-chi/httplog/v3"
	"github.com/spf13/cobra"

	"github.com/cmlabs-hris/hris-console-go/internal/config"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/api"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/geo"
	"github.com/cmlabs-hris/hris-console-go/internal/pkg/session"
)

var rootCmd = &cobra.Command{
	Use:   "hris-console",
	Short: "Terminal console for the cmlabs HRIS backend",
	Long: `hris-console talks to the HRIS REST API: check in and out of work,
and browse the employee, attendance and task list screens from the terminal.
Connection settings are read from the environment or a .env file.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(checkinCmd)
	rootCmd.AddCommand(checkoutCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(attendanceCmd)
	rootCmd.AddCommand(tasksCmd)
}

// app bundles everything a command needs: config, logger, the authenticated
// client, the session identity and the location provider.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	sess    *session.Session
	client  *api.Client
	locator geo.Locator
}

func setup(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg)

	sess, err := session.New(cfg.API.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("set HRIS_ACCESS_TOKEN to a valid token: %w", err)
	}
	if err := sess.Check(); err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		sess:    sess,
		client:  api.New(ctx, cfg.API.BaseURL, sess.Token(), logger),
		locator: newLocator(cfg.Location),
	}, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	logFormat := httplog.SchemaECS.Concise(true)
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-console"),
		slog.String("env", cfg.App.Env),
	)
}

func newLocator(cfg config.LocationConfig) geo.Locator {
	switch cfg.Provider {
	case "ip":
		return geo.NewIPLocator(cfg.IPService)
	case "none":
		return geo.Unavailable()
	default:
		if cfg.Latitude == 0 && cfg.Longitude == 0 {
			return geo.Unavailable()
		}
		return geo.NewStaticLocator(geo.Point{
			Latitude:  cfg.Latitude,
			Longitude: cfg.Longitude,
		})
	}
}
