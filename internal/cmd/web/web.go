// Package web parses web service flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/petclinic/internal/platform/cmd"
	"github.com/louisbranch/petclinic/internal/services/web"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr string `env:"PETCLINIC_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath   string `env:"PETCLINIC_WEB_DB_PATH" envDefault:"petclinic.db"`
	AppName  string `env:"PETCLINIC_WEB_APP_NAME"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "application name shown in page chrome")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(runCtx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr: cfg.HTTPAddr,
			DBPath:   cfg.DBPath,
			AppName:  cfg.AppName,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()
		return server.ListenAndServe(runCtx)
	})
}
