// Package cmd wires the startup path shared by the service commands: env
// configuration, flag parsing, and telemetry around the run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/louisbranch/petclinic/internal/platform/config"
	"github.com/louisbranch/petclinic/internal/platform/otel"
	"github.com/louisbranch/petclinic/internal/platform/timeouts"
)

// Service names used for telemetry and log identification.
const (
	ServiceSeed = "seed"
	ServiceWeb  = "web"
)

// ParseConfig fills cfg from the environment. Callers register flags on top
// of the loaded values before calling ParseArgs, so flags win over env.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.FromEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing for the named service and invokes run.
// Pending spans are flushed on return, bounded by the shutdown timeout.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}

	flush, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer flushTraces(service, flush)

	return run(ctx)
}

func flushTraces(service string, flush func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := flush(ctx); err != nil {
		log.Printf("%s trace flush: %v", service, err)
	}
}
