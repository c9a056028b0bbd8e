// Command raylink builds launcher extension deeplinks and opens them.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/raylink/internal/adapters/driven/config/file"
	"github.com/custodia-labs/raylink/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/raylink/internal/adapters/driven/opener"
	"github.com/custodia-labs/raylink/internal/adapters/driving/cli"
	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/ports/driven"
	"github.com/custodia-labs/raylink/internal/core/services"
	"github.com/custodia-labs/raylink/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:]); err != nil {
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cli.SetVersion(version)
	cli.SetServiceFactory(newServices)
	return cli.ExecuteArgs(ctx, args)
}

// newServices wires the driven adapters into the deeplink service. An
// invalid configured target falls back to the default so the config
// commands can still repair the file.
func newServices(configDir string) (*cli.Services, error) {
	cfg := loadConfig(configDir)
	urlOpener := opener.NewSystemOpener()
	prompts := file.NewPromptStore()

	svc, err := services.NewDeeplinkService(services.TargetFromConfig(cfg), urlOpener, prompts)
	if err != nil {
		logger.Warn("Invalid deeplink target in %s, using default: %v", cfg.Path(), err)
		svc, err = services.NewDeeplinkService(domain.DefaultTarget(), urlOpener, prompts)
		if err != nil {
			return nil, fmt.Errorf("building deeplink service: %w", err)
		}
	}

	return &cli.Services{
		Deeplink: svc,
		Config:   cfg,
		Watcher:  file.NewPromptWatcher(file.DefaultDebounce),
	}, nil
}

// loadConfig opens the TOML config, falling back to in-memory defaults
// when the directory cannot be created or the file cannot be parsed.
func loadConfig(configDir string) driven.ConfigStore {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		logger.Warn("Using default configuration: %v", err)
		return memory.NewConfigStore()
	}
	logger.Debug("Loaded configuration from %s", cfg.Path())
	return cfg
}
