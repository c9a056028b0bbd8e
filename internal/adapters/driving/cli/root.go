// Package cli implements the raylink command-line interface with cobra.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/raylink/internal/core/ports/driven"
	"github.com/custodia-labs/raylink/internal/core/ports/driving"
	"github.com/custodia-labs/raylink/internal/logger"
)

// version is set at build time via -ldflags or SetVersion.
var version = "dev"

// Services bundles the ports the commands run against.
type Services struct {
	Deeplink driving.DeeplinkService
	Config   driven.ConfigStore
	Watcher  driven.PromptWatcher
}

// ServiceFactory builds services once global flags are parsed.
type ServiceFactory func(configDir string) (*Services, error)

var (
	deeplinkService driving.DeeplinkService
	configStore     driven.ConfigStore
	promptWatcher   driven.PromptWatcher
	serviceFactory  ServiceFactory
)

// Global flags.
var (
	verbosity int
	configDir string
)

var errDeeplinkServiceMissing = errors.New("deeplink service not configured")

var rootCmd = &cobra.Command{
	Use:   "raylink",
	Short: "Build and open launcher extension deeplinks",
	Long: `raylink builds deeplink URLs for a launcher extension and hands them to
the operating system's URL handler.

A deeplink carries the absolute path of a prompt file plus optional form
inputs. By default it targets the Aurora Input Processor Raycast extension:

  raycast://extensions/wheat2021/aurora-input-processor/processor-1?arguments=...

When every required input is supplied the extension runs the prompt
straight away; otherwise it opens the form with the values prefilled.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "verbose output (repeat for debug)")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.raylink)")
}

// SetServices injects the services used by every command.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	deeplinkService = s.Deeplink
	configStore = s.Config
	promptWatcher = s.Watcher
}

// SetServiceFactory defers service construction until flags are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ExecuteArgs runs the root command with args instead of os.Args.
func ExecuteArgs(ctx context.Context, args []string) error {
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return rootCmd.ExecuteContext(ctx)
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbosity(verbosity)

	if serviceFactory == nil {
		return nil
	}
	services, err := serviceFactory(configDir)
	if err != nil {
		return err
	}
	SetServices(services)
	return nil
}
