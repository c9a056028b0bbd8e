package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/ports/driven"
	"github.com/custodia-labs/raylink/internal/core/services"
)

// configKeys lists the settable keys with a short description.
var configKeys = []struct {
	key  string
	desc string
}{
	{driven.ConfigKeyScheme, "URL scheme of the launcher (default raycast)"},
	{driven.ConfigKeyPublisher, "extension publisher (default wheat2021)"},
	{driven.ConfigKeyExtension, "extension name (default aurora-input-processor)"},
	{driven.ConfigKeyCommand, "extension command (default processor-1)"},
	{driven.ConfigKeyPromptDir, "default directory for the prompts commands"},
}

var errConfigStoreMissing = errors.New("config store not configured")

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and change configuration",
	Long:  `View and change the settings stored in config.toml.`,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long:  "Set a configuration value. Available keys:\n\n" + configKeyHelp(),
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if configStore == nil {
			return errConfigStoreMissing
		}
		outln(cmd, configStore.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func configKeyHelp() string {
	var b strings.Builder
	for _, k := range configKeys {
		fmt.Fprintf(&b, "  %-20s %s\n", k.key, k.desc)
	}
	return b.String()
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errConfigStoreMissing
	}

	target := services.TargetFromConfig(configStore)

	outln(cmd, "Current Configuration")
	outln(cmd, "=====================")
	outln(cmd)
	outf(cmd, "File: %s\n", configStore.Path())
	outln(cmd)

	outln(cmd, "[Deeplink]")
	outf(cmd, "  Scheme:    %s\n", target.Scheme)
	outf(cmd, "  Publisher: %s\n", target.Publisher)
	outf(cmd, "  Extension: %s\n", target.Extension)
	outf(cmd, "  Command:   %s\n", target.Command)
	outf(cmd, "  Prefix:    %s\n", target.Prefix())
	outln(cmd)

	outln(cmd, "[Prompts]")
	dir := configStore.GetString(driven.ConfigKeyPromptDir)
	if dir == "" {
		dir = "(not set)"
	}
	outf(cmd, "  Directory: %s\n", dir)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errConfigStoreMissing
	}

	key, value := args[0], strings.TrimSpace(args[1])
	if !isConfigKey(key) {
		return fmt.Errorf("unknown key %q: %w", key, domain.ErrInvalidInput)
	}

	switch key {
	case driven.ConfigKeyPromptDir:
		abs, err := filepath.Abs(value)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", value, err)
		}
		value = abs
	default:
		target := services.TargetFromConfig(configStore)
		setTargetField(&target, key, value)
		if err := target.Validate(); err != nil {
			return err
		}
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	outf(cmd, "Set %s = %s\n", key, value)
	return nil
}

func isConfigKey(key string) bool {
	for _, k := range configKeys {
		if k.key == key {
			return true
		}
	}
	return false
}

func setTargetField(t *domain.Target, key, value string) {
	switch key {
	case driven.ConfigKeyScheme:
		t.Scheme = value
	case driven.ConfigKeyPublisher:
		t.Publisher = value
	case driven.ConfigKeyExtension:
		t.Extension = value
	case driven.ConfigKeyCommand:
		t.Command = value
	}
}
