package cli

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/ports/driving"
	"github.com/custodia-labs/raylink/internal/core/services"
)

// inputFlags holds the input-related flags shared by several commands.
type inputFlags struct {
	pairs   []string
	json    string
	command string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.pairs, "input", "i", nil, "input value as key=value (repeatable)")
	cmd.Flags().StringVar(&f.json, "inputs-json", "", "inputs as a JSON object, for typed values")
	cmd.Flags().StringVar(&f.command, "command", "", "extension command (default from config, e.g. processor-2)")
}

// raw parses the key=value pairs. Later pairs win.
func (f *inputFlags) raw() (map[string]string, error) {
	if len(f.pairs) == 0 {
		return nil, nil
	}
	values := make(map[string]string, len(f.pairs))
	for _, pair := range f.pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("input %q must be key=value: %w", pair, domain.ErrInvalidInput)
		}
		values[key] = value
	}
	return values, nil
}

// typed parses --inputs-json.
func (f *inputFlags) typed() (domain.InputValues, error) {
	if strings.TrimSpace(f.json) == "" {
		return nil, nil
	}
	var values domain.InputValues
	if err := json.Unmarshal([]byte(f.json), &values); err != nil {
		return nil, fmt.Errorf("--inputs-json must be a JSON object: %w", domain.ErrInvalidInput)
	}
	return values, nil
}

// values returns the JSON inputs overlaid with the key=value pairs as
// plain strings. Nil when neither flag is set.
func (f *inputFlags) values() (domain.InputValues, error) {
	raw, err := f.raw()
	if err != nil {
		return nil, err
	}
	return f.overlay(stringValues(raw))
}

// coercedValues is like values but converts the key=value pairs according
// to the input types declared by cfg.
func (f *inputFlags) coercedValues(cfg *domain.PromptConfig) (domain.InputValues, error) {
	raw, err := f.raw()
	if err != nil {
		return nil, err
	}
	coerced, err := services.CoerceInputs(cfg, raw)
	if err != nil {
		return nil, err
	}
	return f.overlay(coerced)
}

func (f *inputFlags) overlay(pairs domain.InputValues) (domain.InputValues, error) {
	values, err := f.typed()
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return values, nil
	}
	if values == nil {
		values = make(domain.InputValues, len(pairs))
	}
	for k, v := range pairs {
		values[k] = v
	}
	return values, nil
}

// service returns the deeplink service, switched to --command if given.
func (f *inputFlags) service() (driving.DeeplinkService, error) {
	if deeplinkService == nil {
		return nil, errDeeplinkServiceMissing
	}
	if f.command == "" {
		return deeplinkService, nil
	}
	return deeplinkService.ForCommand(f.command)
}

func stringValues(raw map[string]string) domain.InputValues {
	if len(raw) == 0 {
		return nil
	}
	values := make(domain.InputValues, len(raw))
	for k, v := range raw {
		values[k] = v
	}
	return values
}

// promptPathArg turns a prompt argument into an absolute path; the
// extension resolves it outside this process's working directory.
// file:// URIs and a leading ~ are accepted.
func promptPathArg(arg string) (string, error) {
	path := arg
	if strings.HasPrefix(path, "file://") {
		u, err := url.Parse(path)
		if err != nil {
			return "", fmt.Errorf("prompt path %q: %w", arg, domain.ErrInvalidInput)
		}
		path = u.Path
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding ~: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	if path == "" {
		return "", fmt.Errorf("prompt path is empty: %w", domain.ErrInvalidInput)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving prompt path: %w", err)
	}
	return abs, nil
}
