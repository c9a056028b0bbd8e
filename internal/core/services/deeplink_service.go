package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/ports/driven"
	"github.com/custodia-labs/raylink/internal/core/ports/driving"
	"github.com/custodia-labs/raylink/internal/logger"
)

// Ensure DeeplinkService implements the interface.
var _ driving.DeeplinkService = (*DeeplinkService)(nil)

// Sentinel errors for missing driven ports.
var (
	ErrOpenerUnavailable      = errors.New("url opener not configured")
	ErrPromptStoreUnavailable = errors.New("prompt store not configured")
)

// DeeplinkService builds deeplinks for one extension command.
type DeeplinkService struct {
	target  domain.Target
	opener  driven.URLOpener
	prompts driven.PromptStore
}

// NewDeeplinkService creates a deeplink service for target.
// Empty target segments take their defaults. opener and prompts may be nil,
// which disables Open and Check respectively.
func NewDeeplinkService(
	target domain.Target,
	opener driven.URLOpener,
	prompts driven.PromptStore,
) (*DeeplinkService, error) {
	target = target.WithDefaults()
	if err := target.Validate(); err != nil {
		return nil, err
	}
	return &DeeplinkService{
		target:  target,
		opener:  opener,
		prompts: prompts,
	}, nil
}

// ForCommand returns a service addressing another command of the same
// extension. An empty command returns s unchanged.
func (s *DeeplinkService) ForCommand(command string) (driving.DeeplinkService, error) {
	if command == "" || command == s.target.Command {
		return s, nil
	}
	target := s.target
	target.Command = command
	svc, err := NewDeeplinkService(target, s.opener, s.prompts)
	if err != nil {
		return nil, err
	}
	return svc, nil
}

// Target returns the extension command deeplinks are built for.
func (s *DeeplinkService) Target() domain.Target {
	return s.target
}

// Build returns the deeplink URL for promptPath and inputs.
func (s *DeeplinkService) Build(promptPath string, inputs domain.InputValues) (string, error) {
	logger.Section("Build Deeplink")
	logger.Debug("Target: %s", s.target.Prefix())
	logger.Debug("Prompt: %s", promptPath)
	if len(inputs) > 0 {
		logger.Debug("Inputs: %d value(s)", len(inputs))
	}

	link, err := BuildDeeplink(s.target, promptPath, inputs)
	if err != nil {
		return "", err
	}
	logger.Debug("URL: %s", link)
	return link, nil
}

// Open builds the deeplink and dispatches it to the OS URL handler.
// The handler's outcome is not observed.
func (s *DeeplinkService) Open(ctx context.Context, promptPath string, inputs domain.InputValues) (string, error) {
	if s.opener == nil {
		return "", ErrOpenerUnavailable
	}

	link, err := s.Build(promptPath, inputs)
	if err != nil {
		return "", err
	}

	if err := s.opener.Open(ctx, link); err != nil {
		return link, fmt.Errorf("opening deeplink: %w", err)
	}
	logger.Info("Dispatched deeplink to %s", s.target.Command)
	return link, nil
}

// Decode parses a deeplink URL.
func (s *DeeplinkService) Decode(rawURL string) (*domain.Deeplink, error) {
	link, err := DecodeDeeplink(rawURL)
	if err != nil {
		return nil, err
	}
	if link.Target != s.target {
		logger.Warn("Deeplink targets %s, configured target is %s", link.Target.Prefix(), s.target.Prefix())
	}
	return link, nil
}

// Check merges inputs against the prompt file at promptPath.
func (s *DeeplinkService) Check(promptPath string, inputs domain.InputValues) (*domain.ValidationResult, error) {
	cfg, err := s.Prompt(promptPath)
	if err != nil {
		return nil, err
	}

	result := MergeInputs(cfg, inputs)
	for id, warning := range result.Warnings {
		logger.Warn("Input %s: %s", id, warning)
	}
	logger.Debug("Complete: %t", result.Complete)
	return result, nil
}

// Prompt loads the prompt file at path.
func (s *DeeplinkService) Prompt(path string) (*domain.PromptConfig, error) {
	if s.prompts == nil {
		return nil, ErrPromptStoreUnavailable
	}
	return s.prompts.Load(path)
}

// Prompts lists the prompt files in dir.
func (s *DeeplinkService) Prompts(dir string) ([]domain.PromptConfig, error) {
	if s.prompts == nil {
		return nil, ErrPromptStoreUnavailable
	}
	return s.prompts.List(dir)
}

// TargetFromConfig reads the deeplink target from configuration.
// Missing keys, or a nil store, fall back to the defaults.
func TargetFromConfig(cfg driven.ConfigStore) domain.Target {
	if cfg == nil {
		return domain.DefaultTarget()
	}
	return domain.Target{
		Scheme:    cfg.GetString(driven.ConfigKeyScheme),
		Publisher: cfg.GetString(driven.ConfigKeyPublisher),
		Extension: cfg.GetString(driven.ConfigKeyExtension),
		Command:   cfg.GetString(driven.ConfigKeyCommand),
	}.WithDefaults()
}
