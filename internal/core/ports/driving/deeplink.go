package driving

import (
	"context"

	"github.com/custodia-labs/raylink/internal/core/domain"
)

// DeeplinkService builds, opens and inspects extension deeplinks.
type DeeplinkService interface {
	// Target returns the extension command deeplinks are built for.
	Target() domain.Target

	// ForCommand returns a service addressing another command of the
	// same extension.
	ForCommand(command string) (DeeplinkService, error)

	// Build returns the deeplink URL for a prompt path and optional inputs.
	Build(promptPath string, inputs domain.InputValues) (string, error)

	// Open builds the deeplink and hands it to the OS URL handler.
	// Returns the URL that was dispatched.
	Open(ctx context.Context, promptPath string, inputs domain.InputValues) (string, error)

	// Decode parses a deeplink URL back into its target and arguments.
	Decode(rawURL string) (*domain.Deeplink, error)

	// Check merges inputs against the prompt file's declared inputs,
	// reporting what the extension would pre-fill and whether it would
	// run without showing the form.
	Check(promptPath string, inputs domain.InputValues) (*domain.ValidationResult, error)

	// Prompt loads the prompt file at path.
	Prompt(path string) (*domain.PromptConfig, error)

	// Prompts lists the prompt files in a directory.
	Prompts(dir string) ([]domain.PromptConfig, error)
}
