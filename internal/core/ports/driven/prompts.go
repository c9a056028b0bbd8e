package driven

import (
	"context"

	"github.com/custodia-labs/raylink/internal/core/domain"
)

// PromptStore reads prompt files.
type PromptStore interface {
	// Load parses the prompt file at path.
	// Returns domain.ErrNotFound if the file does not exist and
	// domain.ErrInvalidInput if its frontmatter is unusable.
	Load(path string) (*domain.PromptConfig, error)

	// List returns every valid prompt file directly inside dir,
	// sorted by path. Invalid files are skipped.
	List(dir string) ([]domain.PromptConfig, error)
}

// PromptWatcher reports prompt files that appear or change in a directory.
type PromptWatcher interface {
	// Watch blocks until ctx is cancelled, calling onChange with the path
	// of every prompt file created or written inside dir.
	Watch(ctx context.Context, dir string, onChange func(path string)) error
}
