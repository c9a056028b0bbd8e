package file

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/ports/driven"
	"github.com/custodia-labs/raylink/internal/logger"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptExt is the extension of prompt files.
const PromptExt = ".md"

const frontmatterFence = "---"

// PromptStore reads Markdown prompt files with a YAML frontmatter:
//
//	---
//	title: git modify last
//	inputs:
//	  - id: commit_msg
//	    label: Commit message
//	    type: textarea
//	    required: true
//	---
//	Body with {{commit_msg}} placeholders.
//
// Parsed files are cached by path and re-read when their mtime changes.
type PromptStore struct {
	mu    sync.RWMutex
	cache map[string]cachedPrompt
}

type cachedPrompt struct {
	modTime time.Time
	config  domain.PromptConfig
}

// frontmatter mirrors the YAML header of a prompt file.
// Inputs is a pointer so an absent key can be told apart from "inputs: []".
type frontmatter struct {
	Title           string       `yaml:"title"`
	FormDescription string       `yaml:"formDescription"`
	Inputs          *[]yaml.Node `yaml:"inputs"`
}

// NewPromptStore creates a new file-based prompt store.
func NewPromptStore() *PromptStore {
	return &PromptStore{
		cache: make(map[string]cachedPrompt),
	}
}

// Load parses the prompt file at path.
func (s *PromptStore) Load(path string) (*domain.PromptConfig, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("prompt %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("prompt %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: prompt %s is a directory", domain.ErrInvalidInput, path)
	}

	s.mu.RLock()
	cached, ok := s.cache[path]
	s.mu.RUnlock()
	if ok && cached.modTime.Equal(info.ModTime()) {
		return clonePrompt(&cached.config), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("prompt %s: %w", path, err)
	}

	cfg, err := ParsePrompt(data)
	if err != nil {
		return nil, fmt.Errorf("prompt %s: %w", path, err)
	}
	cfg.FilePath = path

	s.mu.Lock()
	s.cache[path] = cachedPrompt{modTime: info.ModTime(), config: *clonePrompt(cfg)}
	s.mu.Unlock()

	return cfg, nil
}

// List returns every valid prompt file directly inside dir.
func (s *PromptStore) List(dir string) ([]domain.PromptConfig, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("prompts directory %s: %w", dir, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("prompts directory %s: %w", dir, err)
	}

	// ReadDir returns entries sorted by filename.
	prompts := make([]domain.PromptConfig, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !IsPromptFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		cfg, err := s.Load(path)
		if err != nil {
			logger.Warn("Skipping invalid prompt file %s: %v", entry.Name(), err)
			continue
		}
		prompts = append(prompts, *cfg)
	}
	return prompts, nil
}

// IsPromptFile reports whether name looks like a prompt file.
func IsPromptFile(name string) bool {
	return strings.HasSuffix(name, PromptExt) && !strings.HasPrefix(filepath.Base(name), ".")
}

// ParsePrompt parses prompt file content. A title and an inputs list are
// required; inputs without an id, label or type are dropped.
func ParsePrompt(data []byte) (*domain.PromptConfig, error) {
	header, body, ok := splitFrontmatter(data)
	if !ok {
		return nil, fmt.Errorf("%w: missing frontmatter", domain.ErrInvalidInput)
	}

	var fm frontmatter
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return nil, fmt.Errorf("%w: frontmatter: %v", domain.ErrInvalidInput, err)
	}
	if fm.Title == "" {
		return nil, fmt.Errorf("%w: frontmatter has no title", domain.ErrInvalidInput)
	}
	if fm.Inputs == nil {
		return nil, fmt.Errorf("%w: frontmatter has no inputs", domain.ErrInvalidInput)
	}

	return &domain.PromptConfig{
		Title:           fm.Title,
		FormDescription: fm.FormDescription,
		Inputs:          decodeInputs(*fm.Inputs),
		Content:         strings.TrimSpace(string(body)),
	}, nil
}

func decodeInputs(nodes []yaml.Node) []domain.PromptInput {
	inputs := make([]domain.PromptInput, 0, len(nodes))
	for i := range nodes {
		if nodes[i].Kind != yaml.MappingNode {
			continue
		}
		var in domain.PromptInput
		if err := nodes[i].Decode(&in); err != nil {
			logger.Debug("Dropping input %d: %v", i, err)
			continue
		}
		if in.ID == "" || in.Label == "" || in.Type == "" {
			continue
		}
		in.Default = normaliseDefault(in.Default)
		for j := range in.Options {
			if in.Options[j].Label == "" {
				in.Options[j].Label = in.Options[j].Value
			}
		}
		inputs = append(inputs, in)
	}
	return inputs
}

// normaliseDefault turns a YAML list of strings into []string.
// clonePrompt copies cfg so callers cannot mutate cached slices.
func clonePrompt(cfg *domain.PromptConfig) *domain.PromptConfig {
	out := *cfg
	out.Inputs = slices.Clone(cfg.Inputs)
	for i := range out.Inputs {
		in := &out.Inputs[i]
		in.Options = slices.Clone(in.Options)
		switch def := in.Default.(type) {
		case []string:
			in.Default = slices.Clone(def)
		case []any:
			in.Default = slices.Clone(def)
		}
	}
	return &out
}

func normaliseDefault(v any) any {
	list, ok := v.([]any)
	if !ok {
		return v
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return v
		}
		out = append(out, s)
	}
	return out
}

// splitFrontmatter separates a leading "---" fenced block from the body.
func splitFrontmatter(data []byte) (header, body []byte, ok bool) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	lines := bytes.SplitAfter(data, []byte("\n"))
	if len(lines) == 0 || strings.TrimRight(string(lines[0]), "\r\n") != frontmatterFence {
		return nil, nil, false
	}

	offset := len(lines[0])
	for _, line := range lines[1:] {
		if strings.TrimRight(string(line), "\r\n") == frontmatterFence {
			return data[len(lines[0]):offset], data[offset+len(line):], true
		}
		offset += len(line)
	}
	return nil, nil, false
}
