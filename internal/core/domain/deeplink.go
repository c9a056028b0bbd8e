package domain

import (
	"fmt"
	"strings"
)

// Default target: the Aurora Input Processor Raycast extension.
const (
	DefaultScheme    = "raycast"
	DefaultPublisher = "wheat2021"
	DefaultExtension = "aurora-input-processor"
	DefaultCommand   = "processor-1"
)

// ArgumentsParam is the query parameter that carries the JSON payload.
const ArgumentsParam = "arguments"

// Target identifies the extension command a deeplink invokes.
type Target struct {
	Scheme    string `json:"scheme"`
	Publisher string `json:"publisher"`
	Extension string `json:"extension"`
	Command   string `json:"command"`
}

// DefaultTarget returns the target used when nothing is configured.
func DefaultTarget() Target {
	return Target{
		Scheme:    DefaultScheme,
		Publisher: DefaultPublisher,
		Extension: DefaultExtension,
		Command:   DefaultCommand,
	}
}

// Validate checks that every segment is present and free of separators.
func (t Target) Validate() error {
	segments := []struct {
		name  string
		value string
	}{
		{"scheme", t.Scheme},
		{"publisher", t.Publisher},
		{"extension", t.Extension},
		{"command", t.Command},
	}
	for _, seg := range segments {
		if seg.value == "" {
			return fmt.Errorf("%w: target %s is empty", ErrInvalidInput, seg.name)
		}
		if strings.ContainsAny(seg.value, "/?#: ") {
			return fmt.Errorf("%w: target %s %q contains a reserved character", ErrInvalidInput, seg.name, seg.value)
		}
	}
	return nil
}

// Prefix returns the URL up to, but excluding, the query string.
// E.g. raycast://extensions/wheat2021/aurora-input-processor/processor-1.
func (t Target) Prefix() string {
	return t.Scheme + "://extensions/" + t.Publisher + "/" + t.Extension + "/" + t.Command
}

// WithDefaults fills empty segments from DefaultTarget.
func (t Target) WithDefaults() Target {
	d := DefaultTarget()
	if t.Scheme == "" {
		t.Scheme = d.Scheme
	}
	if t.Publisher == "" {
		t.Publisher = d.Publisher
	}
	if t.Extension == "" {
		t.Extension = d.Extension
	}
	if t.Command == "" {
		t.Command = d.Command
	}
	return t
}

// InputValues holds form values keyed by input ID.
// Values are strings, string slices (multiselect) or booleans (checkbox).
type InputValues map[string]any

// Arguments is the payload a deeplink carries.
type Arguments struct {
	// PromptPath is the absolute path of the prompt file to run.
	PromptPath string `json:"promptPath"`

	// Inputs are the pre-filled form values, if any.
	Inputs InputValues `json:"inputs,omitempty"`
}

// Deeplink is a decoded deeplink URL.
type Deeplink struct {
	URL       string    `json:"url"`
	Target    Target    `json:"target"`
	Arguments Arguments `json:"arguments"`
}
