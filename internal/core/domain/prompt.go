package domain

// InputType is the kind of form field a prompt input renders as.
type InputType string

// Input types understood by the extension.
const (
	InputText           InputType = "text"
	InputTextarea       InputType = "textarea"
	InputSelect         InputType = "select"
	InputMultiselect    InputType = "multiselect"
	InputCheckbox       InputType = "checkbox"
	InputSelectInFolder InputType = "selectInFolder"
)

// IsKnown reports whether the extension can render this input type.
func (t InputType) IsKnown() bool {
	switch t {
	case InputText, InputTextarea, InputSelect, InputMultiselect, InputCheckbox, InputSelectInFolder:
		return true
	default:
		return false
	}
}

// PromptOption is a choice for select and multiselect inputs.
type PromptOption struct {
	Value     string `yaml:"value" json:"value"`
	Label     string `yaml:"label,omitempty" json:"label,omitempty"`
	IsDefault bool   `yaml:"isDefault,omitempty" json:"isDefault,omitempty"`
}

// PromptInput is one form field declared in a prompt's frontmatter.
type PromptInput struct {
	ID          string         `yaml:"id" json:"id"`
	Label       string         `yaml:"label" json:"label"`
	Type        InputType      `yaml:"type" json:"type"`
	Required    bool           `yaml:"required,omitempty" json:"required,omitempty"`
	Default     any            `yaml:"default,omitempty" json:"default,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Options     []PromptOption `yaml:"options,omitempty" json:"options,omitempty"`
}

// DefaultValue returns the input's default, falling back to options
// flagged isDefault. The second result is false when there is none.
func (in PromptInput) DefaultValue() (any, bool) {
	if in.Default != nil {
		return in.Default, true
	}

	var defaults []string
	for _, opt := range in.Options {
		if opt.IsDefault {
			defaults = append(defaults, opt.Value)
		}
	}
	if len(defaults) == 0 {
		return nil, false
	}
	if in.Type == InputMultiselect {
		return defaults, true
	}
	return defaults[0], true
}

// PromptConfig is a prompt file: frontmatter declarations plus body.
type PromptConfig struct {
	Title           string        `json:"title"`
	FormDescription string        `json:"formDescription,omitempty"`
	Inputs          []PromptInput `json:"inputs"`
	Content         string        `json:"content"`
	FilePath        string        `json:"filePath"`
}

// ValidationResult is the outcome of merging deeplink inputs into a prompt.
type ValidationResult struct {
	// Values are the merged form values.
	Values InputValues `json:"values"`

	// Warnings maps input IDs to the reason a supplied value was rejected.
	Warnings map[string]string `json:"warnings,omitempty"`

	// Complete is true when every required input has a value.
	// The extension runs complete invocations without showing the form.
	Complete bool `json:"complete"`
}
