package services

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/raylink/internal/core/domain"
)

// MergeInputs merges deeplink inputs into a prompt's declared inputs the
// way the extension does on launch. Values that are missing, mistyped or
// not among the declared options fall back to the input's default; the
// latter two also produce a warning. Undeclared keys are ignored.
func MergeInputs(cfg *domain.PromptConfig, inputs domain.InputValues) *domain.ValidationResult {
	result := &domain.ValidationResult{
		Values:   domain.InputValues{},
		Warnings: map[string]string{},
	}
	if cfg == nil {
		result.Complete = true
		return result
	}

	for _, in := range cfg.Inputs {
		value, ok := inputs[in.ID]
		if !ok {
			applyDefault(result.Values, in)
			continue
		}

		normalised, warning := checkType(in, value)
		if warning == "" {
			warning = checkOptions(in, normalised)
		}
		if warning != "" {
			result.Warnings[in.ID] = warning
			applyDefault(result.Values, in)
			continue
		}

		result.Values[in.ID] = normalised
	}

	result.Complete = isComplete(cfg.Inputs, result.Values)
	if len(result.Warnings) == 0 {
		result.Warnings = nil
	}
	return result
}

func applyDefault(values domain.InputValues, in domain.PromptInput) {
	if def, ok := in.DefaultValue(); ok {
		values[in.ID] = def
	}
}

// checkType returns value normalised to the input's Go type, or a warning.
func checkType(in domain.PromptInput, value any) (any, string) {
	switch in.Type {
	case domain.InputMultiselect:
		list, ok := stringList(value)
		if !ok {
			if _, isList := value.([]any); isList {
				return nil, "type mismatch: array elements must be strings"
			}
			return nil, fmt.Sprintf("type mismatch: expected array, got %s", typeName(value))
		}
		return list, ""

	case domain.InputText, domain.InputTextarea, domain.InputSelect, domain.InputSelectInFolder:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Sprintf("type mismatch: expected string, got %s", typeName(value))
		}
		return s, ""

	case domain.InputCheckbox:
		b, ok := value.(bool)
		if !ok {
			return nil, fmt.Sprintf("type mismatch: expected boolean, got %s", typeName(value))
		}
		return b, ""

	default:
		return nil, fmt.Sprintf("unknown input type: %s", in.Type)
	}
}

// checkOptions rejects values outside the declared options.
func checkOptions(in domain.PromptInput, value any) string {
	if len(in.Options) == 0 {
		return ""
	}

	valid := make([]string, 0, len(in.Options))
	for _, opt := range in.Options {
		valid = append(valid, opt.Value)
	}

	var candidates []string
	switch v := value.(type) {
	case string:
		candidates = []string{v}
	case []string:
		candidates = v
	default:
		return ""
	}

	var invalid []string
	for _, c := range candidates {
		if !slices.Contains(valid, c) {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 {
		return "invalid option: " + strings.Join(invalid, ", ")
	}
	return ""
}

func isComplete(inputs []domain.PromptInput, values domain.InputValues) bool {
	for _, in := range inputs {
		if !in.Required {
			continue
		}
		switch v := values[in.ID].(type) {
		case nil:
			return false
		case string:
			if v == "" {
				return false
			}
		case []string:
			if len(v) == 0 {
				return false
			}
		}
	}
	return true
}

// stringList accepts []string or a []any holding only strings.
func stringList(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// typeName names a decoded JSON value the way the receiving extension does.
func typeName(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, float32, int, int64, int32, uint, uint64:
		return "number"
	case []any, []string:
		return "array"
	default:
		return "object"
	}
}

// CoerceInputs converts raw text values into the types the prompt's inputs
// expect: comma-separated lists for multiselect, booleans for checkbox.
// Keys the prompt does not declare, and all keys when cfg is nil, stay strings.
// Empty text for an optional field is dropped.
func CoerceInputs(cfg *domain.PromptConfig, raw map[string]string) (domain.InputValues, error) {
	values := make(domain.InputValues, len(raw))
	declared := map[string]domain.PromptInput{}
	if cfg != nil {
		for _, in := range cfg.Inputs {
			declared[in.ID] = in
		}
	}

	for key, text := range raw {
		in, ok := declared[key]
		if !ok {
			values[key] = text
			continue
		}
		if text == "" && !in.Required {
			continue
		}

		switch in.Type {
		case domain.InputMultiselect:
			parts := strings.Split(text, ",")
			list := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					list = append(list, p)
				}
			}
			values[key] = list
		case domain.InputCheckbox:
			b, err := strconv.ParseBool(strings.TrimSpace(text))
			if err != nil {
				return nil, fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, text)
			}
			values[key] = b
		default:
			values[key] = text
		}
	}
	return values, nil
}

// FormatValue renders a form value as editable text, the inverse of CoerceInputs.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
