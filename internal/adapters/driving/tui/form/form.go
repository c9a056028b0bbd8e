// Package form implements a bubbletea form that collects values for a
// prompt file's declared inputs before a deeplink is built.
package form

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/raylink/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/services"
)

// field pairs a declared input with its text box.
type field struct {
	input domain.PromptInput
	text  textinput.Model
}

// Model is the form state. It quits the program on submit or cancel.
type Model struct {
	prompt    *domain.PromptConfig
	fields    []field
	focus     int
	styles    *styles.Styles
	submitted bool
	cancelled bool
	errMsg    string
}

// New creates a form for cfg. Fields start with initial values where
// given, otherwise with the input's default.
func New(cfg *domain.PromptConfig, initial domain.InputValues, s *styles.Styles) *Model {
	if s == nil {
		s = styles.DefaultStyles()
	}

	m := &Model{
		prompt: cfg,
		styles: s,
		fields: make([]field, 0, len(cfg.Inputs)),
	}

	for _, in := range cfg.Inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 4096
		ti.Width = 60
		ti.Placeholder = placeholder(in)

		if v, ok := initial[in.ID]; ok {
			ti.SetValue(services.FormatValue(v))
		} else if def, ok := in.DefaultValue(); ok {
			ti.SetValue(services.FormatValue(def))
		}

		m.fields = append(m.fields, field{input: in, text: ti})
	}

	if len(m.fields) > 0 {
		m.fields[0].text.Focus()
	}
	return m
}

// placeholder hints at the accepted values for an input.
func placeholder(in domain.PromptInput) string {
	switch in.Type {
	case domain.InputCheckbox:
		return "true / false"
	case domain.InputSelect, domain.InputMultiselect:
		values := make([]string, 0, len(in.Options))
		for _, opt := range in.Options {
			values = append(values, opt.Value)
		}
		sep := " | "
		if in.Type == domain.InputMultiselect {
			sep = ", "
		}
		return strings.Join(values, sep)
	default:
		return in.Description
	}
}

// Init starts the cursor blinking.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.updateFocused(msg)
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		return m, m.move(1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.move(-1)
	case tea.KeyEnter:
		if m.focus < len(m.fields)-1 {
			return m, m.move(1)
		}
		if missing := m.missingRequired(); missing != "" {
			m.errMsg = fmt.Sprintf("%s is required", missing)
			return m, nil
		}
		if _, err := services.CoerceInputs(m.prompt, m.Values()); err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.submitted = true
		return m, tea.Quit
	}

	return m, m.updateFocused(msg)
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	var cmd tea.Cmd
	m.fields[m.focus].text, cmd = m.fields[m.focus].text.Update(msg)
	return cmd
}

// move shifts focus by delta, wrapping around.
func (m *Model) move(delta int) tea.Cmd {
	if len(m.fields) == 0 {
		return nil
	}
	m.errMsg = ""
	m.fields[m.focus].text.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	return m.fields[m.focus].text.Focus()
}

// missingRequired returns the label of the first empty required field.
func (m *Model) missingRequired() string {
	for _, f := range m.fields {
		if f.input.Required && strings.TrimSpace(f.text.Value()) == "" {
			return f.input.Label
		}
	}
	return ""
}

// View renders the form.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.prompt.Title))
	b.WriteString("\n")
	if m.prompt.FormDescription != "" {
		b.WriteString(m.styles.Muted.Render(m.prompt.FormDescription))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, f := range m.fields {
		label := f.input.Label
		if f.input.Required {
			label += " *"
		}
		box := m.styles.BlurredField
		if i == m.focus {
			box = m.styles.FocusedField
		}
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left,
			m.styles.Label.Render(label),
			box.Render(f.text.View()),
		))
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString(m.styles.Error.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render("tab/shift+tab: move • enter: next/submit • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// Submitted reports whether the user confirmed the form.
func (m *Model) Submitted() bool {
	return m.submitted
}

// Cancelled reports whether the user abandoned the form.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Values returns the raw text of every field keyed by input ID.
func (m *Model) Values() map[string]string {
	values := make(map[string]string, len(m.fields))
	for _, f := range m.fields {
		values[f.input.ID] = f.text.Value()
	}
	return values
}

// Focused returns the ID of the focused input.
func (m *Model) Focused() string {
	if len(m.fields) == 0 {
		return ""
	}
	return m.fields[m.focus].input.ID
}
