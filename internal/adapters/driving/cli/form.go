package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/raylink/internal/adapters/driving/tui/form"
	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/services"
)

var (
	formFlags inputFlags
	formPrint bool
)

var formCmd = &cobra.Command{
	Use:   "form [prompt-path]",
	Short: "Fill in a prompt's inputs interactively, then open it",
	Long: `Show a terminal form with one field per input declared in the prompt
file, prefilled with defaults (or with values given via -i/--inputs-json).

Controls:
  Tab/↓        - Next field
  Shift+Tab/↑  - Previous field
  Enter        - Next field, submit on the last one
  Esc/Ctrl+C   - Cancel

Multiselect fields take comma-separated values; checkboxes take true/false.`,
	Args: cobra.ExactArgs(1),
	RunE: runForm,
}

// isTerminal reports whether r is an interactive terminal.
var isTerminal = func(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func init() {
	formFlags.register(formCmd)
	formCmd.Flags().BoolVar(&formPrint, "print", false, "print the URL instead of opening it")
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, args []string) error {
	svc, err := formFlags.service()
	if err != nil {
		return err
	}

	promptPath, err := promptPathArg(args[0])
	if err != nil {
		return err
	}
	prompt, err := svc.Prompt(promptPath)
	if err != nil {
		return fmt.Errorf("loading prompt: %w", err)
	}
	initial, err := formFlags.coercedValues(prompt)
	if err != nil {
		return err
	}

	if !isTerminal(cmd.InOrStdin()) {
		return fmt.Errorf("form needs an interactive terminal: %w", domain.ErrNotTerminal)
	}

	model := form.New(prompt, initial, nil)
	p := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.ErrOrStderr()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running form: %w", err)
	}
	if !model.Submitted() {
		outln(cmd, "Cancelled.")
		return nil
	}

	inputs, err := services.CoerceInputs(prompt, model.Values())
	if err != nil {
		return err
	}

	if formPrint {
		link, err := svc.Build(promptPath, inputs)
		if err != nil {
			return fmt.Errorf("building deeplink: %w", err)
		}
		outln(cmd, link)
		return nil
	}

	if _, err := svc.Open(cmd.Context(), promptPath, inputs); err != nil {
		return fmt.Errorf("open failed: %w", err)
	}
	printInvocation(cmd, promptPath, inputs)
	return nil
}
