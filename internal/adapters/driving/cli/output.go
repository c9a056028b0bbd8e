package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/raylink/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/raylink/internal/core/domain"
)

// outputStyles is used for human-readable command output. lipgloss drops
// colour when the output is not a terminal.
var outputStyles = styles.DefaultStyles()

// outf and outln write to the command's stdout. cmd.Printf and
// cmd.Println fall back to stderr when no output writer is set.
func outf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

func outln(cmd *cobra.Command, args ...any) {
	fmt.Fprintln(cmd.OutOrStdout(), args...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// writeJSON writes v as indented JSON without HTML escaping.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// writeValues prints input values one per line, in key order.
func writeValues(w io.Writer, values domain.InputValues) {
	if len(values) == 0 {
		fmt.Fprintf(w, "  %s\n", outputStyles.Muted.Render("(none)"))
		return
	}
	for _, key := range sortedKeys(values) {
		fmt.Fprintf(w, "  %s %v\n", outputStyles.Label.Render(key+":"), values[key])
	}
}
