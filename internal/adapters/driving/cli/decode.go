package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var decodeJSON bool

var decodeCmd = &cobra.Command{
	Use:   "decode [url]",
	Short: "Show what a deeplink carries",
	Long: `Decode a deeplink URL and print its target command, prompt path and
inputs. Useful for checking links stored in shortcuts or notes.`,
	Args: cobra.ExactArgs(1),
	RunE: runDecode,
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	if deeplinkService == nil {
		return errDeeplinkServiceMissing
	}

	link, err := deeplinkService.Decode(args[0])
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}

	if decodeJSON {
		return writeJSON(cmd.OutOrStdout(), link)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, outputStyles.Title.Render("Deeplink"))
	fmt.Fprintf(out, "%s %s\n", outputStyles.Label.Render("Target:"), link.Target.Prefix())
	fmt.Fprintf(out, "%s %s\n", outputStyles.Label.Render("Prompt:"), link.Arguments.PromptPath)
	fmt.Fprintln(out, outputStyles.Label.Render("Inputs:"))
	writeValues(out, link.Arguments.Inputs)
	return nil
}
