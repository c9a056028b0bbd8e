package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	checkFlags inputFlags
	checkJSON  bool
)

var checkCmd = &cobra.Command{
	Use:   "check [prompt-path]",
	Short: "Validate inputs against a prompt file",
	Long: `Merge the given inputs with the prompt file's declared inputs the way
the extension does, and report the resulting values.

Missing inputs take their defaults. Values of the wrong type, or not among
a select's options, are replaced by the default and reported as warnings.
A complete invocation (every required input filled) runs without showing
the form.

-i values are converted using the declared input types: comma-separated
lists for multiselect, true/false for checkbox.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkFlags.register(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "print as JSON")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	svc, err := checkFlags.service()
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
	inputs, err := checkFlags.coercedValues(prompt)
	if err != nil {
		return err
	}

	result, err := svc.Check(promptPath, inputs)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if checkJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, outputStyles.Title.Render(prompt.Title))
	fmt.Fprintln(out, outputStyles.Label.Render("Values:"))
	writeValues(out, result.Values)

	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, outputStyles.Label.Render("Warnings:"))
		for _, id := range sortedKeys(result.Warnings) {
			fmt.Fprintf(out, "  %s\n", outputStyles.Warning.Render(id+": "+result.Warnings[id]))
		}
	}

	if result.Complete {
		fmt.Fprintln(out, outputStyles.Success.Render("Complete: the extension will run the prompt directly"))
	} else {
		fmt.Fprintln(out, outputStyles.Muted.Render("Incomplete: the extension will show the form"))
	}
	return nil
}
