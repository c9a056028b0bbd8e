package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/raylink/internal/core/domain"
)

var (
	openFlags inputFlags
	openPrint bool
)

var openCmd = &cobra.Command{
	Use:   "open [prompt-path]",
	Short: "Build a deeplink and open it",
	Long: `Build the deeplink for a prompt file and hand it to the operating
system's URL handler (open, xdg-open or rundll32).

The prompt path is made absolute before it is embedded. Inputs given with
-i are sent as strings; use --inputs-json for lists and booleans.

Examples:
  raylink open "/opt/Notes/Prompts/exec/git modify last.md"
  raylink open ./commit.md -i repo_path=/opt/code/repo -i commit_msg="fix typo"
  raylink open ./commit.md --inputs-json '{"push": true, "tags": ["a", "b"]}'`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openFlags.register(openCmd)
	openCmd.Flags().BoolVar(&openPrint, "print", false, "print the URL that was opened")
	rootCmd.AddCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	svc, err := openFlags.service()
	if err != nil {
		return err
	}

	promptPath, err := promptPathArg(args[0])
	if err != nil {
		return err
	}
	inputs, err := openFlags.values()
	if err != nil {
		return err
	}

	link, err := svc.Open(cmd.Context(), promptPath, inputs)
	if err != nil {
		return fmt.Errorf("open failed: %w", err)
	}

	printInvocation(cmd, promptPath, inputs)
	if openPrint {
		outf(cmd, "\nURL: %s\n", link)
	}
	return nil
}

// printInvocation summarises what was sent to the extension.
func printInvocation(cmd *cobra.Command, promptPath string, inputs domain.InputValues) {
	outln(cmd, "Opened deeplink")
	outf(cmd, "  Prompt: %s\n", promptPath)
	for _, key := range sortedKeys(inputs) {
		outf(cmd, "  %s: %v\n", key, inputs[key])
	}
}
