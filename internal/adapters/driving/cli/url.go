package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var urlFlags inputFlags

var urlCmd = &cobra.Command{
	Use:   "url [prompt-path]",
	Short: "Print the deeplink without opening it",
	Long: `Build the deeplink for a prompt file and print it. Nothing is opened,
which makes the output suitable for scripts and shortcuts.`,
	Args: cobra.ExactArgs(1),
	RunE: runURL,
}

func init() {
	urlFlags.register(urlCmd)
	rootCmd.AddCommand(urlCmd)
}

func runURL(cmd *cobra.Command, args []string) error {
	svc, err := urlFlags.service()
	if err != nil {
		return err
	}

	promptPath, err := promptPathArg(args[0])
	if err != nil {
		return err
	}
	inputs, err := urlFlags.values()
	if err != nil {
		return err
	}

	link, err := svc.Build(promptPath, inputs)
	if err != nil {
		return fmt.Errorf("building deeplink: %w", err)
	}
	outln(cmd, link)
	return nil
}
