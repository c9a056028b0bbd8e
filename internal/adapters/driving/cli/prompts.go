package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/ports/driven"
	"github.com/custodia-labs/raylink/internal/core/ports/driving"
)

var promptsCommand string

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Work with a directory of prompt files",
	Long: `List or watch a directory of prompt files (Markdown with YAML
frontmatter). The directory defaults to the prompts.directory setting.`,
}

var promptsListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List prompt files with their deeplinks",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPromptsList,
}

var promptsWatchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Print the deeplink of every prompt file that is added or saved",
	Long: `Watch a prompts directory and print the title, path and deeplink of
each prompt file as it is created or saved. Runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPromptsWatch,
}

func init() {
	promptsCmd.PersistentFlags().StringVar(&promptsCommand, "command", "", "extension command for the printed deeplinks")
	promptsCmd.AddCommand(promptsListCmd)
	promptsCmd.AddCommand(promptsWatchCmd)
	rootCmd.AddCommand(promptsCmd)
}

// promptsDir resolves the directory argument, falling back to config.
func promptsDir(args []string) (string, error) {
	dir := ""
	if len(args) > 0 {
		dir = args[0]
	} else if configStore != nil {
		dir = configStore.GetString(driven.ConfigKeyPromptDir)
	}
	if dir == "" {
		return "", fmt.Errorf("no directory given and %s is not set: %w",
			driven.ConfigKeyPromptDir, domain.ErrInvalidInput)
	}
	return filepath.Abs(dir)
}

func promptsService() (driving.DeeplinkService, error) {
	if deeplinkService == nil {
		return nil, errDeeplinkServiceMissing
	}
	return deeplinkService.ForCommand(promptsCommand)
}

func runPromptsList(cmd *cobra.Command, args []string) error {
	svc, err := promptsService()
	if err != nil {
		return err
	}
	dir, err := promptsDir(args)
	if err != nil {
		return err
	}

	prompts, err := svc.Prompts(dir)
	if err != nil {
		return fmt.Errorf("listing prompts: %w", err)
	}
	if len(prompts) == 0 {
		outln(cmd, "No prompt files found.")
		return nil
	}

	for i := range prompts {
		if err := printPrompt(cmd, svc, &prompts[i]); err != nil {
			return err
		}
	}
	return nil
}

func runPromptsWatch(cmd *cobra.Command, args []string) error {
	svc, err := promptsService()
	if err != nil {
		return err
	}
	if promptWatcher == nil {
		return errors.New("prompt watcher not configured")
	}
	dir, err := promptsDir(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	outf(cmd, "Watching %s (Ctrl+C to stop)\n", dir)
	return promptWatcher.Watch(ctx, dir, func(path string) {
		prompt, err := svc.Prompt(path)
		if err != nil {
			cmd.PrintErrf("Skipping %s: %v\n", filepath.Base(path), err)
			return
		}
		if err := printPrompt(cmd, svc, prompt); err != nil {
			cmd.PrintErrf("Skipping %s: %v\n", filepath.Base(path), err)
		}
	})
}

func printPrompt(cmd *cobra.Command, svc driving.DeeplinkService, prompt *domain.PromptConfig) error {
	link, err := svc.Build(prompt.FilePath, nil)
	if err != nil {
		return fmt.Errorf("building deeplink for %s: %w", prompt.FilePath, err)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, outputStyles.Title.Render(prompt.Title))
	fmt.Fprintf(out, "  %s %s\n", outputStyles.Label.Render("Path:"), prompt.FilePath)
	fmt.Fprintf(out, "  %s %d\n", outputStyles.Label.Render("Inputs:"), len(prompt.Inputs))
	fmt.Fprintf(out, "  %s %s\n", outputStyles.Label.Render("URL:"), link)
	return nil
}
