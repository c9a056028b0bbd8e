// Package file provides file-based implementations of driven port interfaces.
// These adapters read and persist data on the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: Markdown prompt files with YAML frontmatter
//   - PromptWatcher: fsnotify watch on a prompts directory
package file
