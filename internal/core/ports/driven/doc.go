// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Interfaces
//
//   - URLOpener: Hands a URL to the operating system's default handler
//   - PromptStore: Reads prompt files and their frontmatter declarations
//   - ConfigStore: Application configuration
//
// PromptStore is optional. Without it, input checking is disabled but
// deeplinks can still be built and opened.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
