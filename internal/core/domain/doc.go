// Package domain defines the core entities for raylink.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Target: The extension command a deeplink addresses
//   - Arguments: The payload carried in the deeplink query
//   - Deeplink: A decoded deeplink (target plus arguments)
//   - PromptConfig: A prompt file's declared form inputs
//   - ValidationResult: Inputs merged against a prompt's declarations
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
