// Package tui holds the interactive terminal components of raylink.
//
// Subpackages:
//   - styles: Colour theme and lipgloss styles
//   - form: Fill-in form for a prompt file's declared inputs
package tui
