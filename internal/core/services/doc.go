// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Deeplink construction and decoding are pure functions with no I/O;
// DeeplinkService wires them to the URL opener and prompt store.
package services
