// Package opener hands URLs to the operating system's default handler.
package opener

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/custodia-labs/raylink/internal/core/domain"
	"github.com/custodia-labs/raylink/internal/core/ports/driven"
	"github.com/custodia-labs/raylink/internal/logger"
)

// Operating system identifiers.
const (
	osDarwin  = "darwin"
	osLinux   = "linux"
	osWindows = "windows"
)

// Ensure SystemOpener implements the interface.
var _ driven.URLOpener = (*SystemOpener)(nil)

// SystemOpener launches the platform's URL handler command.
// The handler is started and never waited on.
type SystemOpener struct {
	goos  string
	start func(*exec.Cmd) error
}

// NewSystemOpener creates an opener for the running platform.
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{
		goos:  runtime.GOOS,
		start: (*exec.Cmd).Start,
	}
}

// Open starts the OS handler with rawURL as its only argument.
// It returns once the handler process is spawned.
func (o *SystemOpener) Open(ctx context.Context, rawURL string) error {
	if _, err := url.Parse(rawURL); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	name, args, err := handlerCommand(o.goos, rawURL)
	if err != nil {
		return err
	}

	// Not CommandContext: the handler must outlive this process.
	cmd := exec.Command(name, args...) //nolint:gosec // fixed handler binary, URL is a single argument
	logger.Debug("Running %s %v", name, args)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.start(cmd); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return nil
}

// handlerCommand returns the command line that opens rawURL on goos.
func handlerCommand(goos, rawURL string) (string, []string, error) {
	switch goos {
	case osDarwin:
		return "open", []string{rawURL}, nil
	case osLinux:
		return "xdg-open", []string{rawURL}, nil
	case osWindows:
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, goos)
	}
}
