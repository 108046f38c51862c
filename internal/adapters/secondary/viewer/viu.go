// Package viewer builds invocations of the external terminal image
// viewer. The default viewer is viu; the binary name is configurable.
package viewer

import (
	"fmt"
	"os/exec"
)

// DefaultCommand is the viewer binary used when none is configured.
const DefaultCommand = "viu"

// ViuViewer implements the Viewer interface using a viu-compatible
// command.
type ViuViewer struct {
	command string
}

// NewViuViewer creates a viewer around the given binary name.
func NewViuViewer(command string) *ViuViewer {
	if command == "" {
		command = DefaultCommand
	}
	return &ViuViewer{command: command}
}

// ImageCommand shows a static image scaled to the full terminal size.
func (v *ViuViewer) ImageCommand(path string, width, height int) *exec.Cmd {
	// #nosec G204 - the viewer binary comes from config and the path from the deck file
	return exec.Command(v.command,
		fmt.Sprintf("-w%d", width),
		fmt.Sprintf("-h%d", height),
		path,
	)
}

// AnimationCommand plays an animated image for a single cycle.
func (v *ViuViewer) AnimationCommand(path string) *exec.Cmd {
	// #nosec G204 - see ImageCommand
	return exec.Command(v.command, "-1", path)
}

// FitCommand shows an image scaled to fit the terminal.
func (v *ViuViewer) FitCommand(path string) *exec.Cmd {
	// #nosec G204 - see ImageCommand
	return exec.Command(v.command, "-s", path)
}
