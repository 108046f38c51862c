package ports

import "os/exec"

// Viewer builds external image-viewer invocations. Commands are returned
// unstarted so the presentation loop can hand them to the terminal
// suspend/resume machinery and run them synchronously.
type Viewer interface {
	// ImageCommand shows a static image scaled to the given terminal size.
	ImageCommand(path string, width, height int) *exec.Cmd

	// AnimationCommand plays an animated image for a single cycle.
	AnimationCommand(path string) *exec.Cmd

	// FitCommand shows an image scaled to fit the terminal, used when an
	// animation slide is activated.
	FitCommand(path string) *exec.Cmd
}

// Opener builds the OS default-application invocation for a path.
type Opener interface {
	// OpenCommand returns the platform launcher command, or an error
	// when the platform has none.
	OpenCommand(path string) (*exec.Cmd, error)
}
