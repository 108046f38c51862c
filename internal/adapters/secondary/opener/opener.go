// Package opener launches paths with the OS default application.
package opener

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Launcher implements the Opener interface with per-platform launcher
// commands.
type Launcher struct {
	goos string
}

// NewLauncher creates a launcher for the current platform.
func NewLauncher() *Launcher {
	return &Launcher{goos: runtime.GOOS}
}

// OpenCommand returns the default-application invocation for path. The
// darwin flags wait for the application to exit so the call blocks like
// the other platforms' launchers.
func (l *Launcher) OpenCommand(path string) (*exec.Cmd, error) {
	switch l.goos {
	case "linux":
		// #nosec G204 - the path comes from the user's deck file
		return exec.Command("xdg-open", path), nil
	case "darwin":
		// #nosec G204 - see above
		return exec.Command("open", "-W", "-F", "-n", path), nil
	case "windows":
		// #nosec G204 - see above
		return exec.Command("cmd", "/c", "start", "", path), nil
	default:
		return nil, fmt.Errorf("no default-application launcher for %s", l.goos)
	}
}
