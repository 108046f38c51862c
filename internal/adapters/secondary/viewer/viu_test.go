package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViuViewer_Commands(t *testing.T) {
	v := NewViuViewer("")

	t.Run("image command carries explicit dimensions", func(t *testing.T) {
		cmd := v.ImageCommand("gopher.png", 80, 24)
		require.NotNil(t, cmd)
		assert.Equal(t, []string{"viu", "-w80", "-h24", "gopher.png"}, cmd.Args)
	})

	t.Run("animation command plays a single cycle", func(t *testing.T) {
		cmd := v.AnimationCommand("demo.gif")
		assert.Equal(t, []string{"viu", "-1", "demo.gif"}, cmd.Args)
	})

	t.Run("fit command scales to the terminal", func(t *testing.T) {
		cmd := v.FitCommand("demo.gif")
		assert.Equal(t, []string{"viu", "-s", "demo.gif"}, cmd.Args)
	})
}

func TestViuViewer_CustomCommand(t *testing.T) {
	v := NewViuViewer("chafa")

	cmd := v.AnimationCommand("demo.gif")
	assert.Equal(t, "chafa", cmd.Args[0])
}
