package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("nil writer", func(t *testing.T) {
		l, err := New("APP", "", nil)
		assert.ErrorIs(t, err, ErrNilWriter)
		assert.Nil(t, l)
	})

	t.Run("levels and prefix", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SOLVER", "", &buf)
		require.NoError(t, err)

		l.Info("generated maze")
		l.Warning("slow solve")
		l.Error("unsolvable")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		for i, level := range []string{"INFO", "WARNING", "ERROR"} {
			assert.Contains(t, lines[i], "[SOLVER]")
			assert.Contains(t, lines[i], "["+level+"]")
		}
		assert.True(t, strings.HasSuffix(lines[0], "generated maze"))
	})

	t.Run("discard", func(t *testing.T) {
		assert.NotPanics(t, func() { Discard().Info("dropped") })
	})
}
