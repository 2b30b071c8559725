package logging

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	lg, err := New("DEBUG")
	require.NoError(t, err)
	require.True(t, lg.Core().Enabled(zapcore.DebugLevel))

	lg, err = New(" warn ")
	require.NoError(t, err)
	require.False(t, lg.Core().Enabled(zapcore.InfoLevel))

	_, err = New("chatty")
	require.Error(t, err)
}
