package scheduler

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestStartWithoutExportFuncIsNoop(t *testing.T) {
	s := New(zerolog.Nop())
	require.NoError(t, s.Start())
	require.False(t, s.IsRunning())
}

func TestStartRegistersDailyJob(t *testing.T) {
	s := New(zerolog.Nop())
	s.SetExportFunc(func(ctx context.Context) (string, error) { return "report.json", nil })
	require.NoError(t, s.Start())
	require.True(t, s.IsRunning())
	s.Stop()
}
