package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadExpression(t *testing.T) {
	_, err := New("not a cron line", func() error { return nil })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cron")

	// Seconds field is not part of the standard 5-field format.
	_, err = New("* * * * * *", func() error { return nil })
	require.Error(t, err)
}

func TestNewAcceptsStandardExpression(t *testing.T) {
	s, err := New("0 */6 * * *", func() error { return nil })
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestRunOnceSwallowsRunError(t *testing.T) {
	calls := 0
	s, err := New("0 0 * * *", func() error {
		calls++
		return errors.New("boom")
	})
	require.NoError(t, err)

	// Must not panic and must not stop future ticks.
	s.runOnce()
	s.runOnce()
	assert.Equal(t, 2, calls)
}

func TestStartReturnsOnCancel(t *testing.T) {
	s, err := New("0 0 * * *", func() error { return nil })
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}
