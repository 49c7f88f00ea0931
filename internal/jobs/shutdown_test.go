package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrigger struct{ stopped bool }

func (f *fakeTrigger) Stop() { f.stopped = true }

func TestCoordinatorShutdownOrder(t *testing.T) {
	mgr, _, _ := newTestManager(t, nil)
	require.NoError(t, mgr.Start(context.Background()))

	trigger := &fakeTrigger{}
	coord := NewCoordinator(trigger, mgr, time.Second, nil)

	var order []string
	coord.AddCloser(func() error {
		order = append(order, "redis")
		return nil
	})
	coord.AddCloser(func() error {
		order = append(order, "db")
		return errors.New("close failed")
	})
	coord.AddCloser(func() error {
		order = append(order, "artifacts")
		return nil
	})

	require.NoError(t, coord.Shutdown(context.Background()))
	assert.True(t, trigger.stopped)
	// a failing closer does not stop the ones after it
	assert.Equal(t, []string{"redis", "db", "artifacts"}, order)

	// manager is already stopped; a second Stop is a no-op
	assert.NoError(t, mgr.Stop(context.Background()))
}

func TestCoordinatorNilTrigger(t *testing.T) {
	mgr, _, _ := newTestManager(t, nil)
	require.NoError(t, mgr.Start(context.Background()))

	coord := NewCoordinator(nil, mgr, time.Second, nil)
	require.NoError(t, coord.Shutdown(context.Background()))
}
