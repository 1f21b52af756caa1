// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package temporal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/client"

	"add-numbers/internal/config"
)

// newLazyWorker builds a worker whose client only connects on first use.
func newLazyWorker(t *testing.T, opts WorkerOptions) *TemporalWorker {
	t.Helper()

	opts, err := opts.withDefaults()
	require.NoError(t, err)

	c, err := client.NewLazyClient(client.Options{
		HostPort:  opts.HostPort,
		Namespace: opts.Namespace,
	})
	require.NoError(t, err)

	w := newTemporalWorker(c, opts)
	t.Cleanup(func() {
		w.Close()
	})
	return w
}

// TestWorkerOptions_Defaults verifies unset fields are filled in.
func TestWorkerOptions_Defaults(t *testing.T) {
	opts, err := WorkerOptions{TaskQueue: config.DefaultTaskQueue}.withDefaults()
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTaskQueue, opts.TaskQueue)
	assert.Equal(t, "default", opts.Namespace)
	assert.Equal(t, client.DefaultHostPort, opts.HostPort)
	assert.Equal(t, 10, opts.MaxConcurrent)
}

// TestNewTemporalWorker_MissingTaskQueue verifies validation for missing task queue.
func TestNewTemporalWorker_MissingTaskQueue(t *testing.T) {
	opts := WorkerOptions{
		Namespace:     "default",
		MaxConcurrent: 10,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	worker, err := NewTemporalWorker(ctx, opts)
	assert.Error(t, err)
	assert.Nil(t, worker)
	assert.Contains(t, err.Error(), "task_queue")
}

// TestWorker_IsInitialized verifies worker state after creation.
func TestWorker_IsInitialized(t *testing.T) {
	worker := newLazyWorker(t, WorkerOptions{TaskQueue: "test", Namespace: "default"})

	assert.False(t, worker.started, "worker should not be started on creation")
	assert.Equal(t, "test", worker.TaskQueue())
	assert.Equal(t, "default", worker.opts.Namespace)
}

// TestWorker_RegisterCalculator verifies workflow and activity registration.
func TestWorker_RegisterCalculator(t *testing.T) {
	worker := newLazyWorker(t, WorkerOptions{TaskQueue: "test"})

	assert.NotPanics(t, worker.RegisterCalculator)
}

// TestWorker_RunUninitialized verifies Run rejects a worker without a Temporal worker.
func TestWorker_RunUninitialized(t *testing.T) {
	err := (&TemporalWorker{}).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

// TestWorker_RunAlreadyStarted verifies a second Run is refused.
func TestWorker_RunAlreadyStarted(t *testing.T) {
	worker := newLazyWorker(t, WorkerOptions{TaskQueue: "test"})
	worker.started = true
	t.Cleanup(func() {
		worker.started = false
	})

	err := worker.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already started")
	assert.True(t, worker.started)
}

// TestWorker_CloseWithoutRun verifies Close works even if never started.
func TestWorker_CloseWithoutRun(t *testing.T) {
	worker := newLazyWorker(t, WorkerOptions{TaskQueue: "test"})

	require.NoError(t, worker.Close())
	assert.False(t, worker.started)
}

// TestWorker_RunUntilCancelled verifies Run returns cleanly once ctx is done.
// Note: Skipped on test machine without Temporal server running.
func TestWorker_RunUntilCancelled(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Run test that requires Temporal server")
	}

	dialCtx, cancelDial := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelDial()

	worker, err := NewTemporalWorker(dialCtx, WorkerOptions{TaskQueue: "test"})
	if err != nil {
		t.Skipf("Temporal server not available: %v", err)
	}
	defer worker.Close()
	worker.RegisterCalculator()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, worker.Run(ctx))
	assert.False(t, worker.started)
}
