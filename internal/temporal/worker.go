// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package temporal

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

// WorkerOptions contains configuration for TemporalWorker.
type WorkerOptions struct {
	// TaskQueue is the task queue name for this worker.
	TaskQueue string
	// Namespace is the Temporal namespace (default: "default").
	Namespace string
	// HostPort is the Temporal frontend address (default: client.DefaultHostPort).
	HostPort string
	// MaxConcurrent is max concurrent activity/workflow pollers (default: 10).
	MaxConcurrent int
}

// withDefaults validates opts and fills unset fields.
func (o WorkerOptions) withDefaults() (WorkerOptions, error) {
	if o.TaskQueue == "" {
		return o, errors.New("task_queue is required")
	}
	if o.Namespace == "" {
		o.Namespace = "default"
	}
	if o.HostPort == "" {
		o.HostPort = client.DefaultHostPort
	}
	if o.MaxConcurrent <= 0 {
		o.MaxConcurrent = 10
	}
	return o, nil
}

// TemporalWorker manages Temporal client and worker lifecycle.
type TemporalWorker struct {
	client  client.Client
	worker  worker.Worker
	opts    WorkerOptions
	started bool
	mu      sync.RWMutex
}

// NewTemporalWorker dials Temporal and creates a worker on opts.TaskQueue.
func NewTemporalWorker(ctx context.Context, opts WorkerOptions) (*TemporalWorker, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	c, err := client.DialContext(ctx, client.Options{
		HostPort:  opts.HostPort,
		Namespace: opts.Namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create temporal client: %w", err)
	}

	return newTemporalWorker(c, opts), nil
}

func newTemporalWorker(c client.Client, opts WorkerOptions) *TemporalWorker {
	w := worker.New(c, opts.TaskQueue, worker.Options{
		MaxConcurrentActivityTaskPollers: opts.MaxConcurrent,
		MaxConcurrentWorkflowTaskPollers: opts.MaxConcurrent,
	})

	return &TemporalWorker{
		client: c,
		worker: w,
		opts:   opts,
	}
}

// RegisterCalculator registers AddWorkflow and the calculator activities.
func (w *TemporalWorker) RegisterCalculator() {
	w.RegisterWorkflow(AddWorkflow)
	w.RegisterActivity(NewCalculatorActivities())
}

// Run polls until ctx is done or the worker hits a fatal error, which is
// returned. The worker is stopped when Run returns.
func (w *TemporalWorker) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.worker == nil {
		w.mu.Unlock()
		return errors.New("worker not initialized")
	}
	if w.started {
		w.mu.Unlock()
		return errors.New("worker already started")
	}
	w.started = true
	w.mu.Unlock()

	interruptCh := make(chan interface{})
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			close(interruptCh)
		case <-done:
		}
	}()

	err := w.worker.Run(interruptCh)

	w.mu.Lock()
	w.started = false
	w.mu.Unlock()

	if err != nil {
		return fmt.Errorf("worker stopped with error: %w", err)
	}
	return nil
}

// TaskQueue returns the task queue the worker polls.
func (w *TemporalWorker) TaskQueue() string {
	return w.opts.TaskQueue
}

// RegisterActivity registers an activity function or struct with the worker.
func (w *TemporalWorker) RegisterActivity(activity interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.worker != nil {
		w.worker.RegisterActivity(activity)
	}
}

// RegisterWorkflow registers a workflow function with the worker.
func (w *TemporalWorker) RegisterWorkflow(workflow interface{}) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.worker != nil {
		w.worker.RegisterWorkflow(workflow)
	}
}

// Close stops the worker if needed and closes the Temporal client.
func (w *TemporalWorker) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		w.worker.Stop()
		w.started = false
	}

	if w.client != nil {
		w.client.Close()
	}

	return nil
}
