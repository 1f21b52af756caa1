// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package temporal

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// Shared activity timeout constants
const (
	// DefaultStartToCloseTimeout bounds a single activity attempt
	DefaultStartToCloseTimeout = 30 * time.Second

	// IdempotentMaxAttempts is the retry count for pure activities
	IdempotentMaxAttempts = 5
)

// GetIdempotentActivityOptions returns activity options for operations that
// are safe to repeat, such as arithmetic.
func GetIdempotentActivityOptions() workflow.ActivityOptions {
	return workflow.ActivityOptions{
		StartToCloseTimeout: DefaultStartToCloseTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    IdempotentMaxAttempts,
		},
	}
}

// WithIdempotentOptions applies idempotent activity options to the workflow context.
func WithIdempotentOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, GetIdempotentActivityOptions())
}
