// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package temporal

import (
	"fmt"

	"go.temporal.io/sdk/workflow"
)

// AddWorkflow runs the Add activity for input and returns its sum
func AddWorkflow(ctx workflow.Context, input AddInput) (AddOutput, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting add workflow", "a", input.A, "b", input.B)

	ctx = WithIdempotentOptions(ctx)

	var ca *CalculatorActivities
	var output AddOutput
	if err := workflow.ExecuteActivity(ctx, ca.Add, input).Get(ctx, &output); err != nil {
		logger.Error("Add activity failed", "error", err)
		return AddOutput{}, fmt.Errorf("add activity failed: %w", err)
	}

	logger.Info("Add workflow complete", "sum", output.Sum)
	return output, nil
}
