// Copyright (c) 2025 Open Swarm Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package temporal

import (
	"context"

	"go.temporal.io/sdk/activity"

	"add-numbers/internal/calculator"
	"add-numbers/internal/telemetry"
)

// AddInput carries the two operands of an addition
type AddInput struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// AddOutput carries the sum
type AddOutput struct {
	Sum float64 `json:"sum"`
}

// CalculatorActivities exposes the calculator as Temporal activities
type CalculatorActivities struct{}

// NewCalculatorActivities creates the calculator activity set
func NewCalculatorActivities() *CalculatorActivities {
	return &CalculatorActivities{}
}

// Add sums the operands. It never fails.
func (ca *CalculatorActivities) Add(ctx context.Context, input AddInput) (AddOutput, error) {
	ctx, span := telemetry.StartSpan(ctx, "calculator.add")
	defer span.End()

	info := activity.GetInfo(ctx)
	sum := calculator.Add(input.A, input.B)
	telemetry.AddAttributes(ctx, telemetry.AddAttrs(input.A, input.B, sum)...)
	telemetry.AddAttributes(ctx,
		telemetry.AttrWorkflowID.String(info.WorkflowExecution.ID),
		telemetry.AttrTaskQueue.String(info.TaskQueue),
	)

	activity.GetLogger(ctx).Info("Added operands", "a", input.A, "b", input.B, "sum", sum)
	return AddOutput{Sum: sum}, nil
}
