package operator

import (
	"context"
	"fmt"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

// FunctionCalling asks the model which of the declared functions to
// call and with what arguments. The adapter never executes anything:
// it returns the call plan and lets the caller decide.
type FunctionCalling struct {
	client *ToolClient
}

// NewFunctionCalling creates the function_calling adapter.
func NewFunctionCalling(client *ToolClient) *FunctionCalling {
	return &FunctionCalling{client: client}
}

// Name returns the operator type.
func (o *FunctionCalling) Name() models.OperatorType { return models.OperatorFunctionCalling }

// Operate produces a function-call plan for the prompt.
func (o *FunctionCalling) Operate(ctx context.Context, in Input) (Output, error) {
	input, ok := in.(FunctionCallInput)
	if !ok {
		return nil, fmt.Errorf("%w: function_calling expects FunctionCallInput, got %T", ErrInvalidInput, in)
	}
	if input.PromptText == "" {
		return nil, fmt.Errorf("%w: empty prompt", ErrInvalidInput)
	}
	if len(input.AvailableFunctions) == 0 {
		return nil, fmt.Errorf("%w: no functions declared", ErrInvalidInput)
	}
	for _, fn := range input.AvailableFunctions {
		if fn.Name == "" {
			return nil, fmt.Errorf("%w: function declaration without a name", ErrInvalidInput)
		}
	}

	var out FunctionCallOutput
	if err := o.client.Invoke(ctx, string(o.Name()), input, &out); err != nil {
		return nil, err
	}

	out.RequiresExecution = len(out.FunctionCalls) > 0
	return out, nil
}
