package operator

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

// StructuredOutputOperator converts raw row data into a structured
// object. When the caller supplies an output schema, the result is
// validated against it before being returned; a violation is an
// operator failure, not a lenient-validation warning.
type StructuredOutputOperator struct {
	client *ToolClient
}

// NewStructuredOutput creates the structured_output adapter.
func NewStructuredOutput(client *ToolClient) *StructuredOutputOperator {
	return &StructuredOutputOperator{client: client}
}

// Name returns the operator type.
func (o *StructuredOutputOperator) Name() models.OperatorType {
	return models.OperatorStructuredOutput
}

// Operate runs one structured conversion.
func (o *StructuredOutputOperator) Operate(ctx context.Context, in Input) (Output, error) {
	input, ok := in.(StructuredInput)
	if !ok {
		return nil, fmt.Errorf("%w: structured_output expects StructuredInput, got %T", ErrInvalidInput, in)
	}
	if input.RawData == nil {
		return nil, fmt.Errorf("%w: nil raw data", ErrInvalidInput)
	}

	var out StructuredOutput
	if err := o.client.Invoke(ctx, string(o.Name()), input, &out); err != nil {
		return nil, err
	}

	if len(input.OutputSchema) > 0 {
		if err := ValidateAgainstSchema(input.OutputSchema, out.StructuredData); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaViolation, err)
		}
	}
	return out, nil
}

// ValidateAgainstSchema checks data against a JSON-schema document given
// as a decoded map.
func ValidateAgainstSchema(schema map[string]interface{}, data interface{}) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", any(schema)); err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	// Round-trip through JSON so typed maps/structs validate uniformly.
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}
	var generic interface{}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return compiled.Validate(generic)
}
