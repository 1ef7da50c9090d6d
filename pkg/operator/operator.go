// Package operator defines the uniform contract over the six fill
// operators and their adapters. Vendor specifics live behind the
// ToolService gRPC boundary; adapters marshal typed inputs, decode typed
// outputs, and enforce the pieces of the contract the engine depends on
// (URL hygiene, schema conformance, no local function execution).
package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

var (
	// ErrUnknownOperator indicates no adapter is registered for a type.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrInvalidInput indicates the input failed the adapter's own checks
	// before any remote call was made.
	ErrInvalidInput = errors.New("invalid operator input")

	// ErrSchemaViolation indicates structured output did not conform to
	// the caller-supplied schema.
	ErrSchemaViolation = errors.New("structured output violates schema")
)

// Input is implemented by the six operator input types. Every input
// carries exactly one prompt-like field (query, extraction prompt,
// prompt, concept, topic); Prompt and WithPrompt give the retry loop
// uniform access to it.
type Input interface {
	Prompt() string
	WithPrompt(p string) Input
}

// Output is implemented by the six operator output types.
type Output interface {
	isOutput()
}

// Operator is the uniform operator contract.
type Operator interface {
	Name() models.OperatorType
	Operate(ctx context.Context, in Input) (Output, error)
}

// NextHook is implemented by operators that want a post-success hook.
type NextHook interface {
	Next(ctx context.Context, out Output)
}

// ErrorHook is implemented by operators that want a failure hook.
type ErrorHook interface {
	OnError(ctx context.Context, err error, in Input)
}

// Registry maps operator types to adapters. Operators are stateless with
// respect to each other; the registry is safe for concurrent use after
// construction.
type Registry struct {
	ops map[models.OperatorType]Operator
}

// NewRegistry builds a registry from the given operators.
func NewRegistry(ops ...Operator) *Registry {
	m := make(map[models.OperatorType]Operator, len(ops))
	for _, op := range ops {
		m[op.Name()] = op
	}
	return &Registry{ops: m}
}

// Get returns the operator for the given type.
func (r *Registry) Get(t models.OperatorType) (Operator, error) {
	op, ok := r.ops[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperator, t)
	}
	return op, nil
}

// Types returns the registered operator types.
func (r *Registry) Types() []models.OperatorType {
	out := make([]models.OperatorType, 0, len(r.ops))
	for t := range r.ops {
		out = append(out, t)
	}
	return out
}
