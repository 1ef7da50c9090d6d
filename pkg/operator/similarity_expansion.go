package operator

import (
	"context"
	"fmt"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

const defaultSimilarTerms = 10

// SimilarityExpansion expands a concept into similar terms, synonyms
// and related concepts for downstream search columns.
type SimilarityExpansion struct {
	client *ToolClient
}

// NewSimilarityExpansion creates the similarity_expansion adapter.
func NewSimilarityExpansion(client *ToolClient) *SimilarityExpansion {
	return &SimilarityExpansion{client: client}
}

// Name returns the operator type.
func (o *SimilarityExpansion) Name() models.OperatorType { return models.OperatorSimilarityExpansion }

// Operate expands one concept.
func (o *SimilarityExpansion) Operate(ctx context.Context, in Input) (Output, error) {
	input, ok := in.(SimilarityInput)
	if !ok {
		return nil, fmt.Errorf("%w: similarity_expansion expects SimilarityInput, got %T", ErrInvalidInput, in)
	}
	if input.Concept == "" {
		return nil, fmt.Errorf("%w: empty concept", ErrInvalidInput)
	}
	if input.MaxResults <= 0 {
		input.MaxResults = defaultSimilarTerms
	}

	var out SimilarityOutput
	if err := o.client.Invoke(ctx, string(o.Name()), input, &out); err != nil {
		return nil, err
	}

	if out.OriginalConcept == "" {
		out.OriginalConcept = input.Concept
	}
	if len(out.SimilarTerms) > input.MaxResults {
		out.SimilarTerms = out.SimilarTerms[:input.MaxResults]
	}
	return out, nil
}
