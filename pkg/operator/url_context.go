package operator

import (
	"context"
	"fmt"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

// maxURLsPerExtraction caps the URL batch one extraction may carry.
const maxURLsPerExtraction = 10

// URLContext extracts and summarizes content from a batch of URLs.
type URLContext struct {
	client *ToolClient
}

// NewURLContext creates the url_context adapter.
func NewURLContext(client *ToolClient) *URLContext {
	return &URLContext{client: client}
}

// Name returns the operator type.
func (o *URLContext) Name() models.OperatorType { return models.OperatorURLContext }

// Operate extracts content from the input URLs.
func (o *URLContext) Operate(ctx context.Context, in Input) (Output, error) {
	input, ok := in.(URLContextInput)
	if !ok {
		return nil, fmt.Errorf("%w: url_context expects URLContextInput, got %T", ErrInvalidInput, in)
	}
	if len(input.URLs) == 0 {
		return nil, fmt.Errorf("%w: no urls given", ErrInvalidInput)
	}
	if len(input.URLs) > maxURLsPerExtraction {
		return nil, fmt.Errorf("%w: %d urls exceeds limit of %d", ErrInvalidInput, len(input.URLs), maxURLsPerExtraction)
	}
	for _, u := range input.URLs {
		if !IsHTTPURL(u) {
			return nil, fmt.Errorf("%w: not an http(s) url: %q", ErrInvalidInput, u)
		}
	}

	var out URLContextOutput
	if err := o.client.Invoke(ctx, string(o.Name()), input, &out); err != nil {
		return nil, err
	}
	return out, nil
}
