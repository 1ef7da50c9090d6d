package operator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

const defaultSearchResults = 5

// GoogleSearch is the grounded web search operator. Results come back
// from the tool service with whatever URLs the vendor grounding layer
// produced; the adapter drops hits without a URL and flags redirect
// hosts so the wrapper can skip them.
type GoogleSearch struct {
	client       *ToolClient
	blockedHosts []string
}

// NewGoogleSearch creates the google_search adapter.
func NewGoogleSearch(client *ToolClient, blockedHosts []string) *GoogleSearch {
	return &GoogleSearch{client: client, blockedHosts: blockedHosts}
}

// Name returns the operator type.
func (o *GoogleSearch) Name() models.OperatorType { return models.OperatorGoogleSearch }

// Operate runs one web search.
func (o *GoogleSearch) Operate(ctx context.Context, in Input) (Output, error) {
	input, ok := in.(SearchInput)
	if !ok {
		return nil, fmt.Errorf("%w: google_search expects SearchInput, got %T", ErrInvalidInput, in)
	}
	if input.Query == "" {
		return nil, fmt.Errorf("%w: empty query", ErrInvalidInput)
	}
	if input.MaxResults <= 0 {
		input.MaxResults = defaultSearchResults
	}

	var out SearchOutput
	if err := o.client.Invoke(ctx, string(o.Name()), input, &out); err != nil {
		return nil, err
	}

	// Never invent a URL: drop URL-less hits, flag vendor redirects.
	filtered := out.Results[:0]
	for _, r := range out.Results {
		if r.URL == "" {
			continue
		}
		r.IsRedirect = HostBlocked(r.URL, o.blockedHosts)
		filtered = append(filtered, r)
	}
	out.Results = filtered
	if out.Timestamp.IsZero() {
		out.Timestamp = time.Now()
	}
	return out, nil
}

// OnError logs the failed query for operator-level diagnostics.
func (o *GoogleSearch) OnError(_ context.Context, err error, in Input) {
	slog.Warn("google_search failed", "query", in.Prompt(), "error", err)
}
