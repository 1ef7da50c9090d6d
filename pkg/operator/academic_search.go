package operator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

const (
	defaultAcademicResults = 8

	// highImpactCitations is the citation count above which a result is
	// treated as high impact when the tool service did not flag it.
	highImpactCitations = 100
)

// AcademicSearch is the scholarly variant of web search. Results carry
// citation estimates and publication metadata; direct PDF links are
// detected here so the wrapper can prefer them when filling cells.
type AcademicSearch struct {
	client       *ToolClient
	blockedHosts []string
}

// NewAcademicSearch creates the academic_search adapter.
func NewAcademicSearch(client *ToolClient, blockedHosts []string) *AcademicSearch {
	return &AcademicSearch{client: client, blockedHosts: blockedHosts}
}

// Name returns the operator type.
func (o *AcademicSearch) Name() models.OperatorType { return models.OperatorAcademicSearch }

// Operate runs one academic search.
func (o *AcademicSearch) Operate(ctx context.Context, in Input) (Output, error) {
	input, ok := in.(AcademicInput)
	if !ok {
		return nil, fmt.Errorf("%w: academic_search expects AcademicInput, got %T", ErrInvalidInput, in)
	}
	if input.Topic == "" {
		return nil, fmt.Errorf("%w: empty topic", ErrInvalidInput)
	}
	if input.MaxResults <= 0 {
		input.MaxResults = defaultAcademicResults
	}

	var out AcademicOutput
	if err := o.client.Invoke(ctx, string(o.Name()), input, &out); err != nil {
		return nil, err
	}

	pdfs := 0
	var citationSum int
	filtered := out.AcademicResults[:0]
	for _, r := range out.AcademicResults {
		if r.URL == "" {
			continue
		}
		r.IsRedirect = HostBlocked(r.URL, o.blockedHosts)
		r.IsPdfDirect = isPDFLink(r.URL)
		r.IsHighImpact = r.IsHighImpact || r.EstimatedCitations >= highImpactCitations
		if r.IsPdfDirect {
			pdfs++
		}
		citationSum += r.EstimatedCitations
		filtered = append(filtered, r)
	}
	out.AcademicResults = filtered
	out.TotalPdfsFound = pdfs
	if len(filtered) > 0 {
		out.AverageCitations = float64(citationSum) / float64(len(filtered))
	}

	// Keep the plain-result view in sync for callers that only care
	// about title/url/snippet.
	out.Results = out.Results[:0]
	for _, r := range out.AcademicResults {
		out.Results = append(out.Results, r.SearchResult)
	}
	return out, nil
}

// Next logs a summary of the finished search for diagnostics.
func (o *AcademicSearch) Next(_ context.Context, out Output) {
	a, ok := out.(AcademicOutput)
	if !ok {
		return
	}
	slog.Debug("academic_search completed",
		"results", len(a.AcademicResults),
		"pdfs", a.TotalPdfsFound,
		"avg_citations", a.AverageCitations)
}

func isPDFLink(raw string) bool {
	u := strings.ToLower(raw)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	return strings.HasSuffix(u, ".pdf")
}
