package wrapper

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/operator"
)

// ErrNoContent indicates an operator output carried nothing usable.
var ErrNoContent = errors.New("no extractable content in operator output")

// ExtractContent reduces a structured operator output to the single
// content string destined for the target cell.
func ExtractContent(out operator.Output, cfg *config.WrapperConfig) (string, error) {
	switch o := out.(type) {
	case operator.SearchOutput:
		return extractSearch(o, cfg.BlockedURLHosts)
	case operator.AcademicOutput:
		return extractAcademic(o)
	case operator.URLContextOutput:
		return extractURLContext(o)
	case operator.StructuredOutput:
		return extractStructured(o)
	case operator.SimilarityOutput:
		return extractSimilarity(o, cfg.SimilarTermsLimit)
	case operator.FunctionCallOutput:
		return extractFunctionCall(o)
	default:
		return "", fmt.Errorf("unsupported operator output type %T", out)
	}
}

// extractSearch picks the first result with a usable URL, skipping
// vendor redirect hosts; falls back to the title of a non-redirect
// result. A result set made up entirely of redirect-host hits yields
// nothing: surfacing their titles would let a blocked result reach the
// sheet and enqueue a successor.
func extractSearch(o operator.SearchOutput, blocked []string) (string, error) {
	usable := func(r operator.SearchResult) bool {
		return !r.IsRedirect && (r.URL == "" || !operator.HostBlocked(r.URL, blocked))
	}
	for _, r := range o.Results {
		if r.URL != "" && usable(r) {
			return r.URL, nil
		}
	}
	for _, r := range o.Results {
		if r.Title != "" && usable(r) {
			return r.Title, nil
		}
	}
	return "", ErrNoContent
}

// extractAcademic prefers direct PDF links, then high-impact results,
// then the first result.
func extractAcademic(o operator.AcademicOutput) (string, error) {
	if len(o.AcademicResults) == 0 {
		return "", ErrNoContent
	}
	pick := func(match func(r operator.AcademicResult) bool) string {
		for _, r := range o.AcademicResults {
			if r.IsRedirect {
				continue
			}
			if match(r) {
				if r.URL != "" {
					return r.URL
				}
				return r.Title
			}
		}
		return ""
	}

	if s := pick(func(r operator.AcademicResult) bool {
		return r.IsPdfDirect || strings.Contains(strings.ToLower(r.URL), ".pdf")
	}); s != "" {
		return s, nil
	}
	if s := pick(func(r operator.AcademicResult) bool { return r.IsHighImpact }); s != "" {
		return s, nil
	}
	if s := pick(func(r operator.AcademicResult) bool { return true }); s != "" {
		return s, nil
	}
	return "", ErrNoContent
}

func extractURLContext(o operator.URLContextOutput) (string, error) {
	if o.Summary != "" {
		return o.Summary, nil
	}
	parts := make([]string, 0, len(o.EnrichedData))
	for _, d := range o.EnrichedData {
		if d.Content != "" {
			parts = append(parts, d.Content)
		}
	}
	if len(parts) == 0 {
		return "", ErrNoContent
	}
	return strings.Join(parts, "\n\n"), nil
}

// extractStructured unwraps single-field objects to the bare value;
// anything larger is serialized whole.
func extractStructured(o operator.StructuredOutput) (string, error) {
	if len(o.StructuredData) == 0 {
		if o.RawResponse != "" {
			return o.RawResponse, nil
		}
		return "", ErrNoContent
	}
	if len(o.StructuredData) == 1 {
		for _, v := range o.StructuredData {
			return stringifyValue(v), nil
		}
	}
	raw, err := json.Marshal(o.StructuredData)
	if err != nil {
		return "", fmt.Errorf("failed to serialize structured data: %w", err)
	}
	return string(raw), nil
}

func extractSimilarity(o operator.SimilarityOutput, limit int) (string, error) {
	terms := o.SimilarTerms
	if len(terms) == 0 {
		terms = o.Synonyms
	}
	if len(terms) == 0 {
		return "", ErrNoContent
	}
	if limit > 0 && len(terms) > limit {
		terms = terms[:limit]
	}
	return strings.Join(terms, ", "), nil
}

func extractFunctionCall(o operator.FunctionCallOutput) (string, error) {
	if len(o.FunctionCalls) > 0 {
		raw, err := json.Marshal(o.FunctionCalls)
		if err != nil {
			return "", fmt.Errorf("failed to serialize function calls: %w", err)
		}
		return string(raw), nil
	}
	if o.Response != "" {
		return o.Response, nil
	}
	return "", ErrNoContent
}

func stringifyValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		raw, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(raw)
	}
}
