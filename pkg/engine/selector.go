// Package engine runs the per-event fill pipeline: context resolution,
// operator selection, input preparation, invocation, the write path via
// the wrapper, and the bounded in-process retry.
package engine

import (
	"regexp"
	"strings"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

const shortQuestionMaxLen = 200

var (
	searchQueryRe = regexp.MustCompile(`(?i)^(search:|find:|query:|what is|who is|where is|when is|how to)`)

	academicPrefixRe = regexp.MustCompile(`(?i)^(research:|find papers|literature review)`)

	urlRe = regexp.MustCompile(`https?://\S+`)
)

// academicSignals is the closed vocabulary marking scholarly intent.
var academicSignals = []string{
	"research", "paper", "study", "journal", "article", "academic",
	"scholar", "citation", "doi", "arxiv", "pubmed", "peer-reviewed",
	"thesis", "dissertation", "publication",
}

// SelectOperator picks the operator that fills the target column, in
// strict priority order: explicit column operator, scientific-template
// bias, academic signals, search-query shape, URL presence, and finally
// structured_output as the catch-all.
//
// Manual triggers map their trigger type directly; unknown triggers
// fall back to structured_output.
func SelectOperator(sctx *models.SheetContext, eventType models.EventType, content, triggerType string) models.OperatorType {
	if eventType == models.EventManualTrigger {
		if op := models.OperatorType(triggerType); op.IsValid() {
			return op
		}
		return models.OperatorStructuredOutput
	}

	if target := sctx.TargetColumn(); target != nil && target.OperatorType != "" {
		return target.OperatorType
	}

	// A scientific sheet biases every non-URL fill toward scholarly
	// sources: a bare topic seed like "BERT transformer" should land on
	// papers, not on the general web. URLs still go to url_context.
	if sctx.TemplateType == models.TemplateScientific && !urlRe.MatchString(content) {
		return models.OperatorAcademicSearch
	}
	if hasAcademicSignal(content) {
		return models.OperatorAcademicSearch
	}
	if isSearchLike(content) {
		return models.OperatorGoogleSearch
	}
	if urlRe.MatchString(content) {
		return models.OperatorURLContext
	}
	return models.OperatorStructuredOutput
}

// isSearchLike reports whether content reads like a search query: a
// recognized query prefix, or a short question.
func isSearchLike(content string) bool {
	trimmed := strings.TrimSpace(content)
	if searchQueryRe.MatchString(trimmed) {
		return true
	}
	return strings.Contains(trimmed, "?") && len(trimmed) < shortQuestionMaxLen
}

// hasAcademicSignal reports whether content carries scholarly vocabulary
// or an academic query prefix.
func hasAcademicSignal(content string) bool {
	trimmed := strings.TrimSpace(content)
	if academicPrefixRe.MatchString(trimmed) {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, kw := range academicSignals {
		if containsWord(lower, kw) {
			return true
		}
	}
	return false
}

// containsWord matches kw in s on word boundaries, so "article" does
// not fire on "particles".
func containsWord(s, kw string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], kw)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(kw)
		beforeOK := start == 0 || !isWordChar(s[start-1])
		afterOK := end == len(s) || !isWordChar(s[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}

// ExtractURLs returns the http(s) URLs found in content, in order,
// with trailing punctuation trimmed.
func ExtractURLs(content string) []string {
	raw := urlRe.FindAllString(content, -1)
	out := make([]string, 0, len(raw))
	for _, u := range raw {
		out = append(out, strings.TrimRight(u, ".,;:)]}>\"'"))
	}
	return out
}
