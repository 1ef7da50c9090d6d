package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/models"
)

// hardFailureConfidence caps confidence when Valid is false.
const hardFailureConfidence = 0.2

// confidence penalties per warning class
const (
	penaltyLength    = 0.15
	penaltyFormat    = 0.2
	penaltyRelevance = 0.25

	// penaltyShape applies when content fails a "does not look like"
	// check (person, company). A shape miss alone must drop confidence
	// below the retry threshold: a sentence in a person column is
	// wrong even when every other check passes.
	penaltyShape = 0.55
)

const shortTextRecommendedMax = 100

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	currencyRe = regexp.MustCompile(`^[$€£¥₹]?\s?-?[\d,]+(\.\d+)?\s?[$€£¥₹]?$`)

	dateISORe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateLongRe  = regexp.MustCompile(`^[A-Z][a-z]+ \d{1,2}, \d{4}$`)
	dateSlashRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)

	capitalizedWordRe = regexp.MustCompile(`\b[A-Z][a-z]+`)

	tokenRe = regexp.MustCompile(`[a-zA-Z0-9]+`)
)

var companyKeywords = []string{
	"inc", "corp", "llc", "ltd", "gmbh", "co", "company", "group",
	"holdings", "labs", "technologies", "systems", "solutions",
}

var booleanValues = map[string]string{
	"yes": "Yes", "y": "Yes", "true": "Yes", "1": "Yes",
	"no": "No", "n": "No", "false": "No", "0": "No",
}

// Validator checks cell content against column format contracts.
type Validator struct {
	cfg *config.ValidatorConfig
}

// New creates a validator.
func New(cfg *config.ValidatorConfig) *Validator {
	return &Validator{cfg: cfg}
}

// NeedsRetry reports whether a result should trigger the in-process
// retry: either a hard failure or confidence below the threshold.
func (v *Validator) NeedsRetry(r *ValidationResult) bool {
	return !r.Valid || r.Confidence < v.cfg.LowConfidenceThreshold
}

// Validate checks content against the column's format contract. It is
// lenient: only hard format failures (unparseable number, empty
// required field, non-URL in a url column) flip Valid to false.
func (v *Validator) Validate(content string, col *models.ColumnSpec) ValidationResult {
	res := ValidationResult{Valid: true, Confidence: 1.0}
	trimmed := strings.TrimSpace(content)

	if trimmed == "" {
		if col.Required {
			res.addError(IssueRequired, fmt.Sprintf("column %q is required but the value is empty", col.Title))
			res.suggest("produce a non-empty value for this required column")
		} else {
			res.addWarning(IssueContent, "value is empty", penaltyFormat)
		}
		res.clamp()
		return res
	}

	v.validateType(trimmed, col, &res)
	v.validateLength(trimmed, col, &res)
	v.validateRelevance(trimmed, col, &res)

	res.clamp()
	return res
}

func (v *Validator) validateType(content string, col *models.ColumnSpec, res *ValidationResult) {
	switch col.DataType {
	case models.DataTypeShortText:
		if n := utf8.RuneCountInString(content); n > shortTextRecommendedMax {
			res.addWarning(IssueLength, fmt.Sprintf("short text is %d characters, %d recommended", n, shortTextRecommendedMax), penaltyLength)
			res.Sanitized = string([]rune(content)[:shortTextRecommendedMax-3]) + "..."
			res.suggest("answer with a short phrase, not a sentence")
		}
		if strings.Contains(content, ": ") || strings.Contains(content, " - ") {
			res.addWarning(IssueFormat, "short text looks like an explanation, expected a bare value", penaltyFormat)
			res.suggest("return only the value, without explanations")
		}

	case models.DataTypeLongText:
		if utf8.RuneCountInString(content) < 10 {
			res.addWarning(IssueLength, "long text shorter than 10 characters", penaltyLength)
			res.suggest("provide a more detailed answer")
		}

	case models.DataTypeURL:
		if strings.HasPrefix(content, "http://") || strings.HasPrefix(content, "https://") {
			return
		}
		if strings.Contains(content, ".") && !strings.ContainsAny(content, " \t\n") {
			res.addWarning(IssueFormat, "url missing protocol", penaltyFormat)
			res.Sanitized = "https://" + content
			res.suggest("return a full https:// URL")
			return
		}
		res.addError(IssueFormat, "value is not a URL")
		res.suggest("return a single https:// URL")

	case models.DataTypeEmail:
		if !emailRe.MatchString(content) {
			res.addError(IssueFormat, "value is not an email address")
			res.suggest("return a single email address like name@example.com")
			return
		}
		if lower := strings.ToLower(content); lower != content {
			res.Sanitized = lower
		}

	case models.DataTypeNumber:
		f, err := strconv.ParseFloat(strings.ReplaceAll(content, ",", ""), 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			res.addError(IssueFormat, "value is not a parseable number")
			res.suggest("return digits only, no units or text")
		}

	case models.DataTypeCurrency:
		if !currencyRe.MatchString(content) {
			res.addError(IssueFormat, "value is not a currency amount")
			res.suggest("return an amount like $1,200.50")
		}

	case models.DataTypeDate:
		if !dateISORe.MatchString(content) && !dateLongRe.MatchString(content) && !dateSlashRe.MatchString(content) {
			res.addError(IssueFormat, "value is not a recognizable date")
			res.suggest("return a date as YYYY-MM-DD")
		}

	case models.DataTypeBoolean:
		normalized, ok := booleanValues[strings.ToLower(content)]
		if !ok {
			res.addError(IssueFormat, "value is not a yes/no answer")
			res.suggest("answer Yes or No")
			return
		}
		if normalized != content {
			res.Sanitized = normalized
		}

	case models.DataTypeList:
		if !strings.ContainsAny(content, ",;\n") {
			res.addWarning(IssueFormat, "list value has a single item or unrecognized separators", penaltyFormat)
			res.suggest("separate items with commas")
			return
		}
		if sep := rejoinList(content); sep != content {
			res.Sanitized = sep
		}

	case models.DataTypePerson:
		if len(capitalizedWordRe.FindAllString(content, -1)) < 2 {
			res.addWarning(IssueFormat, "value does not look like a person name", penaltyShape)
			res.suggest("return a full name, first and last")
		}

	case models.DataTypeCompany:
		if !looksLikeCompany(content) {
			res.addWarning(IssueFormat, "value does not look like a company name", penaltyShape)
			res.suggest("return the organization's name")
		}

	case models.DataTypeJSON:
		if !json.Valid([]byte(content)) {
			res.addError(IssueFormat, "value is not valid JSON")
			res.suggest("return a single well-formed JSON document")
		}

	default:
		res.addInfo(IssueFormat, fmt.Sprintf("no format rule for data type %q", col.DataType))
	}
}

// validateLength checks character counts, not byte lengths: column
// limits describe what a user sees in the cell.
func (v *Validator) validateLength(content string, col *models.ColumnSpec, res *ValidationResult) {
	n := utf8.RuneCountInString(content)
	if col.MaxLength > 0 && n > col.MaxLength {
		res.addWarning(IssueLength, fmt.Sprintf("value is %d characters, column allows %d", n, col.MaxLength), penaltyLength)
		res.suggest(fmt.Sprintf("keep the answer under %d characters", col.MaxLength))
	}
	if col.MinLength > 0 && n < col.MinLength {
		res.addWarning(IssueLength, fmt.Sprintf("value is %d characters, column expects at least %d", n, col.MinLength), penaltyLength)
		res.suggest(fmt.Sprintf("provide at least %d characters", col.MinLength))
	}
}

// validateRelevance scores keyword overlap between the column title and
// the content. Low overlap lowers confidence but never invalidates:
// a correct answer frequently shares no tokens with its column title.
func (v *Validator) validateRelevance(content string, col *models.ColumnSpec, res *ValidationResult) {
	score := relevanceScore(col.Title, content)
	if score >= 0 && score < v.cfg.RelevanceThreshold {
		res.addWarning(IssueRelevance, fmt.Sprintf("content shares few keywords with column %q", col.Title), penaltyRelevance)
	}
}

// relevanceScore returns the fraction of column-title tokens present in
// the content, or -1 when the title has no scorable tokens.
func relevanceScore(title, content string) float64 {
	titleTokens := tokenize(title)
	if len(titleTokens) == 0 {
		return -1
	}
	contentTokens := make(map[string]bool)
	for _, t := range tokenize(content) {
		contentTokens[t] = true
	}
	matched := 0
	for _, t := range titleTokens {
		if contentTokens[t] {
			matched++
		}
	}
	return float64(matched) / float64(len(titleTokens))
}

func tokenize(s string) []string {
	raw := tokenRe.FindAllString(strings.ToLower(s), -1)
	out := raw[:0]
	for _, t := range raw {
		if len(t) > 2 {
			out = append(out, t)
		}
	}
	return out
}

func looksLikeCompany(content string) bool {
	lower := strings.ToLower(content)
	for _, kw := range companyKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	r := []rune(strings.TrimSpace(content))
	return len(r) > 0 && r[0] >= 'A' && r[0] <= 'Z'
}

// rejoinList normalizes separators to comma-space.
func rejoinList(content string) string {
	parts := strings.FieldsFunc(content, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			items = append(items, p)
		}
	}
	return strings.Join(items, ", ")
}
