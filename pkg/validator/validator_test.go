package validator

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/models"
)

func newTestValidator() *Validator {
	return New(config.DefaultValidatorConfig())
}

func col(dt models.DataType) *models.ColumnSpec {
	return &models.ColumnSpec{Title: "Value", DataType: dt}
}

func TestValidateHardFailures(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		dt      models.DataType
		content string
	}{
		{"non-numeric number", models.DataTypeNumber, "about twelve"},
		{"infinite number", models.DataTypeNumber, "Inf"},
		{"non-url", models.DataTypeURL, "not a website"},
		{"bad email", models.DataTypeEmail, "nobody at nowhere"},
		{"bad currency", models.DataTypeCurrency, "a lot of money"},
		{"bad date", models.DataTypeDate, "sometime last year"},
		{"bad boolean", models.DataTypeBoolean, "maybe"},
		{"bad json", models.DataTypeJSON, "{not json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.content, col(tt.dt))
			assert.False(t, res.Valid)
			assert.True(t, res.HasErrors())
			assert.LessOrEqual(t, res.Confidence, hardFailureConfidence)
			assert.True(t, v.NeedsRetry(&res))
		})
	}
}

func TestValidateAcceptsGoodValues(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name    string
		dt      models.DataType
		title   string
		content string
	}{
		{"number", models.DataTypeNumber, "Employee Count", "1,250"},
		{"negative number", models.DataTypeNumber, "Delta", "-3.5"},
		{"url", models.DataTypeURL, "Website", "https://example.com/about"},
		{"email", models.DataTypeEmail, "Contact Email", "press@example.com"},
		{"currency", models.DataTypeCurrency, "Revenue", "$1,200.50"},
		{"iso date", models.DataTypeDate, "Founded Date", "1987-03-14"},
		{"long date", models.DataTypeDate, "Founded Date", "March 14, 1987"},
		{"slash date", models.DataTypeDate, "Founded Date", "3/14/1987"},
		{"boolean", models.DataTypeBoolean, "Is Public", "Yes"},
		{"list", models.DataTypeList, "Products", "widgets, gadgets, gizmos"},
		{"person", models.DataTypePerson, "CEO Name", "Ada Lovelace"},
		{"company", models.DataTypeCompany, "Company Name", "Acme Corp"},
		{"json", models.DataTypeJSON, "Raw Data", `{"name":"Acme"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := col(tt.dt)
			c.Title = tt.title
			res := v.Validate(tt.content, c)
			assert.True(t, res.Valid)
			assert.False(t, res.HasErrors())
		})
	}
}

func TestValidateEmptyContent(t *testing.T) {
	v := newTestValidator()

	required := col(models.DataTypeShortText)
	required.Required = true
	res := v.Validate("   ", required)
	assert.False(t, res.Valid)
	assert.True(t, v.NeedsRetry(&res))

	optional := col(models.DataTypeShortText)
	res = v.Validate("", optional)
	assert.True(t, res.Valid)
	assert.Less(t, res.Confidence, 1.0)
}

func TestValidateAutoSanitize(t *testing.T) {
	v := newTestValidator()

	t.Run("short text truncation", func(t *testing.T) {
		res := v.Validate(strings.Repeat("a", 150), col(models.DataTypeShortText))
		assert.True(t, res.Valid)
		assert.Len(t, res.Sanitized, shortTextRecommendedMax)
		assert.True(t, strings.HasSuffix(res.Sanitized, "..."))
	})

	t.Run("short text truncation never splits a rune", func(t *testing.T) {
		res := v.Validate(strings.Repeat("ü", 150), col(models.DataTypeShortText))
		assert.True(t, res.Valid)
		assert.True(t, utf8.ValidString(res.Sanitized))
		assert.Equal(t, shortTextRecommendedMax, utf8.RuneCountInString(res.Sanitized))
	})

	t.Run("url protocol prefix", func(t *testing.T) {
		res := v.Validate("example.com/page", col(models.DataTypeURL))
		assert.True(t, res.Valid)
		assert.Equal(t, "https://example.com/page", res.Sanitized)
	})

	t.Run("email lowercase", func(t *testing.T) {
		res := v.Validate("Press@Example.COM", col(models.DataTypeEmail))
		assert.True(t, res.Valid)
		assert.Equal(t, "press@example.com", res.Sanitized)
	})

	t.Run("boolean normalization", func(t *testing.T) {
		for in, want := range map[string]string{"true": "Yes", "y": "Yes", "0": "No", "FALSE": "No"} {
			res := v.Validate(in, col(models.DataTypeBoolean))
			assert.True(t, res.Valid)
			assert.Equal(t, want, res.Sanitized, "input %q", in)
		}
	})

	t.Run("list rejoin", func(t *testing.T) {
		res := v.Validate("widgets;gadgets\ngizmos", col(models.DataTypeList))
		assert.True(t, res.Valid)
		assert.Equal(t, "widgets, gadgets, gizmos", res.Sanitized)
	})
}

func TestValidateLengthConstraints(t *testing.T) {
	v := newTestValidator()

	c := col(models.DataTypeLongText)
	c.MaxLength = 20
	res := v.Validate("this answer is clearly longer than twenty characters", c)
	assert.True(t, res.Valid)
	assert.Less(t, res.Confidence, 1.0)

	c = col(models.DataTypeLongText)
	c.MinLength = 100
	res = v.Validate("too short an answer", c)
	assert.True(t, res.Valid)
	assert.Less(t, res.Confidence, 1.0)
}

func TestRelevanceScore(t *testing.T) {
	assert.Equal(t, 1.0, relevanceScore("Company Description", "Acme is a company known for its description of widgets"))
	assert.Equal(t, 0.0, relevanceScore("Company Description", "https://example.com"))
	assert.Equal(t, -1.0, relevanceScore("ID", "anything")) // no scorable tokens
	assert.Equal(t, 0.5, relevanceScore("Founding Year", "the year was 1987"))
}

func TestValidateShapeMissForcesRetry(t *testing.T) {
	v := newTestValidator()

	t.Run("sentence in a person column", func(t *testing.T) {
		c := col(models.DataTypePerson)
		c.Title = "CEO"
		res := v.Validate("The company has great leadership", c)
		// lenient: the write still happens, but the retry must fire
		assert.True(t, res.Valid)
		assert.Less(t, res.Confidence, config.DefaultValidatorConfig().LowConfidenceThreshold)
		assert.True(t, v.NeedsRetry(&res))
	})

	t.Run("non-name in a company column", func(t *testing.T) {
		c := col(models.DataTypeCompany)
		c.Title = "Employer"
		res := v.Validate("great leadership overall", c)
		assert.True(t, res.Valid)
		assert.True(t, v.NeedsRetry(&res))
	})
}

func TestRelevanceLowersConfidenceOnly(t *testing.T) {
	v := newTestValidator()

	c := col(models.DataTypeLongText)
	c.Title = "Quarterly Financial Projections"
	res := v.Validate("a perfectly reasonable answer about something else entirely", c)
	assert.True(t, res.Valid)
	assert.Less(t, res.Confidence, 1.0)
}

func TestCompatibilityNotes(t *testing.T) {
	assert.Empty(t, CompatibilityNotes(models.OperatorGoogleSearch, models.DataTypeURL))
	assert.Empty(t, CompatibilityNotes(models.OperatorStructuredOutput, models.DataTypeJSON))

	notes := CompatibilityNotes(models.OperatorSimilarityExpansion, models.DataTypeURL)
	assert.NotEmpty(t, notes)
	assert.Contains(t, notes[1], "https://")

	notes = CompatibilityNotes(models.OperatorGoogleSearch, models.DataTypeJSON)
	assert.NotEmpty(t, notes)
}

func TestGenerateImprovementPrompt(t *testing.T) {
	c := &models.ColumnSpec{
		Title:     "Website",
		DataType:  models.DataTypeURL,
		MaxLength: 200,
		Examples:  []string{"https://example.com"},
	}
	res := &ValidationResult{
		Valid:       false,
		Confidence:  0.1,
		Issues:      []Issue{{Type: IssueFormat, Message: "value is not a URL", Severity: SeverityError}},
		Suggestions: []string{"return a single https:// URL"},
	}

	prompt := GenerateImprovementPrompt("Find the company website for Acme Corp", c, res)

	assert.True(t, strings.HasPrefix(prompt, "RETRY"))
	assert.Contains(t, prompt, "ISSUES:")
	assert.Contains(t, prompt, "value is not a URL")
	assert.Contains(t, prompt, "SUGGESTIONS:")
	assert.Contains(t, prompt, "REQUIREMENTS:")
	assert.Contains(t, prompt, "Maximum length: 200")
	assert.Contains(t, prompt, "https://example.com")
	assert.True(t, strings.HasSuffix(prompt, "Find the company website for Acme Corp"))
}
