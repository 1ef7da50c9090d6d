package wrapper

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/pkg/config"
	"github.com/rowboat-dev/rowboat/pkg/models"
	"github.com/rowboat-dev/rowboat/pkg/operator"
)

func testSheetContext() *models.SheetContext {
	return &models.SheetContext{
		SheetID:      "sheet-1",
		TemplateType: models.TemplateGeneric,
		SystemPrompt: "Research European hardware startups.",
		Columns: []models.ColumnSpec{
			{Position: 0, Title: "Company Name", DataType: models.DataTypeCompany},
			{Position: 1, Title: "Website", DataType: models.DataTypeURL, MaxLength: 200},
			{Position: 2, Title: "Summary", DataType: models.DataTypeLongText},
		},
		RowIndex:           3,
		CurrentColumnIndex: 0,
		RowData:            map[int]string{0: "Acme Robotics"},
	}
}

func TestBuildContextualPrompt(t *testing.T) {
	sctx := testSheetContext()
	prompt := BuildContextualPrompt(sctx, models.OperatorGoogleSearch)

	// section order is fixed
	goal := strings.Index(prompt, "GOAL:")
	structure := strings.Index(prompt, "COLUMN STRUCTURE:")
	format := strings.Index(prompt, "FORMAT REQUIREMENTS:")
	task := strings.Index(prompt, "TASK:")
	require.True(t, goal >= 0 && structure > goal && format > structure && task > format,
		"sections out of order in:\n%s", prompt)

	assert.Contains(t, prompt, "Research European hardware startups.")
	assert.Contains(t, prompt, `0. Company Name = "Acme Robotics"`)
	assert.Contains(t, prompt, "→ 1. Website")
	assert.Contains(t, prompt, "Maximum length: 200")
	assert.Contains(t, prompt, `TASK: Fill "Website" based on the data in this row.`)
	assert.NotContains(t, prompt, "SCIENTIFIC FOCUS")
	assert.NotContains(t, prompt, "COMPATIBILITY NOTES")
}

func TestBuildContextualPromptScientific(t *testing.T) {
	sctx := testSheetContext()
	sctx.TemplateType = models.TemplateScientific
	prompt := BuildContextualPrompt(sctx, models.OperatorAcademicSearch)
	assert.Contains(t, prompt, "SCIENTIFIC FOCUS:")
	assert.Less(t, strings.Index(prompt, "SCIENTIFIC FOCUS:"), strings.Index(prompt, "COLUMN STRUCTURE:"))
}

func TestBuildContextualPromptCompatibilityNotes(t *testing.T) {
	sctx := testSheetContext()
	// similarity_expansion filling a url column is an unusual pairing
	prompt := BuildContextualPrompt(sctx, models.OperatorSimilarityExpansion)
	assert.Contains(t, prompt, "COMPATIBILITY NOTES:")
}

func TestBuildContextualPromptDeterministic(t *testing.T) {
	sctx := testSheetContext()
	assert.Equal(t,
		BuildContextualPrompt(sctx, models.OperatorGoogleSearch),
		BuildContextualPrompt(sctx, models.OperatorGoogleSearch))
}

func TestBuildContextualPromptNoTarget(t *testing.T) {
	sctx := testSheetContext()
	sctx.CurrentColumnIndex = 2 // last column: nothing left to fill
	assert.Empty(t, BuildContextualPrompt(sctx, models.OperatorGoogleSearch))
}

func defaultWrapperConfig() *config.WrapperConfig {
	return config.DefaultWrapperConfig()
}

func TestExtractSearch(t *testing.T) {
	cfg := defaultWrapperConfig()

	out := operator.SearchOutput{Results: []operator.SearchResult{
		{Title: "Redirected", URL: "https://vertexaisearch.cloud.google.com/redirect/x", IsRedirect: true},
		{Title: "Acme Robotics", URL: "https://acme-robotics.example"},
	}}
	content, err := ExtractContent(out, cfg)
	require.NoError(t, err)
	assert.Equal(t, "https://acme-robotics.example", content)

	// a result without a URL still contributes its title
	out = operator.SearchOutput{Results: []operator.SearchResult{
		{Title: "Untitled Source"},
	}}
	content, err = ExtractContent(out, cfg)
	require.NoError(t, err)
	assert.Equal(t, "Untitled Source", content)

	_, err = ExtractContent(operator.SearchOutput{}, cfg)
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestExtractSearchAllRedirectsYieldsNothing(t *testing.T) {
	cfg := defaultWrapperConfig()

	// redirect-only results must not fall back to their titles: nothing
	// from a blocked host may reach the sheet, not even indirectly
	out := operator.SearchOutput{Results: []operator.SearchResult{
		{Title: "Only Hit", URL: "https://www.google.com/url?q=x", IsRedirect: true},
		{Title: "Grounded", URL: "https://vertexaisearch.cloud.google.com/grounding-api-redirect/ABC"},
	}}
	_, err := ExtractContent(out, cfg)
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestExtractAcademicPreference(t *testing.T) {
	cfg := defaultWrapperConfig()
	landing := operator.AcademicResult{SearchResult: operator.SearchResult{Title: "Landing", URL: "https://journal.example/article"}}
	impact := operator.AcademicResult{SearchResult: operator.SearchResult{Title: "Impact", URL: "https://journal.example/famous"}, IsHighImpact: true}
	pdf := operator.AcademicResult{SearchResult: operator.SearchResult{Title: "PDF", URL: "https://arxiv.example/paper.pdf"}, IsPdfDirect: true}

	content, err := ExtractContent(operator.AcademicOutput{AcademicResults: []operator.AcademicResult{landing, impact, pdf}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, pdf.URL, content, "direct pdf wins")

	content, err = ExtractContent(operator.AcademicOutput{AcademicResults: []operator.AcademicResult{landing, impact}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, impact.URL, content, "high impact beats plain landing page")

	content, err = ExtractContent(operator.AcademicOutput{AcademicResults: []operator.AcademicResult{landing}}, cfg)
	require.NoError(t, err)
	assert.Equal(t, landing.URL, content)
}

func TestExtractURLContext(t *testing.T) {
	cfg := defaultWrapperConfig()

	content, err := ExtractContent(operator.URLContextOutput{Summary: "A robotics company."}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "A robotics company.", content)

	content, err = ExtractContent(operator.URLContextOutput{
		EnrichedData: []operator.URLData{{URL: "https://a", Content: "first"}, {URL: "https://b", Content: "second"}},
	}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "first\n\nsecond", content)
}

func TestExtractStructured(t *testing.T) {
	cfg := defaultWrapperConfig()

	// single-field object unwraps to the bare value
	content, err := ExtractContent(operator.StructuredOutput{
		StructuredData: map[string]interface{}{"founded": float64(1987)},
	}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "1987", content)

	// multi-field object serializes whole
	content, err = ExtractContent(operator.StructuredOutput{
		StructuredData: map[string]interface{}{"name": "Acme", "founded": float64(1987)},
	}, cfg)
	require.NoError(t, err)
	assert.Contains(t, content, `"name":"Acme"`)
}

func TestExtractSimilarity(t *testing.T) {
	cfg := defaultWrapperConfig() // SimilarTermsLimit 5

	out := operator.SimilarityOutput{SimilarTerms: []string{"a", "b", "c", "d", "e", "f", "g"}}
	content, err := ExtractContent(out, cfg)
	require.NoError(t, err)
	assert.Equal(t, "a, b, c, d, e", content)
}

func TestExtractFunctionCall(t *testing.T) {
	cfg := defaultWrapperConfig()

	content, err := ExtractContent(operator.FunctionCallOutput{
		FunctionCalls: []operator.FunctionCall{{Name: "lookup", Args: map[string]interface{}{"id": "7"}}},
	}, cfg)
	require.NoError(t, err)
	assert.Contains(t, content, `"name":"lookup"`)

	content, err = ExtractContent(operator.FunctionCallOutput{Response: "no call needed"}, cfg)
	require.NoError(t, err)
	assert.Equal(t, "no call needed", content)
}

func TestSanitize(t *testing.T) {
	blocked := defaultWrapperConfig().BlockedURLHosts

	t.Run("strips nested quote pairs", func(t *testing.T) {
		got, err := Sanitize(`""Acme Robotics""`, blocked, 5000)
		require.NoError(t, err)
		assert.Equal(t, "Acme Robotics", got)
	})

	t.Run("rejects redirect-host urls", func(t *testing.T) {
		_, err := Sanitize("https://vertexaisearch.cloud.google.com/grounding-api-redirect/abc", blocked, 5000)
		assert.ErrorIs(t, err, ErrContentRejected)
	})

	t.Run("normalizes urls", func(t *testing.T) {
		got, err := Sanitize("https://Example.COM/Path#fragment", blocked, 5000)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/Path", got)
	})

	t.Run("rejects sentinels", func(t *testing.T) {
		for _, s := range []string{"null", "NULL", `"undefined"`, "{}", "[]", "  none  "} {
			_, err := Sanitize(s, blocked, 5000)
			assert.ErrorIs(t, err, ErrContentRejected, "input %q", s)
		}
	})

	t.Run("rejects all-null json objects", func(t *testing.T) {
		_, err := Sanitize(`{"name": null, "url": null}`, blocked, 5000)
		assert.ErrorIs(t, err, ErrContentRejected)

		got, err := Sanitize(`{"name": "Acme", "url": null}`, blocked, 5000)
		require.NoError(t, err)
		assert.NotEmpty(t, got)
	})

	t.Run("truncates", func(t *testing.T) {
		got, err := Sanitize(strings.Repeat("x", 6000), blocked, 5000)
		require.NoError(t, err)
		assert.Len(t, got, 5000)
	})

	t.Run("truncates on rune boundaries", func(t *testing.T) {
		got, err := Sanitize(strings.Repeat("é", 6000), blocked, 5000)
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, 5000, utf8.RuneCountInString(got))
	})

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			`"quoted value"`,
			"https://Example.COM/Path#fragment",
			"  spaced  ",
			strings.Repeat("y", 6000),
			`{"name": "Acme"}`,
		}
		for _, in := range inputs {
			once, err := Sanitize(in, blocked, 5000)
			require.NoError(t, err)
			twice, err := Sanitize(once, blocked, 5000)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "input %q", in)
		}
	})
}

func TestStripQuotePairs(t *testing.T) {
	assert.Equal(t, "value", stripQuotePairs(`"value"`))
	assert.Equal(t, "value", stripQuotePairs(`'"value"'`))
	assert.Equal(t, `"unbalanced`, stripQuotePairs(`"unbalanced`))
	assert.Equal(t, "", stripQuotePairs(`""`))
	assert.Equal(t, "a", stripQuotePairs("a"))
}
