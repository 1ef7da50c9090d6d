package operator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

func TestRegistry(t *testing.T) {
	reg := NewRegistry(
		NewGoogleSearch(nil, nil),
		NewURLContext(nil),
		NewStructuredOutput(nil),
		NewFunctionCalling(nil),
		NewSimilarityExpansion(nil),
		NewAcademicSearch(nil, nil),
	)

	assert.Len(t, reg.Types(), 6)

	op, err := reg.Get(models.OperatorGoogleSearch)
	require.NoError(t, err)
	assert.Equal(t, models.OperatorGoogleSearch, op.Name())

	_, err = reg.Get(models.OperatorType("tarot_reading"))
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestAdaptersRejectWrongInputType(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		op   Operator
		in   Input
	}{
		{"google_search", NewGoogleSearch(nil, nil), URLContextInput{}},
		{"url_context", NewURLContext(nil), SearchInput{}},
		{"structured_output", NewStructuredOutput(nil), SearchInput{}},
		{"function_calling", NewFunctionCalling(nil), SimilarityInput{}},
		{"similarity_expansion", NewSimilarityExpansion(nil), AcademicInput{}},
		{"academic_search", NewAcademicSearch(nil, nil), SearchInput{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op.Operate(ctx, tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAdaptersRejectEmptyInput(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		op   Operator
		in   Input
	}{
		{"empty query", NewGoogleSearch(nil, nil), SearchInput{}},
		{"no urls", NewURLContext(nil), URLContextInput{ExtractionPrompt: "extract"}},
		{"nil raw data", NewStructuredOutput(nil), StructuredInput{PromptText: "convert"}},
		{"empty prompt", NewFunctionCalling(nil), FunctionCallInput{
			AvailableFunctions: []FunctionDeclaration{{Name: "lookup"}},
		}},
		{"no functions", NewFunctionCalling(nil), FunctionCallInput{PromptText: "call something"}},
		{"unnamed function", NewFunctionCalling(nil), FunctionCallInput{
			PromptText:         "call something",
			AvailableFunctions: []FunctionDeclaration{{Description: "nameless"}},
		}},
		{"empty concept", NewSimilarityExpansion(nil), SimilarityInput{}},
		{"empty topic", NewAcademicSearch(nil, nil), AcademicInput{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.op.Operate(ctx, tt.in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestURLContextRejectsBadBatches(t *testing.T) {
	ctx := context.Background()
	op := NewURLContext(nil)

	_, err := op.Operate(ctx, URLContextInput{URLs: []string{"ftp://example.com/file"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = op.Operate(ctx, URLContextInput{URLs: []string{"not a url at all ://"}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	urls := make([]string, maxURLsPerExtraction+1)
	for i := range urls {
		urls[i] = "https://example.com/page"
	}
	_, err = op.Operate(ctx, URLContextInput{URLs: urls})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestInputPromptRoundTrip(t *testing.T) {
	inputs := []Input{
		SearchInput{Query: "original"},
		URLContextInput{ExtractionPrompt: "original"},
		StructuredInput{PromptText: "original"},
		FunctionCallInput{PromptText: "original"},
		SimilarityInput{Concept: "original"},
		AcademicInput{Topic: "original"},
	}
	for _, in := range inputs {
		assert.Equal(t, "original", in.Prompt())
		swapped := in.WithPrompt("retry prompt")
		assert.Equal(t, "retry prompt", swapped.Prompt())
		// value semantics: the original is untouched
		assert.Equal(t, "original", in.Prompt())
	}
}

func TestHostBlocked(t *testing.T) {
	blocked := []string{"vertexaisearch.cloud.google.com", "www.google.com/url"}

	tests := []struct {
		url  string
		want bool
	}{
		{"https://vertexaisearch.cloud.google.com/grounding-api-redirect/abc", true},
		{"https://sub.vertexaisearch.cloud.google.com/x", true},
		{"https://www.google.com/url?q=https://example.com", true},
		{"https://www.google.com/search?q=ok", false},
		{"https://example.com/page", false},
		{"https://notvertexaisearch.cloud.google.com.evil.com/", false},
		{"", false},
		{"not a url", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HostBlocked(tt.url, blocked), "url %q", tt.url)
	}
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://example.com"))
	assert.True(t, IsHTTPURL("http://example.com/path?q=1"))
	assert.True(t, IsHTTPURL("  https://example.com  "))
	assert.False(t, IsHTTPURL("ftp://example.com"))
	assert.False(t, IsHTTPURL("example.com"))
	assert.False(t, IsHTTPURL("/relative/path"))
	assert.False(t, IsHTTPURL(""))
}

func TestIsPDFLink(t *testing.T) {
	assert.True(t, isPDFLink("https://arxiv.org/pdf/2301.00001.pdf"))
	assert.True(t, isPDFLink("https://example.com/paper.PDF?download=1"))
	assert.True(t, isPDFLink("https://example.com/paper.pdf#page=3"))
	assert.False(t, isPDFLink("https://example.com/paper.pdf.html"))
	assert.False(t, isPDFLink("https://example.com/paper"))
}

func TestValidateAgainstSchema(t *testing.T) {
	schema := map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"name", "founded"},
		"properties": map[string]interface{}{
			"name":    map[string]interface{}{"type": "string"},
			"founded": map[string]interface{}{"type": "integer"},
		},
	}

	err := ValidateAgainstSchema(schema, map[string]interface{}{
		"name":    "Acme Corp",
		"founded": 1987,
	})
	assert.NoError(t, err)

	err = ValidateAgainstSchema(schema, map[string]interface{}{
		"name": "Acme Corp",
	})
	assert.Error(t, err)

	err = ValidateAgainstSchema(schema, map[string]interface{}{
		"name":    42,
		"founded": 1987,
	})
	assert.Error(t, err)
}
