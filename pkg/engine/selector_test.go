package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowboat-dev/rowboat/pkg/models"
	"github.com/rowboat-dev/rowboat/pkg/operator"
)

func selectorContext(template models.TemplateType, targetOperator models.OperatorType) *models.SheetContext {
	return &models.SheetContext{
		SheetID:      "sheet-1",
		TemplateType: template,
		Columns: []models.ColumnSpec{
			{Position: 0, Title: "Seed", DataType: models.DataTypeShortText},
			{Position: 1, Title: "Result", DataType: models.DataTypeShortText, OperatorType: targetOperator},
		},
		RowIndex:           0,
		CurrentColumnIndex: 0,
		RowData:            map[int]string{},
	}
}

func TestSelectOperatorExplicitColumnWins(t *testing.T) {
	sctx := selectorContext(models.TemplateScientific, models.OperatorURLContext)
	// even search-like scientific content yields to the pinned operator
	got := SelectOperator(sctx, models.EventUserCellEdit, "what is the best paper on transformers?", "")
	assert.Equal(t, models.OperatorURLContext, got)
}

func TestSelectOperatorHeuristics(t *testing.T) {
	tests := []struct {
		name     string
		template models.TemplateType
		content  string
		want     models.OperatorType
	}{
		{"scientific template with search-like content", models.TemplateScientific, "what is CRISPR?", models.OperatorAcademicSearch},
		{"scientific template with topic seed", models.TemplateScientific, "BERT transformer", models.OperatorAcademicSearch},
		{"scientific template with plain content", models.TemplateScientific, "Acme Robotics GmbH", models.OperatorAcademicSearch},
		{"scientific template with url content", models.TemplateScientific, "https://arxiv.example/abs/1810.04805", models.OperatorURLContext},
		{"academic keyword", models.TemplateGeneric, "find the original paper introducing attention", models.OperatorAcademicSearch},
		{"doi mention", models.TemplateGeneric, "doi 10.1000/xyz", models.OperatorAcademicSearch},
		{"academic prefix", models.TemplateGeneric, "literature review on batteries", models.OperatorAcademicSearch},
		{"search prefix", models.TemplateGeneric, "search: robot vacuum market size", models.OperatorGoogleSearch},
		{"question word", models.TemplateGeneric, "who is the CEO of Acme?", models.OperatorGoogleSearch},
		{"short question mark", models.TemplateGeneric, "best robotics startup in Munich?", models.OperatorGoogleSearch},
		{"url content", models.TemplateGeneric, "see https://acme.example/about for details", models.OperatorURLContext},
		{"plain content", models.TemplateGeneric, "Acme Robotics, Munich, Series B", models.OperatorStructuredOutput},
		{"word boundary: particles is not article", models.TemplateGeneric, "particles in suspension", models.OperatorStructuredOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sctx := selectorContext(tt.template, "")
			got := SelectOperator(sctx, models.EventUserCellEdit, tt.content, "")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectOperatorLongQuestionIsNotSearch(t *testing.T) {
	long := "Could you please summarize the following block of notes? " +
		"It contains meeting minutes from the last three quarterly planning sessions " +
		"and each one covers hiring, budget, product milestones and several follow-ups " +
		"that still need owners assigned before the next session."
	require.Greater(t, len(long), shortQuestionMaxLen)

	sctx := selectorContext(models.TemplateGeneric, "")
	got := SelectOperator(sctx, models.EventUserCellEdit, long, "")
	assert.Equal(t, models.OperatorStructuredOutput, got)
}

func TestSelectOperatorManualTrigger(t *testing.T) {
	sctx := selectorContext(models.TemplateGeneric, models.OperatorGoogleSearch)

	got := SelectOperator(sctx, models.EventManualTrigger, "anything", "similarity_expansion")
	assert.Equal(t, models.OperatorSimilarityExpansion, got)

	// unknown trigger falls back to structured_output, ignoring the
	// column's pinned operator
	got = SelectOperator(sctx, models.EventManualTrigger, "anything", "crystal_ball")
	assert.Equal(t, models.OperatorStructuredOutput, got)
}

func TestExtractURLs(t *testing.T) {
	urls := ExtractURLs("see https://acme.example/about, and http://docs.acme.example/intro.")
	assert.Equal(t, []string{"https://acme.example/about", "http://docs.acme.example/intro"}, urls)

	assert.Empty(t, ExtractURLs("no links here"))
}

func TestPrepareInput(t *testing.T) {
	sctx := selectorContext(models.TemplateGeneric, "")
	sctx.RowData = map[int]string{0: "Acme Robotics"}

	t.Run("google_search", func(t *testing.T) {
		in, err := PrepareInput(models.OperatorGoogleSearch, "the prompt", "Acme", sctx, map[string]interface{}{"max_results": float64(3)})
		require.NoError(t, err)
		search, ok := in.(operator.SearchInput)
		require.True(t, ok)
		assert.Equal(t, "the prompt", search.Query)
		assert.Equal(t, 3, search.MaxResults)
	})

	t.Run("url_context requires urls in content", func(t *testing.T) {
		_, err := PrepareInput(models.OperatorURLContext, "the prompt", "no links", sctx, nil)
		assert.ErrorIs(t, err, operator.ErrInvalidInput)

		in, err := PrepareInput(models.OperatorURLContext, "the prompt", "https://acme.example", sctx, nil)
		require.NoError(t, err)
		urlIn := in.(operator.URLContextInput)
		assert.Equal(t, []string{"https://acme.example"}, urlIn.URLs)
		assert.Equal(t, "the prompt", urlIn.ExtractionPrompt)
	})

	t.Run("structured_output keys row data by title", func(t *testing.T) {
		in, err := PrepareInput(models.OperatorStructuredOutput, "the prompt", "Acme", sctx, nil)
		require.NoError(t, err)
		structured := in.(operator.StructuredInput)
		assert.Equal(t, map[string]string{"Seed": "Acme Robotics"}, structured.RawData)
	})

	t.Run("function_calling requires declarations", func(t *testing.T) {
		_, err := PrepareInput(models.OperatorFunctionCalling, "the prompt", "Acme", sctx, nil)
		assert.ErrorIs(t, err, operator.ErrInvalidInput)

		settings := map[string]interface{}{
			"functions": []interface{}{
				map[string]interface{}{"name": "lookup", "description": "look a thing up"},
			},
		}
		in, err := PrepareInput(models.OperatorFunctionCalling, "the prompt", "Acme", sctx, settings)
		require.NoError(t, err)
		fc := in.(operator.FunctionCallInput)
		require.Len(t, fc.AvailableFunctions, 1)
		assert.Equal(t, "lookup", fc.AvailableFunctions[0].Name)
	})

	t.Run("similarity_expansion carries source content as context", func(t *testing.T) {
		in, err := PrepareInput(models.OperatorSimilarityExpansion, "the prompt", "robot vacuum", sctx, nil)
		require.NoError(t, err)
		sim := in.(operator.SimilarityInput)
		assert.Equal(t, "the prompt", sim.Concept)
		assert.Equal(t, "robot vacuum", sim.Context)
	})

	t.Run("academic_search settings", func(t *testing.T) {
		settings := map[string]interface{}{
			"research_field": "robotics",
			"min_citations":  float64(50),
		}
		in, err := PrepareInput(models.OperatorAcademicSearch, "the prompt", "Acme", sctx, settings)
		require.NoError(t, err)
		ac := in.(operator.AcademicInput)
		assert.Equal(t, "robotics", ac.ResearchField)
		assert.Equal(t, 50, ac.MinCitations)
	})
}

func TestMergeSettings(t *testing.T) {
	column := map[string]interface{}{"max_results": 5, "domain": "tech"}
	params := map[string]interface{}{"max_results": 10}

	merged := MergeSettings(column, params)
	assert.Equal(t, 10, merged["max_results"])
	assert.Equal(t, "tech", merged["domain"])

	// no parameters returns the column config untouched
	assert.Equal(t, column, MergeSettings(column, nil))
}
