package engine

import (
	"encoding/json"
	"fmt"

	"github.com/rowboat-dev/rowboat/pkg/models"
	"github.com/rowboat-dev/rowboat/pkg/operator"
)

// PrepareInput builds the operator-specific input for one fill step.
// prompt is the contextual prompt and always lands in the operator's
// prompt-like field; content is the source cell's value; settings is
// the merged column operator_config plus any manual-trigger parameters.
func PrepareInput(op models.OperatorType, prompt, content string, sctx *models.SheetContext, settings map[string]interface{}) (operator.Input, error) {
	switch op {
	case models.OperatorGoogleSearch:
		return operator.SearchInput{
			Query:      prompt,
			MaxResults: intSetting(settings, "max_results"),
		}, nil

	case models.OperatorURLContext:
		urls := ExtractURLs(content)
		if len(urls) == 0 {
			return nil, fmt.Errorf("%w: source content carries no urls", operator.ErrInvalidInput)
		}
		return operator.URLContextInput{
			URLs:             urls,
			ExtractionPrompt: prompt,
		}, nil

	case models.OperatorStructuredOutput:
		return operator.StructuredInput{
			RawData:      rowDataByTitle(sctx),
			OutputSchema: mapSetting(settings, "output_schema"),
			PromptText:   prompt,
		}, nil

	case models.OperatorFunctionCalling:
		fns, err := functionDeclarations(settings)
		if err != nil {
			return nil, err
		}
		return operator.FunctionCallInput{
			PromptText:         prompt,
			AvailableFunctions: fns,
			ToolConfig:         mapSetting(settings, "tool_config"),
		}, nil

	case models.OperatorSimilarityExpansion:
		return operator.SimilarityInput{
			Concept:       prompt,
			ExpansionType: stringSetting(settings, "expansion_type"),
			MaxResults:    intSetting(settings, "max_results"),
			Domain:        stringSetting(settings, "domain"),
			Context:       content,
		}, nil

	case models.OperatorAcademicSearch:
		return operator.AcademicInput{
			Topic:          prompt,
			ResearchField:  stringSetting(settings, "research_field"),
			YearRange:      stringSetting(settings, "year_range"),
			MinCitations:   intSetting(settings, "min_citations"),
			IncludeReviews: boolSetting(settings, "include_reviews"),
			AuthorFilter:   stringSetting(settings, "author_filter"),
			MaxResults:     intSetting(settings, "max_results"),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %s", operator.ErrUnknownOperator, op)
	}
}

// rowDataByTitle keys the current row values by column title for
// structured conversion.
func rowDataByTitle(sctx *models.SheetContext) map[string]string {
	out := make(map[string]string, len(sctx.RowData))
	for i := range sctx.Columns {
		c := &sctx.Columns[i]
		if val, ok := sctx.RowData[c.Position]; ok && val != "" {
			out[c.Title] = val
		}
	}
	return out
}

// functionDeclarations decodes the column's declared functions from its
// operator settings.
func functionDeclarations(settings map[string]interface{}) ([]operator.FunctionDeclaration, error) {
	raw, ok := settings["functions"]
	if !ok {
		return nil, fmt.Errorf("%w: function_calling column declares no functions", operator.ErrInvalidInput)
	}
	// Round-trip through JSON: the settings map came out of a JSON column.
	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: unreadable function declarations: %v", operator.ErrInvalidInput, err)
	}
	var fns []operator.FunctionDeclaration
	if err := json.Unmarshal(encoded, &fns); err != nil {
		return nil, fmt.Errorf("%w: malformed function declarations: %v", operator.ErrInvalidInput, err)
	}
	return fns, nil
}

// MergeSettings overlays manual-trigger parameters onto the column's
// operator config. Parameters win.
func MergeSettings(columnConfig, parameters map[string]interface{}) map[string]interface{} {
	if len(parameters) == 0 {
		return columnConfig
	}
	merged := make(map[string]interface{}, len(columnConfig)+len(parameters))
	for k, v := range columnConfig {
		merged[k] = v
	}
	for k, v := range parameters {
		merged[k] = v
	}
	return merged
}

func intSetting(settings map[string]interface{}, key string) int {
	switch v := settings[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func stringSetting(settings map[string]interface{}, key string) string {
	if s, ok := settings[key].(string); ok {
		return s
	}
	return ""
}

func boolSetting(settings map[string]interface{}, key string) bool {
	if b, ok := settings[key].(bool); ok {
		return b
	}
	return false
}

func mapSetting(settings map[string]interface{}, key string) map[string]interface{} {
	if m, ok := settings[key].(map[string]interface{}); ok {
		return m
	}
	return nil
}
