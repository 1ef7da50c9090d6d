package operator

// SearchInput is the google_search operator input.
type SearchInput struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// Prompt returns the prompt-like field.
func (i SearchInput) Prompt() string { return i.Query }

// WithPrompt returns a copy with the prompt-like field replaced.
func (i SearchInput) WithPrompt(p string) Input {
	i.Query = p
	return i
}

// URLContextInput is the url_context operator input.
type URLContextInput struct {
	URLs             []string `json:"urls"`
	ExtractionPrompt string   `json:"extraction_prompt,omitempty"`
}

// Prompt returns the prompt-like field.
func (i URLContextInput) Prompt() string { return i.ExtractionPrompt }

// WithPrompt returns a copy with the prompt-like field replaced.
func (i URLContextInput) WithPrompt(p string) Input {
	i.ExtractionPrompt = p
	return i
}

// StructuredInput is the structured_output operator input.
type StructuredInput struct {
	RawData      interface{}            `json:"raw_data"`
	OutputSchema map[string]interface{} `json:"output_schema,omitempty"`
	PromptText   string                 `json:"prompt,omitempty"`
}

// Prompt returns the prompt-like field.
func (i StructuredInput) Prompt() string { return i.PromptText }

// WithPrompt returns a copy with the prompt-like field replaced.
func (i StructuredInput) WithPrompt(p string) Input {
	i.PromptText = p
	return i
}

// FunctionDeclaration describes a callable function to the model.
type FunctionDeclaration struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

// FunctionCallInput is the function_calling operator input.
type FunctionCallInput struct {
	PromptText         string                 `json:"prompt"`
	AvailableFunctions []FunctionDeclaration  `json:"available_functions"`
	ToolConfig         map[string]interface{} `json:"tool_config,omitempty"`
}

// Prompt returns the prompt-like field.
func (i FunctionCallInput) Prompt() string { return i.PromptText }

// WithPrompt returns a copy with the prompt-like field replaced.
func (i FunctionCallInput) WithPrompt(p string) Input {
	i.PromptText = p
	return i
}

// SimilarityInput is the similarity_expansion operator input.
type SimilarityInput struct {
	Concept       string `json:"concept"`
	ExpansionType string `json:"expansion_type,omitempty"`
	MaxResults    int    `json:"max_results,omitempty"`
	Domain        string `json:"domain,omitempty"`
	Context       string `json:"context,omitempty"`
}

// Prompt returns the prompt-like field.
func (i SimilarityInput) Prompt() string { return i.Concept }

// WithPrompt returns a copy with the prompt-like field replaced.
func (i SimilarityInput) WithPrompt(p string) Input {
	i.Concept = p
	return i
}

// AcademicInput is the academic_search operator input.
type AcademicInput struct {
	Topic          string `json:"topic"`
	ResearchField  string `json:"research_field,omitempty"`
	YearRange      string `json:"year_range,omitempty"`
	MinCitations   int    `json:"min_citations,omitempty"`
	IncludeReviews bool   `json:"include_reviews,omitempty"`
	AuthorFilter   string `json:"author_filter,omitempty"`
	MaxResults     int    `json:"max_results,omitempty"`
}

// Prompt returns the prompt-like field.
func (i AcademicInput) Prompt() string { return i.Topic }

// WithPrompt returns a copy with the prompt-like field replaced.
func (i AcademicInput) WithPrompt(p string) Input {
	i.Topic = p
	return i
}
