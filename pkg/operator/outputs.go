package operator

import "time"

// SearchResult is one web search hit.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`

	// IsRedirect marks vendor grounding/redirect URLs the adapter could
	// not resolve. The wrapper never writes these.
	IsRedirect bool `json:"is_redirect,omitempty"`
}

// SearchOutput is the google_search operator output.
type SearchOutput struct {
	Results          []SearchResult `json:"results"`
	WebSearchQueries []string       `json:"web_search_queries,omitempty"`
	Timestamp        time.Time      `json:"timestamp"`
}

func (SearchOutput) isOutput() {}

// URLData is extracted content for one URL.
type URLData struct {
	URL      string                 `json:"url"`
	Content  string                 `json:"content"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// URLContextOutput is the url_context operator output.
type URLContextOutput struct {
	EnrichedData []URLData `json:"enriched_data"`
	Summary      string    `json:"summary,omitempty"`
}

func (URLContextOutput) isOutput() {}

// StructuredOutput is the structured_output operator output.
type StructuredOutput struct {
	StructuredData map[string]interface{} `json:"structured_data"`
	Confidence     float64                `json:"confidence"`
	RawResponse    string                 `json:"raw_response,omitempty"`
}

func (StructuredOutput) isOutput() {}

// FunctionCall is one requested function invocation.
type FunctionCall struct {
	Name string                 `json:"name"`
	Args map[string]interface{} `json:"args,omitempty"`
}

// FunctionCallOutput is the function_calling operator output. The
// operator never executes calls; RequiresExecution tells the caller an
// external execution registry is needed.
type FunctionCallOutput struct {
	FunctionCalls     []FunctionCall `json:"function_calls"`
	Response          string         `json:"response,omitempty"`
	RequiresExecution bool           `json:"requires_execution"`
}

func (FunctionCallOutput) isOutput() {}

// SimilarityOutput is the similarity_expansion operator output.
type SimilarityOutput struct {
	OriginalConcept string   `json:"original_concept"`
	SimilarTerms    []string `json:"similar_terms"`
	Synonyms        []string `json:"synonyms,omitempty"`
	RelatedConcepts []string `json:"related_concepts,omitempty"`
	SearchTerms     []string `json:"search_terms,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	Confidence      float64  `json:"confidence"`
	Reasoning       string   `json:"reasoning,omitempty"`
}

func (SimilarityOutput) isOutput() {}

// AcademicResult is one academic search hit with publication signals.
type AcademicResult struct {
	SearchResult
	EstimatedCitations int    `json:"estimated_citations,omitempty"`
	PublicationYear    int    `json:"publication_year,omitempty"`
	Journal            string `json:"journal,omitempty"`
	IsPdfDirect        bool   `json:"is_pdf_direct,omitempty"`
	IsHighImpact       bool   `json:"is_high_impact,omitempty"`
	AcademicSource     string `json:"academic_source,omitempty"`
}

// AcademicOutput is the academic_search operator output.
type AcademicOutput struct {
	Results          []SearchResult   `json:"results"`
	AcademicResults  []AcademicResult `json:"academic_results"`
	TotalPdfsFound   int              `json:"total_pdfs_found"`
	AverageCitations float64          `json:"average_citations,omitempty"`
}

func (AcademicOutput) isOutput() {}
