// Package wrapper implements everything around an operator call that is
// not the call itself: contextual prompt construction, result
// extraction, sanitization, validation, the cell write with its audit
// record, and successor event enqueueing.
package wrapper

import (
	"fmt"
	"strings"

	"github.com/rowboat-dev/rowboat/pkg/models"
	"github.com/rowboat-dev/rowboat/pkg/validator"
)

// scientificFocus is prepended for sheets created from the scientific
// template.
const scientificFocus = `SCIENTIFIC FOCUS:
- Prefer peer-reviewed sources over general web content.
- Prefer recent publications when multiple sources qualify.
- Prefer direct PDF links to papers over landing pages.
- Cite specific papers, journals, or datasets rather than summaries of summaries.`

// BuildContextualPrompt produces the deterministic prompt for filling
// the target column of the given sheet context. Section order is fixed:
// GOAL, scientific focus, COLUMN STRUCTURE, FORMAT REQUIREMENTS,
// COMPATIBILITY NOTES, TASK.
func BuildContextualPrompt(sctx *models.SheetContext, op models.OperatorType) string {
	target := sctx.TargetColumn()
	if target == nil {
		return ""
	}

	var b strings.Builder

	if sctx.SystemPrompt != "" {
		fmt.Fprintf(&b, "GOAL: %s\n\n", sctx.SystemPrompt)
	}

	if sctx.TemplateType == models.TemplateScientific {
		b.WriteString(scientificFocus)
		b.WriteString("\n\n")
	}

	b.WriteString("COLUMN STRUCTURE:\n")
	for i := range sctx.Columns {
		c := &sctx.Columns[i]
		marker := "  "
		if c.Position == target.Position {
			marker = "→ "
		}
		fmt.Fprintf(&b, "%s%d. %s", marker, c.Position, c.Title)
		if val, ok := sctx.RowData[c.Position]; ok && val != "" {
			fmt.Fprintf(&b, " = %q", val)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("FORMAT REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- The value must be %s.\n", validator.FormatRequirement(target.DataType))
	if target.MaxLength > 0 {
		fmt.Fprintf(&b, "- Maximum length: %d characters.\n", target.MaxLength)
	}
	if target.MinLength > 0 {
		fmt.Fprintf(&b, "- Minimum length: %d characters.\n", target.MinLength)
	}
	if len(target.Examples) > 0 {
		fmt.Fprintf(&b, "- Examples: %s\n", strings.Join(target.Examples, "; "))
	}
	if target.Description != "" {
		fmt.Fprintf(&b, "- Column description: %s\n", target.Description)
	}
	if target.Prompt != "" {
		fmt.Fprintf(&b, "- Column instructions: %s\n", target.Prompt)
	}
	b.WriteString("\n")

	if notes := validator.CompatibilityNotes(op, target.DataType); len(notes) > 0 {
		b.WriteString("COMPATIBILITY NOTES:\n")
		for _, n := range notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "TASK: Fill %q based on the data in this row.", target.Title)
	return b.String()
}
