package validator

import (
	"fmt"
	"strings"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

// dataTypeRequirements phrases each format contract for the model.
var dataTypeRequirements = map[models.DataType]string{
	models.DataTypeShortText: "a short phrase (under 100 characters), no explanations",
	models.DataTypeLongText:  "a detailed text answer (at least 10 characters)",
	models.DataTypeURL:       "a single full URL starting with https://",
	models.DataTypeEmail:     "a single lowercase email address",
	models.DataTypeNumber:    "a plain number, digits only",
	models.DataTypeCurrency:  "a currency amount, optionally with a symbol ($, €, £, ¥, ₹)",
	models.DataTypeDate:      "a date formatted as YYYY-MM-DD",
	models.DataTypeBoolean:   "exactly Yes or No",
	models.DataTypeList:      "comma-separated items",
	models.DataTypePerson:    "a person's full name",
	models.DataTypeCompany:   "an organization name",
	models.DataTypeJSON:      "a single well-formed JSON document",
}

// FormatRequirement phrases the format contract of a data type for
// inclusion in prompts.
func FormatRequirement(dt models.DataType) string {
	if req, ok := dataTypeRequirements[dt]; ok {
		return req
	}
	return "a plain text value"
}

// GenerateImprovementPrompt builds the retry prompt: a RETRY header
// listing what went wrong and how to fix it, the column's format
// requirements, then the original prompt verbatim.
func GenerateImprovementPrompt(originalPrompt string, col *models.ColumnSpec, res *ValidationResult) string {
	var b strings.Builder

	b.WriteString("RETRY: the previous answer did not meet the column's format contract.\n")

	if len(res.Issues) > 0 {
		b.WriteString("ISSUES:\n")
		for _, is := range res.Issues {
			fmt.Fprintf(&b, "- %s\n", is.Message)
		}
	}
	if len(res.Suggestions) > 0 {
		b.WriteString("SUGGESTIONS:\n")
		for _, s := range res.Suggestions {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	b.WriteString("REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- The value must be %s.\n", FormatRequirement(col.DataType))
	if col.MaxLength > 0 {
		fmt.Fprintf(&b, "- Maximum length: %d characters.\n", col.MaxLength)
	}
	if col.MinLength > 0 {
		fmt.Fprintf(&b, "- Minimum length: %d characters.\n", col.MinLength)
	}
	if len(col.Examples) > 0 {
		fmt.Fprintf(&b, "- Examples of acceptable values: %s\n", strings.Join(col.Examples, "; "))
	}

	b.WriteString("\n")
	b.WriteString(originalPrompt)
	return b.String()
}
