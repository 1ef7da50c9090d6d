package validator

import (
	"fmt"

	"github.com/rowboat-dev/rowboat/pkg/models"
)

// expectedPairings lists the data types each operator produces
// naturally. Anything else still runs; the mismatch only becomes a
// compatibility note on the contextual prompt.
var expectedPairings = map[models.OperatorType][]models.DataType{
	models.OperatorGoogleSearch: {
		models.DataTypeShortText, models.DataTypeLongText, models.DataTypeURL,
		models.DataTypePerson, models.DataTypeCompany,
	},
	models.OperatorURLContext: {
		models.DataTypeShortText, models.DataTypeLongText, models.DataTypeEmail,
		models.DataTypeNumber, models.DataTypeList,
	},
	models.OperatorStructuredOutput: {
		models.DataTypeJSON, models.DataTypeList, models.DataTypeNumber,
		models.DataTypeCurrency, models.DataTypeDate, models.DataTypeBoolean,
	},
	models.OperatorFunctionCalling: {
		models.DataTypeShortText, models.DataTypeJSON, models.DataTypeNumber,
		models.DataTypeBoolean,
	},
	models.OperatorSimilarityExpansion: {
		models.DataTypeList, models.DataTypeShortText,
	},
	models.OperatorAcademicSearch: {
		models.DataTypeURL, models.DataTypeShortText, models.DataTypeLongText,
	},
}

// CompatibilityNotes returns human-readable warnings for unusual
// (operator, dataType) combinations. An empty slice means the pairing
// is expected. Notes never block dispatch.
func CompatibilityNotes(op models.OperatorType, dt models.DataType) []string {
	expected, ok := expectedPairings[op]
	if !ok {
		return nil
	}
	for _, e := range expected {
		if e == dt {
			return nil
		}
	}

	notes := []string{
		fmt.Sprintf("operator %s does not usually produce %s values; format the result accordingly", op, dt),
	}
	switch {
	case dt == models.DataTypeURL && op != models.OperatorGoogleSearch && op != models.OperatorAcademicSearch:
		notes = append(notes, "return a single full https:// URL, nothing else")
	case dt == models.DataTypeJSON && op != models.OperatorStructuredOutput:
		notes = append(notes, "return a single well-formed JSON document")
	case dt == models.DataTypeList && op != models.OperatorSimilarityExpansion && op != models.OperatorStructuredOutput:
		notes = append(notes, "return comma-separated items")
	}
	return notes
}
