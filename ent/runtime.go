// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rowboat-dev/rowboat/ent/cell"
	"github.com/rowboat-dev/rowboat/ent/cellaudit"
	"github.com/rowboat-dev/rowboat/ent/cellstatus"
	"github.com/rowboat-dev/rowboat/ent/column"
	"github.com/rowboat-dev/rowboat/ent/fillevent"
	"github.com/rowboat-dev/rowboat/ent/schema"
	"github.com/rowboat-dev/rowboat/ent/sheet"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	cellFields := schema.Cell{}.Fields()
	_ = cellFields
	// cellDescUpdatedAt is the schema descriptor for updated_at field.
	cellDescUpdatedAt := cellFields[5].Descriptor()
	// cell.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cell.DefaultUpdatedAt = cellDescUpdatedAt.Default.(func() time.Time)
	// cell.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cell.UpdateDefaultUpdatedAt = cellDescUpdatedAt.UpdateDefault.(func() time.Time)
	cellauditFields := schema.CellAudit{}.Fields()
	_ = cellauditFields
	// cellauditDescAppliedAt is the schema descriptor for applied_at field.
	cellauditDescAppliedAt := cellauditFields[6].Descriptor()
	// cellaudit.DefaultAppliedAt holds the default value on creation for the applied_at field.
	cellaudit.DefaultAppliedAt = cellauditDescAppliedAt.Default.(func() time.Time)
	cellstatusFields := schema.CellStatus{}.Fields()
	_ = cellstatusFields
	// cellstatusDescUpdatedAt is the schema descriptor for updated_at field.
	cellstatusDescUpdatedAt := cellstatusFields[7].Descriptor()
	// cellstatus.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	cellstatus.DefaultUpdatedAt = cellstatusDescUpdatedAt.Default.(func() time.Time)
	// cellstatus.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	cellstatus.UpdateDefaultUpdatedAt = cellstatusDescUpdatedAt.UpdateDefault.(func() time.Time)
	columnFields := schema.Column{}.Fields()
	_ = columnFields
	// columnDescRequired is the schema descriptor for required field.
	columnDescRequired := columnFields[12].Descriptor()
	// column.DefaultRequired holds the default value on creation for the required field.
	column.DefaultRequired = columnDescRequired.Default.(bool)
	filleventFields := schema.FillEvent{}.Fields()
	_ = filleventFields
	// filleventDescRetryCount is the schema descriptor for retry_count field.
	filleventDescRetryCount := filleventFields[7].Descriptor()
	// fillevent.DefaultRetryCount holds the default value on creation for the retry_count field.
	fillevent.DefaultRetryCount = filleventDescRetryCount.Default.(int)
	// filleventDescCreatedAt is the schema descriptor for created_at field.
	filleventDescCreatedAt := filleventFields[10].Descriptor()
	// fillevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	fillevent.DefaultCreatedAt = filleventDescCreatedAt.Default.(func() time.Time)
	sheetFields := schema.Sheet{}.Fields()
	_ = sheetFields
	// sheetDescCreatedAt is the schema descriptor for created_at field.
	sheetDescCreatedAt := sheetFields[3].Descriptor()
	// sheet.DefaultCreatedAt holds the default value on creation for the created_at field.
	sheet.DefaultCreatedAt = sheetDescCreatedAt.Default.(func() time.Time)
}
