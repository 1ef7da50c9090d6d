// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Cell is the predicate function for cell builders.
type Cell func(*sql.Selector)

// CellAudit is the predicate function for cellaudit builders.
type CellAudit func(*sql.Selector)

// CellStatus is the predicate function for cellstatus builders.
type CellStatus func(*sql.Selector)

// Column is the predicate function for column builders.
type Column func(*sql.Selector)

// FillEvent is the predicate function for fillevent builders.
type FillEvent func(*sql.Selector)

// Sheet is the predicate function for sheet builders.
type Sheet func(*sql.Selector)
