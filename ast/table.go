package ast

import "github.com/Konsultn-Engineering/sqlgen/utils"

// Table is a table reference. Rendering yields schema.name with each segment
// quoted independently, or the bare name when Schema is empty. Alias adds an
// AS clause where the surrounding statement allows one.
type Table struct {
	Schema string
	Name   string
	Alias  string
}

func NewTable(name string) Table {
	return Table{Name: name}
}

func (t *Table) Type() NodeType         { return NodeTable }
func (t *Table) Accept(v Visitor) error { return v.VisitTable(t) }
func (t *Table) Fingerprint() uint64 {
	return utils.FingerprintString("table:" + t.Schema + "." + t.Name + "." + t.Alias)
}
