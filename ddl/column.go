package ddl

import (
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/sqlgen/ast"
	"github.com/Konsultn-Engineering/sqlgen/dialect"
)

// ColumnTypeChange converts a column to a named enum type built from
// NewEnumValues.
type ColumnTypeChange struct {
	Column        string
	NewEnumValues []string
}

// ChangeColumnQuery renders the statement batch converting each changed
// column to its enum type. Per column, four statements in fixed order:
// SET NOT NULL, DROP DEFAULT, a duplicate-tolerant CREATE TYPE wrapped in a
// DO block that swallows duplicate_object, and ALTER COLUMN TYPE with an
// explicit cast. Batches for multiple columns concatenate in declaration
// order with no separator beyond each statement's terminator.
func ChangeColumnQuery(d dialect.Dialect, table ast.Table, changes []ColumnTypeChange) (string, error) {
	var sb strings.Builder
	for _, change := range changes {
		if change.Column == "" {
			return "", fmt.Errorf("sqlgen: column type change requires a column name")
		}
		if len(change.NewEnumValues) == 0 {
			return "", fmt.Errorf("sqlgen: column %q requires at least one enum value", change.Column)
		}

		tableRef := qualifiedTable(d, table)
		column := d.QuoteIdentifier(change.Column)
		enumType := d.QuoteIdentifier(enumTypeName(table.Name, change.Column))

		sb.WriteString("ALTER TABLE ")
		sb.WriteString(tableRef)
		sb.WriteString(" ALTER COLUMN ")
		sb.WriteString(column)
		sb.WriteString(" SET NOT NULL;")

		sb.WriteString("ALTER TABLE ")
		sb.WriteString(tableRef)
		sb.WriteString(" ALTER COLUMN ")
		sb.WriteString(column)
		sb.WriteString(" DROP DEFAULT;")

		sb.WriteString("DO $$ BEGIN CREATE TYPE ")
		sb.WriteString(enumType)
		sb.WriteString(" AS ENUM(")
		for i, val := range change.NewEnumValues {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(d.QuoteString(val))
		}
		sb.WriteString("); EXCEPTION WHEN duplicate_object THEN null; END $$;")

		sb.WriteString("ALTER TABLE ")
		sb.WriteString(tableRef)
		sb.WriteString(" ALTER COLUMN ")
		sb.WriteString(column)
		sb.WriteString(" TYPE ")
		sb.WriteString(enumType)
		sb.WriteString(" USING (")
		sb.WriteString(column)
		sb.WriteString("::text::")
		sb.WriteString(enumType)
		sb.WriteString(");")
	}
	return sb.String(), nil
}

func enumTypeName(table, column string) string {
	return "enum_" + table + "_" + column
}

func qualifiedTable(d dialect.Dialect, t ast.Table) string {
	if t.Schema != "" {
		return d.QuoteIdentifier(t.Schema) + "." + d.QuoteIdentifier(t.Name)
	}
	return d.QuoteIdentifier(t.Name)
}
