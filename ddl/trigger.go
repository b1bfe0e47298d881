// Package ddl renders data-definition statements. Each kind is a stateless
// template over its definition record; nothing here keeps state between
// calls.
package ddl

import (
	"fmt"
	"strings"

	"github.com/Konsultn-Engineering/sqlgen/ast"
	"github.com/Konsultn-Engineering/sqlgen/dialect"
)

type Timing string

const (
	Before          Timing = "before"
	After           Timing = "after"
	InsteadOf       Timing = "instead_of"
	AfterConstraint Timing = "after_constraint"
)

type Event string

const (
	OnInsert Event = "insert"
	OnUpdate Event = "update"
	OnDelete Event = "delete"
)

// FunctionArg is one ordered name/type pair of the trigger function call.
type FunctionArg struct {
	Name string
	Type string
}

type TriggerDefinition struct {
	Table        ast.Table
	Name         string
	Timing       Timing
	Events       []Event
	FunctionName string
	FunctionArgs []FunctionArg

	// Options are verbatim clause strings (e.g. "FOR EACH ROW") positioned
	// between the table reference and the EXECUTE call, in order.
	Options []string
}

var timingKeywords = map[Timing]string{
	Before:    "BEFORE",
	After:     "AFTER",
	InsteadOf: "INSTEAD OF",
	// after_constraint also switches the statement verb to the
	// constraint-trigger form.
	AfterConstraint: "AFTER",
}

var eventKeywords = map[Event]string{
	OnInsert: "INSERT",
	OnUpdate: "UPDATE",
	OnDelete: "DELETE",
}

// CreateTrigger renders the CREATE TRIGGER statement for def. The event list
// is OR-joined uppercase in the given order.
func CreateTrigger(d dialect.Dialect, def TriggerDefinition) (string, error) {
	timing, ok := timingKeywords[def.Timing]
	if !ok {
		return "", fmt.Errorf("sqlgen: unsupported trigger timing %q", def.Timing)
	}
	if def.Name == "" {
		return "", fmt.Errorf("sqlgen: trigger requires a name")
	}
	if len(def.Events) == 0 {
		return "", fmt.Errorf("sqlgen: trigger requires at least one event")
	}

	events := make([]string, len(def.Events))
	for i, e := range def.Events {
		kw, ok := eventKeywords[e]
		if !ok {
			return "", fmt.Errorf("sqlgen: unsupported trigger event %q", e)
		}
		events[i] = kw
	}

	var sb strings.Builder
	sb.WriteString("CREATE ")
	if def.Timing == AfterConstraint {
		sb.WriteString("CONSTRAINT ")
	}
	sb.WriteString("TRIGGER ")
	sb.WriteString(d.QuoteIdentifier(def.Name))
	sb.WriteByte(' ')
	sb.WriteString(timing)
	sb.WriteByte(' ')
	sb.WriteString(strings.Join(events, " OR "))
	sb.WriteString(" ON ")
	writeTable(&sb, d, def.Table)

	for _, opt := range def.Options {
		sb.WriteByte(' ')
		sb.WriteString(opt)
	}

	sb.WriteString(" EXECUTE PROCEDURE ")
	sb.WriteString(def.FunctionName)
	sb.WriteByte('(')
	for i, arg := range def.FunctionArgs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(arg.Name)
		sb.WriteByte(' ')
		sb.WriteString(arg.Type)
	}
	sb.WriteString(");")
	return sb.String(), nil
}

// DropTrigger renders the DROP TRIGGER statement. The cascade mode is fixed.
func DropTrigger(d dialect.Dialect, table ast.Table, name string) string {
	var sb strings.Builder
	sb.WriteString("DROP TRIGGER ")
	sb.WriteString(d.QuoteIdentifier(name))
	sb.WriteString(" ON ")
	writeTable(&sb, d, table)
	sb.WriteString(" CASCADE;")
	return sb.String()
}

// RenameTrigger renders the ALTER TRIGGER ... RENAME TO statement.
func RenameTrigger(d dialect.Dialect, table ast.Table, oldName, newName string) string {
	var sb strings.Builder
	sb.WriteString("ALTER TRIGGER ")
	sb.WriteString(d.QuoteIdentifier(oldName))
	sb.WriteString(" ON ")
	writeTable(&sb, d, table)
	sb.WriteString(" RENAME TO ")
	sb.WriteString(d.QuoteIdentifier(newName))
	sb.WriteByte(';')
	return sb.String()
}

func writeTable(sb *strings.Builder, d dialect.Dialect, t ast.Table) {
	if t.Schema != "" {
		sb.WriteString(d.QuoteIdentifier(t.Schema))
		sb.WriteByte('.')
	}
	sb.WriteString(d.QuoteIdentifier(t.Name))
}
