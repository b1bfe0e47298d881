package ast

import "fmt"

// SQL operator text as rendered into statements.
const (
	OpEqual              = "="
	OpNotEqual           = "!="
	OpNotEqualAlt        = "<>"
	OpLessThan           = "<"
	OpLessThanOrEqual    = "<="
	OpGreaterThan        = ">"
	OpGreaterThanOrEqual = ">="
)

// Logical operators.
const (
	OpAnd = "AND"
	OpOr  = "OR"
	OpNot = "NOT"
)

// Pattern matching.
const (
	OpLike     = "LIKE"
	OpNotLike  = "NOT LIKE"
	OpILike    = "ILIKE"
	OpNotILike = "NOT ILIKE"
)

// Membership.
const (
	OpIn    = "IN"
	OpNotIn = "NOT IN"
)

// Null tests.
const (
	OpIs    = "IS"
	OpIsNot = "IS NOT"
)

// Array and range operators (PostgreSQL).
const (
	OpContains    = "@>"
	OpContainedBy = "<@"
	OpOverlap     = "&&"
)

// JSON operators (PostgreSQL).
const (
	OpJSONExtract     = "->"
	OpJSONExtractText = "->>"
)

var knownOperators = map[string]struct{}{
	OpEqual: {}, OpNotEqual: {}, OpNotEqualAlt: {},
	OpLessThan: {}, OpLessThanOrEqual: {}, OpGreaterThan: {}, OpGreaterThanOrEqual: {},
	OpAnd: {}, OpOr: {}, OpNot: {},
	OpLike: {}, OpNotLike: {}, OpILike: {}, OpNotILike: {},
	OpIn: {}, OpNotIn: {},
	OpIs: {}, OpIsNot: {},
	OpContains: {}, OpContainedBy: {}, OpOverlap: {},
	OpJSONExtract: {}, OpJSONExtractText: {},
}

// KnownOperator reports whether op is a renderable SQL operator. Renderers
// reject anything else before emitting a single byte of the statement.
func KnownOperator(op string) bool {
	_, ok := knownOperators[op]
	return ok
}

var symbolOperators = map[string]string{
	"eq":          OpEqual,
	"ne":          OpNotEqual,
	"lt":          OpLessThan,
	"lte":         OpLessThanOrEqual,
	"gt":          OpGreaterThan,
	"gte":         OpGreaterThanOrEqual,
	"like":        OpLike,
	"notLike":     OpNotLike,
	"iLike":       OpILike,
	"notILike":    OpNotILike,
	"in":          OpIn,
	"notIn":       OpNotIn,
	"is":          OpIs,
	"isNot":       OpIsNot,
	"contains":    OpContains,
	"containedBy": OpContainedBy,
	"overlap":     OpOverlap,
}

// OperatorSQL maps a symbolic comparison name to its SQL operator text.
// SQL operator text itself is also accepted, so descriptors may carry either.
func OperatorSQL(symbol string) (string, error) {
	if op, ok := symbolOperators[symbol]; ok {
		return op, nil
	}
	if KnownOperator(symbol) {
		return symbol, nil
	}
	return "", fmt.Errorf("sqlgen: unknown operator %q", symbol)
}

// containmentOperators force an element-type cast on an uncast array operand.
var containmentOperators = map[string]struct{}{
	OpContains: {}, OpContainedBy: {}, OpOverlap: {},
}

func ContainmentOperator(op string) bool {
	_, ok := containmentOperators[op]
	return ok
}
