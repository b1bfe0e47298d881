package ast

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// NewValue coerces a Go value into its expression node. Nodes pass through
// unchanged, so descriptors may freely mix plain values with Raw fragments
// and function calls.
func NewValue(v any) Node {
	switch val := v.(type) {
	case nil:
		return &Null{}
	case Node:
		return val
	case bool:
		return &Bool{V: val}
	case int:
		return &Number{Val: val, Text: strconv.FormatInt(int64(val), 10)}
	case int8:
		return &Number{Val: val, Text: strconv.FormatInt(int64(val), 10)}
	case int16:
		return &Number{Val: val, Text: strconv.FormatInt(int64(val), 10)}
	case int32:
		return &Number{Val: val, Text: strconv.FormatInt(int64(val), 10)}
	case int64:
		return &Number{Val: val, Text: strconv.FormatInt(val, 10)}
	case uint:
		return &Number{Val: val, Text: strconv.FormatUint(uint64(val), 10)}
	case uint8:
		return &Number{Val: val, Text: strconv.FormatUint(uint64(val), 10)}
	case uint16:
		return &Number{Val: val, Text: strconv.FormatUint(uint64(val), 10)}
	case uint32:
		return &Number{Val: val, Text: strconv.FormatUint(uint64(val), 10)}
	case uint64:
		return &Number{Val: val, Text: strconv.FormatUint(val, 10)}
	case float32:
		return &Number{Val: val, Text: strconv.FormatFloat(float64(val), 'f', -1, 32)}
	case float64:
		return &Number{Val: val, Text: strconv.FormatFloat(val, 'f', -1, 64)}
	case string:
		return &Str{V: val}
	case []byte:
		return &Bytes{V: val}
	case time.Time:
		return &Time{V: val}
	case uuid.UUID:
		return &Str{V: val.String()}
	case ulid.ULID:
		return &Str{V: val.String()}
	case []string:
		elems := make([]Node, len(val))
		for i, e := range val {
			elems[i] = &Str{V: e}
		}
		return &Array{Elems: elems}
	case []any:
		elems := make([]Node, len(val))
		for i, e := range val {
			elems[i] = NewValue(e)
		}
		return &Array{Elems: elems}
	default:
		return &Str{V: fmt.Sprint(val)}
	}
}

// NewTypedArray builds an array expression with a pinned element-type cast,
// rendered as ARRAY[...]::<cast>[].
func NewTypedArray(cast string, values ...any) *Array {
	elems := make([]Node, len(values))
	for i, v := range values {
		elems[i] = NewValue(v)
	}
	return &Array{Elems: elems, Cast: cast}
}

// Col builds a column reference. A dotted name qualifies the column with the
// segment before the first dot.
func Col(name string) *Column {
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return &Column{Table: name[:i], Name: name[i+1:]}
	}
	return &Column{Name: name}
}

func Fn(name string, args ...Node) *Function {
	return &Function{Name: name, Args: args}
}

func RawSQL(sql string) *Raw {
	return &Raw{SQL: sql}
}

// Cond builds a single comparison leaf. op may be SQL operator text or a
// symbolic name accepted by OperatorSQL; validation happens at render time so
// descriptor construction never fails.
func Cond(column, op string, value any) Node {
	if sql, err := OperatorSQL(op); err == nil {
		op = sql
	}
	return &BinaryExpr{Left: Col(column), Operator: op, Right: NewValue(value)}
}

func Eq(column string, value any) Node {
	return Cond(column, OpEqual, value)
}

func And(left, right Node) Node {
	return &BinaryExpr{Left: left, Operator: OpAnd, Right: right}
}

func Or(left, right Node) Node {
	return &Grouped{Expr: &BinaryExpr{Left: left, Operator: OpOr, Right: right}}
}

// Where combines condition leaves into an AND-joined predicate tree.
func Where(conds ...Node) *WhereClause {
	return &WhereClause{Conds: conds}
}

// WhereRecord turns a flat ordered mapping into implicit-equality conditions
// AND-joined in record order.
func WhereRecord(rec *Record) *WhereClause {
	w := &WhereClause{Conds: make([]Node, 0, rec.Len())}
	for _, f := range rec.Fields() {
		w.Conds = append(w.Conds, &BinaryExpr{
			Left:     &Column{Name: f.Column},
			Operator: OpEqual,
			Right:    f.Value,
		})
	}
	return w
}
