package visitor

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Konsultn-Engineering/sqlgen/ast"
	"github.com/Konsultn-Engineering/sqlgen/cache"
	"github.com/Konsultn-Engineering/sqlgen/dialect"
)

var visitorPool = sync.Pool{
	New: func() any {
		return &SQLVisitor{}
	},
}

// SQLVisitor renders an AST into SQL text plus a positional bind mapping.
// Statement nodes choose the encoding mode: SELECT and bulk INSERT render
// every value inline, single-row INSERT/UPDATE/DELETE bind values. Raw
// fragments, column references, and function calls are emitted verbatim in
// either mode.
//
// One visitor serves one statement call and is not safe for concurrent use;
// the pool hands each call its own instance.
type SQLVisitor struct {
	sb      strings.Builder
	binds   *Binds
	dialect dialect.Dialect
	qcache  cache.QueryCache

	inline bool
	// pendingCast is set by a containment operator for the array operand that
	// follows it, and consumed by VisitArray.
	pendingCast string
}

func NewSQLVisitor(d dialect.Dialect, q cache.QueryCache) *SQLVisitor {
	v := visitorPool.Get().(*SQLVisitor)
	v.dialect = d
	v.qcache = q
	v.sb.Reset()
	if v.binds == nil {
		v.binds = NewBinds(d)
	} else {
		v.binds.reset(d)
	}
	v.inline = false
	v.pendingCast = ""
	return v
}

func (v *SQLVisitor) Release() {
	v.dialect = nil
	v.qcache = nil
	v.sb.Reset()
	visitorPool.Put(v)
}

// SQL returns the text rendered so far.
func (v *SQLVisitor) SQL() string { return v.sb.String() }

// Binds returns the bind accumulator owned by this call.
func (v *SQLVisitor) Binds() *Binds { return v.binds }

// Build renders root and returns the SQL text with the positional bind
// values. SELECT statements are bind-free and their fingerprints cover the
// full descriptor, so they are served from and stored into the query cache.
func (v *SQLVisitor) Build(root ast.Node) (string, []any, error) {
	cacheable := v.qcache != nil && root.Type() == ast.NodeSelect

	var fp uint64
	if cacheable {
		fp = root.Fingerprint()
		if cached, ok := v.qcache.Get(fp); ok {
			return cached.SQL, nil, nil
		}
	}

	v.sb.Reset()
	v.binds.reset(v.dialect)

	if err := root.Accept(v); err != nil {
		return "", nil, err
	}

	sql := v.sb.String()
	if v.binds.Len() == 0 {
		if cacheable {
			v.qcache.Set(fp, &cache.CachedQuery{SQL: sql})
		}
		return sql, nil, nil
	}

	// The visitor is pooled; hand the caller its own copy of the values.
	values := append([]any(nil), v.binds.Values()...)
	return sql, values, nil
}

// renderInline evaluates n with inline encoding regardless of the current
// mode. Used for raw value slots and function arguments.
func (v *SQLVisitor) renderInline(n ast.Node) error {
	prev := v.inline
	v.inline = true
	err := n.Accept(v)
	v.inline = prev
	return err
}

func rawNode(n ast.Node) bool {
	switch n.Type() {
	case ast.NodeColumn, ast.NodeFunction, ast.NodeRaw:
		return true
	}
	return false
}

// --- value expressions ---

func (v *SQLVisitor) VisitNull(*ast.Null) error {
	if v.inline {
		v.sb.WriteString("NULL")
		return nil
	}
	v.sb.WriteString(v.binds.Register(nil))
	return nil
}

func (v *SQLVisitor) VisitBool(b *ast.Bool) error {
	if v.inline {
		if b.V {
			v.sb.WriteString("TRUE")
		} else {
			v.sb.WriteString("FALSE")
		}
		return nil
	}
	v.sb.WriteString(v.binds.Register(b.V))
	return nil
}

func (v *SQLVisitor) VisitNumber(n *ast.Number) error {
	if v.inline {
		v.sb.WriteString(n.Text)
		return nil
	}
	v.sb.WriteString(v.binds.Register(n.Val))
	return nil
}

func (v *SQLVisitor) VisitStr(s *ast.Str) error {
	if v.inline {
		v.sb.WriteString(v.dialect.QuoteString(s.V))
		return nil
	}
	v.sb.WriteString(v.binds.Register(s.V))
	return nil
}

func (v *SQLVisitor) VisitBytes(b *ast.Bytes) error {
	if v.inline {
		v.sb.WriteString(v.dialect.QuoteBytes(b.V))
		return nil
	}
	v.sb.WriteString(v.binds.Register(b.V))
	return nil
}

func (v *SQLVisitor) VisitTime(t *ast.Time) error {
	formatted := v.dialect.FormatTime(t.V)
	if v.inline {
		v.sb.WriteString(v.dialect.QuoteString(formatted))
		return nil
	}
	// The formatted text is the wire value; inline and bound statements agree
	// byte for byte.
	v.sb.WriteString(v.binds.Register(formatted))
	return nil
}

func (v *SQLVisitor) VisitArray(a *ast.Array) error {
	cast := a.Cast
	if cast == "" {
		cast = v.pendingCast
	}
	v.pendingCast = ""

	v.sb.WriteString("ARRAY[")
	for i, e := range a.Elems {
		if i > 0 {
			v.sb.WriteByte(',')
		}
		if err := v.renderInline(e); err != nil {
			return err
		}
	}
	v.sb.WriteByte(']')
	if cast != "" {
		v.sb.WriteString("::" + cast + "[]")
	}
	return nil
}

func (v *SQLVisitor) VisitColumn(c *ast.Column) error {
	if c.Table == "" && c.Name == "*" {
		v.sb.WriteByte('*')
		return nil
	}
	if c.Table != "" {
		v.sb.WriteString(v.dialect.QuoteIdentifier(c.Table))
		v.sb.WriteByte('.')
	}
	v.sb.WriteString(v.dialect.QuoteIdentifier(c.Name))
	return nil
}

func (v *SQLVisitor) VisitFunction(f *ast.Function) error {
	v.sb.WriteString(f.Name)
	v.sb.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		// Arguments resolve through the same encoder but never bind.
		if err := v.renderInline(arg); err != nil {
			return err
		}
	}
	v.sb.WriteByte(')')
	return nil
}

func (v *SQLVisitor) VisitRaw(r *ast.Raw) error {
	v.sb.WriteString(r.SQL)
	return nil
}

func (v *SQLVisitor) VisitBinaryExpr(expr *ast.BinaryExpr) error {
	if !ast.KnownOperator(expr.Operator) {
		return fmt.Errorf("sqlgen: unknown operator %q", expr.Operator)
	}

	if err := expr.Left.Accept(v); err != nil {
		return err
	}

	v.sb.WriteByte(' ')
	v.sb.WriteString(expr.Operator)
	v.sb.WriteByte(' ')

	if ast.ContainmentOperator(expr.Operator) {
		if arr, ok := expr.Right.(*ast.Array); ok && arr.Cast == "" {
			v.pendingCast = inferElementCast(arr)
		}
	}
	return expr.Right.Accept(v)
}

func inferElementCast(a *ast.Array) string {
	if len(a.Elems) == 0 {
		return ""
	}
	switch a.Elems[0].(type) {
	case *ast.Str:
		return "varchar"
	case *ast.Number:
		return "integer"
	}
	return ""
}

func (v *SQLVisitor) VisitGrouped(g *ast.Grouped) error {
	v.sb.WriteByte('(')
	err := g.Expr.Accept(v)
	v.sb.WriteByte(')')
	return err
}

// --- clauses ---

func (v *SQLVisitor) VisitWhereClause(clause *ast.WhereClause) error {
	if clause.Empty() {
		return nil
	}
	v.sb.WriteString(" WHERE ")
	for i, cond := range clause.Conds {
		if i > 0 {
			v.sb.WriteString(" AND ")
		}
		if err := cond.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

func (v *SQLVisitor) VisitOrderBy(clause *ast.OrderByClause) error {
	if clause == nil || len(clause.Items) == 0 {
		return nil
	}
	v.sb.WriteString(" ORDER BY ")
	for i, item := range clause.Items {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := item.Expr.Accept(v); err != nil {
			return err
		}
		if item.Dir != "" {
			v.sb.WriteByte(' ')
			v.sb.WriteString(item.Dir)
		}
	}
	return nil
}

func (v *SQLVisitor) VisitGroupBy(clause *ast.GroupByClause) error {
	if clause == nil || len(clause.Exprs) == 0 {
		return nil
	}
	v.sb.WriteString(" GROUP BY ")
	for i, expr := range clause.Exprs {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := expr.Accept(v); err != nil {
			return err
		}
	}
	return nil
}

func (v *SQLVisitor) VisitLimit(clause *ast.LimitClause) error {
	v.sb.WriteString(" LIMIT ")
	v.sb.WriteString(strconv.Itoa(clause.Count))
	if clause.Offset != nil {
		v.sb.WriteString(" OFFSET ")
		v.sb.WriteString(strconv.Itoa(*clause.Offset))
	}
	return nil
}

func (v *SQLVisitor) VisitTable(t *ast.Table) error {
	if t.Schema != "" {
		v.sb.WriteString(v.dialect.QuoteIdentifier(t.Schema))
		v.sb.WriteByte('.')
	}
	v.sb.WriteString(v.dialect.QuoteIdentifier(t.Name))
	if t.Alias != "" && t.Alias != t.Name {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(v.dialect.QuoteIdentifier(t.Alias))
	}
	return nil
}

// --- statements ---

func (v *SQLVisitor) VisitSelect(s *ast.SelectStmt) error {
	prev := v.inline
	v.inline = true
	defer func() { v.inline = prev }()

	v.sb.WriteString("SELECT ")
	if len(s.Columns) == 0 {
		v.sb.WriteByte('*')
	} else {
		for i, col := range s.Columns {
			if i > 0 {
				v.sb.WriteString(", ")
			}
			if err := col.Accept(v); err != nil {
				return err
			}
		}
	}

	v.sb.WriteString(" FROM ")
	if err := s.From.Accept(v); err != nil {
		return err
	}

	if s.Where != nil {
		if err := s.Where.Accept(v); err != nil {
			return err
		}
	}
	if s.GroupBy != nil {
		if err := s.GroupBy.Accept(v); err != nil {
			return err
		}
	}
	if s.OrderBy != nil {
		if err := s.OrderBy.Accept(v); err != nil {
			return err
		}
	}
	if s.Limit != nil {
		if err := s.Limit.Accept(v); err != nil {
			return err
		}
	}
	v.sb.WriteByte(';')
	return nil
}

// insertFields drops explicit-null fields when omitNull is set. Absent fields
// were never in the record, so the two are indistinguishable downstream.
func insertFields(rec *ast.Record, omitNull bool) []ast.Field {
	if rec == nil {
		return nil
	}
	if !omitNull {
		return rec.Fields()
	}
	fields := make([]ast.Field, 0, rec.Len())
	for _, f := range rec.Fields() {
		if _, isNull := f.Value.(*ast.Null); isNull {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

func (v *SQLVisitor) writeColumnList(cols []string) {
	for i, c := range cols {
		if i > 0 {
			v.sb.WriteByte(',')
		}
		v.sb.WriteString(v.dialect.QuoteIdentifier(c))
	}
}

func (v *SQLVisitor) writeReturning(cols []string) {
	if len(cols) == 0 {
		return
	}
	v.sb.WriteString(" RETURNING ")
	for i, c := range cols {
		if i > 0 {
			v.sb.WriteByte(',')
		}
		if c == "*" {
			v.sb.WriteByte('*')
		} else {
			v.sb.WriteString(v.dialect.QuoteIdentifier(c))
		}
	}
}

func (v *SQLVisitor) VisitInsert(stmt *ast.InsertStmt) error {
	fields := insertFields(stmt.Row, stmt.OmitNull)

	v.sb.WriteString("INSERT INTO ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}

	if len(fields) == 0 {
		v.sb.WriteString(" DEFAULT VALUES")
	} else {
		v.sb.WriteString(" (")
		for i, f := range fields {
			if i > 0 {
				v.sb.WriteByte(',')
			}
			v.sb.WriteString(v.dialect.QuoteIdentifier(f.Column))
		}
		v.sb.WriteString(") VALUES (")
		for i, f := range fields {
			if i > 0 {
				v.sb.WriteByte(',')
			}
			// Raw fragments bypass binding but still occupy the column slot.
			if rawNode(f.Value) {
				if err := v.renderInline(f.Value); err != nil {
					return err
				}
				continue
			}
			if err := f.Value.Accept(v); err != nil {
				return err
			}
		}
		v.sb.WriteByte(')')
	}

	if stmt.IgnoreDuplicates {
		v.sb.WriteString(" ON CONFLICT DO NOTHING")
	}
	v.writeReturning(stmt.Returning)
	v.sb.WriteByte(';')
	return nil
}

func (v *SQLVisitor) VisitBulkInsert(stmt *ast.BulkInsertStmt) error {
	if len(stmt.Rows) == 0 {
		return fmt.Errorf("sqlgen: bulk insert requires at least one row")
	}
	if stmt.IgnoreDuplicates && len(stmt.UpdateOnDuplicate) > 0 {
		return fmt.Errorf("sqlgen: ignore duplicates and update on duplicate are mutually exclusive")
	}
	if len(stmt.UpdateOnDuplicate) > 0 && len(stmt.UpsertKeys) == 0 {
		return fmt.Errorf("sqlgen: update on duplicate requires upsert keys")
	}

	// Column set is the union of row keys, ordered by first appearance.
	var columns []string
	seen := make(map[string]struct{})
	for _, row := range stmt.Rows {
		for _, f := range row.Fields() {
			if _, ok := seen[f.Column]; ok {
				continue
			}
			seen[f.Column] = struct{}{}
			columns = append(columns, f.Column)
		}
	}
	if len(columns) == 0 {
		return fmt.Errorf("sqlgen: bulk insert requires at least one column")
	}

	prev := v.inline
	v.inline = true
	defer func() { v.inline = prev }()

	v.sb.WriteString("INSERT INTO ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}
	v.sb.WriteString(" (")
	v.writeColumnList(columns)
	v.sb.WriteString(") VALUES ")

	for ri, row := range stmt.Rows {
		if ri > 0 {
			v.sb.WriteByte(',')
		}
		v.sb.WriteByte('(')
		for ci, col := range columns {
			if ci > 0 {
				v.sb.WriteByte(',')
			}
			val, ok := row.Get(col)
			if !ok {
				// Rows missing a column render an in-sequence NULL; omitNull
				// never applies here, a column present in some rows cannot be
				// conditionally dropped.
				v.sb.WriteString("NULL")
				continue
			}
			if err := val.Accept(v); err != nil {
				return err
			}
		}
		v.sb.WriteByte(')')
	}

	if stmt.IgnoreDuplicates {
		v.sb.WriteString(" ON CONFLICT DO NOTHING")
	}
	if len(stmt.UpdateOnDuplicate) > 0 {
		v.sb.WriteString(" ON CONFLICT (")
		v.writeColumnList(stmt.UpsertKeys)
		v.sb.WriteString(") DO UPDATE SET ")
		for i, col := range stmt.UpdateOnDuplicate {
			if i > 0 {
				v.sb.WriteByte(',')
			}
			quoted := v.dialect.QuoteIdentifier(col)
			v.sb.WriteString(quoted)
			v.sb.WriteString("=EXCLUDED.")
			v.sb.WriteString(quoted)
		}
	}
	v.writeReturning(stmt.Returning)
	v.sb.WriteByte(';')
	return nil
}

func (v *SQLVisitor) VisitUpdate(stmt *ast.UpdateStmt) error {
	fields := insertFields(stmt.Set, stmt.OmitNull)
	if len(fields) == 0 {
		return fmt.Errorf("sqlgen: update requires at least one assignment")
	}

	v.sb.WriteString("UPDATE ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}
	v.sb.WriteString(" SET ")
	for i, f := range fields {
		if i > 0 {
			v.sb.WriteByte(',')
		}
		v.sb.WriteString(v.dialect.QuoteIdentifier(f.Column))
		v.sb.WriteByte('=')
		if rawNode(f.Value) {
			if err := v.renderInline(f.Value); err != nil {
				return err
			}
			continue
		}
		if err := f.Value.Accept(v); err != nil {
			return err
		}
	}

	// WHERE continues the same placeholder sequence the SET clause started.
	if stmt.Where != nil {
		if err := stmt.Where.Accept(v); err != nil {
			return err
		}
	}
	v.writeReturning(stmt.Returning)
	v.sb.WriteByte(';')
	return nil
}

func (v *SQLVisitor) VisitDelete(stmt *ast.DeleteStmt) error {
	v.sb.WriteString("DELETE FROM ")
	if err := stmt.Table.Accept(v); err != nil {
		return err
	}
	if stmt.Where != nil {
		if err := stmt.Where.Accept(v); err != nil {
			return err
		}
	}
	v.writeReturning(stmt.Returning)
	v.sb.WriteByte(';')
	return nil
}
