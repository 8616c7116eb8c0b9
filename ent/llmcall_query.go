// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dayplan/dayplan/ent/llmcall"
	"github.com/dayplan/dayplan/ent/predicate"
)

// LLMCallQuery is the builder for querying LLMCall entities.
type LLMCallQuery struct {
	config
	ctx        *QueryContext
	order      []llmcall.OrderOption
	inters     []Interceptor
	predicates []predicate.LLMCall
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the LLMCallQuery builder.
func (lcq *LLMCallQuery) Where(ps ...predicate.LLMCall) *LLMCallQuery {
	lcq.predicates = append(lcq.predicates, ps...)
	return lcq
}

// Limit the number of records to be returned by this query.
func (lcq *LLMCallQuery) Limit(limit int) *LLMCallQuery {
	lcq.ctx.Limit = &limit
	return lcq
}

// Offset to start from.
func (lcq *LLMCallQuery) Offset(offset int) *LLMCallQuery {
	lcq.ctx.Offset = &offset
	return lcq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (lcq *LLMCallQuery) Unique(unique bool) *LLMCallQuery {
	lcq.ctx.Unique = &unique
	return lcq
}

// Order specifies how the records should be ordered.
func (lcq *LLMCallQuery) Order(o ...llmcall.OrderOption) *LLMCallQuery {
	lcq.order = append(lcq.order, o...)
	return lcq
}

// First returns the first LLMCall entity from the query.
// Returns a *NotFoundError when no LLMCall was found.
func (lcq *LLMCallQuery) First(ctx context.Context) (*LLMCall, error) {
	nodes, err := lcq.Limit(1).All(setContextOp(ctx, lcq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{llmcall.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (lcq *LLMCallQuery) FirstX(ctx context.Context) *LLMCall {
	node, err := lcq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first LLMCall ID from the query.
// Returns a *NotFoundError when no LLMCall ID was found.
func (lcq *LLMCallQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = lcq.Limit(1).IDs(setContextOp(ctx, lcq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{llmcall.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (lcq *LLMCallQuery) FirstIDX(ctx context.Context) int {
	id, err := lcq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single LLMCall entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one LLMCall entity is found.
// Returns a *NotFoundError when no LLMCall entities are found.
func (lcq *LLMCallQuery) Only(ctx context.Context) (*LLMCall, error) {
	nodes, err := lcq.Limit(2).All(setContextOp(ctx, lcq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{llmcall.Label}
	default:
		return nil, &NotSingularError{llmcall.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (lcq *LLMCallQuery) OnlyX(ctx context.Context) *LLMCall {
	node, err := lcq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only LLMCall ID in the query.
// Returns a *NotSingularError when more than one LLMCall ID is found.
// Returns a *NotFoundError when no entities are found.
func (lcq *LLMCallQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = lcq.Limit(2).IDs(setContextOp(ctx, lcq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{llmcall.Label}
	default:
		err = &NotSingularError{llmcall.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (lcq *LLMCallQuery) OnlyIDX(ctx context.Context) int {
	id, err := lcq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of LLMCalls.
func (lcq *LLMCallQuery) All(ctx context.Context) ([]*LLMCall, error) {
	ctx = setContextOp(ctx, lcq.ctx, ent.OpQueryAll)
	if err := lcq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*LLMCall, *LLMCallQuery]()
	return withInterceptors[[]*LLMCall](ctx, lcq, qr, lcq.inters)
}

// AllX is like All, but panics if an error occurs.
func (lcq *LLMCallQuery) AllX(ctx context.Context) []*LLMCall {
	nodes, err := lcq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of LLMCall IDs.
func (lcq *LLMCallQuery) IDs(ctx context.Context) (ids []int, err error) {
	if lcq.ctx.Unique == nil && lcq.path != nil {
		lcq.Unique(true)
	}
	ctx = setContextOp(ctx, lcq.ctx, ent.OpQueryIDs)
	if err = lcq.Select(llmcall.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (lcq *LLMCallQuery) IDsX(ctx context.Context) []int {
	ids, err := lcq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (lcq *LLMCallQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, lcq.ctx, ent.OpQueryCount)
	if err := lcq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, lcq, querierCount[*LLMCallQuery](), lcq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (lcq *LLMCallQuery) CountX(ctx context.Context) int {
	count, err := lcq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (lcq *LLMCallQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, lcq.ctx, ent.OpQueryExist)
	switch _, err := lcq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (lcq *LLMCallQuery) ExistX(ctx context.Context) bool {
	exist, err := lcq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the LLMCallQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (lcq *LLMCallQuery) Clone() *LLMCallQuery {
	if lcq == nil {
		return nil
	}
	return &LLMCallQuery{
		config:     lcq.config,
		ctx:        lcq.ctx.Clone(),
		order:      append([]llmcall.OrderOption{}, lcq.order...),
		inters:     append([]Interceptor{}, lcq.inters...),
		predicates: append([]predicate.LLMCall{}, lcq.predicates...),
		// clone intermediate query.
		sql:  lcq.sql.Clone(),
		path: lcq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ModuleName string `json:"module_name,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.LLMCall.Query().
//		GroupBy(llmcall.FieldModuleName).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (lcq *LLMCallQuery) GroupBy(field string, fields ...string) *LLMCallGroupBy {
	lcq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &LLMCallGroupBy{build: lcq}
	grbuild.flds = &lcq.ctx.Fields
	grbuild.label = llmcall.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ModuleName string `json:"module_name,omitempty"`
//	}
//
//	client.LLMCall.Query().
//		Select(llmcall.FieldModuleName).
//		Scan(ctx, &v)
func (lcq *LLMCallQuery) Select(fields ...string) *LLMCallSelect {
	lcq.ctx.Fields = append(lcq.ctx.Fields, fields...)
	sbuild := &LLMCallSelect{LLMCallQuery: lcq}
	sbuild.label = llmcall.Label
	sbuild.flds, sbuild.scan = &lcq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a LLMCallSelect configured with the given aggregations.
func (lcq *LLMCallQuery) Aggregate(fns ...AggregateFunc) *LLMCallSelect {
	return lcq.Select().Aggregate(fns...)
}

func (lcq *LLMCallQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range lcq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, lcq); err != nil {
				return err
			}
		}
	}
	for _, f := range lcq.ctx.Fields {
		if !llmcall.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if lcq.path != nil {
		prev, err := lcq.path(ctx)
		if err != nil {
			return err
		}
		lcq.sql = prev
	}
	return nil
}

func (lcq *LLMCallQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*LLMCall, error) {
	var (
		nodes = []*LLMCall{}
		_spec = lcq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*LLMCall).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &LLMCall{config: lcq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(lcq.modifiers) > 0 {
		_spec.Modifiers = lcq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, lcq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (lcq *LLMCallQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := lcq.querySpec()
	if len(lcq.modifiers) > 0 {
		_spec.Modifiers = lcq.modifiers
	}
	_spec.Node.Columns = lcq.ctx.Fields
	if len(lcq.ctx.Fields) > 0 {
		_spec.Unique = lcq.ctx.Unique != nil && *lcq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, lcq.driver, _spec)
}

func (lcq *LLMCallQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(llmcall.Table, llmcall.Columns, sqlgraph.NewFieldSpec(llmcall.FieldID, field.TypeInt))
	_spec.From = lcq.sql
	if unique := lcq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if lcq.path != nil {
		_spec.Unique = true
	}
	if fields := lcq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, llmcall.FieldID)
		for i := range fields {
			if fields[i] != llmcall.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := lcq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := lcq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := lcq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := lcq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (lcq *LLMCallQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(lcq.driver.Dialect())
	t1 := builder.Table(llmcall.Table)
	columns := lcq.ctx.Fields
	if len(columns) == 0 {
		columns = llmcall.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if lcq.sql != nil {
		selector = lcq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if lcq.ctx.Unique != nil && *lcq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range lcq.modifiers {
		m(selector)
	}
	for _, p := range lcq.predicates {
		p(selector)
	}
	for _, p := range lcq.order {
		p(selector)
	}
	if offset := lcq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := lcq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (lcq *LLMCallQuery) ForUpdate(opts ...sql.LockOption) *LLMCallQuery {
	if lcq.driver.Dialect() == dialect.Postgres {
		lcq.Unique(false)
	}
	lcq.modifiers = append(lcq.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return lcq
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (lcq *LLMCallQuery) ForShare(opts ...sql.LockOption) *LLMCallQuery {
	if lcq.driver.Dialect() == dialect.Postgres {
		lcq.Unique(false)
	}
	lcq.modifiers = append(lcq.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return lcq
}

// LLMCallGroupBy is the group-by builder for LLMCall entities.
type LLMCallGroupBy struct {
	selector
	build *LLMCallQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (lcgb *LLMCallGroupBy) Aggregate(fns ...AggregateFunc) *LLMCallGroupBy {
	lcgb.fns = append(lcgb.fns, fns...)
	return lcgb
}

// Scan applies the selector query and scans the result into the given value.
func (lcgb *LLMCallGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lcgb.build.ctx, ent.OpQueryGroupBy)
	if err := lcgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LLMCallQuery, *LLMCallGroupBy](ctx, lcgb.build, lcgb, lcgb.build.inters, v)
}

func (lcgb *LLMCallGroupBy) sqlScan(ctx context.Context, root *LLMCallQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(lcgb.fns))
	for _, fn := range lcgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*lcgb.flds)+len(lcgb.fns))
		for _, f := range *lcgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*lcgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lcgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// LLMCallSelect is the builder for selecting fields of LLMCall entities.
type LLMCallSelect struct {
	*LLMCallQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (lcs *LLMCallSelect) Aggregate(fns ...AggregateFunc) *LLMCallSelect {
	lcs.fns = append(lcs.fns, fns...)
	return lcs
}

// Scan applies the selector query and scans the result into the given value.
func (lcs *LLMCallSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, lcs.ctx, ent.OpQuerySelect)
	if err := lcs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*LLMCallQuery, *LLMCallSelect](ctx, lcs.LLMCallQuery, lcs, lcs.inters, v)
}

func (lcs *LLMCallSelect) sqlScan(ctx context.Context, root *LLMCallQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(lcs.fns))
	for _, fn := range lcs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*lcs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := lcs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
