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
	"github.com/dayplan/dayplan/ent/globalcontext"
	"github.com/dayplan/dayplan/ent/predicate"
)

// GlobalContextQuery is the builder for querying GlobalContext entities.
type GlobalContextQuery struct {
	config
	ctx        *QueryContext
	order      []globalcontext.OrderOption
	inters     []Interceptor
	predicates []predicate.GlobalContext
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the GlobalContextQuery builder.
func (gcq *GlobalContextQuery) Where(ps ...predicate.GlobalContext) *GlobalContextQuery {
	gcq.predicates = append(gcq.predicates, ps...)
	return gcq
}

// Limit the number of records to be returned by this query.
func (gcq *GlobalContextQuery) Limit(limit int) *GlobalContextQuery {
	gcq.ctx.Limit = &limit
	return gcq
}

// Offset to start from.
func (gcq *GlobalContextQuery) Offset(offset int) *GlobalContextQuery {
	gcq.ctx.Offset = &offset
	return gcq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (gcq *GlobalContextQuery) Unique(unique bool) *GlobalContextQuery {
	gcq.ctx.Unique = &unique
	return gcq
}

// Order specifies how the records should be ordered.
func (gcq *GlobalContextQuery) Order(o ...globalcontext.OrderOption) *GlobalContextQuery {
	gcq.order = append(gcq.order, o...)
	return gcq
}

// First returns the first GlobalContext entity from the query.
// Returns a *NotFoundError when no GlobalContext was found.
func (gcq *GlobalContextQuery) First(ctx context.Context) (*GlobalContext, error) {
	nodes, err := gcq.Limit(1).All(setContextOp(ctx, gcq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{globalcontext.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (gcq *GlobalContextQuery) FirstX(ctx context.Context) *GlobalContext {
	node, err := gcq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first GlobalContext ID from the query.
// Returns a *NotFoundError when no GlobalContext ID was found.
func (gcq *GlobalContextQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = gcq.Limit(1).IDs(setContextOp(ctx, gcq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{globalcontext.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (gcq *GlobalContextQuery) FirstIDX(ctx context.Context) int {
	id, err := gcq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single GlobalContext entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one GlobalContext entity is found.
// Returns a *NotFoundError when no GlobalContext entities are found.
func (gcq *GlobalContextQuery) Only(ctx context.Context) (*GlobalContext, error) {
	nodes, err := gcq.Limit(2).All(setContextOp(ctx, gcq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{globalcontext.Label}
	default:
		return nil, &NotSingularError{globalcontext.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (gcq *GlobalContextQuery) OnlyX(ctx context.Context) *GlobalContext {
	node, err := gcq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only GlobalContext ID in the query.
// Returns a *NotSingularError when more than one GlobalContext ID is found.
// Returns a *NotFoundError when no entities are found.
func (gcq *GlobalContextQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = gcq.Limit(2).IDs(setContextOp(ctx, gcq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{globalcontext.Label}
	default:
		err = &NotSingularError{globalcontext.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (gcq *GlobalContextQuery) OnlyIDX(ctx context.Context) int {
	id, err := gcq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of GlobalContexts.
func (gcq *GlobalContextQuery) All(ctx context.Context) ([]*GlobalContext, error) {
	ctx = setContextOp(ctx, gcq.ctx, ent.OpQueryAll)
	if err := gcq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*GlobalContext, *GlobalContextQuery]()
	return withInterceptors[[]*GlobalContext](ctx, gcq, qr, gcq.inters)
}

// AllX is like All, but panics if an error occurs.
func (gcq *GlobalContextQuery) AllX(ctx context.Context) []*GlobalContext {
	nodes, err := gcq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of GlobalContext IDs.
func (gcq *GlobalContextQuery) IDs(ctx context.Context) (ids []int, err error) {
	if gcq.ctx.Unique == nil && gcq.path != nil {
		gcq.Unique(true)
	}
	ctx = setContextOp(ctx, gcq.ctx, ent.OpQueryIDs)
	if err = gcq.Select(globalcontext.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (gcq *GlobalContextQuery) IDsX(ctx context.Context) []int {
	ids, err := gcq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (gcq *GlobalContextQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, gcq.ctx, ent.OpQueryCount)
	if err := gcq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, gcq, querierCount[*GlobalContextQuery](), gcq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (gcq *GlobalContextQuery) CountX(ctx context.Context) int {
	count, err := gcq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (gcq *GlobalContextQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, gcq.ctx, ent.OpQueryExist)
	switch _, err := gcq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (gcq *GlobalContextQuery) ExistX(ctx context.Context) bool {
	exist, err := gcq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the GlobalContextQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (gcq *GlobalContextQuery) Clone() *GlobalContextQuery {
	if gcq == nil {
		return nil
	}
	return &GlobalContextQuery{
		config:     gcq.config,
		ctx:        gcq.ctx.Clone(),
		order:      append([]globalcontext.OrderOption{}, gcq.order...),
		inters:     append([]Interceptor{}, gcq.inters...),
		predicates: append([]predicate.GlobalContext{}, gcq.predicates...),
		// clone intermediate query.
		sql:  gcq.sql.Clone(),
		path: gcq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Singleton bool `json:"singleton,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.GlobalContext.Query().
//		GroupBy(globalcontext.FieldSingleton).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (gcq *GlobalContextQuery) GroupBy(field string, fields ...string) *GlobalContextGroupBy {
	gcq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &GlobalContextGroupBy{build: gcq}
	grbuild.flds = &gcq.ctx.Fields
	grbuild.label = globalcontext.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Singleton bool `json:"singleton,omitempty"`
//	}
//
//	client.GlobalContext.Query().
//		Select(globalcontext.FieldSingleton).
//		Scan(ctx, &v)
func (gcq *GlobalContextQuery) Select(fields ...string) *GlobalContextSelect {
	gcq.ctx.Fields = append(gcq.ctx.Fields, fields...)
	sbuild := &GlobalContextSelect{GlobalContextQuery: gcq}
	sbuild.label = globalcontext.Label
	sbuild.flds, sbuild.scan = &gcq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a GlobalContextSelect configured with the given aggregations.
func (gcq *GlobalContextQuery) Aggregate(fns ...AggregateFunc) *GlobalContextSelect {
	return gcq.Select().Aggregate(fns...)
}

func (gcq *GlobalContextQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range gcq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, gcq); err != nil {
				return err
			}
		}
	}
	for _, f := range gcq.ctx.Fields {
		if !globalcontext.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if gcq.path != nil {
		prev, err := gcq.path(ctx)
		if err != nil {
			return err
		}
		gcq.sql = prev
	}
	return nil
}

func (gcq *GlobalContextQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*GlobalContext, error) {
	var (
		nodes = []*GlobalContext{}
		_spec = gcq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*GlobalContext).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &GlobalContext{config: gcq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	if len(gcq.modifiers) > 0 {
		_spec.Modifiers = gcq.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, gcq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (gcq *GlobalContextQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := gcq.querySpec()
	if len(gcq.modifiers) > 0 {
		_spec.Modifiers = gcq.modifiers
	}
	_spec.Node.Columns = gcq.ctx.Fields
	if len(gcq.ctx.Fields) > 0 {
		_spec.Unique = gcq.ctx.Unique != nil && *gcq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, gcq.driver, _spec)
}

func (gcq *GlobalContextQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(globalcontext.Table, globalcontext.Columns, sqlgraph.NewFieldSpec(globalcontext.FieldID, field.TypeInt))
	_spec.From = gcq.sql
	if unique := gcq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if gcq.path != nil {
		_spec.Unique = true
	}
	if fields := gcq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, globalcontext.FieldID)
		for i := range fields {
			if fields[i] != globalcontext.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := gcq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := gcq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := gcq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := gcq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (gcq *GlobalContextQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(gcq.driver.Dialect())
	t1 := builder.Table(globalcontext.Table)
	columns := gcq.ctx.Fields
	if len(columns) == 0 {
		columns = globalcontext.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if gcq.sql != nil {
		selector = gcq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if gcq.ctx.Unique != nil && *gcq.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range gcq.modifiers {
		m(selector)
	}
	for _, p := range gcq.predicates {
		p(selector)
	}
	for _, p := range gcq.order {
		p(selector)
	}
	if offset := gcq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := gcq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (gcq *GlobalContextQuery) ForUpdate(opts ...sql.LockOption) *GlobalContextQuery {
	if gcq.driver.Dialect() == dialect.Postgres {
		gcq.Unique(false)
	}
	gcq.modifiers = append(gcq.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return gcq
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (gcq *GlobalContextQuery) ForShare(opts ...sql.LockOption) *GlobalContextQuery {
	if gcq.driver.Dialect() == dialect.Postgres {
		gcq.Unique(false)
	}
	gcq.modifiers = append(gcq.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return gcq
}

// GlobalContextGroupBy is the group-by builder for GlobalContext entities.
type GlobalContextGroupBy struct {
	selector
	build *GlobalContextQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (gcgb *GlobalContextGroupBy) Aggregate(fns ...AggregateFunc) *GlobalContextGroupBy {
	gcgb.fns = append(gcgb.fns, fns...)
	return gcgb
}

// Scan applies the selector query and scans the result into the given value.
func (gcgb *GlobalContextGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, gcgb.build.ctx, ent.OpQueryGroupBy)
	if err := gcgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GlobalContextQuery, *GlobalContextGroupBy](ctx, gcgb.build, gcgb, gcgb.build.inters, v)
}

func (gcgb *GlobalContextGroupBy) sqlScan(ctx context.Context, root *GlobalContextQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(gcgb.fns))
	for _, fn := range gcgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*gcgb.flds)+len(gcgb.fns))
		for _, f := range *gcgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*gcgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := gcgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// GlobalContextSelect is the builder for selecting fields of GlobalContext entities.
type GlobalContextSelect struct {
	*GlobalContextQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (gcs *GlobalContextSelect) Aggregate(fns ...AggregateFunc) *GlobalContextSelect {
	gcs.fns = append(gcs.fns, fns...)
	return gcs
}

// Scan applies the selector query and scans the result into the given value.
func (gcs *GlobalContextSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, gcs.ctx, ent.OpQuerySelect)
	if err := gcs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*GlobalContextQuery, *GlobalContextSelect](ctx, gcs.GlobalContextQuery, gcs, gcs.inters, v)
}

func (gcs *GlobalContextSelect) sqlScan(ctx context.Context, root *GlobalContextQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(gcs.fns))
	for _, fn := range gcs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*gcs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := gcs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
