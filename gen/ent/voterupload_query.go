// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/davidolu/elector-registry/gen/ent/admin"
	"github.com/davidolu/elector-registry/gen/ent/predicate"
	"github.com/davidolu/elector-registry/gen/ent/voterupload"
)

// VoterUploadQuery is the builder for querying VoterUpload entities.
type VoterUploadQuery struct {
	config
	ctx        *QueryContext
	order      []voterupload.OrderOption
	inters     []Interceptor
	predicates []predicate.VoterUpload
	withAdmin  *AdminQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the VoterUploadQuery builder.
func (_q *VoterUploadQuery) Where(ps ...predicate.VoterUpload) *VoterUploadQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *VoterUploadQuery) Limit(limit int) *VoterUploadQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *VoterUploadQuery) Offset(offset int) *VoterUploadQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *VoterUploadQuery) Unique(unique bool) *VoterUploadQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *VoterUploadQuery) Order(o ...voterupload.OrderOption) *VoterUploadQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryAdmin chains the current query on the "admin" edge.
func (_q *VoterUploadQuery) QueryAdmin() *AdminQuery {
	query := (&AdminClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(voterupload.Table, voterupload.FieldID, selector),
			sqlgraph.To(admin.Table, admin.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, voterupload.AdminTable, voterupload.AdminColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first VoterUpload entity from the query.
// Returns a *NotFoundError when no VoterUpload was found.
func (_q *VoterUploadQuery) First(ctx context.Context) (*VoterUpload, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{voterupload.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *VoterUploadQuery) FirstX(ctx context.Context) *VoterUpload {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first VoterUpload ID from the query.
// Returns a *NotFoundError when no VoterUpload ID was found.
func (_q *VoterUploadQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{voterupload.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *VoterUploadQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single VoterUpload entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one VoterUpload entity is found.
// Returns a *NotFoundError when no VoterUpload entities are found.
func (_q *VoterUploadQuery) Only(ctx context.Context) (*VoterUpload, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{voterupload.Label}
	default:
		return nil, &NotSingularError{voterupload.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *VoterUploadQuery) OnlyX(ctx context.Context) *VoterUpload {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only VoterUpload ID in the query.
// Returns a *NotSingularError when more than one VoterUpload ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *VoterUploadQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{voterupload.Label}
	default:
		err = &NotSingularError{voterupload.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *VoterUploadQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of VoterUploads.
func (_q *VoterUploadQuery) All(ctx context.Context) ([]*VoterUpload, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*VoterUpload, *VoterUploadQuery]()
	return withInterceptors[[]*VoterUpload](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *VoterUploadQuery) AllX(ctx context.Context) []*VoterUpload {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of VoterUpload IDs.
func (_q *VoterUploadQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(voterupload.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *VoterUploadQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *VoterUploadQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*VoterUploadQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *VoterUploadQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *VoterUploadQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *VoterUploadQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the VoterUploadQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *VoterUploadQuery) Clone() *VoterUploadQuery {
	if _q == nil {
		return nil
	}
	return &VoterUploadQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]voterupload.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.VoterUpload{}, _q.predicates...),
		withAdmin:  _q.withAdmin.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithAdmin tells the query-builder to eager-load the nodes that are connected to
// the "admin" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *VoterUploadQuery) WithAdmin(opts ...func(*AdminQuery)) *VoterUploadQuery {
	query := (&AdminClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAdmin = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AdminID string `json:"admin_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.VoterUpload.Query().
//		GroupBy(voterupload.FieldAdminID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *VoterUploadQuery) GroupBy(field string, fields ...string) *VoterUploadGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &VoterUploadGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = voterupload.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AdminID string `json:"admin_id,omitempty"`
//	}
//
//	client.VoterUpload.Query().
//		Select(voterupload.FieldAdminID).
//		Scan(ctx, &v)
func (_q *VoterUploadQuery) Select(fields ...string) *VoterUploadSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &VoterUploadSelect{VoterUploadQuery: _q}
	sbuild.label = voterupload.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a VoterUploadSelect configured with the given aggregations.
func (_q *VoterUploadQuery) Aggregate(fns ...AggregateFunc) *VoterUploadSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *VoterUploadQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !voterupload.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *VoterUploadQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*VoterUpload, error) {
	var (
		nodes       = []*VoterUpload{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withAdmin != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*VoterUpload).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &VoterUpload{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withAdmin; query != nil {
		if err := _q.loadAdmin(ctx, query, nodes, nil,
			func(n *VoterUpload, e *Admin) { n.Edges.Admin = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *VoterUploadQuery) loadAdmin(ctx context.Context, query *AdminQuery, nodes []*VoterUpload, init func(*VoterUpload), assign func(*VoterUpload, *Admin)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*VoterUpload)
	for i := range nodes {
		fk := nodes[i].AdminID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(admin.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "admin_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *VoterUploadQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *VoterUploadQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(voterupload.Table, voterupload.Columns, sqlgraph.NewFieldSpec(voterupload.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, voterupload.FieldID)
		for i := range fields {
			if fields[i] != voterupload.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withAdmin != nil {
			_spec.Node.AddColumnOnce(voterupload.FieldAdminID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *VoterUploadQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(voterupload.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = voterupload.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// VoterUploadGroupBy is the group-by builder for VoterUpload entities.
type VoterUploadGroupBy struct {
	selector
	build *VoterUploadQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *VoterUploadGroupBy) Aggregate(fns ...AggregateFunc) *VoterUploadGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *VoterUploadGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VoterUploadQuery, *VoterUploadGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *VoterUploadGroupBy) sqlScan(ctx context.Context, root *VoterUploadQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// VoterUploadSelect is the builder for selecting fields of VoterUpload entities.
type VoterUploadSelect struct {
	*VoterUploadQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *VoterUploadSelect) Aggregate(fns ...AggregateFunc) *VoterUploadSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *VoterUploadSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*VoterUploadQuery, *VoterUploadSelect](ctx, _s.VoterUploadQuery, _s, _s.inters, v)
}

func (_s *VoterUploadSelect) sqlScan(ctx context.Context, root *VoterUploadQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
