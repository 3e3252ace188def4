// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/davidolu/elector-registry/gen/ent/admin"
	"github.com/davidolu/elector-registry/gen/ent/elector"
	"github.com/davidolu/elector-registry/gen/ent/predicate"
)

// ElectorUpdate is the builder for updating Elector entities.
type ElectorUpdate struct {
	config
	hooks    []Hook
	mutation *ElectorMutation
}

// Where appends a list predicates to the ElectorUpdate builder.
func (_u *ElectorUpdate) Where(ps ...predicate.Elector) *ElectorUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAdminID sets the "admin_id" field.
func (_u *ElectorUpdate) SetAdminID(v string) *ElectorUpdate {
	_u.mutation.SetAdminID(v)
	return _u
}

// SetNillableAdminID sets the "admin_id" field if the given value is not nil.
func (_u *ElectorUpdate) SetNillableAdminID(v *string) *ElectorUpdate {
	if v != nil {
		_u.SetAdminID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ElectorUpdate) SetEmail(v string) *ElectorUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ElectorUpdate) SetNillableEmail(v *string) *ElectorUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetMatriculationNumber sets the "matriculation_number" field.
func (_u *ElectorUpdate) SetMatriculationNumber(v string) *ElectorUpdate {
	_u.mutation.SetMatriculationNumber(v)
	return _u
}

// SetNillableMatriculationNumber sets the "matriculation_number" field if the given value is not nil.
func (_u *ElectorUpdate) SetNillableMatriculationNumber(v *string) *ElectorUpdate {
	if v != nil {
		_u.SetMatriculationNumber(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ElectorUpdate) SetFullName(v string) *ElectorUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ElectorUpdate) SetNillableFullName(v *string) *ElectorUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *ElectorUpdate) SetGender(v string) *ElectorUpdate {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *ElectorUpdate) SetNillableGender(v *string) *ElectorUpdate {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *ElectorUpdate) SetDepartment(v string) *ElectorUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *ElectorUpdate) SetNillableDepartment(v *string) *ElectorUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetAdmin sets the "admin" edge to the Admin entity.
func (_u *ElectorUpdate) SetAdmin(v *Admin) *ElectorUpdate {
	return _u.SetAdminID(v.ID)
}

// Mutation returns the ElectorMutation object of the builder.
func (_u *ElectorUpdate) Mutation() *ElectorMutation {
	return _u.mutation
}

// ClearAdmin clears the "admin" edge to the Admin entity.
func (_u *ElectorUpdate) ClearAdmin() *ElectorUpdate {
	_u.mutation.ClearAdmin()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ElectorUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ElectorUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ElectorUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ElectorUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ElectorUpdate) check() error {
	if v, ok := _u.mutation.AdminID(); ok {
		if err := elector.AdminIDValidator(v); err != nil {
			return &ValidationError{Name: "admin_id", err: fmt.Errorf(`ent: validator failed for field "Elector.admin_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := elector.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Elector.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatriculationNumber(); ok {
		if err := elector.MatriculationNumberValidator(v); err != nil {
			return &ValidationError{Name: "matriculation_number", err: fmt.Errorf(`ent: validator failed for field "Elector.matriculation_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := elector.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Elector.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := elector.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Elector.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := elector.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Elector.department": %w`, err)}
		}
	}
	if _u.mutation.AdminCleared() && len(_u.mutation.AdminIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Elector.admin"`)
	}
	return nil
}

func (_u *ElectorUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(elector.Table, elector.Columns, sqlgraph.NewFieldSpec(elector.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(elector.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatriculationNumber(); ok {
		_spec.SetField(elector.FieldMatriculationNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(elector.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(elector.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(elector.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.AdminCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   elector.AdminTable,
			Columns: []string{elector.AdminColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admin.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdminIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   elector.AdminTable,
			Columns: []string{elector.AdminColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admin.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{elector.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ElectorUpdateOne is the builder for updating a single Elector entity.
type ElectorUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ElectorMutation
}

// SetAdminID sets the "admin_id" field.
func (_u *ElectorUpdateOne) SetAdminID(v string) *ElectorUpdateOne {
	_u.mutation.SetAdminID(v)
	return _u
}

// SetNillableAdminID sets the "admin_id" field if the given value is not nil.
func (_u *ElectorUpdateOne) SetNillableAdminID(v *string) *ElectorUpdateOne {
	if v != nil {
		_u.SetAdminID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ElectorUpdateOne) SetEmail(v string) *ElectorUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ElectorUpdateOne) SetNillableEmail(v *string) *ElectorUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetMatriculationNumber sets the "matriculation_number" field.
func (_u *ElectorUpdateOne) SetMatriculationNumber(v string) *ElectorUpdateOne {
	_u.mutation.SetMatriculationNumber(v)
	return _u
}

// SetNillableMatriculationNumber sets the "matriculation_number" field if the given value is not nil.
func (_u *ElectorUpdateOne) SetNillableMatriculationNumber(v *string) *ElectorUpdateOne {
	if v != nil {
		_u.SetMatriculationNumber(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ElectorUpdateOne) SetFullName(v string) *ElectorUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ElectorUpdateOne) SetNillableFullName(v *string) *ElectorUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetGender sets the "gender" field.
func (_u *ElectorUpdateOne) SetGender(v string) *ElectorUpdateOne {
	_u.mutation.SetGender(v)
	return _u
}

// SetNillableGender sets the "gender" field if the given value is not nil.
func (_u *ElectorUpdateOne) SetNillableGender(v *string) *ElectorUpdateOne {
	if v != nil {
		_u.SetGender(*v)
	}
	return _u
}

// SetDepartment sets the "department" field.
func (_u *ElectorUpdateOne) SetDepartment(v string) *ElectorUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *ElectorUpdateOne) SetNillableDepartment(v *string) *ElectorUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// SetAdmin sets the "admin" edge to the Admin entity.
func (_u *ElectorUpdateOne) SetAdmin(v *Admin) *ElectorUpdateOne {
	return _u.SetAdminID(v.ID)
}

// Mutation returns the ElectorMutation object of the builder.
func (_u *ElectorUpdateOne) Mutation() *ElectorMutation {
	return _u.mutation
}

// ClearAdmin clears the "admin" edge to the Admin entity.
func (_u *ElectorUpdateOne) ClearAdmin() *ElectorUpdateOne {
	_u.mutation.ClearAdmin()
	return _u
}

// Where appends a list predicates to the ElectorUpdate builder.
func (_u *ElectorUpdateOne) Where(ps ...predicate.Elector) *ElectorUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ElectorUpdateOne) Select(field string, fields ...string) *ElectorUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Elector entity.
func (_u *ElectorUpdateOne) Save(ctx context.Context) (*Elector, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ElectorUpdateOne) SaveX(ctx context.Context) *Elector {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ElectorUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ElectorUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ElectorUpdateOne) check() error {
	if v, ok := _u.mutation.AdminID(); ok {
		if err := elector.AdminIDValidator(v); err != nil {
			return &ValidationError{Name: "admin_id", err: fmt.Errorf(`ent: validator failed for field "Elector.admin_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := elector.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Elector.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MatriculationNumber(); ok {
		if err := elector.MatriculationNumberValidator(v); err != nil {
			return &ValidationError{Name: "matriculation_number", err: fmt.Errorf(`ent: validator failed for field "Elector.matriculation_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := elector.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Elector.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gender(); ok {
		if err := elector.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Elector.gender": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := elector.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Elector.department": %w`, err)}
		}
	}
	if _u.mutation.AdminCleared() && len(_u.mutation.AdminIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Elector.admin"`)
	}
	return nil
}

func (_u *ElectorUpdateOne) sqlSave(ctx context.Context) (_node *Elector, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(elector.Table, elector.Columns, sqlgraph.NewFieldSpec(elector.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Elector.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, elector.FieldID)
		for _, f := range fields {
			if !elector.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != elector.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(elector.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.MatriculationNumber(); ok {
		_spec.SetField(elector.FieldMatriculationNumber, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(elector.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Gender(); ok {
		_spec.SetField(elector.FieldGender, field.TypeString, value)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(elector.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.AdminCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   elector.AdminTable,
			Columns: []string{elector.AdminColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admin.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdminIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   elector.AdminTable,
			Columns: []string{elector.AdminColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(admin.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Elector{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{elector.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
