// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/davidolu/elector-registry/gen/ent/admin"
	"github.com/davidolu/elector-registry/gen/ent/elector"
)

// ElectorCreate is the builder for creating a Elector entity.
type ElectorCreate struct {
	config
	mutation *ElectorMutation
	hooks    []Hook
}

// SetAdminID sets the "admin_id" field.
func (_c *ElectorCreate) SetAdminID(v string) *ElectorCreate {
	_c.mutation.SetAdminID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ElectorCreate) SetEmail(v string) *ElectorCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetMatriculationNumber sets the "matriculation_number" field.
func (_c *ElectorCreate) SetMatriculationNumber(v string) *ElectorCreate {
	_c.mutation.SetMatriculationNumber(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *ElectorCreate) SetFullName(v string) *ElectorCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetGender sets the "gender" field.
func (_c *ElectorCreate) SetGender(v string) *ElectorCreate {
	_c.mutation.SetGender(v)
	return _c
}

// SetDepartment sets the "department" field.
func (_c *ElectorCreate) SetDepartment(v string) *ElectorCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ElectorCreate) SetCreatedAt(v time.Time) *ElectorCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ElectorCreate) SetNillableCreatedAt(v *time.Time) *ElectorCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ElectorCreate) SetID(v string) *ElectorCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ElectorCreate) SetNillableID(v *string) *ElectorCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAdmin sets the "admin" edge to the Admin entity.
func (_c *ElectorCreate) SetAdmin(v *Admin) *ElectorCreate {
	return _c.SetAdminID(v.ID)
}

// Mutation returns the ElectorMutation object of the builder.
func (_c *ElectorCreate) Mutation() *ElectorMutation {
	return _c.mutation
}

// Save creates the Elector in the database.
func (_c *ElectorCreate) Save(ctx context.Context) (*Elector, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ElectorCreate) SaveX(ctx context.Context) *Elector {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ElectorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ElectorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ElectorCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := elector.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := elector.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ElectorCreate) check() error {
	if _, ok := _c.mutation.AdminID(); !ok {
		return &ValidationError{Name: "admin_id", err: errors.New(`ent: missing required field "Elector.admin_id"`)}
	}
	if v, ok := _c.mutation.AdminID(); ok {
		if err := elector.AdminIDValidator(v); err != nil {
			return &ValidationError{Name: "admin_id", err: fmt.Errorf(`ent: validator failed for field "Elector.admin_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Elector.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := elector.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "Elector.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MatriculationNumber(); !ok {
		return &ValidationError{Name: "matriculation_number", err: errors.New(`ent: missing required field "Elector.matriculation_number"`)}
	}
	if v, ok := _c.mutation.MatriculationNumber(); ok {
		if err := elector.MatriculationNumberValidator(v); err != nil {
			return &ValidationError{Name: "matriculation_number", err: fmt.Errorf(`ent: validator failed for field "Elector.matriculation_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Elector.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := elector.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Elector.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Gender(); !ok {
		return &ValidationError{Name: "gender", err: errors.New(`ent: missing required field "Elector.gender"`)}
	}
	if v, ok := _c.mutation.Gender(); ok {
		if err := elector.GenderValidator(v); err != nil {
			return &ValidationError{Name: "gender", err: fmt.Errorf(`ent: validator failed for field "Elector.gender": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Department(); !ok {
		return &ValidationError{Name: "department", err: errors.New(`ent: missing required field "Elector.department"`)}
	}
	if v, ok := _c.mutation.Department(); ok {
		if err := elector.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`ent: validator failed for field "Elector.department": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Elector.created_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := elector.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Elector.id": %w`, err)}
		}
	}
	if len(_c.mutation.AdminIDs()) == 0 {
		return &ValidationError{Name: "admin", err: errors.New(`ent: missing required edge "Elector.admin"`)}
	}
	return nil
}

func (_c *ElectorCreate) sqlSave(ctx context.Context) (*Elector, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Elector.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ElectorCreate) createSpec() (*Elector, *sqlgraph.CreateSpec) {
	var (
		_node = &Elector{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(elector.Table, sqlgraph.NewFieldSpec(elector.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(elector.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.MatriculationNumber(); ok {
		_spec.SetField(elector.FieldMatriculationNumber, field.TypeString, value)
		_node.MatriculationNumber = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(elector.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Gender(); ok {
		_spec.SetField(elector.FieldGender, field.TypeString, value)
		_node.Gender = value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(elector.FieldDepartment, field.TypeString, value)
		_node.Department = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(elector.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.AdminIDs(); len(nodes) > 0 {
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
		_node.AdminID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ElectorCreateBulk is the builder for creating many Elector entities in bulk.
type ElectorCreateBulk struct {
	config
	err      error
	builders []*ElectorCreate
}

// Save creates the Elector entities in the database.
func (_c *ElectorCreateBulk) Save(ctx context.Context) ([]*Elector, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Elector, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ElectorMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ElectorCreateBulk) SaveX(ctx context.Context) []*Elector {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ElectorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ElectorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
