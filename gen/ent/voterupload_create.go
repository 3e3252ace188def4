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
	"github.com/davidolu/elector-registry/gen/ent/voterupload"
)

// VoterUploadCreate is the builder for creating a VoterUpload entity.
type VoterUploadCreate struct {
	config
	mutation *VoterUploadMutation
	hooks    []Hook
}

// SetAdminID sets the "admin_id" field.
func (_c *VoterUploadCreate) SetAdminID(v string) *VoterUploadCreate {
	_c.mutation.SetAdminID(v)
	return _c
}

// SetFilePath sets the "file_path" field.
func (_c *VoterUploadCreate) SetFilePath(v string) *VoterUploadCreate {
	_c.mutation.SetFilePath(v)
	return _c
}

// SetFileExt sets the "file_ext" field.
func (_c *VoterUploadCreate) SetFileExt(v string) *VoterUploadCreate {
	_c.mutation.SetFileExt(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *VoterUploadCreate) SetStatus(v string) *VoterUploadCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *VoterUploadCreate) SetNillableStatus(v *string) *VoterUploadCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTotalRecords sets the "total_records" field.
func (_c *VoterUploadCreate) SetTotalRecords(v int) *VoterUploadCreate {
	_c.mutation.SetTotalRecords(v)
	return _c
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_c *VoterUploadCreate) SetNillableTotalRecords(v *int) *VoterUploadCreate {
	if v != nil {
		_c.SetTotalRecords(*v)
	}
	return _c
}

// SetProcessedRecords sets the "processed_records" field.
func (_c *VoterUploadCreate) SetProcessedRecords(v int) *VoterUploadCreate {
	_c.mutation.SetProcessedRecords(v)
	return _c
}

// SetNillableProcessedRecords sets the "processed_records" field if the given value is not nil.
func (_c *VoterUploadCreate) SetNillableProcessedRecords(v *int) *VoterUploadCreate {
	if v != nil {
		_c.SetProcessedRecords(*v)
	}
	return _c
}

// SetFailureCode sets the "failure_code" field.
func (_c *VoterUploadCreate) SetFailureCode(v string) *VoterUploadCreate {
	_c.mutation.SetFailureCode(v)
	return _c
}

// SetNillableFailureCode sets the "failure_code" field if the given value is not nil.
func (_c *VoterUploadCreate) SetNillableFailureCode(v *string) *VoterUploadCreate {
	if v != nil {
		_c.SetFailureCode(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *VoterUploadCreate) SetReason(v string) *VoterUploadCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *VoterUploadCreate) SetNillableReason(v *string) *VoterUploadCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *VoterUploadCreate) SetCreatedAt(v time.Time) *VoterUploadCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *VoterUploadCreate) SetNillableCreatedAt(v *time.Time) *VoterUploadCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *VoterUploadCreate) SetUpdatedAt(v time.Time) *VoterUploadCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *VoterUploadCreate) SetNillableUpdatedAt(v *time.Time) *VoterUploadCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *VoterUploadCreate) SetID(v string) *VoterUploadCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *VoterUploadCreate) SetNillableID(v *string) *VoterUploadCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetAdmin sets the "admin" edge to the Admin entity.
func (_c *VoterUploadCreate) SetAdmin(v *Admin) *VoterUploadCreate {
	return _c.SetAdminID(v.ID)
}

// Mutation returns the VoterUploadMutation object of the builder.
func (_c *VoterUploadCreate) Mutation() *VoterUploadMutation {
	return _c.mutation
}

// Save creates the VoterUpload in the database.
func (_c *VoterUploadCreate) Save(ctx context.Context) (*VoterUpload, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *VoterUploadCreate) SaveX(ctx context.Context) *VoterUpload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoterUploadCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoterUploadCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *VoterUploadCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := voterupload.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProcessedRecords(); !ok {
		v := voterupload.DefaultProcessedRecords
		_c.mutation.SetProcessedRecords(v)
	}
	if _, ok := _c.mutation.Reason(); !ok {
		v := voterupload.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := voterupload.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := voterupload.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := voterupload.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *VoterUploadCreate) check() error {
	if _, ok := _c.mutation.AdminID(); !ok {
		return &ValidationError{Name: "admin_id", err: errors.New(`ent: missing required field "VoterUpload.admin_id"`)}
	}
	if v, ok := _c.mutation.AdminID(); ok {
		if err := voterupload.AdminIDValidator(v); err != nil {
			return &ValidationError{Name: "admin_id", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.admin_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FilePath(); !ok {
		return &ValidationError{Name: "file_path", err: errors.New(`ent: missing required field "VoterUpload.file_path"`)}
	}
	if v, ok := _c.mutation.FilePath(); ok {
		if err := voterupload.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.file_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileExt(); !ok {
		return &ValidationError{Name: "file_ext", err: errors.New(`ent: missing required field "VoterUpload.file_ext"`)}
	}
	if v, ok := _c.mutation.FileExt(); ok {
		if err := voterupload.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.file_ext": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "VoterUpload.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := voterupload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedRecords(); !ok {
		return &ValidationError{Name: "processed_records", err: errors.New(`ent: missing required field "VoterUpload.processed_records"`)}
	}
	if v, ok := _c.mutation.ProcessedRecords(); ok {
		if err := voterupload.ProcessedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "processed_records", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.processed_records": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "VoterUpload.reason"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "VoterUpload.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "VoterUpload.updated_at"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := voterupload.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.id": %w`, err)}
		}
	}
	if len(_c.mutation.AdminIDs()) == 0 {
		return &ValidationError{Name: "admin", err: errors.New(`ent: missing required edge "VoterUpload.admin"`)}
	}
	return nil
}

func (_c *VoterUploadCreate) sqlSave(ctx context.Context) (*VoterUpload, error) {
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
			return nil, fmt.Errorf("unexpected VoterUpload.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *VoterUploadCreate) createSpec() (*VoterUpload, *sqlgraph.CreateSpec) {
	var (
		_node = &VoterUpload{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(voterupload.Table, sqlgraph.NewFieldSpec(voterupload.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.FilePath(); ok {
		_spec.SetField(voterupload.FieldFilePath, field.TypeString, value)
		_node.FilePath = value
	}
	if value, ok := _c.mutation.FileExt(); ok {
		_spec.SetField(voterupload.FieldFileExt, field.TypeString, value)
		_node.FileExt = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(voterupload.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TotalRecords(); ok {
		_spec.SetField(voterupload.FieldTotalRecords, field.TypeInt, value)
		_node.TotalRecords = &value
	}
	if value, ok := _c.mutation.ProcessedRecords(); ok {
		_spec.SetField(voterupload.FieldProcessedRecords, field.TypeInt, value)
		_node.ProcessedRecords = value
	}
	if value, ok := _c.mutation.FailureCode(); ok {
		_spec.SetField(voterupload.FieldFailureCode, field.TypeString, value)
		_node.FailureCode = &value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(voterupload.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(voterupload.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(voterupload.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.AdminIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   voterupload.AdminTable,
			Columns: []string{voterupload.AdminColumn},
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

// VoterUploadCreateBulk is the builder for creating many VoterUpload entities in bulk.
type VoterUploadCreateBulk struct {
	config
	err      error
	builders []*VoterUploadCreate
}

// Save creates the VoterUpload entities in the database.
func (_c *VoterUploadCreateBulk) Save(ctx context.Context) ([]*VoterUpload, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*VoterUpload, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*VoterUploadMutation)
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
func (_c *VoterUploadCreateBulk) SaveX(ctx context.Context) []*VoterUpload {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *VoterUploadCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *VoterUploadCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
