// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/davidolu/elector-registry/gen/ent/admin"
	"github.com/davidolu/elector-registry/gen/ent/predicate"
	"github.com/davidolu/elector-registry/gen/ent/voterupload"
)

// VoterUploadUpdate is the builder for updating VoterUpload entities.
type VoterUploadUpdate struct {
	config
	hooks    []Hook
	mutation *VoterUploadMutation
}

// Where appends a list predicates to the VoterUploadUpdate builder.
func (_u *VoterUploadUpdate) Where(ps ...predicate.VoterUpload) *VoterUploadUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAdminID sets the "admin_id" field.
func (_u *VoterUploadUpdate) SetAdminID(v string) *VoterUploadUpdate {
	_u.mutation.SetAdminID(v)
	return _u
}

// SetNillableAdminID sets the "admin_id" field if the given value is not nil.
func (_u *VoterUploadUpdate) SetNillableAdminID(v *string) *VoterUploadUpdate {
	if v != nil {
		_u.SetAdminID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *VoterUploadUpdate) SetFilePath(v string) *VoterUploadUpdate {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *VoterUploadUpdate) SetNillableFilePath(v *string) *VoterUploadUpdate {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *VoterUploadUpdate) SetFileExt(v string) *VoterUploadUpdate {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *VoterUploadUpdate) SetNillableFileExt(v *string) *VoterUploadUpdate {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VoterUploadUpdate) SetStatus(v string) *VoterUploadUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VoterUploadUpdate) SetNillableStatus(v *string) *VoterUploadUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalRecords sets the "total_records" field.
func (_u *VoterUploadUpdate) SetTotalRecords(v int) *VoterUploadUpdate {
	_u.mutation.ResetTotalRecords()
	_u.mutation.SetTotalRecords(v)
	return _u
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_u *VoterUploadUpdate) SetNillableTotalRecords(v *int) *VoterUploadUpdate {
	if v != nil {
		_u.SetTotalRecords(*v)
	}
	return _u
}

// AddTotalRecords adds value to the "total_records" field.
func (_u *VoterUploadUpdate) AddTotalRecords(v int) *VoterUploadUpdate {
	_u.mutation.AddTotalRecords(v)
	return _u
}

// ClearTotalRecords clears the value of the "total_records" field.
func (_u *VoterUploadUpdate) ClearTotalRecords() *VoterUploadUpdate {
	_u.mutation.ClearTotalRecords()
	return _u
}

// SetProcessedRecords sets the "processed_records" field.
func (_u *VoterUploadUpdate) SetProcessedRecords(v int) *VoterUploadUpdate {
	_u.mutation.ResetProcessedRecords()
	_u.mutation.SetProcessedRecords(v)
	return _u
}

// SetNillableProcessedRecords sets the "processed_records" field if the given value is not nil.
func (_u *VoterUploadUpdate) SetNillableProcessedRecords(v *int) *VoterUploadUpdate {
	if v != nil {
		_u.SetProcessedRecords(*v)
	}
	return _u
}

// AddProcessedRecords adds value to the "processed_records" field.
func (_u *VoterUploadUpdate) AddProcessedRecords(v int) *VoterUploadUpdate {
	_u.mutation.AddProcessedRecords(v)
	return _u
}

// SetFailureCode sets the "failure_code" field.
func (_u *VoterUploadUpdate) SetFailureCode(v string) *VoterUploadUpdate {
	_u.mutation.SetFailureCode(v)
	return _u
}

// SetNillableFailureCode sets the "failure_code" field if the given value is not nil.
func (_u *VoterUploadUpdate) SetNillableFailureCode(v *string) *VoterUploadUpdate {
	if v != nil {
		_u.SetFailureCode(*v)
	}
	return _u
}

// ClearFailureCode clears the value of the "failure_code" field.
func (_u *VoterUploadUpdate) ClearFailureCode() *VoterUploadUpdate {
	_u.mutation.ClearFailureCode()
	return _u
}

// SetReason sets the "reason" field.
func (_u *VoterUploadUpdate) SetReason(v string) *VoterUploadUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *VoterUploadUpdate) SetNillableReason(v *string) *VoterUploadUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VoterUploadUpdate) SetUpdatedAt(v time.Time) *VoterUploadUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAdmin sets the "admin" edge to the Admin entity.
func (_u *VoterUploadUpdate) SetAdmin(v *Admin) *VoterUploadUpdate {
	return _u.SetAdminID(v.ID)
}

// Mutation returns the VoterUploadMutation object of the builder.
func (_u *VoterUploadUpdate) Mutation() *VoterUploadMutation {
	return _u.mutation
}

// ClearAdmin clears the "admin" edge to the Admin entity.
func (_u *VoterUploadUpdate) ClearAdmin() *VoterUploadUpdate {
	_u.mutation.ClearAdmin()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *VoterUploadUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoterUploadUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *VoterUploadUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoterUploadUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VoterUploadUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := voterupload.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoterUploadUpdate) check() error {
	if v, ok := _u.mutation.AdminID(); ok {
		if err := voterupload.AdminIDValidator(v); err != nil {
			return &ValidationError{Name: "admin_id", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.admin_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := voterupload.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := voterupload.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := voterupload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedRecords(); ok {
		if err := voterupload.ProcessedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "processed_records", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.processed_records": %w`, err)}
		}
	}
	if _u.mutation.AdminCleared() && len(_u.mutation.AdminIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VoterUpload.admin"`)
	}
	return nil
}

func (_u *VoterUploadUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(voterupload.Table, voterupload.Columns, sqlgraph.NewFieldSpec(voterupload.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(voterupload.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(voterupload.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(voterupload.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRecords(); ok {
		_spec.SetField(voterupload.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRecords(); ok {
		_spec.AddField(voterupload.FieldTotalRecords, field.TypeInt, value)
	}
	if _u.mutation.TotalRecordsCleared() {
		_spec.ClearField(voterupload.FieldTotalRecords, field.TypeInt)
	}
	if value, ok := _u.mutation.ProcessedRecords(); ok {
		_spec.SetField(voterupload.FieldProcessedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedRecords(); ok {
		_spec.AddField(voterupload.FieldProcessedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCode(); ok {
		_spec.SetField(voterupload.FieldFailureCode, field.TypeString, value)
	}
	if _u.mutation.FailureCodeCleared() {
		_spec.ClearField(voterupload.FieldFailureCode, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(voterupload.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(voterupload.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AdminCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdminIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voterupload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// VoterUploadUpdateOne is the builder for updating a single VoterUpload entity.
type VoterUploadUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *VoterUploadMutation
}

// SetAdminID sets the "admin_id" field.
func (_u *VoterUploadUpdateOne) SetAdminID(v string) *VoterUploadUpdateOne {
	_u.mutation.SetAdminID(v)
	return _u
}

// SetNillableAdminID sets the "admin_id" field if the given value is not nil.
func (_u *VoterUploadUpdateOne) SetNillableAdminID(v *string) *VoterUploadUpdateOne {
	if v != nil {
		_u.SetAdminID(*v)
	}
	return _u
}

// SetFilePath sets the "file_path" field.
func (_u *VoterUploadUpdateOne) SetFilePath(v string) *VoterUploadUpdateOne {
	_u.mutation.SetFilePath(v)
	return _u
}

// SetNillableFilePath sets the "file_path" field if the given value is not nil.
func (_u *VoterUploadUpdateOne) SetNillableFilePath(v *string) *VoterUploadUpdateOne {
	if v != nil {
		_u.SetFilePath(*v)
	}
	return _u
}

// SetFileExt sets the "file_ext" field.
func (_u *VoterUploadUpdateOne) SetFileExt(v string) *VoterUploadUpdateOne {
	_u.mutation.SetFileExt(v)
	return _u
}

// SetNillableFileExt sets the "file_ext" field if the given value is not nil.
func (_u *VoterUploadUpdateOne) SetNillableFileExt(v *string) *VoterUploadUpdateOne {
	if v != nil {
		_u.SetFileExt(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *VoterUploadUpdateOne) SetStatus(v string) *VoterUploadUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *VoterUploadUpdateOne) SetNillableStatus(v *string) *VoterUploadUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTotalRecords sets the "total_records" field.
func (_u *VoterUploadUpdateOne) SetTotalRecords(v int) *VoterUploadUpdateOne {
	_u.mutation.ResetTotalRecords()
	_u.mutation.SetTotalRecords(v)
	return _u
}

// SetNillableTotalRecords sets the "total_records" field if the given value is not nil.
func (_u *VoterUploadUpdateOne) SetNillableTotalRecords(v *int) *VoterUploadUpdateOne {
	if v != nil {
		_u.SetTotalRecords(*v)
	}
	return _u
}

// AddTotalRecords adds value to the "total_records" field.
func (_u *VoterUploadUpdateOne) AddTotalRecords(v int) *VoterUploadUpdateOne {
	_u.mutation.AddTotalRecords(v)
	return _u
}

// ClearTotalRecords clears the value of the "total_records" field.
func (_u *VoterUploadUpdateOne) ClearTotalRecords() *VoterUploadUpdateOne {
	_u.mutation.ClearTotalRecords()
	return _u
}

// SetProcessedRecords sets the "processed_records" field.
func (_u *VoterUploadUpdateOne) SetProcessedRecords(v int) *VoterUploadUpdateOne {
	_u.mutation.ResetProcessedRecords()
	_u.mutation.SetProcessedRecords(v)
	return _u
}

// SetNillableProcessedRecords sets the "processed_records" field if the given value is not nil.
func (_u *VoterUploadUpdateOne) SetNillableProcessedRecords(v *int) *VoterUploadUpdateOne {
	if v != nil {
		_u.SetProcessedRecords(*v)
	}
	return _u
}

// AddProcessedRecords adds value to the "processed_records" field.
func (_u *VoterUploadUpdateOne) AddProcessedRecords(v int) *VoterUploadUpdateOne {
	_u.mutation.AddProcessedRecords(v)
	return _u
}

// SetFailureCode sets the "failure_code" field.
func (_u *VoterUploadUpdateOne) SetFailureCode(v string) *VoterUploadUpdateOne {
	_u.mutation.SetFailureCode(v)
	return _u
}

// SetNillableFailureCode sets the "failure_code" field if the given value is not nil.
func (_u *VoterUploadUpdateOne) SetNillableFailureCode(v *string) *VoterUploadUpdateOne {
	if v != nil {
		_u.SetFailureCode(*v)
	}
	return _u
}

// ClearFailureCode clears the value of the "failure_code" field.
func (_u *VoterUploadUpdateOne) ClearFailureCode() *VoterUploadUpdateOne {
	_u.mutation.ClearFailureCode()
	return _u
}

// SetReason sets the "reason" field.
func (_u *VoterUploadUpdateOne) SetReason(v string) *VoterUploadUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *VoterUploadUpdateOne) SetNillableReason(v *string) *VoterUploadUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *VoterUploadUpdateOne) SetUpdatedAt(v time.Time) *VoterUploadUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetAdmin sets the "admin" edge to the Admin entity.
func (_u *VoterUploadUpdateOne) SetAdmin(v *Admin) *VoterUploadUpdateOne {
	return _u.SetAdminID(v.ID)
}

// Mutation returns the VoterUploadMutation object of the builder.
func (_u *VoterUploadUpdateOne) Mutation() *VoterUploadMutation {
	return _u.mutation
}

// ClearAdmin clears the "admin" edge to the Admin entity.
func (_u *VoterUploadUpdateOne) ClearAdmin() *VoterUploadUpdateOne {
	_u.mutation.ClearAdmin()
	return _u
}

// Where appends a list predicates to the VoterUploadUpdate builder.
func (_u *VoterUploadUpdateOne) Where(ps ...predicate.VoterUpload) *VoterUploadUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *VoterUploadUpdateOne) Select(field string, fields ...string) *VoterUploadUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated VoterUpload entity.
func (_u *VoterUploadUpdateOne) Save(ctx context.Context) (*VoterUpload, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *VoterUploadUpdateOne) SaveX(ctx context.Context) *VoterUpload {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *VoterUploadUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *VoterUploadUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *VoterUploadUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := voterupload.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *VoterUploadUpdateOne) check() error {
	if v, ok := _u.mutation.AdminID(); ok {
		if err := voterupload.AdminIDValidator(v); err != nil {
			return &ValidationError{Name: "admin_id", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.admin_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FilePath(); ok {
		if err := voterupload.FilePathValidator(v); err != nil {
			return &ValidationError{Name: "file_path", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.file_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FileExt(); ok {
		if err := voterupload.FileExtValidator(v); err != nil {
			return &ValidationError{Name: "file_ext", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.file_ext": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := voterupload.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedRecords(); ok {
		if err := voterupload.ProcessedRecordsValidator(v); err != nil {
			return &ValidationError{Name: "processed_records", err: fmt.Errorf(`ent: validator failed for field "VoterUpload.processed_records": %w`, err)}
		}
	}
	if _u.mutation.AdminCleared() && len(_u.mutation.AdminIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "VoterUpload.admin"`)
	}
	return nil
}

func (_u *VoterUploadUpdateOne) sqlSave(ctx context.Context) (_node *VoterUpload, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(voterupload.Table, voterupload.Columns, sqlgraph.NewFieldSpec(voterupload.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "VoterUpload.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, voterupload.FieldID)
		for _, f := range fields {
			if !voterupload.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != voterupload.FieldID {
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
	if value, ok := _u.mutation.FilePath(); ok {
		_spec.SetField(voterupload.FieldFilePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileExt(); ok {
		_spec.SetField(voterupload.FieldFileExt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(voterupload.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalRecords(); ok {
		_spec.SetField(voterupload.FieldTotalRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalRecords(); ok {
		_spec.AddField(voterupload.FieldTotalRecords, field.TypeInt, value)
	}
	if _u.mutation.TotalRecordsCleared() {
		_spec.ClearField(voterupload.FieldTotalRecords, field.TypeInt)
	}
	if value, ok := _u.mutation.ProcessedRecords(); ok {
		_spec.SetField(voterupload.FieldProcessedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedRecords(); ok {
		_spec.AddField(voterupload.FieldProcessedRecords, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailureCode(); ok {
		_spec.SetField(voterupload.FieldFailureCode, field.TypeString, value)
	}
	if _u.mutation.FailureCodeCleared() {
		_spec.ClearField(voterupload.FieldFailureCode, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(voterupload.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(voterupload.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.AdminCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AdminIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &VoterUpload{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{voterupload.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
