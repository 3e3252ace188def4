// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/davidolu/elector-registry/gen/ent/admin"
	"github.com/davidolu/elector-registry/gen/ent/elector"
	"github.com/davidolu/elector-registry/gen/ent/predicate"
	"github.com/davidolu/elector-registry/gen/ent/voterupload"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAdmin       = "Admin"
	TypeElector     = "Elector"
	TypeVoterUpload = "VoterUpload"
)

// AdminMutation represents an operation that mutates the Admin nodes in the graph.
type AdminMutation struct {
	config
	op              Op
	typ             string
	id              *string
	email           *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	uploads         map[string]struct{}
	removeduploads  map[string]struct{}
	cleareduploads  bool
	electors        map[string]struct{}
	removedelectors map[string]struct{}
	clearedelectors bool
	done            bool
	oldValue        func(context.Context) (*Admin, error)
	predicates      []predicate.Admin
}

var _ ent.Mutation = (*AdminMutation)(nil)

// adminOption allows management of the mutation configuration using functional options.
type adminOption func(*AdminMutation)

// newAdminMutation creates new mutation for the Admin entity.
func newAdminMutation(c config, op Op, opts ...adminOption) *AdminMutation {
	m := &AdminMutation{
		config:        c,
		op:            op,
		typ:           TypeAdmin,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAdminID sets the ID field of the mutation.
func withAdminID(id string) adminOption {
	return func(m *AdminMutation) {
		var (
			err   error
			once  sync.Once
			value *Admin
		)
		m.oldValue = func(ctx context.Context) (*Admin, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Admin.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAdmin sets the old Admin of the mutation.
func withAdmin(node *Admin) adminOption {
	return func(m *AdminMutation) {
		m.oldValue = func(context.Context) (*Admin, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AdminMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AdminMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Admin entities.
func (m *AdminMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AdminMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AdminMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Admin.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *AdminMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *AdminMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *AdminMutation) ResetEmail() {
	m.email = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AdminMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AdminMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Admin entity.
// If the Admin object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AdminMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AdminMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddUploadIDs adds the "uploads" edge to the VoterUpload entity by ids.
func (m *AdminMutation) AddUploadIDs(ids ...string) {
	if m.uploads == nil {
		m.uploads = make(map[string]struct{})
	}
	for i := range ids {
		m.uploads[ids[i]] = struct{}{}
	}
}

// ClearUploads clears the "uploads" edge to the VoterUpload entity.
func (m *AdminMutation) ClearUploads() {
	m.cleareduploads = true
}

// UploadsCleared reports if the "uploads" edge to the VoterUpload entity was cleared.
func (m *AdminMutation) UploadsCleared() bool {
	return m.cleareduploads
}

// RemoveUploadIDs removes the "uploads" edge to the VoterUpload entity by IDs.
func (m *AdminMutation) RemoveUploadIDs(ids ...string) {
	if m.removeduploads == nil {
		m.removeduploads = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.uploads, ids[i])
		m.removeduploads[ids[i]] = struct{}{}
	}
}

// RemovedUploads returns the removed IDs of the "uploads" edge to the VoterUpload entity.
func (m *AdminMutation) RemovedUploadsIDs() (ids []string) {
	for id := range m.removeduploads {
		ids = append(ids, id)
	}
	return
}

// UploadsIDs returns the "uploads" edge IDs in the mutation.
func (m *AdminMutation) UploadsIDs() (ids []string) {
	for id := range m.uploads {
		ids = append(ids, id)
	}
	return
}

// ResetUploads resets all changes to the "uploads" edge.
func (m *AdminMutation) ResetUploads() {
	m.uploads = nil
	m.cleareduploads = false
	m.removeduploads = nil
}

// AddElectorIDs adds the "electors" edge to the Elector entity by ids.
func (m *AdminMutation) AddElectorIDs(ids ...string) {
	if m.electors == nil {
		m.electors = make(map[string]struct{})
	}
	for i := range ids {
		m.electors[ids[i]] = struct{}{}
	}
}

// ClearElectors clears the "electors" edge to the Elector entity.
func (m *AdminMutation) ClearElectors() {
	m.clearedelectors = true
}

// ElectorsCleared reports if the "electors" edge to the Elector entity was cleared.
func (m *AdminMutation) ElectorsCleared() bool {
	return m.clearedelectors
}

// RemoveElectorIDs removes the "electors" edge to the Elector entity by IDs.
func (m *AdminMutation) RemoveElectorIDs(ids ...string) {
	if m.removedelectors == nil {
		m.removedelectors = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.electors, ids[i])
		m.removedelectors[ids[i]] = struct{}{}
	}
}

// RemovedElectors returns the removed IDs of the "electors" edge to the Elector entity.
func (m *AdminMutation) RemovedElectorsIDs() (ids []string) {
	for id := range m.removedelectors {
		ids = append(ids, id)
	}
	return
}

// ElectorsIDs returns the "electors" edge IDs in the mutation.
func (m *AdminMutation) ElectorsIDs() (ids []string) {
	for id := range m.electors {
		ids = append(ids, id)
	}
	return
}

// ResetElectors resets all changes to the "electors" edge.
func (m *AdminMutation) ResetElectors() {
	m.electors = nil
	m.clearedelectors = false
	m.removedelectors = nil
}

// Where appends a list predicates to the AdminMutation builder.
func (m *AdminMutation) Where(ps ...predicate.Admin) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AdminMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AdminMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Admin, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AdminMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AdminMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Admin).
func (m *AdminMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AdminMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.email != nil {
		fields = append(fields, admin.FieldEmail)
	}
	if m.created_at != nil {
		fields = append(fields, admin.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AdminMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case admin.FieldEmail:
		return m.Email()
	case admin.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AdminMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case admin.FieldEmail:
		return m.OldEmail(ctx)
	case admin.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Admin field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminMutation) SetField(name string, value ent.Value) error {
	switch name {
	case admin.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case admin.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Admin field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AdminMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AdminMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AdminMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Admin numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AdminMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AdminMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AdminMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Admin nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AdminMutation) ResetField(name string) error {
	switch name {
	case admin.FieldEmail:
		m.ResetEmail()
		return nil
	case admin.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Admin field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AdminMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.uploads != nil {
		edges = append(edges, admin.EdgeUploads)
	}
	if m.electors != nil {
		edges = append(edges, admin.EdgeElectors)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AdminMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case admin.EdgeUploads:
		ids := make([]ent.Value, 0, len(m.uploads))
		for id := range m.uploads {
			ids = append(ids, id)
		}
		return ids
	case admin.EdgeElectors:
		ids := make([]ent.Value, 0, len(m.electors))
		for id := range m.electors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AdminMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removeduploads != nil {
		edges = append(edges, admin.EdgeUploads)
	}
	if m.removedelectors != nil {
		edges = append(edges, admin.EdgeElectors)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AdminMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case admin.EdgeUploads:
		ids := make([]ent.Value, 0, len(m.removeduploads))
		for id := range m.removeduploads {
			ids = append(ids, id)
		}
		return ids
	case admin.EdgeElectors:
		ids := make([]ent.Value, 0, len(m.removedelectors))
		for id := range m.removedelectors {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AdminMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduploads {
		edges = append(edges, admin.EdgeUploads)
	}
	if m.clearedelectors {
		edges = append(edges, admin.EdgeElectors)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AdminMutation) EdgeCleared(name string) bool {
	switch name {
	case admin.EdgeUploads:
		return m.cleareduploads
	case admin.EdgeElectors:
		return m.clearedelectors
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AdminMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Admin unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AdminMutation) ResetEdge(name string) error {
	switch name {
	case admin.EdgeUploads:
		m.ResetUploads()
		return nil
	case admin.EdgeElectors:
		m.ResetElectors()
		return nil
	}
	return fmt.Errorf("unknown Admin edge %s", name)
}

// ElectorMutation represents an operation that mutates the Elector nodes in the graph.
type ElectorMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	email                *string
	matriculation_number *string
	full_name            *string
	gender               *string
	department           *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	admin                *string
	clearedadmin         bool
	done                 bool
	oldValue             func(context.Context) (*Elector, error)
	predicates           []predicate.Elector
}

var _ ent.Mutation = (*ElectorMutation)(nil)

// electorOption allows management of the mutation configuration using functional options.
type electorOption func(*ElectorMutation)

// newElectorMutation creates new mutation for the Elector entity.
func newElectorMutation(c config, op Op, opts ...electorOption) *ElectorMutation {
	m := &ElectorMutation{
		config:        c,
		op:            op,
		typ:           TypeElector,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withElectorID sets the ID field of the mutation.
func withElectorID(id string) electorOption {
	return func(m *ElectorMutation) {
		var (
			err   error
			once  sync.Once
			value *Elector
		)
		m.oldValue = func(ctx context.Context) (*Elector, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Elector.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withElector sets the old Elector of the mutation.
func withElector(node *Elector) electorOption {
	return func(m *ElectorMutation) {
		m.oldValue = func(context.Context) (*Elector, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ElectorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ElectorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Elector entities.
func (m *ElectorMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ElectorMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ElectorMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Elector.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAdminID sets the "admin_id" field.
func (m *ElectorMutation) SetAdminID(s string) {
	m.admin = &s
}

// AdminID returns the value of the "admin_id" field in the mutation.
func (m *ElectorMutation) AdminID() (r string, exists bool) {
	v := m.admin
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminID returns the old "admin_id" field's value of the Elector entity.
// If the Elector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectorMutation) OldAdminID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminID: %w", err)
	}
	return oldValue.AdminID, nil
}

// ResetAdminID resets all changes to the "admin_id" field.
func (m *ElectorMutation) ResetAdminID() {
	m.admin = nil
}

// SetEmail sets the "email" field.
func (m *ElectorMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ElectorMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Elector entity.
// If the Elector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectorMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *ElectorMutation) ResetEmail() {
	m.email = nil
}

// SetMatriculationNumber sets the "matriculation_number" field.
func (m *ElectorMutation) SetMatriculationNumber(s string) {
	m.matriculation_number = &s
}

// MatriculationNumber returns the value of the "matriculation_number" field in the mutation.
func (m *ElectorMutation) MatriculationNumber() (r string, exists bool) {
	v := m.matriculation_number
	if v == nil {
		return
	}
	return *v, true
}

// OldMatriculationNumber returns the old "matriculation_number" field's value of the Elector entity.
// If the Elector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectorMutation) OldMatriculationNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatriculationNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatriculationNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatriculationNumber: %w", err)
	}
	return oldValue.MatriculationNumber, nil
}

// ResetMatriculationNumber resets all changes to the "matriculation_number" field.
func (m *ElectorMutation) ResetMatriculationNumber() {
	m.matriculation_number = nil
}

// SetFullName sets the "full_name" field.
func (m *ElectorMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *ElectorMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Elector entity.
// If the Elector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectorMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *ElectorMutation) ResetFullName() {
	m.full_name = nil
}

// SetGender sets the "gender" field.
func (m *ElectorMutation) SetGender(s string) {
	m.gender = &s
}

// Gender returns the value of the "gender" field in the mutation.
func (m *ElectorMutation) Gender() (r string, exists bool) {
	v := m.gender
	if v == nil {
		return
	}
	return *v, true
}

// OldGender returns the old "gender" field's value of the Elector entity.
// If the Elector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectorMutation) OldGender(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGender: %w", err)
	}
	return oldValue.Gender, nil
}

// ResetGender resets all changes to the "gender" field.
func (m *ElectorMutation) ResetGender() {
	m.gender = nil
}

// SetDepartment sets the "department" field.
func (m *ElectorMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *ElectorMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the Elector entity.
// If the Elector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectorMutation) OldDepartment(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ResetDepartment resets all changes to the "department" field.
func (m *ElectorMutation) ResetDepartment() {
	m.department = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ElectorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ElectorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Elector entity.
// If the Elector object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ElectorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ElectorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAdmin clears the "admin" edge to the Admin entity.
func (m *ElectorMutation) ClearAdmin() {
	m.clearedadmin = true
	m.clearedFields[elector.FieldAdminID] = struct{}{}
}

// AdminCleared reports if the "admin" edge to the Admin entity was cleared.
func (m *ElectorMutation) AdminCleared() bool {
	return m.clearedadmin
}

// AdminIDs returns the "admin" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AdminID instead. It exists only for internal usage by the builders.
func (m *ElectorMutation) AdminIDs() (ids []string) {
	if id := m.admin; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAdmin resets all changes to the "admin" edge.
func (m *ElectorMutation) ResetAdmin() {
	m.admin = nil
	m.clearedadmin = false
}

// Where appends a list predicates to the ElectorMutation builder.
func (m *ElectorMutation) Where(ps ...predicate.Elector) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ElectorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ElectorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Elector, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ElectorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ElectorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Elector).
func (m *ElectorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ElectorMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.admin != nil {
		fields = append(fields, elector.FieldAdminID)
	}
	if m.email != nil {
		fields = append(fields, elector.FieldEmail)
	}
	if m.matriculation_number != nil {
		fields = append(fields, elector.FieldMatriculationNumber)
	}
	if m.full_name != nil {
		fields = append(fields, elector.FieldFullName)
	}
	if m.gender != nil {
		fields = append(fields, elector.FieldGender)
	}
	if m.department != nil {
		fields = append(fields, elector.FieldDepartment)
	}
	if m.created_at != nil {
		fields = append(fields, elector.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ElectorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case elector.FieldAdminID:
		return m.AdminID()
	case elector.FieldEmail:
		return m.Email()
	case elector.FieldMatriculationNumber:
		return m.MatriculationNumber()
	case elector.FieldFullName:
		return m.FullName()
	case elector.FieldGender:
		return m.Gender()
	case elector.FieldDepartment:
		return m.Department()
	case elector.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ElectorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case elector.FieldAdminID:
		return m.OldAdminID(ctx)
	case elector.FieldEmail:
		return m.OldEmail(ctx)
	case elector.FieldMatriculationNumber:
		return m.OldMatriculationNumber(ctx)
	case elector.FieldFullName:
		return m.OldFullName(ctx)
	case elector.FieldGender:
		return m.OldGender(ctx)
	case elector.FieldDepartment:
		return m.OldDepartment(ctx)
	case elector.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Elector field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ElectorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case elector.FieldAdminID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminID(v)
		return nil
	case elector.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case elector.FieldMatriculationNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatriculationNumber(v)
		return nil
	case elector.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case elector.FieldGender:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGender(v)
		return nil
	case elector.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case elector.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Elector field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ElectorMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ElectorMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ElectorMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Elector numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ElectorMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ElectorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ElectorMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Elector nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ElectorMutation) ResetField(name string) error {
	switch name {
	case elector.FieldAdminID:
		m.ResetAdminID()
		return nil
	case elector.FieldEmail:
		m.ResetEmail()
		return nil
	case elector.FieldMatriculationNumber:
		m.ResetMatriculationNumber()
		return nil
	case elector.FieldFullName:
		m.ResetFullName()
		return nil
	case elector.FieldGender:
		m.ResetGender()
		return nil
	case elector.FieldDepartment:
		m.ResetDepartment()
		return nil
	case elector.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Elector field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ElectorMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.admin != nil {
		edges = append(edges, elector.EdgeAdmin)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ElectorMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case elector.EdgeAdmin:
		if id := m.admin; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ElectorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ElectorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ElectorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedadmin {
		edges = append(edges, elector.EdgeAdmin)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ElectorMutation) EdgeCleared(name string) bool {
	switch name {
	case elector.EdgeAdmin:
		return m.clearedadmin
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ElectorMutation) ClearEdge(name string) error {
	switch name {
	case elector.EdgeAdmin:
		m.ClearAdmin()
		return nil
	}
	return fmt.Errorf("unknown Elector unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ElectorMutation) ResetEdge(name string) error {
	switch name {
	case elector.EdgeAdmin:
		m.ResetAdmin()
		return nil
	}
	return fmt.Errorf("unknown Elector edge %s", name)
}

// VoterUploadMutation represents an operation that mutates the VoterUpload nodes in the graph.
type VoterUploadMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	file_path            *string
	file_ext             *string
	status               *string
	total_records        *int
	addtotal_records     *int
	processed_records    *int
	addprocessed_records *int
	failure_code         *string
	reason               *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	admin                *string
	clearedadmin         bool
	done                 bool
	oldValue             func(context.Context) (*VoterUpload, error)
	predicates           []predicate.VoterUpload
}

var _ ent.Mutation = (*VoterUploadMutation)(nil)

// voteruploadOption allows management of the mutation configuration using functional options.
type voteruploadOption func(*VoterUploadMutation)

// newVoterUploadMutation creates new mutation for the VoterUpload entity.
func newVoterUploadMutation(c config, op Op, opts ...voteruploadOption) *VoterUploadMutation {
	m := &VoterUploadMutation{
		config:        c,
		op:            op,
		typ:           TypeVoterUpload,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withVoterUploadID sets the ID field of the mutation.
func withVoterUploadID(id string) voteruploadOption {
	return func(m *VoterUploadMutation) {
		var (
			err   error
			once  sync.Once
			value *VoterUpload
		)
		m.oldValue = func(ctx context.Context) (*VoterUpload, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().VoterUpload.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withVoterUpload sets the old VoterUpload of the mutation.
func withVoterUpload(node *VoterUpload) voteruploadOption {
	return func(m *VoterUploadMutation) {
		m.oldValue = func(context.Context) (*VoterUpload, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m VoterUploadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m VoterUploadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of VoterUpload entities.
func (m *VoterUploadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *VoterUploadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *VoterUploadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().VoterUpload.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAdminID sets the "admin_id" field.
func (m *VoterUploadMutation) SetAdminID(s string) {
	m.admin = &s
}

// AdminID returns the value of the "admin_id" field in the mutation.
func (m *VoterUploadMutation) AdminID() (r string, exists bool) {
	v := m.admin
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminID returns the old "admin_id" field's value of the VoterUpload entity.
// If the VoterUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterUploadMutation) OldAdminID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminID: %w", err)
	}
	return oldValue.AdminID, nil
}

// ResetAdminID resets all changes to the "admin_id" field.
func (m *VoterUploadMutation) ResetAdminID() {
	m.admin = nil
}

// SetFilePath sets the "file_path" field.
func (m *VoterUploadMutation) SetFilePath(s string) {
	m.file_path = &s
}

// FilePath returns the value of the "file_path" field in the mutation.
func (m *VoterUploadMutation) FilePath() (r string, exists bool) {
	v := m.file_path
	if v == nil {
		return
	}
	return *v, true
}

// OldFilePath returns the old "file_path" field's value of the VoterUpload entity.
// If the VoterUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterUploadMutation) OldFilePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilePath: %w", err)
	}
	return oldValue.FilePath, nil
}

// ResetFilePath resets all changes to the "file_path" field.
func (m *VoterUploadMutation) ResetFilePath() {
	m.file_path = nil
}

// SetFileExt sets the "file_ext" field.
func (m *VoterUploadMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *VoterUploadMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the VoterUpload entity.
// If the VoterUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterUploadMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *VoterUploadMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetStatus sets the "status" field.
func (m *VoterUploadMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *VoterUploadMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the VoterUpload entity.
// If the VoterUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterUploadMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *VoterUploadMutation) ResetStatus() {
	m.status = nil
}

// SetTotalRecords sets the "total_records" field.
func (m *VoterUploadMutation) SetTotalRecords(i int) {
	m.total_records = &i
	m.addtotal_records = nil
}

// TotalRecords returns the value of the "total_records" field in the mutation.
func (m *VoterUploadMutation) TotalRecords() (r int, exists bool) {
	v := m.total_records
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRecords returns the old "total_records" field's value of the VoterUpload entity.
// If the VoterUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterUploadMutation) OldTotalRecords(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRecords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRecords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRecords: %w", err)
	}
	return oldValue.TotalRecords, nil
}

// AddTotalRecords adds i to the "total_records" field.
func (m *VoterUploadMutation) AddTotalRecords(i int) {
	if m.addtotal_records != nil {
		*m.addtotal_records += i
	} else {
		m.addtotal_records = &i
	}
}

// AddedTotalRecords returns the value that was added to the "total_records" field in this mutation.
func (m *VoterUploadMutation) AddedTotalRecords() (r int, exists bool) {
	v := m.addtotal_records
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalRecords clears the value of the "total_records" field.
func (m *VoterUploadMutation) ClearTotalRecords() {
	m.total_records = nil
	m.addtotal_records = nil
	m.clearedFields[voterupload.FieldTotalRecords] = struct{}{}
}

// TotalRecordsCleared returns if the "total_records" field was cleared in this mutation.
func (m *VoterUploadMutation) TotalRecordsCleared() bool {
	_, ok := m.clearedFields[voterupload.FieldTotalRecords]
	return ok
}

// ResetTotalRecords resets all changes to the "total_records" field.
func (m *VoterUploadMutation) ResetTotalRecords() {
	m.total_records = nil
	m.addtotal_records = nil
	delete(m.clearedFields, voterupload.FieldTotalRecords)
}

// SetProcessedRecords sets the "processed_records" field.
func (m *VoterUploadMutation) SetProcessedRecords(i int) {
	m.processed_records = &i
	m.addprocessed_records = nil
}

// ProcessedRecords returns the value of the "processed_records" field in the mutation.
func (m *VoterUploadMutation) ProcessedRecords() (r int, exists bool) {
	v := m.processed_records
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedRecords returns the old "processed_records" field's value of the VoterUpload entity.
// If the VoterUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterUploadMutation) OldProcessedRecords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedRecords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedRecords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedRecords: %w", err)
	}
	return oldValue.ProcessedRecords, nil
}

// AddProcessedRecords adds i to the "processed_records" field.
func (m *VoterUploadMutation) AddProcessedRecords(i int) {
	if m.addprocessed_records != nil {
		*m.addprocessed_records += i
	} else {
		m.addprocessed_records = &i
	}
}

// AddedProcessedRecords returns the value that was added to the "processed_records" field in this mutation.
func (m *VoterUploadMutation) AddedProcessedRecords() (r int, exists bool) {
	v := m.addprocessed_records
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedRecords resets all changes to the "processed_records" field.
func (m *VoterUploadMutation) ResetProcessedRecords() {
	m.processed_records = nil
	m.addprocessed_records = nil
}

// SetFailureCode sets the "failure_code" field.
func (m *VoterUploadMutation) SetFailureCode(s string) {
	m.failure_code = &s
}

// FailureCode returns the value of the "failure_code" field in the mutation.
func (m *VoterUploadMutation) FailureCode() (r string, exists bool) {
	v := m.failure_code
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCode returns the old "failure_code" field's value of the VoterUpload entity.
// If the VoterUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterUploadMutation) OldFailureCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCode: %w", err)
	}
	return oldValue.FailureCode, nil
}

// ClearFailureCode clears the value of the "failure_code" field.
func (m *VoterUploadMutation) ClearFailureCode() {
	m.failure_code = nil
	m.clearedFields[voterupload.FieldFailureCode] = struct{}{}
}

// FailureCodeCleared returns if the "failure_code" field was cleared in this mutation.
func (m *VoterUploadMutation) FailureCodeCleared() bool {
	_, ok := m.clearedFields[voterupload.FieldFailureCode]
	return ok
}

// ResetFailureCode resets all changes to the "failure_code" field.
func (m *VoterUploadMutation) ResetFailureCode() {
	m.failure_code = nil
	delete(m.clearedFields, voterupload.FieldFailureCode)
}

// SetReason sets the "reason" field.
func (m *VoterUploadMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *VoterUploadMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the VoterUpload entity.
// If the VoterUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterUploadMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *VoterUploadMutation) ResetReason() {
	m.reason = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *VoterUploadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *VoterUploadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the VoterUpload entity.
// If the VoterUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterUploadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *VoterUploadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *VoterUploadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *VoterUploadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the VoterUpload entity.
// If the VoterUpload object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *VoterUploadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *VoterUploadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearAdmin clears the "admin" edge to the Admin entity.
func (m *VoterUploadMutation) ClearAdmin() {
	m.clearedadmin = true
	m.clearedFields[voterupload.FieldAdminID] = struct{}{}
}

// AdminCleared reports if the "admin" edge to the Admin entity was cleared.
func (m *VoterUploadMutation) AdminCleared() bool {
	return m.clearedadmin
}

// AdminIDs returns the "admin" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AdminID instead. It exists only for internal usage by the builders.
func (m *VoterUploadMutation) AdminIDs() (ids []string) {
	if id := m.admin; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAdmin resets all changes to the "admin" edge.
func (m *VoterUploadMutation) ResetAdmin() {
	m.admin = nil
	m.clearedadmin = false
}

// Where appends a list predicates to the VoterUploadMutation builder.
func (m *VoterUploadMutation) Where(ps ...predicate.VoterUpload) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the VoterUploadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *VoterUploadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.VoterUpload, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *VoterUploadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *VoterUploadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (VoterUpload).
func (m *VoterUploadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *VoterUploadMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.admin != nil {
		fields = append(fields, voterupload.FieldAdminID)
	}
	if m.file_path != nil {
		fields = append(fields, voterupload.FieldFilePath)
	}
	if m.file_ext != nil {
		fields = append(fields, voterupload.FieldFileExt)
	}
	if m.status != nil {
		fields = append(fields, voterupload.FieldStatus)
	}
	if m.total_records != nil {
		fields = append(fields, voterupload.FieldTotalRecords)
	}
	if m.processed_records != nil {
		fields = append(fields, voterupload.FieldProcessedRecords)
	}
	if m.failure_code != nil {
		fields = append(fields, voterupload.FieldFailureCode)
	}
	if m.reason != nil {
		fields = append(fields, voterupload.FieldReason)
	}
	if m.created_at != nil {
		fields = append(fields, voterupload.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, voterupload.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *VoterUploadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case voterupload.FieldAdminID:
		return m.AdminID()
	case voterupload.FieldFilePath:
		return m.FilePath()
	case voterupload.FieldFileExt:
		return m.FileExt()
	case voterupload.FieldStatus:
		return m.Status()
	case voterupload.FieldTotalRecords:
		return m.TotalRecords()
	case voterupload.FieldProcessedRecords:
		return m.ProcessedRecords()
	case voterupload.FieldFailureCode:
		return m.FailureCode()
	case voterupload.FieldReason:
		return m.Reason()
	case voterupload.FieldCreatedAt:
		return m.CreatedAt()
	case voterupload.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *VoterUploadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case voterupload.FieldAdminID:
		return m.OldAdminID(ctx)
	case voterupload.FieldFilePath:
		return m.OldFilePath(ctx)
	case voterupload.FieldFileExt:
		return m.OldFileExt(ctx)
	case voterupload.FieldStatus:
		return m.OldStatus(ctx)
	case voterupload.FieldTotalRecords:
		return m.OldTotalRecords(ctx)
	case voterupload.FieldProcessedRecords:
		return m.OldProcessedRecords(ctx)
	case voterupload.FieldFailureCode:
		return m.OldFailureCode(ctx)
	case voterupload.FieldReason:
		return m.OldReason(ctx)
	case voterupload.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case voterupload.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown VoterUpload field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoterUploadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case voterupload.FieldAdminID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminID(v)
		return nil
	case voterupload.FieldFilePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilePath(v)
		return nil
	case voterupload.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case voterupload.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case voterupload.FieldTotalRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRecords(v)
		return nil
	case voterupload.FieldProcessedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedRecords(v)
		return nil
	case voterupload.FieldFailureCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCode(v)
		return nil
	case voterupload.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case voterupload.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case voterupload.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown VoterUpload field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *VoterUploadMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_records != nil {
		fields = append(fields, voterupload.FieldTotalRecords)
	}
	if m.addprocessed_records != nil {
		fields = append(fields, voterupload.FieldProcessedRecords)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *VoterUploadMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case voterupload.FieldTotalRecords:
		return m.AddedTotalRecords()
	case voterupload.FieldProcessedRecords:
		return m.AddedProcessedRecords()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *VoterUploadMutation) AddField(name string, value ent.Value) error {
	switch name {
	case voterupload.FieldTotalRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRecords(v)
		return nil
	case voterupload.FieldProcessedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedRecords(v)
		return nil
	}
	return fmt.Errorf("unknown VoterUpload numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *VoterUploadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(voterupload.FieldTotalRecords) {
		fields = append(fields, voterupload.FieldTotalRecords)
	}
	if m.FieldCleared(voterupload.FieldFailureCode) {
		fields = append(fields, voterupload.FieldFailureCode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *VoterUploadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *VoterUploadMutation) ClearField(name string) error {
	switch name {
	case voterupload.FieldTotalRecords:
		m.ClearTotalRecords()
		return nil
	case voterupload.FieldFailureCode:
		m.ClearFailureCode()
		return nil
	}
	return fmt.Errorf("unknown VoterUpload nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *VoterUploadMutation) ResetField(name string) error {
	switch name {
	case voterupload.FieldAdminID:
		m.ResetAdminID()
		return nil
	case voterupload.FieldFilePath:
		m.ResetFilePath()
		return nil
	case voterupload.FieldFileExt:
		m.ResetFileExt()
		return nil
	case voterupload.FieldStatus:
		m.ResetStatus()
		return nil
	case voterupload.FieldTotalRecords:
		m.ResetTotalRecords()
		return nil
	case voterupload.FieldProcessedRecords:
		m.ResetProcessedRecords()
		return nil
	case voterupload.FieldFailureCode:
		m.ResetFailureCode()
		return nil
	case voterupload.FieldReason:
		m.ResetReason()
		return nil
	case voterupload.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case voterupload.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown VoterUpload field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *VoterUploadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.admin != nil {
		edges = append(edges, voterupload.EdgeAdmin)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *VoterUploadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case voterupload.EdgeAdmin:
		if id := m.admin; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *VoterUploadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *VoterUploadMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *VoterUploadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedadmin {
		edges = append(edges, voterupload.EdgeAdmin)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *VoterUploadMutation) EdgeCleared(name string) bool {
	switch name {
	case voterupload.EdgeAdmin:
		return m.clearedadmin
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *VoterUploadMutation) ClearEdge(name string) error {
	switch name {
	case voterupload.EdgeAdmin:
		m.ClearAdmin()
		return nil
	}
	return fmt.Errorf("unknown VoterUpload unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *VoterUploadMutation) ResetEdge(name string) error {
	switch name {
	case voterupload.EdgeAdmin:
		m.ResetAdmin()
		return nil
	}
	return fmt.Errorf("unknown VoterUpload edge %s", name)
}
