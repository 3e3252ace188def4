// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/davidolu/elector-registry/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/davidolu/elector-registry/gen/ent/admin"
	"github.com/davidolu/elector-registry/gen/ent/elector"
	"github.com/davidolu/elector-registry/gen/ent/voterupload"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Admin is the client for interacting with the Admin builders.
	Admin *AdminClient
	// Elector is the client for interacting with the Elector builders.
	Elector *ElectorClient
	// VoterUpload is the client for interacting with the VoterUpload builders.
	VoterUpload *VoterUploadClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Admin = NewAdminClient(c.config)
	c.Elector = NewElectorClient(c.config)
	c.VoterUpload = NewVoterUploadClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Admin:       NewAdminClient(cfg),
		Elector:     NewElectorClient(cfg),
		VoterUpload: NewVoterUploadClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Admin:       NewAdminClient(cfg),
		Elector:     NewElectorClient(cfg),
		VoterUpload: NewVoterUploadClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Admin.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.Admin.Use(hooks...)
	c.Elector.Use(hooks...)
	c.VoterUpload.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Admin.Intercept(interceptors...)
	c.Elector.Intercept(interceptors...)
	c.VoterUpload.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AdminMutation:
		return c.Admin.mutate(ctx, m)
	case *ElectorMutation:
		return c.Elector.mutate(ctx, m)
	case *VoterUploadMutation:
		return c.VoterUpload.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AdminClient is a client for the Admin schema.
type AdminClient struct {
	config
}

// NewAdminClient returns a client for the Admin from the given config.
func NewAdminClient(c config) *AdminClient {
	return &AdminClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `admin.Hooks(f(g(h())))`.
func (c *AdminClient) Use(hooks ...Hook) {
	c.hooks.Admin = append(c.hooks.Admin, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `admin.Intercept(f(g(h())))`.
func (c *AdminClient) Intercept(interceptors ...Interceptor) {
	c.inters.Admin = append(c.inters.Admin, interceptors...)
}

// Create returns a builder for creating a Admin entity.
func (c *AdminClient) Create() *AdminCreate {
	mutation := newAdminMutation(c.config, OpCreate)
	return &AdminCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Admin entities.
func (c *AdminClient) CreateBulk(builders ...*AdminCreate) *AdminCreateBulk {
	return &AdminCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AdminClient) MapCreateBulk(slice any, setFunc func(*AdminCreate, int)) *AdminCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AdminCreateBulk{err: fmt.Errorf("calling to AdminClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AdminCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AdminCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Admin.
func (c *AdminClient) Update() *AdminUpdate {
	mutation := newAdminMutation(c.config, OpUpdate)
	return &AdminUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AdminClient) UpdateOne(_m *Admin) *AdminUpdateOne {
	mutation := newAdminMutation(c.config, OpUpdateOne, withAdmin(_m))
	return &AdminUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AdminClient) UpdateOneID(id string) *AdminUpdateOne {
	mutation := newAdminMutation(c.config, OpUpdateOne, withAdminID(id))
	return &AdminUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Admin.
func (c *AdminClient) Delete() *AdminDelete {
	mutation := newAdminMutation(c.config, OpDelete)
	return &AdminDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AdminClient) DeleteOne(_m *Admin) *AdminDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AdminClient) DeleteOneID(id string) *AdminDeleteOne {
	builder := c.Delete().Where(admin.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AdminDeleteOne{builder}
}

// Query returns a query builder for Admin.
func (c *AdminClient) Query() *AdminQuery {
	return &AdminQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAdmin},
		inters: c.Interceptors(),
	}
}

// Get returns a Admin entity by its id.
func (c *AdminClient) Get(ctx context.Context, id string) (*Admin, error) {
	return c.Query().Where(admin.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AdminClient) GetX(ctx context.Context, id string) *Admin {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUploads queries the uploads edge of a Admin.
func (c *AdminClient) QueryUploads(_m *Admin) *VoterUploadQuery {
	query := (&VoterUploadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(admin.Table, admin.FieldID, id),
			sqlgraph.To(voterupload.Table, voterupload.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, admin.UploadsTable, admin.UploadsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryElectors queries the electors edge of a Admin.
func (c *AdminClient) QueryElectors(_m *Admin) *ElectorQuery {
	query := (&ElectorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(admin.Table, admin.FieldID, id),
			sqlgraph.To(elector.Table, elector.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, admin.ElectorsTable, admin.ElectorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AdminClient) Hooks() []Hook {
	return c.hooks.Admin
}

// Interceptors returns the client interceptors.
func (c *AdminClient) Interceptors() []Interceptor {
	return c.inters.Admin
}

func (c *AdminClient) mutate(ctx context.Context, m *AdminMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AdminCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AdminUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AdminUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AdminDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Admin mutation op: %q", m.Op())
	}
}

// ElectorClient is a client for the Elector schema.
type ElectorClient struct {
	config
}

// NewElectorClient returns a client for the Elector from the given config.
func NewElectorClient(c config) *ElectorClient {
	return &ElectorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `elector.Hooks(f(g(h())))`.
func (c *ElectorClient) Use(hooks ...Hook) {
	c.hooks.Elector = append(c.hooks.Elector, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `elector.Intercept(f(g(h())))`.
func (c *ElectorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Elector = append(c.inters.Elector, interceptors...)
}

// Create returns a builder for creating a Elector entity.
func (c *ElectorClient) Create() *ElectorCreate {
	mutation := newElectorMutation(c.config, OpCreate)
	return &ElectorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Elector entities.
func (c *ElectorClient) CreateBulk(builders ...*ElectorCreate) *ElectorCreateBulk {
	return &ElectorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ElectorClient) MapCreateBulk(slice any, setFunc func(*ElectorCreate, int)) *ElectorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ElectorCreateBulk{err: fmt.Errorf("calling to ElectorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ElectorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ElectorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Elector.
func (c *ElectorClient) Update() *ElectorUpdate {
	mutation := newElectorMutation(c.config, OpUpdate)
	return &ElectorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ElectorClient) UpdateOne(_m *Elector) *ElectorUpdateOne {
	mutation := newElectorMutation(c.config, OpUpdateOne, withElector(_m))
	return &ElectorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ElectorClient) UpdateOneID(id string) *ElectorUpdateOne {
	mutation := newElectorMutation(c.config, OpUpdateOne, withElectorID(id))
	return &ElectorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Elector.
func (c *ElectorClient) Delete() *ElectorDelete {
	mutation := newElectorMutation(c.config, OpDelete)
	return &ElectorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ElectorClient) DeleteOne(_m *Elector) *ElectorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ElectorClient) DeleteOneID(id string) *ElectorDeleteOne {
	builder := c.Delete().Where(elector.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ElectorDeleteOne{builder}
}

// Query returns a query builder for Elector.
func (c *ElectorClient) Query() *ElectorQuery {
	return &ElectorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeElector},
		inters: c.Interceptors(),
	}
}

// Get returns a Elector entity by its id.
func (c *ElectorClient) Get(ctx context.Context, id string) (*Elector, error) {
	return c.Query().Where(elector.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ElectorClient) GetX(ctx context.Context, id string) *Elector {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAdmin queries the admin edge of a Elector.
func (c *ElectorClient) QueryAdmin(_m *Elector) *AdminQuery {
	query := (&AdminClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(elector.Table, elector.FieldID, id),
			sqlgraph.To(admin.Table, admin.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, elector.AdminTable, elector.AdminColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ElectorClient) Hooks() []Hook {
	return c.hooks.Elector
}

// Interceptors returns the client interceptors.
func (c *ElectorClient) Interceptors() []Interceptor {
	return c.inters.Elector
}

func (c *ElectorClient) mutate(ctx context.Context, m *ElectorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ElectorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ElectorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ElectorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ElectorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Elector mutation op: %q", m.Op())
	}
}

// VoterUploadClient is a client for the VoterUpload schema.
type VoterUploadClient struct {
	config
}

// NewVoterUploadClient returns a client for the VoterUpload from the given config.
func NewVoterUploadClient(c config) *VoterUploadClient {
	return &VoterUploadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `voterupload.Hooks(f(g(h())))`.
func (c *VoterUploadClient) Use(hooks ...Hook) {
	c.hooks.VoterUpload = append(c.hooks.VoterUpload, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `voterupload.Intercept(f(g(h())))`.
func (c *VoterUploadClient) Intercept(interceptors ...Interceptor) {
	c.inters.VoterUpload = append(c.inters.VoterUpload, interceptors...)
}

// Create returns a builder for creating a VoterUpload entity.
func (c *VoterUploadClient) Create() *VoterUploadCreate {
	mutation := newVoterUploadMutation(c.config, OpCreate)
	return &VoterUploadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of VoterUpload entities.
func (c *VoterUploadClient) CreateBulk(builders ...*VoterUploadCreate) *VoterUploadCreateBulk {
	return &VoterUploadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VoterUploadClient) MapCreateBulk(slice any, setFunc func(*VoterUploadCreate, int)) *VoterUploadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VoterUploadCreateBulk{err: fmt.Errorf("calling to VoterUploadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VoterUploadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VoterUploadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for VoterUpload.
func (c *VoterUploadClient) Update() *VoterUploadUpdate {
	mutation := newVoterUploadMutation(c.config, OpUpdate)
	return &VoterUploadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VoterUploadClient) UpdateOne(_m *VoterUpload) *VoterUploadUpdateOne {
	mutation := newVoterUploadMutation(c.config, OpUpdateOne, withVoterUpload(_m))
	return &VoterUploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VoterUploadClient) UpdateOneID(id string) *VoterUploadUpdateOne {
	mutation := newVoterUploadMutation(c.config, OpUpdateOne, withVoterUploadID(id))
	return &VoterUploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for VoterUpload.
func (c *VoterUploadClient) Delete() *VoterUploadDelete {
	mutation := newVoterUploadMutation(c.config, OpDelete)
	return &VoterUploadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VoterUploadClient) DeleteOne(_m *VoterUpload) *VoterUploadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VoterUploadClient) DeleteOneID(id string) *VoterUploadDeleteOne {
	builder := c.Delete().Where(voterupload.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VoterUploadDeleteOne{builder}
}

// Query returns a query builder for VoterUpload.
func (c *VoterUploadClient) Query() *VoterUploadQuery {
	return &VoterUploadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVoterUpload},
		inters: c.Interceptors(),
	}
}

// Get returns a VoterUpload entity by its id.
func (c *VoterUploadClient) Get(ctx context.Context, id string) (*VoterUpload, error) {
	return c.Query().Where(voterupload.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VoterUploadClient) GetX(ctx context.Context, id string) *VoterUpload {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAdmin queries the admin edge of a VoterUpload.
func (c *VoterUploadClient) QueryAdmin(_m *VoterUpload) *AdminQuery {
	query := (&AdminClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(voterupload.Table, voterupload.FieldID, id),
			sqlgraph.To(admin.Table, admin.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, voterupload.AdminTable, voterupload.AdminColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VoterUploadClient) Hooks() []Hook {
	return c.hooks.VoterUpload
}

// Interceptors returns the client interceptors.
func (c *VoterUploadClient) Interceptors() []Interceptor {
	return c.inters.VoterUpload
}

func (c *VoterUploadClient) mutate(ctx context.Context, m *VoterUploadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VoterUploadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VoterUploadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VoterUploadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VoterUploadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown VoterUpload mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Admin, Elector, VoterUpload []ent.Hook
	}
	inters struct {
		Admin, Elector, VoterUpload []ent.Interceptor
	}
)
