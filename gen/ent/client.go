// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/campuspass/campuspass/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/campuspass/campuspass/gen/ent/application"
	"github.com/campuspass/campuspass/gen/ent/jobrecord"
	"github.com/campuspass/campuspass/gen/ent/pass"
	"github.com/campuspass/campuspass/gen/ent/queuetask"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Application is the client for interacting with the Application builders.
	Application *ApplicationClient
	// JobRecord is the client for interacting with the JobRecord builders.
	JobRecord *JobRecordClient
	// Pass is the client for interacting with the Pass builders.
	Pass *PassClient
	// QueueTask is the client for interacting with the QueueTask builders.
	QueueTask *QueueTaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Application = NewApplicationClient(c.config)
	c.JobRecord = NewJobRecordClient(c.config)
	c.Pass = NewPassClient(c.config)
	c.QueueTask = NewQueueTaskClient(c.config)
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
		Application: NewApplicationClient(cfg),
		JobRecord:   NewJobRecordClient(cfg),
		Pass:        NewPassClient(cfg),
		QueueTask:   NewQueueTaskClient(cfg),
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
		Application: NewApplicationClient(cfg),
		JobRecord:   NewJobRecordClient(cfg),
		Pass:        NewPassClient(cfg),
		QueueTask:   NewQueueTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Application.
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
	c.Application.Use(hooks...)
	c.JobRecord.Use(hooks...)
	c.Pass.Use(hooks...)
	c.QueueTask.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Application.Intercept(interceptors...)
	c.JobRecord.Intercept(interceptors...)
	c.Pass.Intercept(interceptors...)
	c.QueueTask.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApplicationMutation:
		return c.Application.mutate(ctx, m)
	case *JobRecordMutation:
		return c.JobRecord.mutate(ctx, m)
	case *PassMutation:
		return c.Pass.mutate(ctx, m)
	case *QueueTaskMutation:
		return c.QueueTask.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApplicationClient is a client for the Application schema.
type ApplicationClient struct {
	config
}

// NewApplicationClient returns a client for the Application from the given config.
func NewApplicationClient(c config) *ApplicationClient {
	return &ApplicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `application.Hooks(f(g(h())))`.
func (c *ApplicationClient) Use(hooks ...Hook) {
	c.hooks.Application = append(c.hooks.Application, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `application.Intercept(f(g(h())))`.
func (c *ApplicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Application = append(c.inters.Application, interceptors...)
}

// Create returns a builder for creating a Application entity.
func (c *ApplicationClient) Create() *ApplicationCreate {
	mutation := newApplicationMutation(c.config, OpCreate)
	return &ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Application entities.
func (c *ApplicationClient) CreateBulk(builders ...*ApplicationCreate) *ApplicationCreateBulk {
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApplicationClient) MapCreateBulk(slice any, setFunc func(*ApplicationCreate, int)) *ApplicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApplicationCreateBulk{err: fmt.Errorf("calling to ApplicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApplicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApplicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Application.
func (c *ApplicationClient) Update() *ApplicationUpdate {
	mutation := newApplicationMutation(c.config, OpUpdate)
	return &ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApplicationClient) UpdateOne(_m *Application) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplication(_m))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApplicationClient) UpdateOneID(id uuid.UUID) *ApplicationUpdateOne {
	mutation := newApplicationMutation(c.config, OpUpdateOne, withApplicationID(id))
	return &ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Application.
func (c *ApplicationClient) Delete() *ApplicationDelete {
	mutation := newApplicationMutation(c.config, OpDelete)
	return &ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApplicationClient) DeleteOne(_m *Application) *ApplicationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApplicationClient) DeleteOneID(id uuid.UUID) *ApplicationDeleteOne {
	builder := c.Delete().Where(application.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApplicationDeleteOne{builder}
}

// Query returns a query builder for Application.
func (c *ApplicationClient) Query() *ApplicationQuery {
	return &ApplicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApplication},
		inters: c.Interceptors(),
	}
}

// Get returns a Application entity by its id.
func (c *ApplicationClient) Get(ctx context.Context, id uuid.UUID) (*Application, error) {
	return c.Query().Where(application.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApplicationClient) GetX(ctx context.Context, id uuid.UUID) *Application {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPass queries the pass edge of a Application.
func (c *ApplicationClient) QueryPass(_m *Application) *PassQuery {
	query := (&PassClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(application.Table, application.FieldID, id),
			sqlgraph.To(pass.Table, pass.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, application.PassTable, application.PassColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApplicationClient) Hooks() []Hook {
	return c.hooks.Application
}

// Interceptors returns the client interceptors.
func (c *ApplicationClient) Interceptors() []Interceptor {
	return c.inters.Application
}

func (c *ApplicationClient) mutate(ctx context.Context, m *ApplicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Application mutation op: %q", m.Op())
	}
}

// JobRecordClient is a client for the JobRecord schema.
type JobRecordClient struct {
	config
}

// NewJobRecordClient returns a client for the JobRecord from the given config.
func NewJobRecordClient(c config) *JobRecordClient {
	return &JobRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobrecord.Hooks(f(g(h())))`.
func (c *JobRecordClient) Use(hooks ...Hook) {
	c.hooks.JobRecord = append(c.hooks.JobRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobrecord.Intercept(f(g(h())))`.
func (c *JobRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobRecord = append(c.inters.JobRecord, interceptors...)
}

// Create returns a builder for creating a JobRecord entity.
func (c *JobRecordClient) Create() *JobRecordCreate {
	mutation := newJobRecordMutation(c.config, OpCreate)
	return &JobRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobRecord entities.
func (c *JobRecordClient) CreateBulk(builders ...*JobRecordCreate) *JobRecordCreateBulk {
	return &JobRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobRecordClient) MapCreateBulk(slice any, setFunc func(*JobRecordCreate, int)) *JobRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobRecordCreateBulk{err: fmt.Errorf("calling to JobRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobRecord.
func (c *JobRecordClient) Update() *JobRecordUpdate {
	mutation := newJobRecordMutation(c.config, OpUpdate)
	return &JobRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobRecordClient) UpdateOne(_m *JobRecord) *JobRecordUpdateOne {
	mutation := newJobRecordMutation(c.config, OpUpdateOne, withJobRecord(_m))
	return &JobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobRecordClient) UpdateOneID(id uuid.UUID) *JobRecordUpdateOne {
	mutation := newJobRecordMutation(c.config, OpUpdateOne, withJobRecordID(id))
	return &JobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobRecord.
func (c *JobRecordClient) Delete() *JobRecordDelete {
	mutation := newJobRecordMutation(c.config, OpDelete)
	return &JobRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobRecordClient) DeleteOne(_m *JobRecord) *JobRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobRecordClient) DeleteOneID(id uuid.UUID) *JobRecordDeleteOne {
	builder := c.Delete().Where(jobrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobRecordDeleteOne{builder}
}

// Query returns a query builder for JobRecord.
func (c *JobRecordClient) Query() *JobRecordQuery {
	return &JobRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a JobRecord entity by its id.
func (c *JobRecordClient) Get(ctx context.Context, id uuid.UUID) (*JobRecord, error) {
	return c.Query().Where(jobrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobRecordClient) GetX(ctx context.Context, id uuid.UUID) *JobRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *JobRecordClient) Hooks() []Hook {
	return c.hooks.JobRecord
}

// Interceptors returns the client interceptors.
func (c *JobRecordClient) Interceptors() []Interceptor {
	return c.inters.JobRecord
}

func (c *JobRecordClient) mutate(ctx context.Context, m *JobRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobRecord mutation op: %q", m.Op())
	}
}

// PassClient is a client for the Pass schema.
type PassClient struct {
	config
}

// NewPassClient returns a client for the Pass from the given config.
func NewPassClient(c config) *PassClient {
	return &PassClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `pass.Hooks(f(g(h())))`.
func (c *PassClient) Use(hooks ...Hook) {
	c.hooks.Pass = append(c.hooks.Pass, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `pass.Intercept(f(g(h())))`.
func (c *PassClient) Intercept(interceptors ...Interceptor) {
	c.inters.Pass = append(c.inters.Pass, interceptors...)
}

// Create returns a builder for creating a Pass entity.
func (c *PassClient) Create() *PassCreate {
	mutation := newPassMutation(c.config, OpCreate)
	return &PassCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Pass entities.
func (c *PassClient) CreateBulk(builders ...*PassCreate) *PassCreateBulk {
	return &PassCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PassClient) MapCreateBulk(slice any, setFunc func(*PassCreate, int)) *PassCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PassCreateBulk{err: fmt.Errorf("calling to PassClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PassCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PassCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Pass.
func (c *PassClient) Update() *PassUpdate {
	mutation := newPassMutation(c.config, OpUpdate)
	return &PassUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PassClient) UpdateOne(_m *Pass) *PassUpdateOne {
	mutation := newPassMutation(c.config, OpUpdateOne, withPass(_m))
	return &PassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PassClient) UpdateOneID(id uuid.UUID) *PassUpdateOne {
	mutation := newPassMutation(c.config, OpUpdateOne, withPassID(id))
	return &PassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Pass.
func (c *PassClient) Delete() *PassDelete {
	mutation := newPassMutation(c.config, OpDelete)
	return &PassDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PassClient) DeleteOne(_m *Pass) *PassDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PassClient) DeleteOneID(id uuid.UUID) *PassDeleteOne {
	builder := c.Delete().Where(pass.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PassDeleteOne{builder}
}

// Query returns a query builder for Pass.
func (c *PassClient) Query() *PassQuery {
	return &PassQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePass},
		inters: c.Interceptors(),
	}
}

// Get returns a Pass entity by its id.
func (c *PassClient) Get(ctx context.Context, id uuid.UUID) (*Pass, error) {
	return c.Query().Where(pass.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PassClient) GetX(ctx context.Context, id uuid.UUID) *Pass {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a Pass.
func (c *PassClient) QueryApplication(_m *Pass) *ApplicationQuery {
	query := (&ApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(pass.Table, pass.FieldID, id),
			sqlgraph.To(application.Table, application.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, pass.ApplicationTable, pass.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PassClient) Hooks() []Hook {
	return c.hooks.Pass
}

// Interceptors returns the client interceptors.
func (c *PassClient) Interceptors() []Interceptor {
	return c.inters.Pass
}

func (c *PassClient) mutate(ctx context.Context, m *PassMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PassCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PassUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PassUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PassDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Pass mutation op: %q", m.Op())
	}
}

// QueueTaskClient is a client for the QueueTask schema.
type QueueTaskClient struct {
	config
}

// NewQueueTaskClient returns a client for the QueueTask from the given config.
func NewQueueTaskClient(c config) *QueueTaskClient {
	return &QueueTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `queuetask.Hooks(f(g(h())))`.
func (c *QueueTaskClient) Use(hooks ...Hook) {
	c.hooks.QueueTask = append(c.hooks.QueueTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `queuetask.Intercept(f(g(h())))`.
func (c *QueueTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.QueueTask = append(c.inters.QueueTask, interceptors...)
}

// Create returns a builder for creating a QueueTask entity.
func (c *QueueTaskClient) Create() *QueueTaskCreate {
	mutation := newQueueTaskMutation(c.config, OpCreate)
	return &QueueTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of QueueTask entities.
func (c *QueueTaskClient) CreateBulk(builders ...*QueueTaskCreate) *QueueTaskCreateBulk {
	return &QueueTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *QueueTaskClient) MapCreateBulk(slice any, setFunc func(*QueueTaskCreate, int)) *QueueTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &QueueTaskCreateBulk{err: fmt.Errorf("calling to QueueTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*QueueTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &QueueTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for QueueTask.
func (c *QueueTaskClient) Update() *QueueTaskUpdate {
	mutation := newQueueTaskMutation(c.config, OpUpdate)
	return &QueueTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *QueueTaskClient) UpdateOne(_m *QueueTask) *QueueTaskUpdateOne {
	mutation := newQueueTaskMutation(c.config, OpUpdateOne, withQueueTask(_m))
	return &QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *QueueTaskClient) UpdateOneID(id uuid.UUID) *QueueTaskUpdateOne {
	mutation := newQueueTaskMutation(c.config, OpUpdateOne, withQueueTaskID(id))
	return &QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for QueueTask.
func (c *QueueTaskClient) Delete() *QueueTaskDelete {
	mutation := newQueueTaskMutation(c.config, OpDelete)
	return &QueueTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *QueueTaskClient) DeleteOne(_m *QueueTask) *QueueTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *QueueTaskClient) DeleteOneID(id uuid.UUID) *QueueTaskDeleteOne {
	builder := c.Delete().Where(queuetask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &QueueTaskDeleteOne{builder}
}

// Query returns a query builder for QueueTask.
func (c *QueueTaskClient) Query() *QueueTaskQuery {
	return &QueueTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeQueueTask},
		inters: c.Interceptors(),
	}
}

// Get returns a QueueTask entity by its id.
func (c *QueueTaskClient) Get(ctx context.Context, id uuid.UUID) (*QueueTask, error) {
	return c.Query().Where(queuetask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *QueueTaskClient) GetX(ctx context.Context, id uuid.UUID) *QueueTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *QueueTaskClient) Hooks() []Hook {
	return c.hooks.QueueTask
}

// Interceptors returns the client interceptors.
func (c *QueueTaskClient) Interceptors() []Interceptor {
	return c.inters.QueueTask
}

func (c *QueueTaskClient) mutate(ctx context.Context, m *QueueTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&QueueTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&QueueTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&QueueTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&QueueTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown QueueTask mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Application, JobRecord, Pass, QueueTask []ent.Hook
	}
	inters struct {
		Application, JobRecord, Pass, QueueTask []ent.Interceptor
	}
)
