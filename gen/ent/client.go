// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/loanguard/loanguard/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/loanguard/loanguard/gen/ent/complianceevent"
	"github.com/loanguard/loanguard/gen/ent/loan"
	"github.com/loanguard/loanguard/gen/ent/requirement"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ComplianceEvent is the client for interacting with the ComplianceEvent builders.
	ComplianceEvent *ComplianceEventClient
	// Loan is the client for interacting with the Loan builders.
	Loan *LoanClient
	// Requirement is the client for interacting with the Requirement builders.
	Requirement *RequirementClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ComplianceEvent = NewComplianceEventClient(c.config)
	c.Loan = NewLoanClient(c.config)
	c.Requirement = NewRequirementClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ComplianceEvent: NewComplianceEventClient(cfg),
		Loan:            NewLoanClient(cfg),
		Requirement:     NewRequirementClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ComplianceEvent: NewComplianceEventClient(cfg),
		Loan:            NewLoanClient(cfg),
		Requirement:     NewRequirementClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ComplianceEvent.
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
	c.ComplianceEvent.Use(hooks...)
	c.Loan.Use(hooks...)
	c.Requirement.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ComplianceEvent.Intercept(interceptors...)
	c.Loan.Intercept(interceptors...)
	c.Requirement.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ComplianceEventMutation:
		return c.ComplianceEvent.mutate(ctx, m)
	case *LoanMutation:
		return c.Loan.mutate(ctx, m)
	case *RequirementMutation:
		return c.Requirement.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ComplianceEventClient is a client for the ComplianceEvent schema.
type ComplianceEventClient struct {
	config
}

// NewComplianceEventClient returns a client for the ComplianceEvent from the given config.
func NewComplianceEventClient(c config) *ComplianceEventClient {
	return &ComplianceEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `complianceevent.Hooks(f(g(h())))`.
func (c *ComplianceEventClient) Use(hooks ...Hook) {
	c.hooks.ComplianceEvent = append(c.hooks.ComplianceEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `complianceevent.Intercept(f(g(h())))`.
func (c *ComplianceEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ComplianceEvent = append(c.inters.ComplianceEvent, interceptors...)
}

// Create returns a builder for creating a ComplianceEvent entity.
func (c *ComplianceEventClient) Create() *ComplianceEventCreate {
	mutation := newComplianceEventMutation(c.config, OpCreate)
	return &ComplianceEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ComplianceEvent entities.
func (c *ComplianceEventClient) CreateBulk(builders ...*ComplianceEventCreate) *ComplianceEventCreateBulk {
	return &ComplianceEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ComplianceEventClient) MapCreateBulk(slice any, setFunc func(*ComplianceEventCreate, int)) *ComplianceEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ComplianceEventCreateBulk{err: fmt.Errorf("calling to ComplianceEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ComplianceEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ComplianceEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ComplianceEvent.
func (c *ComplianceEventClient) Update() *ComplianceEventUpdate {
	mutation := newComplianceEventMutation(c.config, OpUpdate)
	return &ComplianceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ComplianceEventClient) UpdateOne(_m *ComplianceEvent) *ComplianceEventUpdateOne {
	mutation := newComplianceEventMutation(c.config, OpUpdateOne, withComplianceEvent(_m))
	return &ComplianceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ComplianceEventClient) UpdateOneID(id uuid.UUID) *ComplianceEventUpdateOne {
	mutation := newComplianceEventMutation(c.config, OpUpdateOne, withComplianceEventID(id))
	return &ComplianceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ComplianceEvent.
func (c *ComplianceEventClient) Delete() *ComplianceEventDelete {
	mutation := newComplianceEventMutation(c.config, OpDelete)
	return &ComplianceEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ComplianceEventClient) DeleteOne(_m *ComplianceEvent) *ComplianceEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ComplianceEventClient) DeleteOneID(id uuid.UUID) *ComplianceEventDeleteOne {
	builder := c.Delete().Where(complianceevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ComplianceEventDeleteOne{builder}
}

// Query returns a query builder for ComplianceEvent.
func (c *ComplianceEventClient) Query() *ComplianceEventQuery {
	return &ComplianceEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComplianceEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ComplianceEvent entity by its id.
func (c *ComplianceEventClient) Get(ctx context.Context, id uuid.UUID) (*ComplianceEvent, error) {
	return c.Query().Where(complianceevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ComplianceEventClient) GetX(ctx context.Context, id uuid.UUID) *ComplianceEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLoan queries the loan edge of a ComplianceEvent.
func (c *ComplianceEventClient) QueryLoan(_m *ComplianceEvent) *LoanQuery {
	query := (&LoanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(complianceevent.Table, complianceevent.FieldID, id),
			sqlgraph.To(loan.Table, loan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, complianceevent.LoanTable, complianceevent.LoanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ComplianceEventClient) Hooks() []Hook {
	return c.hooks.ComplianceEvent
}

// Interceptors returns the client interceptors.
func (c *ComplianceEventClient) Interceptors() []Interceptor {
	return c.inters.ComplianceEvent
}

func (c *ComplianceEventClient) mutate(ctx context.Context, m *ComplianceEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ComplianceEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ComplianceEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ComplianceEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ComplianceEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ComplianceEvent mutation op: %q", m.Op())
	}
}

// LoanClient is a client for the Loan schema.
type LoanClient struct {
	config
}

// NewLoanClient returns a client for the Loan from the given config.
func NewLoanClient(c config) *LoanClient {
	return &LoanClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `loan.Hooks(f(g(h())))`.
func (c *LoanClient) Use(hooks ...Hook) {
	c.hooks.Loan = append(c.hooks.Loan, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `loan.Intercept(f(g(h())))`.
func (c *LoanClient) Intercept(interceptors ...Interceptor) {
	c.inters.Loan = append(c.inters.Loan, interceptors...)
}

// Create returns a builder for creating a Loan entity.
func (c *LoanClient) Create() *LoanCreate {
	mutation := newLoanMutation(c.config, OpCreate)
	return &LoanCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Loan entities.
func (c *LoanClient) CreateBulk(builders ...*LoanCreate) *LoanCreateBulk {
	return &LoanCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LoanClient) MapCreateBulk(slice any, setFunc func(*LoanCreate, int)) *LoanCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LoanCreateBulk{err: fmt.Errorf("calling to LoanClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LoanCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LoanCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Loan.
func (c *LoanClient) Update() *LoanUpdate {
	mutation := newLoanMutation(c.config, OpUpdate)
	return &LoanUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LoanClient) UpdateOne(_m *Loan) *LoanUpdateOne {
	mutation := newLoanMutation(c.config, OpUpdateOne, withLoan(_m))
	return &LoanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LoanClient) UpdateOneID(id uuid.UUID) *LoanUpdateOne {
	mutation := newLoanMutation(c.config, OpUpdateOne, withLoanID(id))
	return &LoanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Loan.
func (c *LoanClient) Delete() *LoanDelete {
	mutation := newLoanMutation(c.config, OpDelete)
	return &LoanDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LoanClient) DeleteOne(_m *Loan) *LoanDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LoanClient) DeleteOneID(id uuid.UUID) *LoanDeleteOne {
	builder := c.Delete().Where(loan.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LoanDeleteOne{builder}
}

// Query returns a query builder for Loan.
func (c *LoanClient) Query() *LoanQuery {
	return &LoanQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLoan},
		inters: c.Interceptors(),
	}
}

// Get returns a Loan entity by its id.
func (c *LoanClient) Get(ctx context.Context, id uuid.UUID) (*Loan, error) {
	return c.Query().Where(loan.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LoanClient) GetX(ctx context.Context, id uuid.UUID) *Loan {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequirements queries the requirements edge of a Loan.
func (c *LoanClient) QueryRequirements(_m *Loan) *RequirementQuery {
	query := (&RequirementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(loan.Table, loan.FieldID, id),
			sqlgraph.To(requirement.Table, requirement.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loan.RequirementsTable, loan.RequirementsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvents queries the events edge of a Loan.
func (c *LoanClient) QueryEvents(_m *Loan) *ComplianceEventQuery {
	query := (&ComplianceEventClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(loan.Table, loan.FieldID, id),
			sqlgraph.To(complianceevent.Table, complianceevent.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, loan.EventsTable, loan.EventsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LoanClient) Hooks() []Hook {
	return c.hooks.Loan
}

// Interceptors returns the client interceptors.
func (c *LoanClient) Interceptors() []Interceptor {
	return c.inters.Loan
}

func (c *LoanClient) mutate(ctx context.Context, m *LoanMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LoanCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LoanUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LoanUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LoanDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Loan mutation op: %q", m.Op())
	}
}

// RequirementClient is a client for the Requirement schema.
type RequirementClient struct {
	config
}

// NewRequirementClient returns a client for the Requirement from the given config.
func NewRequirementClient(c config) *RequirementClient {
	return &RequirementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `requirement.Hooks(f(g(h())))`.
func (c *RequirementClient) Use(hooks ...Hook) {
	c.hooks.Requirement = append(c.hooks.Requirement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `requirement.Intercept(f(g(h())))`.
func (c *RequirementClient) Intercept(interceptors ...Interceptor) {
	c.inters.Requirement = append(c.inters.Requirement, interceptors...)
}

// Create returns a builder for creating a Requirement entity.
func (c *RequirementClient) Create() *RequirementCreate {
	mutation := newRequirementMutation(c.config, OpCreate)
	return &RequirementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Requirement entities.
func (c *RequirementClient) CreateBulk(builders ...*RequirementCreate) *RequirementCreateBulk {
	return &RequirementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequirementClient) MapCreateBulk(slice any, setFunc func(*RequirementCreate, int)) *RequirementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequirementCreateBulk{err: fmt.Errorf("calling to RequirementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequirementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequirementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Requirement.
func (c *RequirementClient) Update() *RequirementUpdate {
	mutation := newRequirementMutation(c.config, OpUpdate)
	return &RequirementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequirementClient) UpdateOne(_m *Requirement) *RequirementUpdateOne {
	mutation := newRequirementMutation(c.config, OpUpdateOne, withRequirement(_m))
	return &RequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequirementClient) UpdateOneID(id uuid.UUID) *RequirementUpdateOne {
	mutation := newRequirementMutation(c.config, OpUpdateOne, withRequirementID(id))
	return &RequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Requirement.
func (c *RequirementClient) Delete() *RequirementDelete {
	mutation := newRequirementMutation(c.config, OpDelete)
	return &RequirementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequirementClient) DeleteOne(_m *Requirement) *RequirementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequirementClient) DeleteOneID(id uuid.UUID) *RequirementDeleteOne {
	builder := c.Delete().Where(requirement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequirementDeleteOne{builder}
}

// Query returns a query builder for Requirement.
func (c *RequirementClient) Query() *RequirementQuery {
	return &RequirementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequirement},
		inters: c.Interceptors(),
	}
}

// Get returns a Requirement entity by its id.
func (c *RequirementClient) Get(ctx context.Context, id uuid.UUID) (*Requirement, error) {
	return c.Query().Where(requirement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequirementClient) GetX(ctx context.Context, id uuid.UUID) *Requirement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLoan queries the loan edge of a Requirement.
func (c *RequirementClient) QueryLoan(_m *Requirement) *LoanQuery {
	query := (&LoanClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(requirement.Table, requirement.FieldID, id),
			sqlgraph.To(loan.Table, loan.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, requirement.LoanTable, requirement.LoanColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RequirementClient) Hooks() []Hook {
	return c.hooks.Requirement
}

// Interceptors returns the client interceptors.
func (c *RequirementClient) Interceptors() []Interceptor {
	return c.inters.Requirement
}

func (c *RequirementClient) mutate(ctx context.Context, m *RequirementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequirementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequirementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequirementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Requirement mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ComplianceEvent, Loan, Requirement []ent.Hook
	}
	inters struct {
		ComplianceEvent, Loan, Requirement []ent.Interceptor
	}
)
