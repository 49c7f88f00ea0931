// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/campuspass/campuspass/gen/ent/application"
	"github.com/campuspass/campuspass/gen/ent/jobrecord"
	"github.com/campuspass/campuspass/gen/ent/pass"
	"github.com/campuspass/campuspass/gen/ent/predicate"
	"github.com/campuspass/campuspass/gen/ent/queuetask"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeApplication = "Application"
	TypeJobRecord   = "JobRecord"
	TypePass        = "Pass"
	TypeQueueTask   = "QueueTask"
)

// ApplicationMutation represents an operation that mutates the Application nodes in the graph.
type ApplicationMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	institution_id *uuid.UUID
	full_name      *string
	email          *string
	student_number *string
	status         *string
	deleted_at     *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	pass           *uuid.UUID
	clearedpass    bool
	done           bool
	oldValue       func(context.Context) (*Application, error)
	predicates     []predicate.Application
}

var _ ent.Mutation = (*ApplicationMutation)(nil)

// applicationOption allows management of the mutation configuration using functional options.
type applicationOption func(*ApplicationMutation)

// newApplicationMutation creates new mutation for the Application entity.
func newApplicationMutation(c config, op Op, opts ...applicationOption) *ApplicationMutation {
	m := &ApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withApplicationID sets the ID field of the mutation.
func withApplicationID(id uuid.UUID) applicationOption {
	return func(m *ApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *Application
		)
		m.oldValue = func(ctx context.Context) (*Application, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Application.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withApplication sets the old Application of the mutation.
func withApplication(node *Application) applicationOption {
	return func(m *ApplicationMutation) {
		m.oldValue = func(context.Context) (*Application, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Application entities.
func (m *ApplicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ApplicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ApplicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Application.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetInstitutionID sets the "institution_id" field.
func (m *ApplicationMutation) SetInstitutionID(u uuid.UUID) {
	m.institution_id = &u
}

// InstitutionID returns the value of the "institution_id" field in the mutation.
func (m *ApplicationMutation) InstitutionID() (r uuid.UUID, exists bool) {
	v := m.institution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstitutionID returns the old "institution_id" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldInstitutionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstitutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstitutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstitutionID: %w", err)
	}
	return oldValue.InstitutionID, nil
}

// ResetInstitutionID resets all changes to the "institution_id" field.
func (m *ApplicationMutation) ResetInstitutionID() {
	m.institution_id = nil
}

// SetFullName sets the "full_name" field.
func (m *ApplicationMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *ApplicationMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldFullName(ctx context.Context) (v string, err error) {
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
func (m *ApplicationMutation) ResetFullName() {
	m.full_name = nil
}

// SetEmail sets the "email" field.
func (m *ApplicationMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *ApplicationMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldEmail(ctx context.Context) (v string, err error) {
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
func (m *ApplicationMutation) ResetEmail() {
	m.email = nil
}

// SetStudentNumber sets the "student_number" field.
func (m *ApplicationMutation) SetStudentNumber(s string) {
	m.student_number = &s
}

// StudentNumber returns the value of the "student_number" field in the mutation.
func (m *ApplicationMutation) StudentNumber() (r string, exists bool) {
	v := m.student_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentNumber returns the old "student_number" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStudentNumber(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentNumber: %w", err)
	}
	return oldValue.StudentNumber, nil
}

// ClearStudentNumber clears the value of the "student_number" field.
func (m *ApplicationMutation) ClearStudentNumber() {
	m.student_number = nil
	m.clearedFields[application.FieldStudentNumber] = struct{}{}
}

// StudentNumberCleared returns if the "student_number" field was cleared in this mutation.
func (m *ApplicationMutation) StudentNumberCleared() bool {
	_, ok := m.clearedFields[application.FieldStudentNumber]
	return ok
}

// ResetStudentNumber resets all changes to the "student_number" field.
func (m *ApplicationMutation) ResetStudentNumber() {
	m.student_number = nil
	delete(m.clearedFields, application.FieldStudentNumber)
}

// SetStatus sets the "status" field.
func (m *ApplicationMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ApplicationMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ApplicationMutation) ResetStatus() {
	m.status = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ApplicationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ApplicationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ApplicationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[application.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ApplicationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[application.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ApplicationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, application.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Application entity.
// If the Application object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPassID sets the "pass" edge to the Pass entity by id.
func (m *ApplicationMutation) SetPassID(id uuid.UUID) {
	m.pass = &id
}

// ClearPass clears the "pass" edge to the Pass entity.
func (m *ApplicationMutation) ClearPass() {
	m.clearedpass = true
}

// PassCleared reports if the "pass" edge to the Pass entity was cleared.
func (m *ApplicationMutation) PassCleared() bool {
	return m.clearedpass
}

// PassID returns the "pass" edge ID in the mutation.
func (m *ApplicationMutation) PassID() (id uuid.UUID, exists bool) {
	if m.pass != nil {
		return *m.pass, true
	}
	return
}

// PassIDs returns the "pass" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PassID instead. It exists only for internal usage by the builders.
func (m *ApplicationMutation) PassIDs() (ids []uuid.UUID) {
	if id := m.pass; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPass resets all changes to the "pass" edge.
func (m *ApplicationMutation) ResetPass() {
	m.pass = nil
	m.clearedpass = false
}

// Where appends a list predicates to the ApplicationMutation builder.
func (m *ApplicationMutation) Where(ps ...predicate.Application) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Application, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Application).
func (m *ApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ApplicationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.institution_id != nil {
		fields = append(fields, application.FieldInstitutionID)
	}
	if m.full_name != nil {
		fields = append(fields, application.FieldFullName)
	}
	if m.email != nil {
		fields = append(fields, application.FieldEmail)
	}
	if m.student_number != nil {
		fields = append(fields, application.FieldStudentNumber)
	}
	if m.status != nil {
		fields = append(fields, application.FieldStatus)
	}
	if m.deleted_at != nil {
		fields = append(fields, application.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, application.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, application.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case application.FieldInstitutionID:
		return m.InstitutionID()
	case application.FieldFullName:
		return m.FullName()
	case application.FieldEmail:
		return m.Email()
	case application.FieldStudentNumber:
		return m.StudentNumber()
	case application.FieldStatus:
		return m.Status()
	case application.FieldDeletedAt:
		return m.DeletedAt()
	case application.FieldCreatedAt:
		return m.CreatedAt()
	case application.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case application.FieldInstitutionID:
		return m.OldInstitutionID(ctx)
	case application.FieldFullName:
		return m.OldFullName(ctx)
	case application.FieldEmail:
		return m.OldEmail(ctx)
	case application.FieldStudentNumber:
		return m.OldStudentNumber(ctx)
	case application.FieldStatus:
		return m.OldStatus(ctx)
	case application.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case application.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case application.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Application field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case application.FieldInstitutionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstitutionID(v)
		return nil
	case application.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case application.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case application.FieldStudentNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentNumber(v)
		return nil
	case application.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case application.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case application.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case application.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ApplicationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ApplicationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Application numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(application.FieldStudentNumber) {
		fields = append(fields, application.FieldStudentNumber)
	}
	if m.FieldCleared(application.FieldDeletedAt) {
		fields = append(fields, application.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ApplicationMutation) ClearField(name string) error {
	switch name {
	case application.FieldStudentNumber:
		m.ClearStudentNumber()
		return nil
	case application.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Application nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ApplicationMutation) ResetField(name string) error {
	switch name {
	case application.FieldInstitutionID:
		m.ResetInstitutionID()
		return nil
	case application.FieldFullName:
		m.ResetFullName()
		return nil
	case application.FieldEmail:
		m.ResetEmail()
		return nil
	case application.FieldStudentNumber:
		m.ResetStudentNumber()
		return nil
	case application.FieldStatus:
		m.ResetStatus()
		return nil
	case application.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case application.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case application.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Application field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pass != nil {
		edges = append(edges, application.EdgePass)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case application.EdgePass:
		if id := m.pass; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ApplicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpass {
		edges = append(edges, application.EdgePass)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case application.EdgePass:
		return m.clearedpass
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ApplicationMutation) ClearEdge(name string) error {
	switch name {
	case application.EdgePass:
		m.ClearPass()
		return nil
	}
	return fmt.Errorf("unknown Application unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ApplicationMutation) ResetEdge(name string) error {
	switch name {
	case application.EdgePass:
		m.ResetPass()
		return nil
	}
	return fmt.Errorf("unknown Application edge %s", name)
}

// JobRecordMutation represents an operation that mutates the JobRecord nodes in the graph.
type JobRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	job_type             *string
	status               *string
	total_records        *int
	addtotal_records     *int
	processed_records    *int
	addprocessed_records *int
	failed_records       *int
	addfailed_records    *int
	user_id              *uuid.UUID
	institution_id       *uuid.UUID
	payload              *json.RawMessage
	appendpayload        json.RawMessage
	errors               *[]string
	appenderrors         []string
	result               *json.RawMessage
	appendresult         json.RawMessage
	cancel_requested     *bool
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*JobRecord, error)
	predicates           []predicate.JobRecord
}

var _ ent.Mutation = (*JobRecordMutation)(nil)

// jobrecordOption allows management of the mutation configuration using functional options.
type jobrecordOption func(*JobRecordMutation)

// newJobRecordMutation creates new mutation for the JobRecord entity.
func newJobRecordMutation(c config, op Op, opts ...jobrecordOption) *JobRecordMutation {
	m := &JobRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeJobRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobRecordID sets the ID field of the mutation.
func withJobRecordID(id uuid.UUID) jobrecordOption {
	return func(m *JobRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *JobRecord
		)
		m.oldValue = func(ctx context.Context) (*JobRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobRecord sets the old JobRecord of the mutation.
func withJobRecord(node *JobRecord) jobrecordOption {
	return func(m *JobRecordMutation) {
		m.oldValue = func(context.Context) (*JobRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobRecord entities.
func (m *JobRecordMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobRecordMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobRecordMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobType sets the "job_type" field.
func (m *JobRecordMutation) SetJobType(s string) {
	m.job_type = &s
}

// JobType returns the value of the "job_type" field in the mutation.
func (m *JobRecordMutation) JobType() (r string, exists bool) {
	v := m.job_type
	if v == nil {
		return
	}
	return *v, true
}

// OldJobType returns the old "job_type" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldJobType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobType: %w", err)
	}
	return oldValue.JobType, nil
}

// ResetJobType resets all changes to the "job_type" field.
func (m *JobRecordMutation) ResetJobType() {
	m.job_type = nil
}

// SetStatus sets the "status" field.
func (m *JobRecordMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *JobRecordMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *JobRecordMutation) ResetStatus() {
	m.status = nil
}

// SetTotalRecords sets the "total_records" field.
func (m *JobRecordMutation) SetTotalRecords(i int) {
	m.total_records = &i
	m.addtotal_records = nil
}

// TotalRecords returns the value of the "total_records" field in the mutation.
func (m *JobRecordMutation) TotalRecords() (r int, exists bool) {
	v := m.total_records
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRecords returns the old "total_records" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldTotalRecords(ctx context.Context) (v int, err error) {
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
func (m *JobRecordMutation) AddTotalRecords(i int) {
	if m.addtotal_records != nil {
		*m.addtotal_records += i
	} else {
		m.addtotal_records = &i
	}
}

// AddedTotalRecords returns the value that was added to the "total_records" field in this mutation.
func (m *JobRecordMutation) AddedTotalRecords() (r int, exists bool) {
	v := m.addtotal_records
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRecords resets all changes to the "total_records" field.
func (m *JobRecordMutation) ResetTotalRecords() {
	m.total_records = nil
	m.addtotal_records = nil
}

// SetProcessedRecords sets the "processed_records" field.
func (m *JobRecordMutation) SetProcessedRecords(i int) {
	m.processed_records = &i
	m.addprocessed_records = nil
}

// ProcessedRecords returns the value of the "processed_records" field in the mutation.
func (m *JobRecordMutation) ProcessedRecords() (r int, exists bool) {
	v := m.processed_records
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedRecords returns the old "processed_records" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldProcessedRecords(ctx context.Context) (v int, err error) {
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
func (m *JobRecordMutation) AddProcessedRecords(i int) {
	if m.addprocessed_records != nil {
		*m.addprocessed_records += i
	} else {
		m.addprocessed_records = &i
	}
}

// AddedProcessedRecords returns the value that was added to the "processed_records" field in this mutation.
func (m *JobRecordMutation) AddedProcessedRecords() (r int, exists bool) {
	v := m.addprocessed_records
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedRecords resets all changes to the "processed_records" field.
func (m *JobRecordMutation) ResetProcessedRecords() {
	m.processed_records = nil
	m.addprocessed_records = nil
}

// SetFailedRecords sets the "failed_records" field.
func (m *JobRecordMutation) SetFailedRecords(i int) {
	m.failed_records = &i
	m.addfailed_records = nil
}

// FailedRecords returns the value of the "failed_records" field in the mutation.
func (m *JobRecordMutation) FailedRecords() (r int, exists bool) {
	v := m.failed_records
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedRecords returns the old "failed_records" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldFailedRecords(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedRecords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedRecords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedRecords: %w", err)
	}
	return oldValue.FailedRecords, nil
}

// AddFailedRecords adds i to the "failed_records" field.
func (m *JobRecordMutation) AddFailedRecords(i int) {
	if m.addfailed_records != nil {
		*m.addfailed_records += i
	} else {
		m.addfailed_records = &i
	}
}

// AddedFailedRecords returns the value that was added to the "failed_records" field in this mutation.
func (m *JobRecordMutation) AddedFailedRecords() (r int, exists bool) {
	v := m.addfailed_records
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedRecords resets all changes to the "failed_records" field.
func (m *JobRecordMutation) ResetFailedRecords() {
	m.failed_records = nil
	m.addfailed_records = nil
}

// SetUserID sets the "user_id" field.
func (m *JobRecordMutation) SetUserID(u uuid.UUID) {
	m.user_id = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *JobRecordMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *JobRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetInstitutionID sets the "institution_id" field.
func (m *JobRecordMutation) SetInstitutionID(u uuid.UUID) {
	m.institution_id = &u
}

// InstitutionID returns the value of the "institution_id" field in the mutation.
func (m *JobRecordMutation) InstitutionID() (r uuid.UUID, exists bool) {
	v := m.institution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldInstitutionID returns the old "institution_id" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldInstitutionID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInstitutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInstitutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInstitutionID: %w", err)
	}
	return oldValue.InstitutionID, nil
}

// ClearInstitutionID clears the value of the "institution_id" field.
func (m *JobRecordMutation) ClearInstitutionID() {
	m.institution_id = nil
	m.clearedFields[jobrecord.FieldInstitutionID] = struct{}{}
}

// InstitutionIDCleared returns if the "institution_id" field was cleared in this mutation.
func (m *JobRecordMutation) InstitutionIDCleared() bool {
	_, ok := m.clearedFields[jobrecord.FieldInstitutionID]
	return ok
}

// ResetInstitutionID resets all changes to the "institution_id" field.
func (m *JobRecordMutation) ResetInstitutionID() {
	m.institution_id = nil
	delete(m.clearedFields, jobrecord.FieldInstitutionID)
}

// SetPayload sets the "payload" field.
func (m *JobRecordMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobRecordMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *JobRecordMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *JobRecordMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ClearPayload clears the value of the "payload" field.
func (m *JobRecordMutation) ClearPayload() {
	m.payload = nil
	m.appendpayload = nil
	m.clearedFields[jobrecord.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *JobRecordMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[jobrecord.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobRecordMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
	delete(m.clearedFields, jobrecord.FieldPayload)
}

// SetErrors sets the "errors" field.
func (m *JobRecordMutation) SetErrors(s []string) {
	m.errors = &s
	m.appenderrors = nil
}

// Errors returns the value of the "errors" field in the mutation.
func (m *JobRecordMutation) Errors() (r []string, exists bool) {
	v := m.errors
	if v == nil {
		return
	}
	return *v, true
}

// OldErrors returns the old "errors" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldErrors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrors: %w", err)
	}
	return oldValue.Errors, nil
}

// AppendErrors adds s to the "errors" field.
func (m *JobRecordMutation) AppendErrors(s []string) {
	m.appenderrors = append(m.appenderrors, s...)
}

// AppendedErrors returns the list of values that were appended to the "errors" field in this mutation.
func (m *JobRecordMutation) AppendedErrors() ([]string, bool) {
	if len(m.appenderrors) == 0 {
		return nil, false
	}
	return m.appenderrors, true
}

// ClearErrors clears the value of the "errors" field.
func (m *JobRecordMutation) ClearErrors() {
	m.errors = nil
	m.appenderrors = nil
	m.clearedFields[jobrecord.FieldErrors] = struct{}{}
}

// ErrorsCleared returns if the "errors" field was cleared in this mutation.
func (m *JobRecordMutation) ErrorsCleared() bool {
	_, ok := m.clearedFields[jobrecord.FieldErrors]
	return ok
}

// ResetErrors resets all changes to the "errors" field.
func (m *JobRecordMutation) ResetErrors() {
	m.errors = nil
	m.appenderrors = nil
	delete(m.clearedFields, jobrecord.FieldErrors)
}

// SetResult sets the "result" field.
func (m *JobRecordMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *JobRecordMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *JobRecordMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *JobRecordMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *JobRecordMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[jobrecord.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobRecordMutation) ResultCleared() bool {
	_, ok := m.clearedFields[jobrecord.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobRecordMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, jobrecord.FieldResult)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *JobRecordMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *JobRecordMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *JobRecordMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *JobRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the JobRecord entity.
// If the JobRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *JobRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the JobRecordMutation builder.
func (m *JobRecordMutation) Where(ps ...predicate.JobRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobRecord).
func (m *JobRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobRecordMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.job_type != nil {
		fields = append(fields, jobrecord.FieldJobType)
	}
	if m.status != nil {
		fields = append(fields, jobrecord.FieldStatus)
	}
	if m.total_records != nil {
		fields = append(fields, jobrecord.FieldTotalRecords)
	}
	if m.processed_records != nil {
		fields = append(fields, jobrecord.FieldProcessedRecords)
	}
	if m.failed_records != nil {
		fields = append(fields, jobrecord.FieldFailedRecords)
	}
	if m.user_id != nil {
		fields = append(fields, jobrecord.FieldUserID)
	}
	if m.institution_id != nil {
		fields = append(fields, jobrecord.FieldInstitutionID)
	}
	if m.payload != nil {
		fields = append(fields, jobrecord.FieldPayload)
	}
	if m.errors != nil {
		fields = append(fields, jobrecord.FieldErrors)
	}
	if m.result != nil {
		fields = append(fields, jobrecord.FieldResult)
	}
	if m.cancel_requested != nil {
		fields = append(fields, jobrecord.FieldCancelRequested)
	}
	if m.created_at != nil {
		fields = append(fields, jobrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, jobrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobrecord.FieldJobType:
		return m.JobType()
	case jobrecord.FieldStatus:
		return m.Status()
	case jobrecord.FieldTotalRecords:
		return m.TotalRecords()
	case jobrecord.FieldProcessedRecords:
		return m.ProcessedRecords()
	case jobrecord.FieldFailedRecords:
		return m.FailedRecords()
	case jobrecord.FieldUserID:
		return m.UserID()
	case jobrecord.FieldInstitutionID:
		return m.InstitutionID()
	case jobrecord.FieldPayload:
		return m.Payload()
	case jobrecord.FieldErrors:
		return m.Errors()
	case jobrecord.FieldResult:
		return m.Result()
	case jobrecord.FieldCancelRequested:
		return m.CancelRequested()
	case jobrecord.FieldCreatedAt:
		return m.CreatedAt()
	case jobrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobrecord.FieldJobType:
		return m.OldJobType(ctx)
	case jobrecord.FieldStatus:
		return m.OldStatus(ctx)
	case jobrecord.FieldTotalRecords:
		return m.OldTotalRecords(ctx)
	case jobrecord.FieldProcessedRecords:
		return m.OldProcessedRecords(ctx)
	case jobrecord.FieldFailedRecords:
		return m.OldFailedRecords(ctx)
	case jobrecord.FieldUserID:
		return m.OldUserID(ctx)
	case jobrecord.FieldInstitutionID:
		return m.OldInstitutionID(ctx)
	case jobrecord.FieldPayload:
		return m.OldPayload(ctx)
	case jobrecord.FieldErrors:
		return m.OldErrors(ctx)
	case jobrecord.FieldResult:
		return m.OldResult(ctx)
	case jobrecord.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case jobrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case jobrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobrecord.FieldJobType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobType(v)
		return nil
	case jobrecord.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobrecord.FieldTotalRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRecords(v)
		return nil
	case jobrecord.FieldProcessedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedRecords(v)
		return nil
	case jobrecord.FieldFailedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedRecords(v)
		return nil
	case jobrecord.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case jobrecord.FieldInstitutionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInstitutionID(v)
		return nil
	case jobrecord.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case jobrecord.FieldErrors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrors(v)
		return nil
	case jobrecord.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case jobrecord.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case jobrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case jobrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobRecordMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_records != nil {
		fields = append(fields, jobrecord.FieldTotalRecords)
	}
	if m.addprocessed_records != nil {
		fields = append(fields, jobrecord.FieldProcessedRecords)
	}
	if m.addfailed_records != nil {
		fields = append(fields, jobrecord.FieldFailedRecords)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobrecord.FieldTotalRecords:
		return m.AddedTotalRecords()
	case jobrecord.FieldProcessedRecords:
		return m.AddedProcessedRecords()
	case jobrecord.FieldFailedRecords:
		return m.AddedFailedRecords()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobrecord.FieldTotalRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRecords(v)
		return nil
	case jobrecord.FieldProcessedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedRecords(v)
		return nil
	case jobrecord.FieldFailedRecords:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedRecords(v)
		return nil
	}
	return fmt.Errorf("unknown JobRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobrecord.FieldInstitutionID) {
		fields = append(fields, jobrecord.FieldInstitutionID)
	}
	if m.FieldCleared(jobrecord.FieldPayload) {
		fields = append(fields, jobrecord.FieldPayload)
	}
	if m.FieldCleared(jobrecord.FieldErrors) {
		fields = append(fields, jobrecord.FieldErrors)
	}
	if m.FieldCleared(jobrecord.FieldResult) {
		fields = append(fields, jobrecord.FieldResult)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobRecordMutation) ClearField(name string) error {
	switch name {
	case jobrecord.FieldInstitutionID:
		m.ClearInstitutionID()
		return nil
	case jobrecord.FieldPayload:
		m.ClearPayload()
		return nil
	case jobrecord.FieldErrors:
		m.ClearErrors()
		return nil
	case jobrecord.FieldResult:
		m.ClearResult()
		return nil
	}
	return fmt.Errorf("unknown JobRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobRecordMutation) ResetField(name string) error {
	switch name {
	case jobrecord.FieldJobType:
		m.ResetJobType()
		return nil
	case jobrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case jobrecord.FieldTotalRecords:
		m.ResetTotalRecords()
		return nil
	case jobrecord.FieldProcessedRecords:
		m.ResetProcessedRecords()
		return nil
	case jobrecord.FieldFailedRecords:
		m.ResetFailedRecords()
		return nil
	case jobrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case jobrecord.FieldInstitutionID:
		m.ResetInstitutionID()
		return nil
	case jobrecord.FieldPayload:
		m.ResetPayload()
		return nil
	case jobrecord.FieldErrors:
		m.ResetErrors()
		return nil
	case jobrecord.FieldResult:
		m.ResetResult()
		return nil
	case jobrecord.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case jobrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case jobrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown JobRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown JobRecord edge %s", name)
}

// PassMutation represents an operation that mutates the Pass nodes in the graph.
type PassMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	serial             *string
	status             *string
	issued_at          *time.Time
	expires_at         *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	application        *uuid.UUID
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*Pass, error)
	predicates         []predicate.Pass
}

var _ ent.Mutation = (*PassMutation)(nil)

// passOption allows management of the mutation configuration using functional options.
type passOption func(*PassMutation)

// newPassMutation creates new mutation for the Pass entity.
func newPassMutation(c config, op Op, opts ...passOption) *PassMutation {
	m := &PassMutation{
		config:        c,
		op:            op,
		typ:           TypePass,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPassID sets the ID field of the mutation.
func withPassID(id uuid.UUID) passOption {
	return func(m *PassMutation) {
		var (
			err   error
			once  sync.Once
			value *Pass
		)
		m.oldValue = func(ctx context.Context) (*Pass, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Pass.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPass sets the old Pass of the mutation.
func withPass(node *Pass) passOption {
	return func(m *PassMutation) {
		m.oldValue = func(context.Context) (*Pass, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PassMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PassMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Pass entities.
func (m *PassMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PassMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PassMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Pass.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *PassMutation) SetApplicationID(u uuid.UUID) {
	m.application = &u
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *PassMutation) ApplicationID() (r uuid.UUID, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the Pass entity.
// If the Pass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassMutation) OldApplicationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *PassMutation) ResetApplicationID() {
	m.application = nil
}

// SetSerial sets the "serial" field.
func (m *PassMutation) SetSerial(s string) {
	m.serial = &s
}

// Serial returns the value of the "serial" field in the mutation.
func (m *PassMutation) Serial() (r string, exists bool) {
	v := m.serial
	if v == nil {
		return
	}
	return *v, true
}

// OldSerial returns the old "serial" field's value of the Pass entity.
// If the Pass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassMutation) OldSerial(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSerial is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSerial requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSerial: %w", err)
	}
	return oldValue.Serial, nil
}

// ResetSerial resets all changes to the "serial" field.
func (m *PassMutation) ResetSerial() {
	m.serial = nil
}

// SetStatus sets the "status" field.
func (m *PassMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PassMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Pass entity.
// If the Pass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *PassMutation) ResetStatus() {
	m.status = nil
}

// SetIssuedAt sets the "issued_at" field.
func (m *PassMutation) SetIssuedAt(t time.Time) {
	m.issued_at = &t
}

// IssuedAt returns the value of the "issued_at" field in the mutation.
func (m *PassMutation) IssuedAt() (r time.Time, exists bool) {
	v := m.issued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIssuedAt returns the old "issued_at" field's value of the Pass entity.
// If the Pass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassMutation) OldIssuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssuedAt: %w", err)
	}
	return oldValue.IssuedAt, nil
}

// ResetIssuedAt resets all changes to the "issued_at" field.
func (m *PassMutation) ResetIssuedAt() {
	m.issued_at = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *PassMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *PassMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the Pass entity.
// If the Pass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *PassMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PassMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PassMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Pass entity.
// If the Pass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PassMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PassMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PassMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Pass entity.
// If the Pass object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PassMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *PassMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApplication clears the "application" edge to the Application entity.
func (m *PassMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[pass.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the Application entity was cleared.
func (m *PassMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *PassMutation) ApplicationIDs() (ids []uuid.UUID) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *PassMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the PassMutation builder.
func (m *PassMutation) Where(ps ...predicate.Pass) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PassMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PassMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Pass, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PassMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PassMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Pass).
func (m *PassMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PassMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.application != nil {
		fields = append(fields, pass.FieldApplicationID)
	}
	if m.serial != nil {
		fields = append(fields, pass.FieldSerial)
	}
	if m.status != nil {
		fields = append(fields, pass.FieldStatus)
	}
	if m.issued_at != nil {
		fields = append(fields, pass.FieldIssuedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, pass.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, pass.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pass.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PassMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pass.FieldApplicationID:
		return m.ApplicationID()
	case pass.FieldSerial:
		return m.Serial()
	case pass.FieldStatus:
		return m.Status()
	case pass.FieldIssuedAt:
		return m.IssuedAt()
	case pass.FieldExpiresAt:
		return m.ExpiresAt()
	case pass.FieldCreatedAt:
		return m.CreatedAt()
	case pass.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PassMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pass.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case pass.FieldSerial:
		return m.OldSerial(ctx)
	case pass.FieldStatus:
		return m.OldStatus(ctx)
	case pass.FieldIssuedAt:
		return m.OldIssuedAt(ctx)
	case pass.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case pass.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pass.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Pass field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pass.FieldApplicationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case pass.FieldSerial:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSerial(v)
		return nil
	case pass.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case pass.FieldIssuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssuedAt(v)
		return nil
	case pass.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case pass.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pass.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Pass field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PassMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PassMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PassMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Pass numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PassMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PassMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PassMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Pass nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PassMutation) ResetField(name string) error {
	switch name {
	case pass.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case pass.FieldSerial:
		m.ResetSerial()
		return nil
	case pass.FieldStatus:
		m.ResetStatus()
		return nil
	case pass.FieldIssuedAt:
		m.ResetIssuedAt()
		return nil
	case pass.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case pass.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pass.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Pass field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PassMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.application != nil {
		edges = append(edges, pass.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PassMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pass.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PassMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PassMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PassMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplication {
		edges = append(edges, pass.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PassMutation) EdgeCleared(name string) bool {
	switch name {
	case pass.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PassMutation) ClearEdge(name string) error {
	switch name {
	case pass.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown Pass unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PassMutation) ResetEdge(name string) error {
	switch name {
	case pass.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown Pass edge %s", name)
}

// QueueTaskMutation represents an operation that mutates the QueueTask nodes in the graph.
type QueueTaskMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	job_id          *uuid.UUID
	lane            *string
	priority        *int
	addpriority     *int
	payload         *json.RawMessage
	appendpayload   json.RawMessage
	attempts        *int
	addattempts     *int
	max_attempts    *int
	addmax_attempts *int
	backoff_ms      *int64
	addbackoff_ms   *int64
	available_at    *time.Time
	locked_by       *string
	locked_until    *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*QueueTask, error)
	predicates      []predicate.QueueTask
}

var _ ent.Mutation = (*QueueTaskMutation)(nil)

// queuetaskOption allows management of the mutation configuration using functional options.
type queuetaskOption func(*QueueTaskMutation)

// newQueueTaskMutation creates new mutation for the QueueTask entity.
func newQueueTaskMutation(c config, op Op, opts ...queuetaskOption) *QueueTaskMutation {
	m := &QueueTaskMutation{
		config:        c,
		op:            op,
		typ:           TypeQueueTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQueueTaskID sets the ID field of the mutation.
func withQueueTaskID(id uuid.UUID) queuetaskOption {
	return func(m *QueueTaskMutation) {
		var (
			err   error
			once  sync.Once
			value *QueueTask
		)
		m.oldValue = func(ctx context.Context) (*QueueTask, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QueueTask.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQueueTask sets the old QueueTask of the mutation.
func withQueueTask(node *QueueTask) queuetaskOption {
	return func(m *QueueTaskMutation) {
		m.oldValue = func(context.Context) (*QueueTask, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QueueTaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QueueTaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QueueTask entities.
func (m *QueueTaskMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QueueTaskMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QueueTaskMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QueueTask.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *QueueTaskMutation) SetJobID(u uuid.UUID) {
	m.job_id = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *QueueTaskMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *QueueTaskMutation) ResetJobID() {
	m.job_id = nil
}

// SetLane sets the "lane" field.
func (m *QueueTaskMutation) SetLane(s string) {
	m.lane = &s
}

// Lane returns the value of the "lane" field in the mutation.
func (m *QueueTaskMutation) Lane() (r string, exists bool) {
	v := m.lane
	if v == nil {
		return
	}
	return *v, true
}

// OldLane returns the old "lane" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldLane(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLane is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLane requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLane: %w", err)
	}
	return oldValue.Lane, nil
}

// ResetLane resets all changes to the "lane" field.
func (m *QueueTaskMutation) ResetLane() {
	m.lane = nil
}

// SetPriority sets the "priority" field.
func (m *QueueTaskMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *QueueTaskMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *QueueTaskMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *QueueTaskMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *QueueTaskMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetPayload sets the "payload" field.
func (m *QueueTaskMutation) SetPayload(jm json.RawMessage) {
	m.payload = &jm
	m.appendpayload = nil
}

// Payload returns the value of the "payload" field in the mutation.
func (m *QueueTaskMutation) Payload() (r json.RawMessage, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldPayload(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// AppendPayload adds jm to the "payload" field.
func (m *QueueTaskMutation) AppendPayload(jm json.RawMessage) {
	m.appendpayload = append(m.appendpayload, jm...)
}

// AppendedPayload returns the list of values that were appended to the "payload" field in this mutation.
func (m *QueueTaskMutation) AppendedPayload() (json.RawMessage, bool) {
	if len(m.appendpayload) == 0 {
		return nil, false
	}
	return m.appendpayload, true
}

// ResetPayload resets all changes to the "payload" field.
func (m *QueueTaskMutation) ResetPayload() {
	m.payload = nil
	m.appendpayload = nil
}

// SetAttempts sets the "attempts" field.
func (m *QueueTaskMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *QueueTaskMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *QueueTaskMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *QueueTaskMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *QueueTaskMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *QueueTaskMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *QueueTaskMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *QueueTaskMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *QueueTaskMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *QueueTaskMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetBackoffMs sets the "backoff_ms" field.
func (m *QueueTaskMutation) SetBackoffMs(i int64) {
	m.backoff_ms = &i
	m.addbackoff_ms = nil
}

// BackoffMs returns the value of the "backoff_ms" field in the mutation.
func (m *QueueTaskMutation) BackoffMs() (r int64, exists bool) {
	v := m.backoff_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldBackoffMs returns the old "backoff_ms" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldBackoffMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackoffMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackoffMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackoffMs: %w", err)
	}
	return oldValue.BackoffMs, nil
}

// AddBackoffMs adds i to the "backoff_ms" field.
func (m *QueueTaskMutation) AddBackoffMs(i int64) {
	if m.addbackoff_ms != nil {
		*m.addbackoff_ms += i
	} else {
		m.addbackoff_ms = &i
	}
}

// AddedBackoffMs returns the value that was added to the "backoff_ms" field in this mutation.
func (m *QueueTaskMutation) AddedBackoffMs() (r int64, exists bool) {
	v := m.addbackoff_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetBackoffMs resets all changes to the "backoff_ms" field.
func (m *QueueTaskMutation) ResetBackoffMs() {
	m.backoff_ms = nil
	m.addbackoff_ms = nil
}

// SetAvailableAt sets the "available_at" field.
func (m *QueueTaskMutation) SetAvailableAt(t time.Time) {
	m.available_at = &t
}

// AvailableAt returns the value of the "available_at" field in the mutation.
func (m *QueueTaskMutation) AvailableAt() (r time.Time, exists bool) {
	v := m.available_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableAt returns the old "available_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldAvailableAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableAt: %w", err)
	}
	return oldValue.AvailableAt, nil
}

// ResetAvailableAt resets all changes to the "available_at" field.
func (m *QueueTaskMutation) ResetAvailableAt() {
	m.available_at = nil
}

// SetLockedBy sets the "locked_by" field.
func (m *QueueTaskMutation) SetLockedBy(s string) {
	m.locked_by = &s
}

// LockedBy returns the value of the "locked_by" field in the mutation.
func (m *QueueTaskMutation) LockedBy() (r string, exists bool) {
	v := m.locked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedBy returns the old "locked_by" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldLockedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedBy: %w", err)
	}
	return oldValue.LockedBy, nil
}

// ClearLockedBy clears the value of the "locked_by" field.
func (m *QueueTaskMutation) ClearLockedBy() {
	m.locked_by = nil
	m.clearedFields[queuetask.FieldLockedBy] = struct{}{}
}

// LockedByCleared returns if the "locked_by" field was cleared in this mutation.
func (m *QueueTaskMutation) LockedByCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldLockedBy]
	return ok
}

// ResetLockedBy resets all changes to the "locked_by" field.
func (m *QueueTaskMutation) ResetLockedBy() {
	m.locked_by = nil
	delete(m.clearedFields, queuetask.FieldLockedBy)
}

// SetLockedUntil sets the "locked_until" field.
func (m *QueueTaskMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *QueueTaskMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *QueueTaskMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[queuetask.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *QueueTaskMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[queuetask.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *QueueTaskMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, queuetask.FieldLockedUntil)
}

// SetCreatedAt sets the "created_at" field.
func (m *QueueTaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QueueTaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QueueTask entity.
// If the QueueTask object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QueueTaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *QueueTaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QueueTaskMutation builder.
func (m *QueueTaskMutation) Where(ps ...predicate.QueueTask) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QueueTaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QueueTaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QueueTask, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QueueTaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QueueTaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QueueTask).
func (m *QueueTaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QueueTaskMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.job_id != nil {
		fields = append(fields, queuetask.FieldJobID)
	}
	if m.lane != nil {
		fields = append(fields, queuetask.FieldLane)
	}
	if m.priority != nil {
		fields = append(fields, queuetask.FieldPriority)
	}
	if m.payload != nil {
		fields = append(fields, queuetask.FieldPayload)
	}
	if m.attempts != nil {
		fields = append(fields, queuetask.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, queuetask.FieldMaxAttempts)
	}
	if m.backoff_ms != nil {
		fields = append(fields, queuetask.FieldBackoffMs)
	}
	if m.available_at != nil {
		fields = append(fields, queuetask.FieldAvailableAt)
	}
	if m.locked_by != nil {
		fields = append(fields, queuetask.FieldLockedBy)
	}
	if m.locked_until != nil {
		fields = append(fields, queuetask.FieldLockedUntil)
	}
	if m.created_at != nil {
		fields = append(fields, queuetask.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QueueTaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case queuetask.FieldJobID:
		return m.JobID()
	case queuetask.FieldLane:
		return m.Lane()
	case queuetask.FieldPriority:
		return m.Priority()
	case queuetask.FieldPayload:
		return m.Payload()
	case queuetask.FieldAttempts:
		return m.Attempts()
	case queuetask.FieldMaxAttempts:
		return m.MaxAttempts()
	case queuetask.FieldBackoffMs:
		return m.BackoffMs()
	case queuetask.FieldAvailableAt:
		return m.AvailableAt()
	case queuetask.FieldLockedBy:
		return m.LockedBy()
	case queuetask.FieldLockedUntil:
		return m.LockedUntil()
	case queuetask.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QueueTaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case queuetask.FieldJobID:
		return m.OldJobID(ctx)
	case queuetask.FieldLane:
		return m.OldLane(ctx)
	case queuetask.FieldPriority:
		return m.OldPriority(ctx)
	case queuetask.FieldPayload:
		return m.OldPayload(ctx)
	case queuetask.FieldAttempts:
		return m.OldAttempts(ctx)
	case queuetask.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case queuetask.FieldBackoffMs:
		return m.OldBackoffMs(ctx)
	case queuetask.FieldAvailableAt:
		return m.OldAvailableAt(ctx)
	case queuetask.FieldLockedBy:
		return m.OldLockedBy(ctx)
	case queuetask.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	case queuetask.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QueueTask field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueTaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case queuetask.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case queuetask.FieldLane:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLane(v)
		return nil
	case queuetask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case queuetask.FieldPayload:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case queuetask.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case queuetask.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case queuetask.FieldBackoffMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackoffMs(v)
		return nil
	case queuetask.FieldAvailableAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableAt(v)
		return nil
	case queuetask.FieldLockedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedBy(v)
		return nil
	case queuetask.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	case queuetask.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QueueTask field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QueueTaskMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, queuetask.FieldPriority)
	}
	if m.addattempts != nil {
		fields = append(fields, queuetask.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, queuetask.FieldMaxAttempts)
	}
	if m.addbackoff_ms != nil {
		fields = append(fields, queuetask.FieldBackoffMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QueueTaskMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case queuetask.FieldPriority:
		return m.AddedPriority()
	case queuetask.FieldAttempts:
		return m.AddedAttempts()
	case queuetask.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case queuetask.FieldBackoffMs:
		return m.AddedBackoffMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QueueTaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	case queuetask.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case queuetask.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case queuetask.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case queuetask.FieldBackoffMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBackoffMs(v)
		return nil
	}
	return fmt.Errorf("unknown QueueTask numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QueueTaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(queuetask.FieldLockedBy) {
		fields = append(fields, queuetask.FieldLockedBy)
	}
	if m.FieldCleared(queuetask.FieldLockedUntil) {
		fields = append(fields, queuetask.FieldLockedUntil)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QueueTaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QueueTaskMutation) ClearField(name string) error {
	switch name {
	case queuetask.FieldLockedBy:
		m.ClearLockedBy()
		return nil
	case queuetask.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	}
	return fmt.Errorf("unknown QueueTask nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QueueTaskMutation) ResetField(name string) error {
	switch name {
	case queuetask.FieldJobID:
		m.ResetJobID()
		return nil
	case queuetask.FieldLane:
		m.ResetLane()
		return nil
	case queuetask.FieldPriority:
		m.ResetPriority()
		return nil
	case queuetask.FieldPayload:
		m.ResetPayload()
		return nil
	case queuetask.FieldAttempts:
		m.ResetAttempts()
		return nil
	case queuetask.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case queuetask.FieldBackoffMs:
		m.ResetBackoffMs()
		return nil
	case queuetask.FieldAvailableAt:
		m.ResetAvailableAt()
		return nil
	case queuetask.FieldLockedBy:
		m.ResetLockedBy()
		return nil
	case queuetask.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	case queuetask.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QueueTask field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QueueTaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QueueTaskMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QueueTaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QueueTaskMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QueueTaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QueueTaskMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QueueTaskMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QueueTask unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QueueTaskMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QueueTask edge %s", name)
}
