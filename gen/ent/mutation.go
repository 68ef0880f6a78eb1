// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mediafetch/gen/ent/apikey"
	"mediafetch/gen/ent/fetchjob"
	"mediafetch/gen/ent/predicate"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
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
	TypeAPIKey   = "APIKey"
	TypeFetchJob = "FetchJob"
)

// APIKeyMutation represents an operation that mutates the APIKey nodes in the graph.
type APIKeyMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	key           *string
	is_active     *bool
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*APIKey, error)
	predicates    []predicate.APIKey
}

var _ ent.Mutation = (*APIKeyMutation)(nil)

// apikeyOption allows management of the mutation configuration using functional options.
type apikeyOption func(*APIKeyMutation)

// newAPIKeyMutation creates new mutation for the APIKey entity.
func newAPIKeyMutation(c config, op Op, opts ...apikeyOption) *APIKeyMutation {
	m := &APIKeyMutation{
		config:        c,
		op:            op,
		typ:           TypeAPIKey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAPIKeyID sets the ID field of the mutation.
func withAPIKeyID(id uuid.UUID) apikeyOption {
	return func(m *APIKeyMutation) {
		var (
			err   error
			once  sync.Once
			value *APIKey
		)
		m.oldValue = func(ctx context.Context) (*APIKey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().APIKey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAPIKey sets the old APIKey of the mutation.
func withAPIKey(node *APIKey) apikeyOption {
	return func(m *APIKeyMutation) {
		m.oldValue = func(context.Context) (*APIKey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m APIKeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m APIKeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of APIKey entities.
func (m *APIKeyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *APIKeyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *APIKeyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().APIKey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetKey sets the "key" field.
func (m *APIKeyMutation) SetKey(s string) {
	m.key = &s
}

// Key returns the value of the "key" field in the mutation.
func (m *APIKeyMutation) Key() (r string, exists bool) {
	v := m.key
	if v == nil {
		return
	}
	return *v, true
}

// OldKey returns the old "key" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKey: %w", err)
	}
	return oldValue.Key, nil
}

// ResetKey resets all changes to the "key" field.
func (m *APIKeyMutation) ResetKey() {
	m.key = nil
}

// SetIsActive sets the "is_active" field.
func (m *APIKeyMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *APIKeyMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *APIKeyMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *APIKeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *APIKeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the APIKey entity.
// If the APIKey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *APIKeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *APIKeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the APIKeyMutation builder.
func (m *APIKeyMutation) Where(ps ...predicate.APIKey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the APIKeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *APIKeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.APIKey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *APIKeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *APIKeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (APIKey).
func (m *APIKeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *APIKeyMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.key != nil {
		fields = append(fields, apikey.FieldKey)
	}
	if m.is_active != nil {
		fields = append(fields, apikey.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, apikey.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *APIKeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case apikey.FieldKey:
		return m.Key()
	case apikey.FieldIsActive:
		return m.IsActive()
	case apikey.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *APIKeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case apikey.FieldKey:
		return m.OldKey(ctx)
	case apikey.FieldIsActive:
		return m.OldIsActive(ctx)
	case apikey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown APIKey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case apikey.FieldKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKey(v)
		return nil
	case apikey.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case apikey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *APIKeyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *APIKeyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *APIKeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown APIKey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *APIKeyMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *APIKeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *APIKeyMutation) ClearField(name string) error {
	return fmt.Errorf("unknown APIKey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *APIKeyMutation) ResetField(name string) error {
	switch name {
	case apikey.FieldKey:
		m.ResetKey()
		return nil
	case apikey.FieldIsActive:
		m.ResetIsActive()
		return nil
	case apikey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown APIKey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *APIKeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *APIKeyMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *APIKeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *APIKeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *APIKeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *APIKeyMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *APIKeyMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown APIKey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *APIKeyMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown APIKey edge %s", name)
}

// FetchJobMutation represents an operation that mutates the FetchJob nodes in the graph.
type FetchJobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	url             *string
	platform        *string
	status          *string
	title           *string
	error_kind      *string
	error_message   *string
	result_path     *string
	result_bytes    *int64
	addresult_bytes *int64
	video_done      *bool
	audio_done      *bool
	merge_done      *bool
	created_at      *time.Time
	finished_at     *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*FetchJob, error)
	predicates      []predicate.FetchJob
}

var _ ent.Mutation = (*FetchJobMutation)(nil)

// fetchjobOption allows management of the mutation configuration using functional options.
type fetchjobOption func(*FetchJobMutation)

// newFetchJobMutation creates new mutation for the FetchJob entity.
func newFetchJobMutation(c config, op Op, opts ...fetchjobOption) *FetchJobMutation {
	m := &FetchJobMutation{
		config:        c,
		op:            op,
		typ:           TypeFetchJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFetchJobID sets the ID field of the mutation.
func withFetchJobID(id uuid.UUID) fetchjobOption {
	return func(m *FetchJobMutation) {
		var (
			err   error
			once  sync.Once
			value *FetchJob
		)
		m.oldValue = func(ctx context.Context) (*FetchJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FetchJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFetchJob sets the old FetchJob of the mutation.
func withFetchJob(node *FetchJob) fetchjobOption {
	return func(m *FetchJobMutation) {
		m.oldValue = func(context.Context) (*FetchJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FetchJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FetchJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FetchJob entities.
func (m *FetchJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FetchJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FetchJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FetchJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *FetchJobMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *FetchJobMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *FetchJobMutation) ResetURL() {
	m.url = nil
}

// SetPlatform sets the "platform" field.
func (m *FetchJobMutation) SetPlatform(s string) {
	m.platform = &s
}

// Platform returns the value of the "platform" field in the mutation.
func (m *FetchJobMutation) Platform() (r string, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldPlatform(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *FetchJobMutation) ResetPlatform() {
	m.platform = nil
}

// SetStatus sets the "status" field.
func (m *FetchJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *FetchJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *FetchJobMutation) ResetStatus() {
	m.status = nil
}

// SetTitle sets the "title" field.
func (m *FetchJobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *FetchJobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *FetchJobMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[fetchjob.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *FetchJobMutation) TitleCleared() bool {
	_, ok := m.clearedFields[fetchjob.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *FetchJobMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, fetchjob.FieldTitle)
}

// SetErrorKind sets the "error_kind" field.
func (m *FetchJobMutation) SetErrorKind(s string) {
	m.error_kind = &s
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *FetchJobMutation) ErrorKind() (r string, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldErrorKind(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *FetchJobMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[fetchjob.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *FetchJobMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[fetchjob.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *FetchJobMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, fetchjob.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *FetchJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *FetchJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *FetchJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[fetchjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *FetchJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[fetchjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *FetchJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, fetchjob.FieldErrorMessage)
}

// SetResultPath sets the "result_path" field.
func (m *FetchJobMutation) SetResultPath(s string) {
	m.result_path = &s
}

// ResultPath returns the value of the "result_path" field in the mutation.
func (m *FetchJobMutation) ResultPath() (r string, exists bool) {
	v := m.result_path
	if v == nil {
		return
	}
	return *v, true
}

// OldResultPath returns the old "result_path" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldResultPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultPath: %w", err)
	}
	return oldValue.ResultPath, nil
}

// ClearResultPath clears the value of the "result_path" field.
func (m *FetchJobMutation) ClearResultPath() {
	m.result_path = nil
	m.clearedFields[fetchjob.FieldResultPath] = struct{}{}
}

// ResultPathCleared returns if the "result_path" field was cleared in this mutation.
func (m *FetchJobMutation) ResultPathCleared() bool {
	_, ok := m.clearedFields[fetchjob.FieldResultPath]
	return ok
}

// ResetResultPath resets all changes to the "result_path" field.
func (m *FetchJobMutation) ResetResultPath() {
	m.result_path = nil
	delete(m.clearedFields, fetchjob.FieldResultPath)
}

// SetResultBytes sets the "result_bytes" field.
func (m *FetchJobMutation) SetResultBytes(i int64) {
	m.result_bytes = &i
	m.addresult_bytes = nil
}

// ResultBytes returns the value of the "result_bytes" field in the mutation.
func (m *FetchJobMutation) ResultBytes() (r int64, exists bool) {
	v := m.result_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldResultBytes returns the old "result_bytes" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldResultBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultBytes: %w", err)
	}
	return oldValue.ResultBytes, nil
}

// AddResultBytes adds i to the "result_bytes" field.
func (m *FetchJobMutation) AddResultBytes(i int64) {
	if m.addresult_bytes != nil {
		*m.addresult_bytes += i
	} else {
		m.addresult_bytes = &i
	}
}

// AddedResultBytes returns the value that was added to the "result_bytes" field in this mutation.
func (m *FetchJobMutation) AddedResultBytes() (r int64, exists bool) {
	v := m.addresult_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetResultBytes resets all changes to the "result_bytes" field.
func (m *FetchJobMutation) ResetResultBytes() {
	m.result_bytes = nil
	m.addresult_bytes = nil
}

// SetVideoDone sets the "video_done" field.
func (m *FetchJobMutation) SetVideoDone(b bool) {
	m.video_done = &b
}

// VideoDone returns the value of the "video_done" field in the mutation.
func (m *FetchJobMutation) VideoDone() (r bool, exists bool) {
	v := m.video_done
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoDone returns the old "video_done" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldVideoDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoDone: %w", err)
	}
	return oldValue.VideoDone, nil
}

// ResetVideoDone resets all changes to the "video_done" field.
func (m *FetchJobMutation) ResetVideoDone() {
	m.video_done = nil
}

// SetAudioDone sets the "audio_done" field.
func (m *FetchJobMutation) SetAudioDone(b bool) {
	m.audio_done = &b
}

// AudioDone returns the value of the "audio_done" field in the mutation.
func (m *FetchJobMutation) AudioDone() (r bool, exists bool) {
	v := m.audio_done
	if v == nil {
		return
	}
	return *v, true
}

// OldAudioDone returns the old "audio_done" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldAudioDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAudioDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAudioDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAudioDone: %w", err)
	}
	return oldValue.AudioDone, nil
}

// ResetAudioDone resets all changes to the "audio_done" field.
func (m *FetchJobMutation) ResetAudioDone() {
	m.audio_done = nil
}

// SetMergeDone sets the "merge_done" field.
func (m *FetchJobMutation) SetMergeDone(b bool) {
	m.merge_done = &b
}

// MergeDone returns the value of the "merge_done" field in the mutation.
func (m *FetchJobMutation) MergeDone() (r bool, exists bool) {
	v := m.merge_done
	if v == nil {
		return
	}
	return *v, true
}

// OldMergeDone returns the old "merge_done" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldMergeDone(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMergeDone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMergeDone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMergeDone: %w", err)
	}
	return oldValue.MergeDone, nil
}

// ResetMergeDone resets all changes to the "merge_done" field.
func (m *FetchJobMutation) ResetMergeDone() {
	m.merge_done = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FetchJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FetchJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *FetchJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *FetchJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *FetchJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the FetchJob entity.
// If the FetchJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FetchJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *FetchJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[fetchjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *FetchJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[fetchjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *FetchJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, fetchjob.FieldFinishedAt)
}

// Where appends a list predicates to the FetchJobMutation builder.
func (m *FetchJobMutation) Where(ps ...predicate.FetchJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FetchJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FetchJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FetchJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FetchJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FetchJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FetchJob).
func (m *FetchJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FetchJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.url != nil {
		fields = append(fields, fetchjob.FieldURL)
	}
	if m.platform != nil {
		fields = append(fields, fetchjob.FieldPlatform)
	}
	if m.status != nil {
		fields = append(fields, fetchjob.FieldStatus)
	}
	if m.title != nil {
		fields = append(fields, fetchjob.FieldTitle)
	}
	if m.error_kind != nil {
		fields = append(fields, fetchjob.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, fetchjob.FieldErrorMessage)
	}
	if m.result_path != nil {
		fields = append(fields, fetchjob.FieldResultPath)
	}
	if m.result_bytes != nil {
		fields = append(fields, fetchjob.FieldResultBytes)
	}
	if m.video_done != nil {
		fields = append(fields, fetchjob.FieldVideoDone)
	}
	if m.audio_done != nil {
		fields = append(fields, fetchjob.FieldAudioDone)
	}
	if m.merge_done != nil {
		fields = append(fields, fetchjob.FieldMergeDone)
	}
	if m.created_at != nil {
		fields = append(fields, fetchjob.FieldCreatedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, fetchjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FetchJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case fetchjob.FieldURL:
		return m.URL()
	case fetchjob.FieldPlatform:
		return m.Platform()
	case fetchjob.FieldStatus:
		return m.Status()
	case fetchjob.FieldTitle:
		return m.Title()
	case fetchjob.FieldErrorKind:
		return m.ErrorKind()
	case fetchjob.FieldErrorMessage:
		return m.ErrorMessage()
	case fetchjob.FieldResultPath:
		return m.ResultPath()
	case fetchjob.FieldResultBytes:
		return m.ResultBytes()
	case fetchjob.FieldVideoDone:
		return m.VideoDone()
	case fetchjob.FieldAudioDone:
		return m.AudioDone()
	case fetchjob.FieldMergeDone:
		return m.MergeDone()
	case fetchjob.FieldCreatedAt:
		return m.CreatedAt()
	case fetchjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FetchJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case fetchjob.FieldURL:
		return m.OldURL(ctx)
	case fetchjob.FieldPlatform:
		return m.OldPlatform(ctx)
	case fetchjob.FieldStatus:
		return m.OldStatus(ctx)
	case fetchjob.FieldTitle:
		return m.OldTitle(ctx)
	case fetchjob.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case fetchjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case fetchjob.FieldResultPath:
		return m.OldResultPath(ctx)
	case fetchjob.FieldResultBytes:
		return m.OldResultBytes(ctx)
	case fetchjob.FieldVideoDone:
		return m.OldVideoDone(ctx)
	case fetchjob.FieldAudioDone:
		return m.OldAudioDone(ctx)
	case fetchjob.FieldMergeDone:
		return m.OldMergeDone(ctx)
	case fetchjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case fetchjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FetchJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FetchJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case fetchjob.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case fetchjob.FieldPlatform:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case fetchjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case fetchjob.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case fetchjob.FieldErrorKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case fetchjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case fetchjob.FieldResultPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultPath(v)
		return nil
	case fetchjob.FieldResultBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultBytes(v)
		return nil
	case fetchjob.FieldVideoDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoDone(v)
		return nil
	case fetchjob.FieldAudioDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAudioDone(v)
		return nil
	case fetchjob.FieldMergeDone:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMergeDone(v)
		return nil
	case fetchjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case fetchjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FetchJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FetchJobMutation) AddedFields() []string {
	var fields []string
	if m.addresult_bytes != nil {
		fields = append(fields, fetchjob.FieldResultBytes)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FetchJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case fetchjob.FieldResultBytes:
		return m.AddedResultBytes()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FetchJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case fetchjob.FieldResultBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResultBytes(v)
		return nil
	}
	return fmt.Errorf("unknown FetchJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FetchJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(fetchjob.FieldTitle) {
		fields = append(fields, fetchjob.FieldTitle)
	}
	if m.FieldCleared(fetchjob.FieldErrorKind) {
		fields = append(fields, fetchjob.FieldErrorKind)
	}
	if m.FieldCleared(fetchjob.FieldErrorMessage) {
		fields = append(fields, fetchjob.FieldErrorMessage)
	}
	if m.FieldCleared(fetchjob.FieldResultPath) {
		fields = append(fields, fetchjob.FieldResultPath)
	}
	if m.FieldCleared(fetchjob.FieldFinishedAt) {
		fields = append(fields, fetchjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FetchJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FetchJobMutation) ClearField(name string) error {
	switch name {
	case fetchjob.FieldTitle:
		m.ClearTitle()
		return nil
	case fetchjob.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case fetchjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case fetchjob.FieldResultPath:
		m.ClearResultPath()
		return nil
	case fetchjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown FetchJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FetchJobMutation) ResetField(name string) error {
	switch name {
	case fetchjob.FieldURL:
		m.ResetURL()
		return nil
	case fetchjob.FieldPlatform:
		m.ResetPlatform()
		return nil
	case fetchjob.FieldStatus:
		m.ResetStatus()
		return nil
	case fetchjob.FieldTitle:
		m.ResetTitle()
		return nil
	case fetchjob.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case fetchjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case fetchjob.FieldResultPath:
		m.ResetResultPath()
		return nil
	case fetchjob.FieldResultBytes:
		m.ResetResultBytes()
		return nil
	case fetchjob.FieldVideoDone:
		m.ResetVideoDone()
		return nil
	case fetchjob.FieldAudioDone:
		m.ResetAudioDone()
		return nil
	case fetchjob.FieldMergeDone:
		m.ResetMergeDone()
		return nil
	case fetchjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case fetchjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown FetchJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FetchJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FetchJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FetchJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FetchJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FetchJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FetchJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FetchJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FetchJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FetchJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FetchJob edge %s", name)
}
