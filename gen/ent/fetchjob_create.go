// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mediafetch/gen/ent/fetchjob"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FetchJobCreate is the builder for creating a FetchJob entity.
type FetchJobCreate struct {
	config
	mutation *FetchJobMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetURL sets the "url" field.
func (_c *FetchJobCreate) SetURL(v string) *FetchJobCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetPlatform sets the "platform" field.
func (_c *FetchJobCreate) SetPlatform(v string) *FetchJobCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *FetchJobCreate) SetStatus(v string) *FetchJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *FetchJobCreate) SetTitle(v string) *FetchJobCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *FetchJobCreate) SetNillableTitle(v *string) *FetchJobCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetErrorKind sets the "error_kind" field.
func (_c *FetchJobCreate) SetErrorKind(v string) *FetchJobCreate {
	_c.mutation.SetErrorKind(v)
	return _c
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_c *FetchJobCreate) SetNillableErrorKind(v *string) *FetchJobCreate {
	if v != nil {
		_c.SetErrorKind(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *FetchJobCreate) SetErrorMessage(v string) *FetchJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *FetchJobCreate) SetNillableErrorMessage(v *string) *FetchJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetResultPath sets the "result_path" field.
func (_c *FetchJobCreate) SetResultPath(v string) *FetchJobCreate {
	_c.mutation.SetResultPath(v)
	return _c
}

// SetNillableResultPath sets the "result_path" field if the given value is not nil.
func (_c *FetchJobCreate) SetNillableResultPath(v *string) *FetchJobCreate {
	if v != nil {
		_c.SetResultPath(*v)
	}
	return _c
}

// SetResultBytes sets the "result_bytes" field.
func (_c *FetchJobCreate) SetResultBytes(v int64) *FetchJobCreate {
	_c.mutation.SetResultBytes(v)
	return _c
}

// SetNillableResultBytes sets the "result_bytes" field if the given value is not nil.
func (_c *FetchJobCreate) SetNillableResultBytes(v *int64) *FetchJobCreate {
	if v != nil {
		_c.SetResultBytes(*v)
	}
	return _c
}

// SetVideoDone sets the "video_done" field.
func (_c *FetchJobCreate) SetVideoDone(v bool) *FetchJobCreate {
	_c.mutation.SetVideoDone(v)
	return _c
}

// SetNillableVideoDone sets the "video_done" field if the given value is not nil.
func (_c *FetchJobCreate) SetNillableVideoDone(v *bool) *FetchJobCreate {
	if v != nil {
		_c.SetVideoDone(*v)
	}
	return _c
}

// SetAudioDone sets the "audio_done" field.
func (_c *FetchJobCreate) SetAudioDone(v bool) *FetchJobCreate {
	_c.mutation.SetAudioDone(v)
	return _c
}

// SetNillableAudioDone sets the "audio_done" field if the given value is not nil.
func (_c *FetchJobCreate) SetNillableAudioDone(v *bool) *FetchJobCreate {
	if v != nil {
		_c.SetAudioDone(*v)
	}
	return _c
}

// SetMergeDone sets the "merge_done" field.
func (_c *FetchJobCreate) SetMergeDone(v bool) *FetchJobCreate {
	_c.mutation.SetMergeDone(v)
	return _c
}

// SetNillableMergeDone sets the "merge_done" field if the given value is not nil.
func (_c *FetchJobCreate) SetNillableMergeDone(v *bool) *FetchJobCreate {
	if v != nil {
		_c.SetMergeDone(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FetchJobCreate) SetCreatedAt(v time.Time) *FetchJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FetchJobCreate) SetNillableCreatedAt(v *time.Time) *FetchJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *FetchJobCreate) SetFinishedAt(v time.Time) *FetchJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *FetchJobCreate) SetNillableFinishedAt(v *time.Time) *FetchJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FetchJobCreate) SetID(v uuid.UUID) *FetchJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the FetchJobMutation object of the builder.
func (_c *FetchJobCreate) Mutation() *FetchJobMutation {
	return _c.mutation
}

// Save creates the FetchJob in the database.
func (_c *FetchJobCreate) Save(ctx context.Context) (*FetchJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FetchJobCreate) SaveX(ctx context.Context) *FetchJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FetchJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FetchJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FetchJobCreate) defaults() {
	if _, ok := _c.mutation.ResultBytes(); !ok {
		v := fetchjob.DefaultResultBytes
		_c.mutation.SetResultBytes(v)
	}
	if _, ok := _c.mutation.VideoDone(); !ok {
		v := fetchjob.DefaultVideoDone
		_c.mutation.SetVideoDone(v)
	}
	if _, ok := _c.mutation.AudioDone(); !ok {
		v := fetchjob.DefaultAudioDone
		_c.mutation.SetAudioDone(v)
	}
	if _, ok := _c.mutation.MergeDone(); !ok {
		v := fetchjob.DefaultMergeDone
		_c.mutation.SetMergeDone(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fetchjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FetchJobCreate) check() error {
	if _, ok := _c.mutation.URL(); !ok {
		return &ValidationError{Name: "url", err: errors.New(`ent: missing required field "FetchJob.url"`)}
	}
	if v, ok := _c.mutation.URL(); ok {
		if err := fetchjob.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "FetchJob.url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "FetchJob.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := fetchjob.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "FetchJob.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FetchJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := fetchjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FetchJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ResultBytes(); !ok {
		return &ValidationError{Name: "result_bytes", err: errors.New(`ent: missing required field "FetchJob.result_bytes"`)}
	}
	if _, ok := _c.mutation.VideoDone(); !ok {
		return &ValidationError{Name: "video_done", err: errors.New(`ent: missing required field "FetchJob.video_done"`)}
	}
	if _, ok := _c.mutation.AudioDone(); !ok {
		return &ValidationError{Name: "audio_done", err: errors.New(`ent: missing required field "FetchJob.audio_done"`)}
	}
	if _, ok := _c.mutation.MergeDone(); !ok {
		return &ValidationError{Name: "merge_done", err: errors.New(`ent: missing required field "FetchJob.merge_done"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FetchJob.created_at"`)}
	}
	return nil
}

func (_c *FetchJobCreate) sqlSave(ctx context.Context) (*FetchJob, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FetchJobCreate) createSpec() (*FetchJob, *sqlgraph.CreateSpec) {
	var (
		_node = &FetchJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fetchjob.Table, sqlgraph.NewFieldSpec(fetchjob.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(fetchjob.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(fetchjob.FieldPlatform, field.TypeString, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(fetchjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(fetchjob.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.ErrorKind(); ok {
		_spec.SetField(fetchjob.FieldErrorKind, field.TypeString, value)
		_node.ErrorKind = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(fetchjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ResultPath(); ok {
		_spec.SetField(fetchjob.FieldResultPath, field.TypeString, value)
		_node.ResultPath = &value
	}
	if value, ok := _c.mutation.ResultBytes(); ok {
		_spec.SetField(fetchjob.FieldResultBytes, field.TypeInt64, value)
		_node.ResultBytes = value
	}
	if value, ok := _c.mutation.VideoDone(); ok {
		_spec.SetField(fetchjob.FieldVideoDone, field.TypeBool, value)
		_node.VideoDone = value
	}
	if value, ok := _c.mutation.AudioDone(); ok {
		_spec.SetField(fetchjob.FieldAudioDone, field.TypeBool, value)
		_node.AudioDone = value
	}
	if value, ok := _c.mutation.MergeDone(); ok {
		_spec.SetField(fetchjob.FieldMergeDone, field.TypeBool, value)
		_node.MergeDone = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fetchjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(fetchjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FetchJob.Create().
//		SetURL(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FetchJobUpsert) {
//			SetURL(v+v).
//		}).
//		Exec(ctx)
func (_c *FetchJobCreate) OnConflict(opts ...sql.ConflictOption) *FetchJobUpsertOne {
	_c.conflict = opts
	return &FetchJobUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FetchJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FetchJobCreate) OnConflictColumns(columns ...string) *FetchJobUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FetchJobUpsertOne{
		create: _c,
	}
}

type (
	// FetchJobUpsertOne is the builder for "upsert"-ing
	//  one FetchJob node.
	FetchJobUpsertOne struct {
		create *FetchJobCreate
	}

	// FetchJobUpsert is the "OnConflict" setter.
	FetchJobUpsert struct {
		*sql.UpdateSet
	}
)

// SetURL sets the "url" field.
func (u *FetchJobUpsert) SetURL(v string) *FetchJobUpsert {
	u.Set(fetchjob.FieldURL, v)
	return u
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateURL() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldURL)
	return u
}

// SetPlatform sets the "platform" field.
func (u *FetchJobUpsert) SetPlatform(v string) *FetchJobUpsert {
	u.Set(fetchjob.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdatePlatform() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldPlatform)
	return u
}

// SetStatus sets the "status" field.
func (u *FetchJobUpsert) SetStatus(v string) *FetchJobUpsert {
	u.Set(fetchjob.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateStatus() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldStatus)
	return u
}

// SetTitle sets the "title" field.
func (u *FetchJobUpsert) SetTitle(v string) *FetchJobUpsert {
	u.Set(fetchjob.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateTitle() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *FetchJobUpsert) ClearTitle() *FetchJobUpsert {
	u.SetNull(fetchjob.FieldTitle)
	return u
}

// SetErrorKind sets the "error_kind" field.
func (u *FetchJobUpsert) SetErrorKind(v string) *FetchJobUpsert {
	u.Set(fetchjob.FieldErrorKind, v)
	return u
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateErrorKind() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldErrorKind)
	return u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *FetchJobUpsert) ClearErrorKind() *FetchJobUpsert {
	u.SetNull(fetchjob.FieldErrorKind)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *FetchJobUpsert) SetErrorMessage(v string) *FetchJobUpsert {
	u.Set(fetchjob.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateErrorMessage() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *FetchJobUpsert) ClearErrorMessage() *FetchJobUpsert {
	u.SetNull(fetchjob.FieldErrorMessage)
	return u
}

// SetResultPath sets the "result_path" field.
func (u *FetchJobUpsert) SetResultPath(v string) *FetchJobUpsert {
	u.Set(fetchjob.FieldResultPath, v)
	return u
}

// UpdateResultPath sets the "result_path" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateResultPath() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldResultPath)
	return u
}

// ClearResultPath clears the value of the "result_path" field.
func (u *FetchJobUpsert) ClearResultPath() *FetchJobUpsert {
	u.SetNull(fetchjob.FieldResultPath)
	return u
}

// SetResultBytes sets the "result_bytes" field.
func (u *FetchJobUpsert) SetResultBytes(v int64) *FetchJobUpsert {
	u.Set(fetchjob.FieldResultBytes, v)
	return u
}

// UpdateResultBytes sets the "result_bytes" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateResultBytes() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldResultBytes)
	return u
}

// AddResultBytes adds v to the "result_bytes" field.
func (u *FetchJobUpsert) AddResultBytes(v int64) *FetchJobUpsert {
	u.Add(fetchjob.FieldResultBytes, v)
	return u
}

// SetVideoDone sets the "video_done" field.
func (u *FetchJobUpsert) SetVideoDone(v bool) *FetchJobUpsert {
	u.Set(fetchjob.FieldVideoDone, v)
	return u
}

// UpdateVideoDone sets the "video_done" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateVideoDone() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldVideoDone)
	return u
}

// SetAudioDone sets the "audio_done" field.
func (u *FetchJobUpsert) SetAudioDone(v bool) *FetchJobUpsert {
	u.Set(fetchjob.FieldAudioDone, v)
	return u
}

// UpdateAudioDone sets the "audio_done" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateAudioDone() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldAudioDone)
	return u
}

// SetMergeDone sets the "merge_done" field.
func (u *FetchJobUpsert) SetMergeDone(v bool) *FetchJobUpsert {
	u.Set(fetchjob.FieldMergeDone, v)
	return u
}

// UpdateMergeDone sets the "merge_done" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateMergeDone() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldMergeDone)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *FetchJobUpsert) SetCreatedAt(v time.Time) *FetchJobUpsert {
	u.Set(fetchjob.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateCreatedAt() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldCreatedAt)
	return u
}

// SetFinishedAt sets the "finished_at" field.
func (u *FetchJobUpsert) SetFinishedAt(v time.Time) *FetchJobUpsert {
	u.Set(fetchjob.FieldFinishedAt, v)
	return u
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *FetchJobUpsert) UpdateFinishedAt() *FetchJobUpsert {
	u.SetExcluded(fetchjob.FieldFinishedAt)
	return u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *FetchJobUpsert) ClearFinishedAt() *FetchJobUpsert {
	u.SetNull(fetchjob.FieldFinishedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FetchJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fetchjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FetchJobUpsertOne) UpdateNewValues() *FetchJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(fetchjob.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FetchJob.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FetchJobUpsertOne) Ignore() *FetchJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FetchJobUpsertOne) DoNothing() *FetchJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FetchJobCreate.OnConflict
// documentation for more info.
func (u *FetchJobUpsertOne) Update(set func(*FetchJobUpsert)) *FetchJobUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FetchJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetURL sets the "url" field.
func (u *FetchJobUpsertOne) SetURL(v string) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateURL() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateURL()
	})
}

// SetPlatform sets the "platform" field.
func (u *FetchJobUpsertOne) SetPlatform(v string) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdatePlatform() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdatePlatform()
	})
}

// SetStatus sets the "status" field.
func (u *FetchJobUpsertOne) SetStatus(v string) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateStatus() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateStatus()
	})
}

// SetTitle sets the "title" field.
func (u *FetchJobUpsertOne) SetTitle(v string) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateTitle() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *FetchJobUpsertOne) ClearTitle() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.ClearTitle()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *FetchJobUpsertOne) SetErrorKind(v string) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateErrorKind() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *FetchJobUpsertOne) ClearErrorKind() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *FetchJobUpsertOne) SetErrorMessage(v string) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateErrorMessage() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *FetchJobUpsertOne) ClearErrorMessage() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetResultPath sets the "result_path" field.
func (u *FetchJobUpsertOne) SetResultPath(v string) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetResultPath(v)
	})
}

// UpdateResultPath sets the "result_path" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateResultPath() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateResultPath()
	})
}

// ClearResultPath clears the value of the "result_path" field.
func (u *FetchJobUpsertOne) ClearResultPath() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.ClearResultPath()
	})
}

// SetResultBytes sets the "result_bytes" field.
func (u *FetchJobUpsertOne) SetResultBytes(v int64) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetResultBytes(v)
	})
}

// AddResultBytes adds v to the "result_bytes" field.
func (u *FetchJobUpsertOne) AddResultBytes(v int64) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.AddResultBytes(v)
	})
}

// UpdateResultBytes sets the "result_bytes" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateResultBytes() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateResultBytes()
	})
}

// SetVideoDone sets the "video_done" field.
func (u *FetchJobUpsertOne) SetVideoDone(v bool) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetVideoDone(v)
	})
}

// UpdateVideoDone sets the "video_done" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateVideoDone() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateVideoDone()
	})
}

// SetAudioDone sets the "audio_done" field.
func (u *FetchJobUpsertOne) SetAudioDone(v bool) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetAudioDone(v)
	})
}

// UpdateAudioDone sets the "audio_done" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateAudioDone() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateAudioDone()
	})
}

// SetMergeDone sets the "merge_done" field.
func (u *FetchJobUpsertOne) SetMergeDone(v bool) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetMergeDone(v)
	})
}

// UpdateMergeDone sets the "merge_done" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateMergeDone() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateMergeDone()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *FetchJobUpsertOne) SetCreatedAt(v time.Time) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateCreatedAt() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *FetchJobUpsertOne) SetFinishedAt(v time.Time) *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *FetchJobUpsertOne) UpdateFinishedAt() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *FetchJobUpsertOne) ClearFinishedAt() *FetchJobUpsertOne {
	return u.Update(func(s *FetchJobUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *FetchJobUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FetchJobCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FetchJobUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FetchJobUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: FetchJobUpsertOne.ID is not supported by MySQL driver. Use FetchJobUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FetchJobUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FetchJobCreateBulk is the builder for creating many FetchJob entities in bulk.
type FetchJobCreateBulk struct {
	config
	err      error
	builders []*FetchJobCreate
	conflict []sql.ConflictOption
}

// Save creates the FetchJob entities in the database.
func (_c *FetchJobCreateBulk) Save(ctx context.Context) ([]*FetchJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FetchJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FetchJobMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *FetchJobCreateBulk) SaveX(ctx context.Context) []*FetchJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FetchJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FetchJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FetchJob.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FetchJobUpsert) {
//			SetURL(v+v).
//		}).
//		Exec(ctx)
func (_c *FetchJobCreateBulk) OnConflict(opts ...sql.ConflictOption) *FetchJobUpsertBulk {
	_c.conflict = opts
	return &FetchJobUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FetchJob.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FetchJobCreateBulk) OnConflictColumns(columns ...string) *FetchJobUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FetchJobUpsertBulk{
		create: _c,
	}
}

// FetchJobUpsertBulk is the builder for "upsert"-ing
// a bulk of FetchJob nodes.
type FetchJobUpsertBulk struct {
	create *FetchJobCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FetchJob.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(fetchjob.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FetchJobUpsertBulk) UpdateNewValues() *FetchJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(fetchjob.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FetchJob.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FetchJobUpsertBulk) Ignore() *FetchJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FetchJobUpsertBulk) DoNothing() *FetchJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FetchJobCreateBulk.OnConflict
// documentation for more info.
func (u *FetchJobUpsertBulk) Update(set func(*FetchJobUpsert)) *FetchJobUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FetchJobUpsert{UpdateSet: update})
	}))
	return u
}

// SetURL sets the "url" field.
func (u *FetchJobUpsertBulk) SetURL(v string) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetURL(v)
	})
}

// UpdateURL sets the "url" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateURL() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateURL()
	})
}

// SetPlatform sets the "platform" field.
func (u *FetchJobUpsertBulk) SetPlatform(v string) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdatePlatform() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdatePlatform()
	})
}

// SetStatus sets the "status" field.
func (u *FetchJobUpsertBulk) SetStatus(v string) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateStatus() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateStatus()
	})
}

// SetTitle sets the "title" field.
func (u *FetchJobUpsertBulk) SetTitle(v string) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateTitle() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *FetchJobUpsertBulk) ClearTitle() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.ClearTitle()
	})
}

// SetErrorKind sets the "error_kind" field.
func (u *FetchJobUpsertBulk) SetErrorKind(v string) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetErrorKind(v)
	})
}

// UpdateErrorKind sets the "error_kind" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateErrorKind() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateErrorKind()
	})
}

// ClearErrorKind clears the value of the "error_kind" field.
func (u *FetchJobUpsertBulk) ClearErrorKind() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.ClearErrorKind()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *FetchJobUpsertBulk) SetErrorMessage(v string) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateErrorMessage() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *FetchJobUpsertBulk) ClearErrorMessage() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.ClearErrorMessage()
	})
}

// SetResultPath sets the "result_path" field.
func (u *FetchJobUpsertBulk) SetResultPath(v string) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetResultPath(v)
	})
}

// UpdateResultPath sets the "result_path" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateResultPath() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateResultPath()
	})
}

// ClearResultPath clears the value of the "result_path" field.
func (u *FetchJobUpsertBulk) ClearResultPath() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.ClearResultPath()
	})
}

// SetResultBytes sets the "result_bytes" field.
func (u *FetchJobUpsertBulk) SetResultBytes(v int64) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetResultBytes(v)
	})
}

// AddResultBytes adds v to the "result_bytes" field.
func (u *FetchJobUpsertBulk) AddResultBytes(v int64) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.AddResultBytes(v)
	})
}

// UpdateResultBytes sets the "result_bytes" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateResultBytes() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateResultBytes()
	})
}

// SetVideoDone sets the "video_done" field.
func (u *FetchJobUpsertBulk) SetVideoDone(v bool) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetVideoDone(v)
	})
}

// UpdateVideoDone sets the "video_done" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateVideoDone() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateVideoDone()
	})
}

// SetAudioDone sets the "audio_done" field.
func (u *FetchJobUpsertBulk) SetAudioDone(v bool) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetAudioDone(v)
	})
}

// UpdateAudioDone sets the "audio_done" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateAudioDone() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateAudioDone()
	})
}

// SetMergeDone sets the "merge_done" field.
func (u *FetchJobUpsertBulk) SetMergeDone(v bool) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetMergeDone(v)
	})
}

// UpdateMergeDone sets the "merge_done" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateMergeDone() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateMergeDone()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *FetchJobUpsertBulk) SetCreatedAt(v time.Time) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateCreatedAt() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateCreatedAt()
	})
}

// SetFinishedAt sets the "finished_at" field.
func (u *FetchJobUpsertBulk) SetFinishedAt(v time.Time) *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.SetFinishedAt(v)
	})
}

// UpdateFinishedAt sets the "finished_at" field to the value that was provided on create.
func (u *FetchJobUpsertBulk) UpdateFinishedAt() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.UpdateFinishedAt()
	})
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (u *FetchJobUpsertBulk) ClearFinishedAt() *FetchJobUpsertBulk {
	return u.Update(func(s *FetchJobUpsert) {
		s.ClearFinishedAt()
	})
}

// Exec executes the query.
func (u *FetchJobUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the FetchJobCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for FetchJobCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FetchJobUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
