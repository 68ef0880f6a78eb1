// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"mediafetch/gen/ent/fetchjob"
	"mediafetch/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FetchJobUpdate is the builder for updating FetchJob entities.
type FetchJobUpdate struct {
	config
	hooks    []Hook
	mutation *FetchJobMutation
}

// Where appends a list predicates to the FetchJobUpdate builder.
func (_u *FetchJobUpdate) Where(ps ...predicate.FetchJob) *FetchJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *FetchJobUpdate) SetURL(v string) *FetchJobUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableURL(v *string) *FetchJobUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *FetchJobUpdate) SetPlatform(v string) *FetchJobUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillablePlatform(v *string) *FetchJobUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FetchJobUpdate) SetStatus(v string) *FetchJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableStatus(v *string) *FetchJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *FetchJobUpdate) SetTitle(v string) *FetchJobUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableTitle(v *string) *FetchJobUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *FetchJobUpdate) ClearTitle() *FetchJobUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *FetchJobUpdate) SetErrorKind(v string) *FetchJobUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableErrorKind(v *string) *FetchJobUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *FetchJobUpdate) ClearErrorKind() *FetchJobUpdate {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FetchJobUpdate) SetErrorMessage(v string) *FetchJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableErrorMessage(v *string) *FetchJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FetchJobUpdate) ClearErrorMessage() *FetchJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultPath sets the "result_path" field.
func (_u *FetchJobUpdate) SetResultPath(v string) *FetchJobUpdate {
	_u.mutation.SetResultPath(v)
	return _u
}

// SetNillableResultPath sets the "result_path" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableResultPath(v *string) *FetchJobUpdate {
	if v != nil {
		_u.SetResultPath(*v)
	}
	return _u
}

// ClearResultPath clears the value of the "result_path" field.
func (_u *FetchJobUpdate) ClearResultPath() *FetchJobUpdate {
	_u.mutation.ClearResultPath()
	return _u
}

// SetResultBytes sets the "result_bytes" field.
func (_u *FetchJobUpdate) SetResultBytes(v int64) *FetchJobUpdate {
	_u.mutation.ResetResultBytes()
	_u.mutation.SetResultBytes(v)
	return _u
}

// SetNillableResultBytes sets the "result_bytes" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableResultBytes(v *int64) *FetchJobUpdate {
	if v != nil {
		_u.SetResultBytes(*v)
	}
	return _u
}

// AddResultBytes adds value to the "result_bytes" field.
func (_u *FetchJobUpdate) AddResultBytes(v int64) *FetchJobUpdate {
	_u.mutation.AddResultBytes(v)
	return _u
}

// SetVideoDone sets the "video_done" field.
func (_u *FetchJobUpdate) SetVideoDone(v bool) *FetchJobUpdate {
	_u.mutation.SetVideoDone(v)
	return _u
}

// SetNillableVideoDone sets the "video_done" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableVideoDone(v *bool) *FetchJobUpdate {
	if v != nil {
		_u.SetVideoDone(*v)
	}
	return _u
}

// SetAudioDone sets the "audio_done" field.
func (_u *FetchJobUpdate) SetAudioDone(v bool) *FetchJobUpdate {
	_u.mutation.SetAudioDone(v)
	return _u
}

// SetNillableAudioDone sets the "audio_done" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableAudioDone(v *bool) *FetchJobUpdate {
	if v != nil {
		_u.SetAudioDone(*v)
	}
	return _u
}

// SetMergeDone sets the "merge_done" field.
func (_u *FetchJobUpdate) SetMergeDone(v bool) *FetchJobUpdate {
	_u.mutation.SetMergeDone(v)
	return _u
}

// SetNillableMergeDone sets the "merge_done" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableMergeDone(v *bool) *FetchJobUpdate {
	if v != nil {
		_u.SetMergeDone(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FetchJobUpdate) SetCreatedAt(v time.Time) *FetchJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableCreatedAt(v *time.Time) *FetchJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *FetchJobUpdate) SetFinishedAt(v time.Time) *FetchJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *FetchJobUpdate) SetNillableFinishedAt(v *time.Time) *FetchJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *FetchJobUpdate) ClearFinishedAt() *FetchJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the FetchJobMutation object of the builder.
func (_u *FetchJobUpdate) Mutation() *FetchJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FetchJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FetchJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FetchJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FetchJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FetchJobUpdate) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := fetchjob.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "FetchJob.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Platform(); ok {
		if err := fetchjob.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "FetchJob.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := fetchjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FetchJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FetchJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fetchjob.Table, fetchjob.Columns, sqlgraph.NewFieldSpec(fetchjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(fetchjob.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(fetchjob.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fetchjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(fetchjob.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(fetchjob.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(fetchjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(fetchjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(fetchjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(fetchjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultPath(); ok {
		_spec.SetField(fetchjob.FieldResultPath, field.TypeString, value)
	}
	if _u.mutation.ResultPathCleared() {
		_spec.ClearField(fetchjob.FieldResultPath, field.TypeString)
	}
	if value, ok := _u.mutation.ResultBytes(); ok {
		_spec.SetField(fetchjob.FieldResultBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResultBytes(); ok {
		_spec.AddField(fetchjob.FieldResultBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.VideoDone(); ok {
		_spec.SetField(fetchjob.FieldVideoDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AudioDone(); ok {
		_spec.SetField(fetchjob.FieldAudioDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MergeDone(); ok {
		_spec.SetField(fetchjob.FieldMergeDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fetchjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(fetchjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(fetchjob.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fetchjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FetchJobUpdateOne is the builder for updating a single FetchJob entity.
type FetchJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FetchJobMutation
}

// SetURL sets the "url" field.
func (_u *FetchJobUpdateOne) SetURL(v string) *FetchJobUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableURL(v *string) *FetchJobUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *FetchJobUpdateOne) SetPlatform(v string) *FetchJobUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillablePlatform(v *string) *FetchJobUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FetchJobUpdateOne) SetStatus(v string) *FetchJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableStatus(v *string) *FetchJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *FetchJobUpdateOne) SetTitle(v string) *FetchJobUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableTitle(v *string) *FetchJobUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *FetchJobUpdateOne) ClearTitle() *FetchJobUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *FetchJobUpdateOne) SetErrorKind(v string) *FetchJobUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableErrorKind(v *string) *FetchJobUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// ClearErrorKind clears the value of the "error_kind" field.
func (_u *FetchJobUpdateOne) ClearErrorKind() *FetchJobUpdateOne {
	_u.mutation.ClearErrorKind()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *FetchJobUpdateOne) SetErrorMessage(v string) *FetchJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableErrorMessage(v *string) *FetchJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *FetchJobUpdateOne) ClearErrorMessage() *FetchJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetResultPath sets the "result_path" field.
func (_u *FetchJobUpdateOne) SetResultPath(v string) *FetchJobUpdateOne {
	_u.mutation.SetResultPath(v)
	return _u
}

// SetNillableResultPath sets the "result_path" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableResultPath(v *string) *FetchJobUpdateOne {
	if v != nil {
		_u.SetResultPath(*v)
	}
	return _u
}

// ClearResultPath clears the value of the "result_path" field.
func (_u *FetchJobUpdateOne) ClearResultPath() *FetchJobUpdateOne {
	_u.mutation.ClearResultPath()
	return _u
}

// SetResultBytes sets the "result_bytes" field.
func (_u *FetchJobUpdateOne) SetResultBytes(v int64) *FetchJobUpdateOne {
	_u.mutation.ResetResultBytes()
	_u.mutation.SetResultBytes(v)
	return _u
}

// SetNillableResultBytes sets the "result_bytes" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableResultBytes(v *int64) *FetchJobUpdateOne {
	if v != nil {
		_u.SetResultBytes(*v)
	}
	return _u
}

// AddResultBytes adds value to the "result_bytes" field.
func (_u *FetchJobUpdateOne) AddResultBytes(v int64) *FetchJobUpdateOne {
	_u.mutation.AddResultBytes(v)
	return _u
}

// SetVideoDone sets the "video_done" field.
func (_u *FetchJobUpdateOne) SetVideoDone(v bool) *FetchJobUpdateOne {
	_u.mutation.SetVideoDone(v)
	return _u
}

// SetNillableVideoDone sets the "video_done" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableVideoDone(v *bool) *FetchJobUpdateOne {
	if v != nil {
		_u.SetVideoDone(*v)
	}
	return _u
}

// SetAudioDone sets the "audio_done" field.
func (_u *FetchJobUpdateOne) SetAudioDone(v bool) *FetchJobUpdateOne {
	_u.mutation.SetAudioDone(v)
	return _u
}

// SetNillableAudioDone sets the "audio_done" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableAudioDone(v *bool) *FetchJobUpdateOne {
	if v != nil {
		_u.SetAudioDone(*v)
	}
	return _u
}

// SetMergeDone sets the "merge_done" field.
func (_u *FetchJobUpdateOne) SetMergeDone(v bool) *FetchJobUpdateOne {
	_u.mutation.SetMergeDone(v)
	return _u
}

// SetNillableMergeDone sets the "merge_done" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableMergeDone(v *bool) *FetchJobUpdateOne {
	if v != nil {
		_u.SetMergeDone(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *FetchJobUpdateOne) SetCreatedAt(v time.Time) *FetchJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableCreatedAt(v *time.Time) *FetchJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *FetchJobUpdateOne) SetFinishedAt(v time.Time) *FetchJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *FetchJobUpdateOne) SetNillableFinishedAt(v *time.Time) *FetchJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *FetchJobUpdateOne) ClearFinishedAt() *FetchJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the FetchJobMutation object of the builder.
func (_u *FetchJobUpdateOne) Mutation() *FetchJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the FetchJobUpdate builder.
func (_u *FetchJobUpdateOne) Where(ps ...predicate.FetchJob) *FetchJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FetchJobUpdateOne) Select(field string, fields ...string) *FetchJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FetchJob entity.
func (_u *FetchJobUpdateOne) Save(ctx context.Context) (*FetchJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FetchJobUpdateOne) SaveX(ctx context.Context) *FetchJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FetchJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FetchJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FetchJobUpdateOne) check() error {
	if v, ok := _u.mutation.URL(); ok {
		if err := fetchjob.URLValidator(v); err != nil {
			return &ValidationError{Name: "url", err: fmt.Errorf(`ent: validator failed for field "FetchJob.url": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Platform(); ok {
		if err := fetchjob.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "FetchJob.platform": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := fetchjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FetchJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *FetchJobUpdateOne) sqlSave(ctx context.Context) (_node *FetchJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fetchjob.Table, fetchjob.Columns, sqlgraph.NewFieldSpec(fetchjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FetchJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fetchjob.FieldID)
		for _, f := range fields {
			if !fetchjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fetchjob.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(fetchjob.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(fetchjob.FieldPlatform, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(fetchjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(fetchjob.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(fetchjob.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(fetchjob.FieldErrorKind, field.TypeString, value)
	}
	if _u.mutation.ErrorKindCleared() {
		_spec.ClearField(fetchjob.FieldErrorKind, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(fetchjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(fetchjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ResultPath(); ok {
		_spec.SetField(fetchjob.FieldResultPath, field.TypeString, value)
	}
	if _u.mutation.ResultPathCleared() {
		_spec.ClearField(fetchjob.FieldResultPath, field.TypeString)
	}
	if value, ok := _u.mutation.ResultBytes(); ok {
		_spec.SetField(fetchjob.FieldResultBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedResultBytes(); ok {
		_spec.AddField(fetchjob.FieldResultBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.VideoDone(); ok {
		_spec.SetField(fetchjob.FieldVideoDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AudioDone(); ok {
		_spec.SetField(fetchjob.FieldAudioDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MergeDone(); ok {
		_spec.SetField(fetchjob.FieldMergeDone, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(fetchjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(fetchjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(fetchjob.FieldFinishedAt, field.TypeTime)
	}
	_node = &FetchJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fetchjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
