// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"mediafetch/gen/ent/fetchjob"
	"mediafetch/gen/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FetchJobDelete is the builder for deleting a FetchJob entity.
type FetchJobDelete struct {
	config
	hooks    []Hook
	mutation *FetchJobMutation
}

// Where appends a list predicates to the FetchJobDelete builder.
func (_d *FetchJobDelete) Where(ps ...predicate.FetchJob) *FetchJobDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FetchJobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FetchJobDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FetchJobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fetchjob.Table, sqlgraph.NewFieldSpec(fetchjob.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FetchJobDeleteOne is the builder for deleting a single FetchJob entity.
type FetchJobDeleteOne struct {
	_d *FetchJobDelete
}

// Where appends a list predicates to the FetchJobDelete builder.
func (_d *FetchJobDeleteOne) Where(ps ...predicate.FetchJob) *FetchJobDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FetchJobDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fetchjob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FetchJobDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
