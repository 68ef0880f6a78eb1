// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"mediafetch/gen/ent/fetchjob"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// FetchJob is the model entity for the FetchJob schema.
type FetchJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform string `json:"platform,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// Title holds the value of the "title" field.
	Title *string `json:"title,omitempty"`
	// ErrorKind holds the value of the "error_kind" field.
	ErrorKind *string `json:"error_kind,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// ResultPath holds the value of the "result_path" field.
	ResultPath *string `json:"result_path,omitempty"`
	// ResultBytes holds the value of the "result_bytes" field.
	ResultBytes int64 `json:"result_bytes,omitempty"`
	// VideoDone holds the value of the "video_done" field.
	VideoDone bool `json:"video_done,omitempty"`
	// AudioDone holds the value of the "audio_done" field.
	AudioDone bool `json:"audio_done,omitempty"`
	// MergeDone holds the value of the "merge_done" field.
	MergeDone bool `json:"merge_done,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// FinishedAt holds the value of the "finished_at" field.
	FinishedAt   *time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FetchJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fetchjob.FieldVideoDone, fetchjob.FieldAudioDone, fetchjob.FieldMergeDone:
			values[i] = new(sql.NullBool)
		case fetchjob.FieldResultBytes:
			values[i] = new(sql.NullInt64)
		case fetchjob.FieldURL, fetchjob.FieldPlatform, fetchjob.FieldStatus, fetchjob.FieldTitle, fetchjob.FieldErrorKind, fetchjob.FieldErrorMessage, fetchjob.FieldResultPath:
			values[i] = new(sql.NullString)
		case fetchjob.FieldCreatedAt, fetchjob.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		case fetchjob.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FetchJob fields.
func (_m *FetchJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fetchjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case fetchjob.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case fetchjob.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = value.String
			}
		case fetchjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case fetchjob.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case fetchjob.FieldErrorKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_kind", values[i])
			} else if value.Valid {
				_m.ErrorKind = new(string)
				*_m.ErrorKind = value.String
			}
		case fetchjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case fetchjob.FieldResultPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field result_path", values[i])
			} else if value.Valid {
				_m.ResultPath = new(string)
				*_m.ResultPath = value.String
			}
		case fetchjob.FieldResultBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field result_bytes", values[i])
			} else if value.Valid {
				_m.ResultBytes = value.Int64
			}
		case fetchjob.FieldVideoDone:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field video_done", values[i])
			} else if value.Valid {
				_m.VideoDone = value.Bool
			}
		case fetchjob.FieldAudioDone:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field audio_done", values[i])
			} else if value.Valid {
				_m.AudioDone = value.Bool
			}
		case fetchjob.FieldMergeDone:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field merge_done", values[i])
			} else if value.Valid {
				_m.MergeDone = value.Bool
			}
		case fetchjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case fetchjob.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = new(time.Time)
				*_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FetchJob.
// This includes values selected through modifiers, order, etc.
func (_m *FetchJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FetchJob.
// Note that you need to call FetchJob.Unwrap() before calling this method if this FetchJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FetchJob) Update() *FetchJobUpdateOne {
	return NewFetchJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FetchJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FetchJob) Unwrap() *FetchJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FetchJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FetchJob) String() string {
	var builder strings.Builder
	builder.WriteString("FetchJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("platform=")
	builder.WriteString(_m.Platform)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorKind; v != nil {
		builder.WriteString("error_kind=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ResultPath; v != nil {
		builder.WriteString("result_path=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("result_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResultBytes))
	builder.WriteString(", ")
	builder.WriteString("video_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.VideoDone))
	builder.WriteString(", ")
	builder.WriteString("audio_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.AudioDone))
	builder.WriteString(", ")
	builder.WriteString("merge_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.MergeDone))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.FinishedAt; v != nil {
		builder.WriteString("finished_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// FetchJobs is a parsable slice of FetchJob.
type FetchJobs []*FetchJob
