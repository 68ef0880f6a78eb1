// Code generated by ent, DO NOT EDIT.

package fetchjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the fetchjob type in the database.
	Label = "fetch_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldPlatform holds the string denoting the platform field in the database.
	FieldPlatform = "platform"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldErrorKind holds the string denoting the error_kind field in the database.
	FieldErrorKind = "error_kind"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldResultPath holds the string denoting the result_path field in the database.
	FieldResultPath = "result_path"
	// FieldResultBytes holds the string denoting the result_bytes field in the database.
	FieldResultBytes = "result_bytes"
	// FieldVideoDone holds the string denoting the video_done field in the database.
	FieldVideoDone = "video_done"
	// FieldAudioDone holds the string denoting the audio_done field in the database.
	FieldAudioDone = "audio_done"
	// FieldMergeDone holds the string denoting the merge_done field in the database.
	FieldMergeDone = "merge_done"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// Table holds the table name of the fetchjob in the database.
	Table = "fetch_job"
)

// Columns holds all SQL columns for fetchjob fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldPlatform,
	FieldStatus,
	FieldTitle,
	FieldErrorKind,
	FieldErrorMessage,
	FieldResultPath,
	FieldResultBytes,
	FieldVideoDone,
	FieldAudioDone,
	FieldMergeDone,
	FieldCreatedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// URLValidator is a validator for the "url" field. It is called by the builders before save.
	URLValidator func(string) error
	// PlatformValidator is a validator for the "platform" field. It is called by the builders before save.
	PlatformValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultResultBytes holds the default value on creation for the "result_bytes" field.
	DefaultResultBytes int64
	// DefaultVideoDone holds the default value on creation for the "video_done" field.
	DefaultVideoDone bool
	// DefaultAudioDone holds the default value on creation for the "audio_done" field.
	DefaultAudioDone bool
	// DefaultMergeDone holds the default value on creation for the "merge_done" field.
	DefaultMergeDone bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the FetchJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByPlatform orders the results by the platform field.
func ByPlatform(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatform, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByErrorKind orders the results by the error_kind field.
func ByErrorKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorKind, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByResultPath orders the results by the result_path field.
func ByResultPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultPath, opts...).ToFunc()
}

// ByResultBytes orders the results by the result_bytes field.
func ByResultBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultBytes, opts...).ToFunc()
}

// ByVideoDone orders the results by the video_done field.
func ByVideoDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVideoDone, opts...).ToFunc()
}

// ByAudioDone orders the results by the audio_done field.
func ByAudioDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioDone, opts...).ToFunc()
}

// ByMergeDone orders the results by the merge_done field.
func ByMergeDone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMergeDone, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}
