// Code generated by ent, DO NOT EDIT.

package answerevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the answerevent type in the database.
	Label = "answer_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRoundID holds the string denoting the round_id field in the database.
	FieldRoundID = "round_id"
	// FieldPromptText holds the string denoting the prompt_text field in the database.
	FieldPromptText = "prompt_text"
	// FieldBadge holds the string denoting the badge field in the database.
	FieldBadge = "badge"
	// FieldAnswerText holds the string denoting the answer_text field in the database.
	FieldAnswerText = "answer_text"
	// FieldOk holds the string denoting the ok field in the database.
	FieldOk = "ok"
	// FieldReason holds the string denoting the reason field in the database.
	FieldReason = "reason"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldSuggestion holds the string denoting the suggestion field in the database.
	FieldSuggestion = "suggestion"
	// Table holds the table name of the answerevent in the database.
	Table = "answer_events"
)

// Columns holds all SQL columns for answerevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRoundID,
	FieldPromptText,
	FieldBadge,
	FieldAnswerText,
	FieldOk,
	FieldReason,
	FieldTags,
	FieldSuggestion,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// RoundIDValidator is a validator for the "round_id" field. It is called by the builders before save.
	RoundIDValidator func(string) error
	// PromptTextValidator is a validator for the "prompt_text" field. It is called by the builders before save.
	PromptTextValidator func(string) error
	// DefaultBadge holds the default value on creation for the "badge" field.
	DefaultBadge string
	// DefaultReason holds the default value on creation for the "reason" field.
	DefaultReason string
	// DefaultSuggestion holds the default value on creation for the "suggestion" field.
	DefaultSuggestion string
)

// OrderOption defines the ordering options for the AnswerEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByRoundID orders the results by the round_id field.
func ByRoundID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundID, opts...).ToFunc()
}

// ByPromptText orders the results by the prompt_text field.
func ByPromptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptText, opts...).ToFunc()
}

// ByBadge orders the results by the badge field.
func ByBadge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBadge, opts...).ToFunc()
}

// ByAnswerText orders the results by the answer_text field.
func ByAnswerText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswerText, opts...).ToFunc()
}

// ByOk orders the results by the ok field.
func ByOk(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOk, opts...).ToFunc()
}

// ByReason orders the results by the reason field.
func ByReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReason, opts...).ToFunc()
}

// BySuggestion orders the results by the suggestion field.
func BySuggestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuggestion, opts...).ToFunc()
}
