// Code generated by ent, DO NOT EDIT.

package roundevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the roundevent type in the database.
	Label = "round_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldRoundID holds the string denoting the round_id field in the database.
	FieldRoundID = "round_id"
	// FieldLang holds the string denoting the lang field in the database.
	FieldLang = "lang"
	// FieldTheme holds the string denoting the theme field in the database.
	FieldTheme = "theme"
	// FieldLevel holds the string denoting the level field in the database.
	FieldLevel = "level"
	// FieldWrongCount holds the string denoting the wrong_count field in the database.
	FieldWrongCount = "wrong_count"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldFocusTag holds the string denoting the focus_tag field in the database.
	FieldFocusTag = "focus_tag"
	// FieldUsedFallback holds the string denoting the used_fallback field in the database.
	FieldUsedFallback = "used_fallback"
	// FieldElapsedSecs holds the string denoting the elapsed_secs field in the database.
	FieldElapsedSecs = "elapsed_secs"
	// Table holds the table name of the roundevent in the database.
	Table = "round_events"
)

// Columns holds all SQL columns for roundevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldRoundID,
	FieldLang,
	FieldTheme,
	FieldLevel,
	FieldWrongCount,
	FieldScore,
	FieldFocusTag,
	FieldUsedFallback,
	FieldElapsedSecs,
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
	// LangValidator is a validator for the "lang" field. It is called by the builders before save.
	LangValidator func(string) error
	// ThemeValidator is a validator for the "theme" field. It is called by the builders before save.
	ThemeValidator func(string) error
	// DefaultWrongCount holds the default value on creation for the "wrong_count" field.
	DefaultWrongCount int
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// DefaultFocusTag holds the default value on creation for the "focus_tag" field.
	DefaultFocusTag string
	// DefaultUsedFallback holds the default value on creation for the "used_fallback" field.
	DefaultUsedFallback bool
	// DefaultElapsedSecs holds the default value on creation for the "elapsed_secs" field.
	DefaultElapsedSecs int
)

// OrderOption defines the ordering options for the RoundEvent queries.
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

// ByLang orders the results by the lang field.
func ByLang(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLang, opts...).ToFunc()
}

// ByTheme orders the results by the theme field.
func ByTheme(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTheme, opts...).ToFunc()
}

// ByLevel orders the results by the level field.
func ByLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLevel, opts...).ToFunc()
}

// ByWrongCount orders the results by the wrong_count field.
func ByWrongCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWrongCount, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByFocusTag orders the results by the focus_tag field.
func ByFocusTag(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFocusTag, opts...).ToFunc()
}

// ByUsedFallback orders the results by the used_fallback field.
func ByUsedFallback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedFallback, opts...).ToFunc()
}

// ByElapsedSecs orders the results by the elapsed_secs field.
func ByElapsedSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldElapsedSecs, opts...).ToFunc()
}
