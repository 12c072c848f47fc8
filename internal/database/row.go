package database

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Value accessors coerce driver-specific scan types into the fixed types
// the ledger accessors promise: currency/numeric fields to float64, dates
// to time.Time. NULLs coerce to the zero value; IsNull distinguishes them.

// IsNull reports whether the column is NULL or absent.
func (r Row) IsNull(col string) bool {
	v, ok := r[col]
	return !ok || v == nil
}

// String returns the column as a trimmed string ("" for NULL).
func (r Row) String(col string) string {
	v, ok := r[col]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", v))
	}
}

// Float returns the column as float64 (0 for NULL).
func (r Row) Float(col string) float64 {
	v, ok := r[col]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Int returns the column as int64 (0 for NULL).
func (r Row) Int(col string) int64 {
	v, ok := r[col]
	if !ok || v == nil {
		return 0
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}

// Date returns the column as a calendar date. SQLite stores dates as
// "YYYY-MM-DD" text; the Postgres driver may return time.Time directly.
// The bool is false for NULL or unparseable values.
func (r Row) Date(col string) (time.Time, bool) {
	v, ok := r[col]
	if !ok || v == nil {
		return time.Time{}, false
	}
	switch d := v.(type) {
	case time.Time:
		return d, true
	case string:
		t, err := time.Parse("2006-01-02", strings.TrimSpace(d))
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	default:
		return time.Time{}, false
	}
}
