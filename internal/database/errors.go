package database

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable is returned when a connection to the selected
// backend cannot be opened. It is never swallowed and never triggers a
// fallback to the other backend.
var ErrBackendUnavailable = errors.New("database backend unavailable")

// SchemaMismatchError reports an expected column missing from a table,
// typically because a schema migration has not been applied yet. It is
// fatal to the specific accessor call but must not crash unrelated pages.
type SchemaMismatchError struct {
	Table  string
	Column string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("table %q is missing expected column %q", e.Table, e.Column)
}

// IsSchemaMismatch reports whether err is (or wraps) a SchemaMismatchError.
func IsSchemaMismatch(err error) bool {
	var sm *SchemaMismatchError
	return errors.As(err, &sm)
}
