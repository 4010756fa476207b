package sqlite

import (
	"errors"
	"fmt"

	"recall/internal/store"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// storageErr wraps an engine-layer failure as store.ErrStorage, the one
// error kind a caller may retry.
func storageErr(doing string, err error) error {
	return fmt.Errorf("%w: %s: %v", store.ErrStorage, doing, err)
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		code := se.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
