package sqlite

import (
	"errors"
	"strings"

	"github.com/mattn/go-sqlite3"

	"fakturo/internal/core/apperror"
)

// isTransient reports whether err is lock contention that may succeed on
// retry (SQLITE_BUSY / SQLITE_LOCKED).
func isTransient(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked
	}
	return false
}

// TranslateConstraint maps sqlite constraint violations onto the error
// taxonomy: unique collisions become DuplicateKey, foreign key violations
// become ReferentialConflict. Other errors pass through unchanged.
func TranslateConstraint(entityName string, key any, err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return apperror.NewDuplicateKey(entityName, constraintColumn(sqliteErr), key).
			WithCause(err)
	// FK violations on DELETE surface as SQLITE_CONSTRAINT_TRIGGER rather
	// than SQLITE_CONSTRAINT_FOREIGNKEY.
	case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintTrigger:
		return apperror.NewReferentialConflict(entityName, key).WithCause(err)
	}

	if sqliteErr.Code == sqlite3.ErrConstraint &&
		strings.Contains(sqliteErr.Error(), "FOREIGN KEY constraint failed") {
		return apperror.NewReferentialConflict(entityName, key).WithCause(err)
	}
	return err
}

// constraintColumn extracts the column name from a unique constraint
// message ("UNIQUE constraint failed: products.code" → "code").
func constraintColumn(err sqlite3.Error) string {
	msg := err.Error()
	idx := strings.LastIndex(msg, ".")
	if idx < 0 || idx == len(msg)-1 {
		return "key"
	}
	return strings.TrimSpace(msg[idx+1:])
}
