package sqlite

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"fakturo/internal/core/apperror"
)

func TestTranslateConstraintCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      sqlite3.Error
		wantCode string
	}{
		{
			name:     "unique index collision",
			err:      sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique},
			wantCode: apperror.CodeDuplicateKey,
		},
		{
			name:     "primary key collision",
			err:      sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey},
			wantCode: apperror.CodeDuplicateKey,
		},
		{
			name:     "foreign key violation on insert",
			err:      sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey},
			wantCode: apperror.CodeReferentialConflict,
		},
		{
			// restricted DELETE reports SQLITE_CONSTRAINT_TRIGGER
			name:     "foreign key violation on delete",
			err:      sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintTrigger},
			wantCode: apperror.CodeReferentialConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			translated := TranslateConstraint("client", "some-key", tt.err)
			assert.True(t, apperror.IsCode(translated, tt.wantCode),
				"got %v, want code %s", translated, tt.wantCode)
		})
	}
}

func TestTranslateConstraintWrappedError(t *testing.T) {
	cause := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintTrigger}
	wrapped := fmt.Errorf("delete client: %w", cause)

	translated := TranslateConstraint("client", "some-key", wrapped)
	assert.True(t, apperror.IsCode(translated, apperror.CodeReferentialConflict))
}

func TestTranslateConstraintPassthrough(t *testing.T) {
	plain := errors.New("disk I/O error")
	assert.Equal(t, plain, TranslateConstraint("client", "some-key", plain))

	notConstraint := sqlite3.Error{Code: sqlite3.ErrBusy}
	assert.Equal(t, error(notConstraint), TranslateConstraint("client", "some-key", notConstraint))
}
