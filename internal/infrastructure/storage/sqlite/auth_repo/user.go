// Package auth_repo provides the SQLite implementation of the user
// repository.
package auth_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/domain/auth"
	"fakturo/internal/infrastructure/storage/sqlite"
)

var _ auth.UserRepository = (*UserRepo)(nil)

// UserRepo persists user accounts.
type UserRepo struct {
	txm  *sqlite.TxManager
	cols []string
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *sqlite.TxManager) *UserRepo {
	return &UserRepo{
		txm:  txm,
		cols: sqlite.ExtractDBColumns[auth.User](),
	}
}

func (r *UserRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// Create inserts a new user.
func (r *UserRepo) Create(ctx context.Context, user *auth.User) error {
	q := r.builder().
		Insert("users").
		SetMap(sqlite.StructToMap(user))

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).ExecContext(ctx, query, args...); err != nil {
		if mapped := sqlite.TranslateConstraint("user", user.Username, err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID.
func (r *UserRepo) GetByID(ctx context.Context, userID id.ID) (*auth.User, error) {
	return r.getBy(ctx, squirrel.Eq{"id": userID}, userID.String())
}

// GetByUsername retrieves a user by username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*auth.User, error) {
	return r.getBy(ctx, squirrel.Eq{"username": username}, username)
}

// Update modifies an existing user.
func (r *UserRepo) Update(ctx context.Context, user *auth.User) error {
	data := sqlite.StructToMap(user)
	delete(data, "id")
	delete(data, "created_at")

	q := r.builder().
		Update("users").
		SetMap(data).
		Where(squirrel.Eq{"id": user.ID})

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("user", user.ID.String())
	}
	return nil
}

// Count returns the number of registered users.
func (r *UserRepo) Count(ctx context.Context) (int, error) {
	q := r.builder().
		Select("COUNT(*)").
		From("users")

	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var count int
	if err := r.txm.GetQuerier(ctx).QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

func (r *UserRepo) getBy(ctx context.Context, where squirrel.Eq, key string) (*auth.User, error) {
	q := r.builder().
		Select(r.cols...).
		From("users").
		Where(where).
		Limit(1)

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	user := &auth.User{}
	if err := sqlscan.Get(ctx, r.txm.GetQuerier(ctx), user, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("user", key)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
