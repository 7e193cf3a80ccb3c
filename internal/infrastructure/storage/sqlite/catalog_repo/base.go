// Package catalog_repo provides SQLite implementations for catalog
// repositories. Each entity repository embeds the generic base and adds its
// own lookups.
package catalog_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/domain"
	"fakturo/internal/infrastructure/storage/sqlite"
)

// Config describes one catalog table for the generic base.
type Config struct {
	// TableName is the sqlite table
	TableName string

	// EntityName appears in error messages and details
	EntityName string

	// OrderBy is the stable listing order (default "name ASC")
	OrderBy string

	// SearchCols are matched case-insensitively by ListFilter.Search
	SearchCols []string

	// ActiveCol, when set, filters listings to active rows unless
	// IncludeInactive is requested
	ActiveCol string
}

// BaseCatalogRepo provides common CRUD operations for catalog entities.
// Embed this in specific catalog repositories.
type BaseCatalogRepo[T domain.CatalogEntity] struct {
	txm        *sqlite.TxManager
	cfg        Config
	selectCols []string
	newFn      func() T
}

// NewBaseCatalogRepo creates a new base catalog repository. Columns are
// derived from the entity's "db" tags once at construction.
func NewBaseCatalogRepo[T domain.CatalogEntity](txm *sqlite.TxManager, cfg Config, newFn func() T) *BaseCatalogRepo[T] {
	if cfg.OrderBy == "" {
		cfg.OrderBy = "name ASC"
	}
	return &BaseCatalogRepo[T]{
		txm:        txm,
		cfg:        cfg,
		selectCols: sqlite.ExtractDBColumns[T](),
		newFn:      newFn,
	}
}

// Builder returns a squirrel builder with sqlite placeholder format.
func (r *BaseCatalogRepo[T]) Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *BaseCatalogRepo[T]) querier(ctx context.Context) sqlite.Querier {
	return r.txm.GetQuerier(ctx)
}

// Create inserts a new entity using its "db" tags.
func (r *BaseCatalogRepo[T]) Create(ctx context.Context, entity T) error {
	data := sqlite.StructToMap(entity)
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	q := r.Builder().
		Insert(r.cfg.TableName).
		SetMap(data)

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.querier(ctx).ExecContext(ctx, query, args...); err != nil {
		if mapped := r.translate(entity.EntityID(), err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert %s: %w", r.cfg.TableName, err)
	}
	return nil
}

// GetByID retrieves entity by ID.
func (r *BaseCatalogRepo[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	entity := r.newFn()

	q := r.baseSelect().
		Where(squirrel.Eq{"id": entityID}).
		Limit(1)

	query, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := sqlscan.Get(ctx, r.querier(ctx), entity, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.cfg.EntityName, entityID.String())
		}
		return entity, fmt.Errorf("get by id: %w", err)
	}
	return entity, nil
}

// Update modifies an existing entity. ID and creation time never change.
func (r *BaseCatalogRepo[T]) Update(ctx context.Context, entity T) error {
	data := sqlite.StructToMap(entity)
	delete(data, "id")
	delete(data, "created_at")
	if len(data) == 0 {
		return fmt.Errorf("no db tags found in entity")
	}

	q := r.Builder().
		Update(r.cfg.TableName).
		SetMap(data).
		Where(squirrel.Eq{"id": entity.EntityID()})

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := r.translate(entity.EntityID(), err); mapped != err {
			return mapped
		}
		return fmt.Errorf("update %s: %w", r.cfg.TableName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NewNotFound(r.cfg.EntityName, entity.EntityID().String())
	}
	return nil
}

// Delete performs physical removal. Foreign key violations surface as
// ReferentialConflict.
func (r *BaseCatalogRepo[T]) Delete(ctx context.Context, entityID id.ID) error {
	q := r.Builder().
		Delete(r.cfg.TableName).
		Where(squirrel.Eq{"id": entityID})

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := r.translate(entityID, err); mapped != err {
			return mapped
		}
		return fmt.Errorf("execute delete %s: %w", r.cfg.TableName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NewNotFound(r.cfg.EntityName, entityID.String())
	}
	return nil
}

// List retrieves entities in the configured stable order.
func (r *BaseCatalogRepo[T]) List(ctx context.Context, filter domain.ListFilter) ([]T, error) {
	q := r.baseSelect()

	if r.cfg.ActiveCol != "" && !filter.IncludeInactive {
		q = q.Where(squirrel.Eq{r.cfg.ActiveCol: true})
	}

	if filter.Search != "" && len(r.cfg.SearchCols) > 0 {
		pattern := "%" + filter.Search + "%"
		or := make(squirrel.Or, 0, len(r.cfg.SearchCols))
		for _, col := range r.cfg.SearchCols {
			// sqlite LIKE is already case-insensitive for ASCII
			or = append(or, squirrel.Like{col: pattern})
		}
		q = q.Where(or)
	}

	q = q.OrderBy(r.cfg.OrderBy)

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := make([]T, 0)
	if err := sqlscan.Select(ctx, r.querier(ctx), &items, query, args...); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.cfg.TableName, err)
	}
	return items, nil
}

// Exists checks if entity exists.
func (r *BaseCatalogRepo[T]) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	q := r.Builder().
		Select("1").
		From(r.cfg.TableName).
		Where(squirrel.Eq{"id": entityID}).
		Limit(1)

	query, args, err := q.ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var exists int
	err = r.querier(ctx).QueryRowContext(ctx, query, args...).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("exists: %w", err)
	}
	return true, nil
}

// FindOne executes a SELECT query and scans a single entity.
func (r *BaseCatalogRepo[T]) FindOne(ctx context.Context, q squirrel.SelectBuilder, key string) (T, error) {
	entity := r.newFn()

	query, args, err := q.ToSql()
	if err != nil {
		return entity, fmt.Errorf("build query: %w", err)
	}

	if err := sqlscan.Get(ctx, r.querier(ctx), entity, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return entity, apperror.NewNotFound(r.cfg.EntityName, key)
		}
		return entity, fmt.Errorf("find one: %w", err)
	}
	return entity, nil
}

// SetActive toggles the configured active flag (soft deactivation).
func (r *BaseCatalogRepo[T]) SetActive(ctx context.Context, entityID id.ID, active bool) error {
	if r.cfg.ActiveCol == "" {
		return fmt.Errorf("%s has no active column", r.cfg.TableName)
	}

	q := r.Builder().
		Update(r.cfg.TableName).
		Set(r.cfg.ActiveCol, active).
		Where(squirrel.Eq{"id": entityID})

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build set active: %w", err)
	}

	result, err := r.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("execute set active: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NewNotFound(r.cfg.EntityName, entityID.String())
	}
	return nil
}

func (r *BaseCatalogRepo[T]) baseSelect() squirrel.SelectBuilder {
	return r.Builder().
		Select(r.selectCols...).
		From(r.cfg.TableName)
}

func (r *BaseCatalogRepo[T]) translate(key id.ID, err error) error {
	return sqlite.TranslateConstraint(r.cfg.EntityName, key.String(), err)
}
