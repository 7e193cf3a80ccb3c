package domain

import (
	"context"
	"fmt"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/core/tx"
)

// CatalogService provides business logic for catalog entities.
// Every flat reference entity (clients, categories, countries, ...) is served
// by an instance of this type; entities with extra behavior wrap it.
type CatalogService[T CatalogEntity] struct {
	repo      CatalogRepository[T]
	txManager tx.Manager

	// entityName for error messages
	entityName string
}

// NewCatalogService creates a new catalog service.
func NewCatalogService[T CatalogEntity](repo CatalogRepository[T], txManager tx.Manager, entityName string) *CatalogService[T] {
	return &CatalogService[T]{
		repo:       repo,
		txManager:  txManager,
		entityName: entityName,
	}
}

func (s *CatalogService[T]) normalizeValidationErr(err error) error {
	if err == nil {
		return nil
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewValidation(err.Error())
}

func (s *CatalogService[T]) normalizeGetErr(err error, key any) error {
	if err == nil {
		return nil
	}
	// Re-key not-found onto the service's entity name so callers see a stable
	// identifier instead of a table name.
	if apperror.IsNotFound(err) {
		return apperror.NewNotFound(s.entityName, key)
	}
	if apperror.IsAppError(err) {
		return err
	}
	return apperror.NewInternal(err).WithDetail("entity", s.entityName).WithDetail("key", key)
}

// Create validates and persists a new entity.
func (s *CatalogService[T]) Create(ctx context.Context, entity T) error {
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	entity.EnsureIdentity()

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, entity); err != nil {
			if apperror.IsAppError(err) {
				return err
			}
			return fmt.Errorf("create %s: %w", s.entityName, err)
		}
		return nil
	})
}

// GetByID retrieves an entity by ID.
func (s *CatalogService[T]) GetByID(ctx context.Context, entityID id.ID) (T, error) {
	entity, err := s.repo.GetByID(ctx, entityID)
	if err != nil {
		return entity, s.normalizeGetErr(err, entityID.String())
	}
	return entity, nil
}

// Update validates and persists changes to an existing entity.
func (s *CatalogService[T]) Update(ctx context.Context, entity T) error {
	if err := entity.Validate(ctx); err != nil {
		return s.normalizeValidationErr(err)
	}

	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Update(ctx, entity); err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound(s.entityName, entity.EntityID().String())
			}
			if apperror.IsAppError(err) {
				return err
			}
			return fmt.Errorf("update %s: %w", s.entityName, err)
		}
		return nil
	})
}

// Delete removes an entity. Referential conflicts surface to the caller.
func (s *CatalogService[T]) Delete(ctx context.Context, entityID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, entityID); err != nil {
			if apperror.IsNotFound(err) {
				return apperror.NewNotFound(s.entityName, entityID.String())
			}
			if apperror.IsAppError(err) {
				return err
			}
			return fmt.Errorf("delete %s: %w", s.entityName, err)
		}
		return nil
	})
}

// List retrieves entities with filtering.
func (s *CatalogService[T]) List(ctx context.Context, filter ListFilter) ([]T, error) {
	return s.repo.List(ctx, filter)
}

// Exists checks whether an entity exists.
func (s *CatalogService[T]) Exists(ctx context.Context, entityID id.ID) (bool, error) {
	return s.repo.Exists(ctx, entityID)
}
