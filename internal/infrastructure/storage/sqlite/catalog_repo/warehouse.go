package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/domain/warehouse"
	"fakturo/internal/infrastructure/storage/sqlite"
)

var _ warehouse.Repository = (*WarehouseRepo)(nil)

// WarehouseRepo persists warehouse groups and their product memberships.
type WarehouseRepo struct {
	*BaseCatalogRepo[*warehouse.Group]

	itemCols []string
}

// NewWarehouseRepo creates a new warehouse repository.
func NewWarehouseRepo(txm *sqlite.TxManager) *WarehouseRepo {
	return &WarehouseRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, Config{
			TableName:  "warehouse_groups",
			EntityName: "warehouse group",
			SearchCols: []string{"name"},
		}, func() *warehouse.Group { return &warehouse.Group{} }),
		itemCols: sqlite.ExtractDBColumns[warehouse.Item](),
	}
}

// GetItems retrieves group memberships ordered by product name.
func (r *WarehouseRepo) GetItems(ctx context.Context, groupID id.ID) ([]*warehouse.Item, error) {
	q := r.Builder().
		Select(r.itemCols...).
		From("warehouse_items").
		Where(squirrel.Eq{"group_id": groupID}).
		OrderBy("product_name ASC")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := make([]*warehouse.Item, 0)
	if err := sqlscan.Select(ctx, r.querier(ctx), &items, query, args...); err != nil {
		return nil, fmt.Errorf("list warehouse items: %w", err)
	}
	return items, nil
}

// AddItem inserts one membership. A second membership of the same product in
// the same group collides on the unique pair and surfaces as DuplicateKey.
func (r *WarehouseRepo) AddItem(ctx context.Context, item *warehouse.Item) error {
	q := r.Builder().
		Insert("warehouse_items").
		SetMap(sqlite.StructToMap(item))

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.querier(ctx).ExecContext(ctx, query, args...); err != nil {
		if mapped := sqlite.TranslateConstraint("warehouse item", item.ID.String(), err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert warehouse item: %w", err)
	}
	return nil
}

// DeleteItem removes one membership.
func (r *WarehouseRepo) DeleteItem(ctx context.Context, groupID, productID id.ID) error {
	q := r.Builder().
		Delete("warehouse_items").
		Where(squirrel.Eq{"group_id": groupID, "product_id": productID})

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete warehouse item: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NewNotFound("warehouse item", productID.String())
	}
	return nil
}

// DeleteWithItems removes the group; memberships cascade.
func (r *WarehouseRepo) DeleteWithItems(ctx context.Context, groupID id.ID) error {
	return r.Delete(ctx, groupID)
}
