package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/domain/documents/delivery"
	"fakturo/internal/infrastructure/storage/sqlite"
)

var _ delivery.Repository = (*DeliveryRepo)(nil)

// DeliveryRepo persists delivery notes.
type DeliveryRepo struct {
	txm        *sqlite.TxManager
	headerCols []string
	itemCols   []string
}

// NewDeliveryRepo creates a new delivery repository.
func NewDeliveryRepo(txm *sqlite.TxManager) *DeliveryRepo {
	return &DeliveryRepo{
		txm:        txm,
		headerCols: sqlite.ExtractDBColumns[delivery.Delivery](),
		itemCols:   sqlite.ExtractDBColumns[delivery.Item](),
	}
}

func (r *DeliveryRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *DeliveryRepo) querier(ctx context.Context) sqlite.Querier {
	return r.txm.GetQuerier(ctx)
}

// CreateWithItems inserts the header and all items.
func (r *DeliveryRepo) CreateWithItems(ctx context.Context, d *delivery.Delivery) error {
	q := r.builder().
		Insert("deliveries").
		SetMap(sqlite.StructToMap(d))

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.querier(ctx).ExecContext(ctx, query, args...); err != nil {
		if mapped := sqlite.TranslateConstraint("delivery", d.Number, err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert delivery: %w", err)
	}

	for _, item := range d.Items {
		data := sqlite.StructToMap(item)
		data["delivery_id"] = d.ID

		q := r.builder().
			Insert("delivery_items").
			SetMap(data)

		query, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build item insert: %w", err)
		}
		if _, err := r.querier(ctx).ExecContext(ctx, query, args...); err != nil {
			if mapped := sqlite.TranslateConstraint("delivery item", item.LineNo, err); mapped != err {
				return mapped
			}
			return fmt.Errorf("insert delivery item %d: %w", item.LineNo, err)
		}
	}
	return nil
}

// GetByID retrieves a header without items.
func (r *DeliveryRepo) GetByID(ctx context.Context, deliveryID id.ID) (*delivery.Delivery, error) {
	q := r.builder().
		Select(r.headerCols...).
		From("deliveries").
		Where(squirrel.Eq{"id": deliveryID}).
		Limit(1)

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	d := &delivery.Delivery{}
	if err := sqlscan.Get(ctx, r.querier(ctx), d, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("delivery", deliveryID.String())
		}
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return d, nil
}

// GetItems retrieves items in line order.
func (r *DeliveryRepo) GetItems(ctx context.Context, deliveryID id.ID) ([]delivery.Item, error) {
	q := r.builder().
		Select(r.itemCols...).
		From("delivery_items").
		Where(squirrel.Eq{"delivery_id": deliveryID}).
		OrderBy("line_no ASC")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := make([]delivery.Item, 0)
	if err := sqlscan.Select(ctx, r.querier(ctx), &items, query, args...); err != nil {
		return nil, fmt.Errorf("list delivery items: %w", err)
	}
	return items, nil
}

// Delete removes the header; items cascade.
func (r *DeliveryRepo) Delete(ctx context.Context, deliveryID id.ID) error {
	q := r.builder().
		Delete("deliveries").
		Where(squirrel.Eq{"id": deliveryID})

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	return requireAffected(result, "delivery", deliveryID.String())
}

// ListAll retrieves headers, most recent first.
func (r *DeliveryRepo) ListAll(ctx context.Context) ([]*delivery.Delivery, error) {
	q := r.builder().
		Select(r.headerCols...).
		From("deliveries").
		OrderBy("date DESC", "number DESC")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	deliveries := make([]*delivery.Delivery, 0)
	if err := sqlscan.Select(ctx, r.querier(ctx), &deliveries, query, args...); err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}
