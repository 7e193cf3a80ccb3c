// Package document_repo provides SQLite implementations for document
// repositories. Documents are a header row plus an ordered line item table;
// writes of the pair always run inside the caller's transaction.
package document_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/domain/documents/invoice"
	"fakturo/internal/infrastructure/storage/sqlite"
)

var _ invoice.Repository = (*InvoiceRepo)(nil)

// InvoiceRepo persists invoice headers and line items.
type InvoiceRepo struct {
	txm        *sqlite.TxManager
	headerCols []string
	itemCols   []string
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txm *sqlite.TxManager) *InvoiceRepo {
	return &InvoiceRepo{
		txm:        txm,
		headerCols: sqlite.ExtractDBColumns[invoice.Invoice](),
		itemCols:   sqlite.ExtractDBColumns[invoice.Item](),
	}
}

func (r *InvoiceRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *InvoiceRepo) querier(ctx context.Context) sqlite.Querier {
	return r.txm.GetQuerier(ctx)
}

// CreateWithItems inserts the header and all items.
func (r *InvoiceRepo) CreateWithItems(ctx context.Context, inv *invoice.Invoice) error {
	q := r.builder().
		Insert("invoices").
		SetMap(sqlite.StructToMap(inv))

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.querier(ctx).ExecContext(ctx, query, args...); err != nil {
		if mapped := sqlite.TranslateConstraint("invoice", inv.Number, err); mapped != err {
			return mapped
		}
		return fmt.Errorf("insert invoice: %w", err)
	}

	return r.insertItems(ctx, inv.ID, inv.Items)
}

// GetByID retrieves a header without items.
func (r *InvoiceRepo) GetByID(ctx context.Context, invID id.ID) (*invoice.Invoice, error) {
	q := r.builder().
		Select(r.headerCols...).
		From("invoices").
		Where(squirrel.Eq{"id": invID}).
		Limit(1)

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	inv := &invoice.Invoice{}
	if err := sqlscan.Get(ctx, r.querier(ctx), inv, query, args...); err != nil {
		if sqlscan.NotFound(err) {
			return nil, apperror.NewNotFound("invoice", invID.String())
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// GetItems retrieves items in line order.
func (r *InvoiceRepo) GetItems(ctx context.Context, invID id.ID) ([]invoice.Item, error) {
	q := r.builder().
		Select(r.itemCols...).
		From("invoice_items").
		Where(squirrel.Eq{"invoice_id": invID}).
		OrderBy("line_no ASC")

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	items := make([]invoice.Item, 0)
	if err := sqlscan.Select(ctx, r.querier(ctx), &items, query, args...); err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	return items, nil
}

// UpdateHeader persists header fields. ID, number, and creation time never
// change here.
func (r *InvoiceRepo) UpdateHeader(ctx context.Context, inv *invoice.Invoice) error {
	data := sqlite.StructToMap(inv)
	delete(data, "id")
	delete(data, "number")
	delete(data, "created_at")

	q := r.builder().
		Update("invoices").
		SetMap(data).
		Where(squirrel.Eq{"id": inv.ID})

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := sqlite.TranslateConstraint("invoice", inv.Number, err); mapped != err {
			return mapped
		}
		return fmt.Errorf("update invoice: %w", err)
	}
	return requireAffected(result, "invoice", inv.ID.String())
}

// ReplaceItems deletes and reinserts the full item set.
func (r *InvoiceRepo) ReplaceItems(ctx context.Context, invID id.ID, items []invoice.Item) error {
	q := r.builder().
		Delete("invoice_items").
		Where(squirrel.Eq{"invoice_id": invID})

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := r.querier(ctx).ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete invoice items: %w", err)
	}

	return r.insertItems(ctx, invID, items)
}

// UpdateStatus sets only the status column.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, invID id.ID, status invoice.Status) error {
	q := r.builder().
		Update("invoices").
		Set("status", string(status)).
		Where(squirrel.Eq{"id": invID})

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	result, err := r.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return requireAffected(result, "invoice", invID.String())
}

// Delete removes the header; items cascade.
func (r *InvoiceRepo) Delete(ctx context.Context, invID id.ID) error {
	q := r.builder().
		Delete("invoices").
		Where(squirrel.Eq{"id": invID})

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.querier(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return requireAffected(result, "invoice", invID.String())
}

// ListAll retrieves headers, most recent issue date first.
func (r *InvoiceRepo) ListAll(ctx context.Context) ([]*invoice.Invoice, error) {
	return r.list(ctx, nil)
}

// ListByClient retrieves a client's headers, most recent first.
func (r *InvoiceRepo) ListByClient(ctx context.Context, clientID id.ID) ([]*invoice.Invoice, error) {
	return r.list(ctx, squirrel.Eq{"client_id": clientID})
}

// ExistsNumber checks whether an invoice number is taken.
func (r *InvoiceRepo) ExistsNumber(ctx context.Context, number string) (bool, error) {
	q := r.builder().
		Select("1").
		From("invoices").
		Where(squirrel.Eq{"number": number}).
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
		return false, fmt.Errorf("exists by number: %w", err)
	}
	return true, nil
}

func (r *InvoiceRepo) list(ctx context.Context, where any) ([]*invoice.Invoice, error) {
	q := r.builder().
		Select(r.headerCols...).
		From("invoices").
		OrderBy("date DESC", "number DESC")
	if where != nil {
		q = q.Where(where)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	invoices := make([]*invoice.Invoice, 0)
	if err := sqlscan.Select(ctx, r.querier(ctx), &invoices, query, args...); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

func (r *InvoiceRepo) insertItems(ctx context.Context, invID id.ID, items []invoice.Item) error {
	for _, item := range items {
		data := sqlite.StructToMap(item)
		data["invoice_id"] = invID

		q := r.builder().
			Insert("invoice_items").
			SetMap(data)

		query, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build item insert: %w", err)
		}
		if _, err := r.querier(ctx).ExecContext(ctx, query, args...); err != nil {
			if mapped := sqlite.TranslateConstraint("invoice item", item.LineNo, err); mapped != err {
				return mapped
			}
			return fmt.Errorf("insert invoice item %d: %w", item.LineNo, err)
		}
	}
	return nil
}

// requireAffected converts zero affected rows into NotFound.
func requireAffected(result sql.Result, entityName, key string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return apperror.NewNotFound(entityName, key)
	}
	return nil
}
