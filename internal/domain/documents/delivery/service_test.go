package delivery_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/core/types"
	"fakturo/internal/domain/catalogs/client"
	"fakturo/internal/domain/catalogs/product"
	"fakturo/internal/domain/documents/delivery"
	"fakturo/internal/infrastructure/storage/sqlite"
	"fakturo/internal/infrastructure/storage/sqlite/catalog_repo"
	"fakturo/internal/infrastructure/storage/sqlite/document_repo"
)

type fixture struct {
	svc      *delivery.Service
	client   *client.Client
	productA *product.Product
	productB *product.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	txm := sqlite.NewTxManager(db)
	clientRepo := catalog_repo.NewClientRepo(txm)
	productRepo := catalog_repo.NewProductRepo(txm)
	svc := delivery.NewService(document_repo.NewDeliveryRepo(txm), clientRepo, productRepo, sqlite.NewNumerator(txm), txm)

	ctx := context.Background()

	cl := client.New("Acme d.o.o.", "12345678")
	require.NoError(t, clientRepo.Create(ctx, cl))

	pa := product.New("SKU-001", "Widget", types.MustMoney("10.50"))
	require.NoError(t, productRepo.Create(ctx, pa))

	pb := product.New("SKU-002", "Gadget", types.MustMoney("4.00"))
	require.NoError(t, productRepo.Create(ctx, pb))

	return &fixture{
		svc:      svc,
		client:   cl,
		productA: pa,
		productB: pb,
	}
}

func (f *fixture) newDelivery() *delivery.Delivery {
	return &delivery.Delivery{
		ClientID: f.client.ID,
		Date:     time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Items: []delivery.Item{
			{ProductID: f.productA.ID, Quantity: 2},
			{ProductID: f.productB.ID, Quantity: 3},
		},
	}
}

func TestCreateSnapshotsAndNumbers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.newDelivery())
	require.NoError(t, err)

	assert.Equal(t, "DLV-2026-00001", created.Number)
	assert.Equal(t, "prepared", created.Status)
	assert.Equal(t, "Acme d.o.o.", created.ClientName)

	loaded, err := f.svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "Widget", loaded.Items[0].ProductName)
	assert.Equal(t, "Gadget", loaded.Items[1].ProductName)
	assert.Equal(t, []int{1, 2}, []int{loaded.Items[0].LineNo, loaded.Items[1].LineNo})
}

func TestCreateKeepsCallerStatusAndNumber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d := f.newDelivery()
	d.Number = "DLV-2026-00099"
	d.Status = "shipped"

	created, err := f.svc.Create(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, "DLV-2026-00099", created.Number)
	assert.Equal(t, "shipped", created.Status)

	dup := f.newDelivery()
	dup.Number = "DLV-2026-00099"
	_, err = f.svc.Create(ctx, dup)
	assert.True(t, apperror.IsDuplicateKey(err))
}

func TestCreateRejectsEmptyItems(t *testing.T) {
	f := newFixture(t)

	d := f.newDelivery()
	d.Items = nil

	_, err := f.svc.Create(context.Background(), d)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))
}

func TestCreateRejectsUnknownReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	d := f.newDelivery()
	d.ClientID = id.New()
	_, err := f.svc.Create(ctx, d)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))

	d = f.newDelivery()
	d.Items[1].ProductID = id.New()
	_, err = f.svc.Create(ctx, d)
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))

	// nothing persisted when a reference fails
	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteRemovesDeliveryWithItems(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.newDelivery())
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(ctx, created.ID))

	_, err = f.svc.GetByID(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))

	err = f.svc.Delete(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestListOrdering(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	older := f.newDelivery()
	older.Date = time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	_, err := f.svc.Create(ctx, older)
	require.NoError(t, err)

	newer := f.newDelivery()
	newer.Date = time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)
	_, err = f.svc.Create(ctx, newer)
	require.NoError(t, err)

	list, err := f.svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Date.After(list[1].Date))
}
