package warehouse_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/id"
	"fakturo/internal/core/types"
	"fakturo/internal/domain/catalogs/product"
	"fakturo/internal/domain/warehouse"
	"fakturo/internal/infrastructure/storage/sqlite"
	"fakturo/internal/infrastructure/storage/sqlite/catalog_repo"
)

type fixture struct {
	svc      *warehouse.Service
	products product.Repository
	productA *product.Product
	productB *product.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	txm := sqlite.NewTxManager(db)
	productRepo := catalog_repo.NewProductRepo(txm)
	svc := warehouse.NewService(catalog_repo.NewWarehouseRepo(txm), productRepo, txm)

	ctx := context.Background()

	pa := product.New("SKU-001", "Widget", types.MustMoney("10.50"))
	require.NoError(t, productRepo.Create(ctx, pa))

	pb := product.New("SKU-002", "Gadget", types.MustMoney("4.00"))
	require.NoError(t, productRepo.Create(ctx, pb))

	return &fixture{
		svc:      svc,
		products: productRepo,
		productA: pa,
		productB: pb,
	}
}

func (f *fixture) newGroup(t *testing.T) *warehouse.Group {
	t.Helper()
	g := warehouse.NewGroup("Main floor")
	require.NoError(t, f.svc.Create(context.Background(), g))
	return g
}

func TestAddItemSnapshotsProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.newGroup(t)

	err := f.svc.AddItem(ctx, &warehouse.Item{
		GroupID:   g.ID,
		ProductID: f.productA.ID,
		Quantity:  5,
	})
	require.NoError(t, err)

	_, items, err := f.svc.GetWithItems(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "SKU-001", items[0].ProductCode)
	assert.Equal(t, "Widget", items[0].ProductName)
	assert.Equal(t, 5.0, items[0].Quantity)
}

func TestItemsOrderedByProductName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.newGroup(t)

	require.NoError(t, f.svc.AddItem(ctx, &warehouse.Item{GroupID: g.ID, ProductID: f.productA.ID, Quantity: 1}))
	require.NoError(t, f.svc.AddItem(ctx, &warehouse.Item{GroupID: g.ID, ProductID: f.productB.ID, Quantity: 1}))

	_, items, err := f.svc.GetWithItems(ctx, g.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Gadget", items[0].ProductName)
	assert.Equal(t, "Widget", items[1].ProductName)
}

func TestAddItemRejectsUnknownReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.newGroup(t)

	err := f.svc.AddItem(ctx, &warehouse.Item{GroupID: g.ID, ProductID: id.New(), Quantity: 1})
	assert.True(t, apperror.IsCode(err, apperror.CodeValidation))

	err = f.svc.AddItem(ctx, &warehouse.Item{GroupID: id.New(), ProductID: f.productA.ID, Quantity: 1})
	assert.True(t, apperror.IsNotFound(err))
}

func TestDuplicateMembership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.newGroup(t)

	item := warehouse.Item{GroupID: g.ID, ProductID: f.productA.ID, Quantity: 1}
	require.NoError(t, f.svc.AddItem(ctx, &item))

	again := warehouse.Item{GroupID: g.ID, ProductID: f.productA.ID, Quantity: 2}
	err := f.svc.AddItem(ctx, &again)
	assert.True(t, apperror.IsDuplicateKey(err))
}

func TestDeleteItemLeavesGroupAndProduct(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.newGroup(t)

	require.NoError(t, f.svc.AddItem(ctx, &warehouse.Item{GroupID: g.ID, ProductID: f.productA.ID, Quantity: 1}))
	require.NoError(t, f.svc.DeleteItem(ctx, g.ID, f.productA.ID))

	group, items, err := f.svc.GetWithItems(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, g.ID, group.ID)
	assert.Empty(t, items)

	_, err = f.products.GetByID(ctx, f.productA.ID)
	assert.NoError(t, err)

	err = f.svc.DeleteItem(ctx, g.ID, f.productA.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteGroupCascadesMemberships(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.newGroup(t)

	require.NoError(t, f.svc.AddItem(ctx, &warehouse.Item{GroupID: g.ID, ProductID: f.productA.ID, Quantity: 1}))

	// a referenced product cannot be deleted while the membership exists
	err := f.products.Delete(ctx, f.productA.ID)
	assert.True(t, apperror.IsCode(err, apperror.CodeReferentialConflict))

	require.NoError(t, f.svc.Delete(ctx, g.ID))

	_, err = f.svc.GetByID(ctx, g.ID)
	assert.True(t, apperror.IsNotFound(err))

	// memberships went with the group, so the product is free again
	require.NoError(t, f.products.Delete(ctx, f.productA.ID))
}
