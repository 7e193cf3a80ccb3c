package catalog_repo

import (
	"fakturo/internal/domain/catalogs/client"
	"fakturo/internal/infrastructure/storage/sqlite"
)

var _ client.Repository = (*ClientRepo)(nil)

// ClientRepo persists clients.
type ClientRepo struct {
	*BaseCatalogRepo[*client.Client]
}

// NewClientRepo creates a new client repository.
func NewClientRepo(txm *sqlite.TxManager) *ClientRepo {
	return &ClientRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(txm, Config{
			TableName:  "clients",
			EntityName: "client",
			SearchCols: []string{"name", "mb", "pib"},
		}, func() *client.Client { return &client.Client{} }),
	}
}
