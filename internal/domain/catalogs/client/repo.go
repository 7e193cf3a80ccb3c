package client

import (
	"fakturo/internal/domain"
)

// Repository persists clients.
type Repository interface {
	domain.CatalogRepository[*Client]
}
