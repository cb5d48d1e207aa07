package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (domain.Product, error)
}

type ProductWriter interface {
	UpsertProduct(ctx context.Context, p domain.Product) error
}
