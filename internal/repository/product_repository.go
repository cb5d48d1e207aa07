package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
)

// ProductRepository is the catalog. Shoppers only read from it; the startup
// catalog import writes through UpsertProduct.
type ProductRepository struct {
	q *db.Queries
}

func NewProduct(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{q: db.New(pool)}
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapProductToDomain(row))
	}

	return products, nil
}

func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Product{}, fmt.Errorf("product[%d]: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	return mapProductToDomain(row), nil
}

func (r *ProductRepository) UpsertProduct(ctx context.Context, p domain.Product) error {
	if p.Price.IsNegative() {
		return fmt.Errorf("product[%d] price is negative", p.ID)
	}

	err := r.q.UpsertProduct(ctx, db.UpsertProductParams{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		ImageUrl:    p.ImageURL,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertProduct: %w", err)
	}

	return nil
}

func mapProductToDomain(row db.Product) domain.Product {
	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Price:       row.Price,
		Description: row.Description,
		ImageURL:    row.ImageUrl,
	}
}
