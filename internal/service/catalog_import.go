package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type catalogEntry struct {
	ID          *int64           `json:"id"`
	Name        string           `json:"name"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description"`
	ImageURL    string           `json:"image_url"`
}

// ImportCatalog reads a JSON array of products and upserts each one.
// The whole file is validated before anything is written.
func ImportCatalog(ctx context.Context, r io.Reader, products port.ProductWriter, logger *zap.Logger) (int, error) {
	var entries []catalogEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return 0, fmt.Errorf("decode catalog: %w", err)
	}

	parsed, err := parseCatalog(entries)
	if err != nil {
		return 0, err
	}

	for _, p := range parsed {
		if err := products.UpsertProduct(ctx, p); err != nil {
			return 0, fmt.Errorf("products.UpsertProduct[%d]: %w", p.ID, err)
		}
	}

	logger.Info("catalog imported", zap.Int("products", len(parsed)))
	return len(parsed), nil
}

func parseCatalog(entries []catalogEntry) ([]domain.Product, error) {
	var errs []error
	seen := make(map[int64]bool, len(entries))
	products := make([]domain.Product, 0, len(entries))

	for i, e := range entries {
		switch {
		case e.ID == nil:
			errs = append(errs, fmt.Errorf("entry %d: id is required", i))
			continue
		case seen[*e.ID]:
			errs = append(errs, fmt.Errorf("entry %d: duplicate id %d", i, *e.ID))
			continue
		}
		seen[*e.ID] = true

		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, fmt.Errorf("entry %d: name is required", i))
		}
		if e.Price == nil || e.Price.IsNegative() {
			errs = append(errs, fmt.Errorf("entry %d: price must be a non-negative amount", i))
			continue
		}

		products = append(products, domain.Product{
			ID:          *e.ID,
			Name:        e.Name,
			Price:       domain.RoundMoney(*e.Price),
			Description: e.Description,
			ImageURL:    e.ImageURL,
		})
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return products, nil
}
