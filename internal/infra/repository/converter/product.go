package converter

import (
	"storefront/internal/domain/product"
	"storefront/internal/domain/promotion"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
)

func ProductToDomain(row sqlc.Products) (product.Product, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return product.Product{}, err
	}
	return product.Product{
		ID:       row.ID,
		Name:     row.Name,
		Brand:    row.Brand,
		Slug:     row.Slug,
		VolumeML: int(row.VolumeMl),
		PriceRON: price,
		Stock:    int(row.Stock),
		ImageURL: row.ImageUrl,
	}, nil
}

func ProductsToDomain(rows []sqlc.Products) ([]product.Product, error) {
	out := make([]product.Product, 0, len(rows))
	for _, row := range rows {
		p, err := ProductToDomain(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func PromotionToDomain(row sqlc.Promotions) (promotion.Promotion, error) {
	pct, err := pgconv.DecimalFromNumeric(row.DiscountPercent)
	if err != nil {
		return promotion.Promotion{}, err
	}
	return promotion.Promotion{
		ID:              row.ID,
		Name:            row.Name,
		DiscountPercent: pct,
		StartsAt:        pgconv.TimeFromPgtype(row.StartsAt),
		EndsAt:          pgconv.TimeFromPgtype(row.EndsAt),
		IsActive:        row.IsActive,
	}, nil
}
