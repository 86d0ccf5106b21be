package readstore

import (
	"context"

	"storefront/internal/domain/product"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
)

type ProductViewQueries interface {
	GetProduct(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Products, error)
	ListProductsByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Products, error)
}

// ProductReadStore serves unlocked catalog reads for the cart.
type ProductReadStore struct {
	queries ProductViewQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries ProductViewQueries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id int64) (*product.Product, error) {
	row, err := r.queries.GetProduct(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product", err)
	}
	p, err := converter.ProductToDomain(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode product", err, infra.KindDBFailure)
	}
	return &p, nil
}

func (r *ProductReadStore) FindByIDs(ctx context.Context, ids []int64) ([]product.Product, error) {
	if len(ids) == 0 {
		return []product.Product{}, nil
	}
	rows, err := r.queries.ListProductsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	products, err := converter.ProductsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode products", err, infra.KindDBFailure)
	}
	return products, nil
}
