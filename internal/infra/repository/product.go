package repository

import (
	"context"

	"storefront/internal/domain/product"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/repository/product_mock.go -package=repository

type ProductWriteQueries interface {
	LockProductsForShare(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Products, error)
	LockProductsForUpdate(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.Products, error)
	UpdateProductStock(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateProductStockParams) (int64, error)
}

type ProductRepository struct {
	queries ProductWriteQueries
	db      sqlc.DBTX
}

func NewProductRepository(queries ProductWriteQueries, db sqlc.DBTX) *ProductRepository {
	return &ProductRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ProductRepository) LockForCheckout(ctx context.Context, ids []int64) ([]product.Product, error) {
	if len(ids) == 0 {
		return []product.Product{}, nil
	}
	rows, err := r.queries.LockProductsForShare(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock products for checkout", err)
	}
	products, err := converter.ProductsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode products", err, infra.KindDBFailure)
	}
	return products, nil
}

func (r *ProductRepository) LockForUpdate(ctx context.Context, ids []int64) ([]product.Product, error) {
	if len(ids) == 0 {
		return []product.Product{}, nil
	}
	rows, err := r.queries.LockProductsForUpdate(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock products for update", err)
	}
	products, err := converter.ProductsToDomain(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode products", err, infra.KindDBFailure)
	}
	return products, nil
}

func (r *ProductRepository) SetStock(ctx context.Context, id int64, stock int) error {
	if stock < 0 {
		return infra.WrapRepoErr("refusing to write negative stock", product.ErrNegativeStock, infra.KindConstraintViolated)
	}
	affected, err := r.queries.UpdateProductStock(ctx, r.db, sqlc.UpdateProductStockParams{
		ID:    id,
		Stock: int32(stock), // #nosec G115 -- stock only ever decreases from an int32 column
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update product stock", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
