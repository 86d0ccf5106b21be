package repository

import (
	"context"
	"time"

	"storefront/internal/domain/promotion"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type PromotionQueries interface {
	ListActivePromotions(ctx context.Context, db sqlc.DBTX, at pgtype.Timestamptz) ([]sqlc.Promotions, error)
}

type PromotionRepository struct {
	queries PromotionQueries
	db      sqlc.DBTX
}

func NewPromotionRepository(queries PromotionQueries, db sqlc.DBTX) *PromotionRepository {
	return &PromotionRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PromotionRepository) ListActive(ctx context.Context, at time.Time) ([]promotion.Promotion, error) {
	rows, err := r.queries.ListActivePromotions(ctx, r.db, pgconv.TimeToPgtype(at))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active promotions", err)
	}
	out := make([]promotion.Promotion, 0, len(rows))
	for _, row := range rows {
		p, cerr := converter.PromotionToDomain(row)
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to decode promotion", cerr, infra.KindDBFailure)
		}
		out = append(out, p)
	}
	return out, nil
}
