package repository

import (
	"context"
	"time"

	"storefront/internal/infra"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentEventQueries interface {
	InsertPaymentEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentEventParams) (int64, error)
}

// PaymentEventRepository is the idempotency ledger for provider callbacks.
type PaymentEventRepository struct {
	queries PaymentEventQueries
	db      sqlc.DBTX
}

func NewPaymentEventRepository(queries PaymentEventQueries, db sqlc.DBTX) *PaymentEventRepository {
	return &PaymentEventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentEventRepository) Record(ctx context.Context, eventID, eventType string, orderID *uuid.UUID, at time.Time) (bool, error) {
	affected, err := r.queries.InsertPaymentEvent(ctx, r.db, sqlc.InsertPaymentEventParams{
		EventID:    eventID,
		EventType:  eventType,
		OrderID:    pgconv.UUIDPtrToPgtype(orderID),
		ReceivedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to record payment event", err)
	}
	return affected == 1, nil
}
