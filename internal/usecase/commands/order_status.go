package commands

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order_status.go -destination=../../../tests/mock/commands/order_status_mock.go -package=commandsmock

var (
	ErrInvalidTransition = errs.New("invalid status transition")
	ErrFulfillmentHold   = errs.New("order is on fulfillment hold")
	ErrUnknownStatus     = errs.New("unknown order status")
)

type ChangeStatusResult struct {
	OrderID uuid.UUID
	From    order.Status
	To      order.Status
}

type OrderStatusCommands interface {
	ChangeStatus(ctx context.Context, orderID uuid.UUID, target string, actorID uuid.UUID) (*ChangeStatusResult, error)
}

type orderStatusCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOrderStatusCommands(uow shared.UnitOfWork, clk clock.Clock) OrderStatusCommands {
	return &orderStatusCommandsImpl{uow: uow, clock: clk}
}

// ChangeStatus applies an administrative transition under a row lock so that a
// concurrent payment callback observes either the old or the new status.
func (uc *orderStatusCommandsImpl) ChangeStatus(ctx context.Context, orderID uuid.UUID, target string, actorID uuid.UUID) (*ChangeStatusResult, error) {
	to, err := order.ParseStatus(target)
	if err != nil {
		return nil, errs.Mark(errs.Validation(err), ErrUnknownStatus)
	}

	var result ChangeStatusResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, terr := tx.Orders().FindForUpdate(ctx, orderID)
		if terr != nil {
			if infra.IsKind(terr, infra.KindNotFound) {
				return errs.Mark(terr, ErrOrderNotFound)
			}
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}

		from := o.Status()
		if terr = o.Transition(to, uc.clock.Now()); terr != nil {
			switch {
			case errors.Is(terr, order.ErrFulfillmentHold):
				return errs.Mark(terr, ErrFulfillmentHold)
			case errors.Is(terr, order.ErrInvalidTransition):
				return errs.Mark(terr, ErrInvalidTransition)
			default:
				return errs.Validation(terr)
			}
		}

		if terr = tx.Orders().Save(ctx, o); terr != nil {
			return errs.Mark(terr, errs.ErrDatabaseOperationFailed)
		}
		result = ChangeStatusResult{OrderID: o.ID(), From: from, To: o.Status()}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("order status changed",
		"order_id", orderID.String(),
		"from", result.From.String(),
		"to", result.To.String(),
		"actor_id", actorID.String())
	return &result, nil
}
