package commands

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/money"
	"storefront/internal/domain/order"
	"storefront/internal/domain/product"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment.go -destination=../../../tests/mock/commands/payment_mock.go -package=commandsmock

var ErrOrderNotFound = errs.New("order not found")

// PaymentConfirmation is a verified "payment completed" notification.
type PaymentConfirmation struct {
	EventID      string
	OrderID      uuid.UUID
	SessionID    string
	PaidAmount   decimal.Decimal
	Currency     money.Currency
	ExchangeRate *decimal.Decimal
}

type SessionExpiry struct {
	EventID   string
	OrderID   uuid.UUID
	SessionID string
}

type PaymentCommands interface {
	HandlePaymentConfirmed(ctx context.Context, in PaymentConfirmation) error
	HandleSessionExpired(ctx context.Context, in SessionExpiry) error
}

type paymentCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPaymentCommands(uow shared.UnitOfWork, clk clock.Clock) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, clock: clk}
}

// HandlePaymentConfirmed settles a PENDING order exactly once. Event recording,
// the status guard, stock decrement and the PAID transition share one transaction.
func (p *paymentCommandsImpl) HandlePaymentConfirmed(ctx context.Context, in PaymentConfirmation) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := p.clock.Now()

		fresh, err := tx.PaymentEvents().Record(ctx, in.EventID, shared.EventCheckoutCompleted, &in.OrderID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !fresh {
			slog.Info("payment event already processed",
				"event_id", in.EventID,
				"order_id", in.OrderID.String())
			return nil
		}

		o, err := p.findOrder(ctx, tx, in.OrderID)
		if err != nil {
			if errs.Is(err, ErrOrderNotFound) {
				slog.Error("payment confirmed for unknown order",
					"event_id", in.EventID,
					"order_id", in.OrderID.String(),
					"session_id", in.SessionID)
			}
			return err
		}

		if o.Status() != order.StatusPending {
			slog.Warn("payment confirmation ignored, order is not pending",
				"event_id", in.EventID,
				"order_id", o.ID().String(),
				"status", o.Status().String())
			return nil
		}
		if sid := o.PaymentSessionID(); sid != nil && in.SessionID != "" && *sid != in.SessionID {
			slog.Warn("payment session mismatch",
				"order_id", o.ID().String(),
				"stored_session_id", *sid,
				"event_session_id", in.SessionID)
		}

		if err := p.consumeStock(ctx, tx, o, now); err != nil {
			return err
		}

		currency := in.Currency
		if !currency.IsValid() {
			currency = o.SettlementCurrency()
		}
		if err := o.MarkPaid(order.Settlement{
			PaidAmount:       in.PaidAmount,
			Currency:         currency,
			ExchangeRateUsed: in.ExchangeRate,
		}, now); err != nil {
			return errs.Mark(err, order.ErrInvalidTransition)
		}

		if err := tx.Orders().Save(ctx, o); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		slog.Info("order paid",
			"event_id", in.EventID,
			"order_id", o.ID().String(),
			"order_number", o.Number(),
			"paid_amount", in.PaidAmount.StringFixed(2),
			"currency", currency.String(),
			"fulfillment_hold", string(o.Hold()))
		return nil
	})
}

// consumeStock decrements every line when all of them are covered. If any line
// falls short nothing is decremented and the order is put on hold instead.
func (p *paymentCommandsImpl) consumeStock(ctx context.Context, tx shared.Tx, o *order.Order, now time.Time) error {
	locked, err := tx.Products().LockForUpdate(ctx, o.ProductIDs())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	stock := make(map[int64]int, len(locked))
	for _, pr := range locked {
		stock[pr.ID] = pr.Stock
	}

	needed := o.Quantities()
	var shortfalls []any
	for id, qty := range needed {
		available, ok := stock[id]
		if !ok || available < qty {
			shortfalls = append(shortfalls, slog.Group("product",
				"product_id", id,
				"requested", qty,
				"available", available))
		}
	}

	if len(shortfalls) > 0 {
		o.PlaceHold(order.HoldStockShortfall, now)
		args := append([]any{
			"order_id", o.ID().String(),
			"order_number", o.Number(),
		}, shortfalls...)
		slog.Error("stock shortfall on paid order, fulfillment held for review", args...)
		return nil
	}

	for _, id := range o.ProductIDs() {
		remaining := product.ClampedDecrement(stock[id], needed[id])
		if err := tx.Products().SetStock(ctx, id, remaining); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	return nil
}

// HandleSessionExpired cancels an order whose checkout page expired unpaid or whose delayed payment failed.
func (p *paymentCommandsImpl) HandleSessionExpired(ctx context.Context, in SessionExpiry) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := p.clock.Now()

		fresh, err := tx.PaymentEvents().Record(ctx, in.EventID, shared.EventCheckoutExpired, &in.OrderID, now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !fresh {
			return nil
		}

		o, err := p.findOrder(ctx, tx, in.OrderID)
		if err != nil {
			return err
		}
		if o.Status() != order.StatusPending {
			slog.Info("session expiry ignored, order is not pending",
				"event_id", in.EventID,
				"order_id", o.ID().String(),
				"status", o.Status().String())
			return nil
		}

		if err := o.Transition(order.StatusCancelled, now); err != nil {
			return errs.Mark(err, order.ErrInvalidTransition)
		}
		if err := tx.Orders().Save(ctx, o); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		slog.Info("order cancelled after checkout session expired",
			"event_id", in.EventID,
			"order_id", o.ID().String())
		return nil
	})
}

func (p *paymentCommandsImpl) findOrder(ctx context.Context, tx shared.Tx, id uuid.UUID) (*order.Order, error) {
	o, err := tx.Orders().FindForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrOrderNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return o, nil
}
