package shared

import (
	"context"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/domain/product"
	"storefront/internal/domain/promotion"
	"storefront/internal/domain/user"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// fn may run more than once, so it must not have side effects outside tx.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Products() ProductRepository
	Orders() OrderRepository
	Promotions() PromotionRepository
	PaymentEvents() PaymentEventRepository
	Users() UserRepository
}

type ProductRepository interface {
	// LockForCheckout takes shared row locks in id order; missing ids are simply absent.
	LockForCheckout(ctx context.Context, ids []int64) ([]product.Product, error)
	// LockForUpdate takes exclusive row locks in id order.
	LockForUpdate(ctx context.Context, ids []int64) ([]product.Product, error)
	SetStock(ctx context.Context, id int64, stock int) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, error)
	// Save persists the mutable lifecycle fields. Monetary totals and items are never rewritten.
	Save(ctx context.Context, o *order.Order) error
}

type PromotionRepository interface {
	ListActive(ctx context.Context, at time.Time) ([]promotion.Promotion, error)
}

type PaymentEventRepository interface {
	// Record returns false when the event id was already recorded.
	Record(ctx context.Context, eventID, eventType string, orderID *uuid.UUID, at time.Time) (bool, error)
}

type UserRepository interface {
	FindByEmailForUpdate(ctx context.Context, email user.Email) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	SaveLoginState(ctx context.Context, u *user.User) error
}
