//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"
	"storefront/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeStatus(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	admin := uuid.New()

	tests := []struct {
		name    string
		order   *builder.OrderBuilder
		target  string
		want    order.Status
		wantErr error
	}{
		{name: "paid to processing", order: builder.NewOrderBuilder().WithStatus(order.StatusPaid).AsPaid(), target: "PROCESSING", want: order.StatusProcessing},
		{name: "lower case target", order: builder.NewOrderBuilder().WithStatus(order.StatusProcessing).AsPaid(), target: "shipped", want: order.StatusShipped},
		{name: "pending cancelled by admin", order: builder.NewOrderBuilder(), target: "CANCELLED", want: order.StatusCancelled},
		{name: "held order can be refunded", order: builder.NewOrderBuilder().WithStatus(order.StatusPaid).AsPaid().WithHold(order.HoldStockShortfall), target: "REFUNDED", want: order.StatusRefunded},
		{name: "held order cannot be processed", order: builder.NewOrderBuilder().WithStatus(order.StatusPaid).AsPaid().WithHold(order.HoldStockShortfall), target: "PROCESSING", wantErr: commands.ErrFulfillmentHold},
		{name: "pending cannot skip to shipped", order: builder.NewOrderBuilder(), target: "SHIPPED", wantErr: commands.ErrInvalidTransition},
		{name: "paid is reserved for payment confirmation", order: builder.NewOrderBuilder(), target: "PAID", wantErr: commands.ErrInvalidTransition},
		{name: "terminal state", order: builder.NewOrderBuilder().WithStatus(order.StatusCancelled), target: "PENDING", wantErr: commands.ErrInvalidTransition},
		{name: "unknown status", order: builder.NewOrderBuilder(), target: "LOST", wantErr: commands.ErrUnknownStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memuow.New()
			o := tt.order.Build()
			store.AddOrder(o)
			uc := commands.NewOrderStatusCommands(store, clock.NewMockClock(now))

			res, err := uc.ChangeStatus(ctx, o.ID(), tt.target, admin)

			got, _ := store.Order(o.ID())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				assert.Equal(t, o.Status(), got.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, o.Status(), res.From)
			assert.Equal(t, tt.want, res.To)
			assert.Equal(t, tt.want, got.Status())
			assert.Equal(t, now, got.UpdatedAt())
		})
	}

	t.Run("unknown status is also a validation error", func(t *testing.T) {
		uc := commands.NewOrderStatusCommands(memuow.New(), clock.NewMockClock(now))

		_, err := uc.ChangeStatus(ctx, uuid.New(), "LOST", admin)

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("missing order", func(t *testing.T) {
		uc := commands.NewOrderStatusCommands(memuow.New(), clock.NewMockClock(now))

		_, err := uc.ChangeStatus(ctx, uuid.New(), "PROCESSING", admin)

		assert.True(t, errs.Is(err, commands.ErrOrderNotFound))
	})
}
