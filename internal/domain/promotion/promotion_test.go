//go:build unit

package promotion_test

import (
	"testing"
	"time"

	"storefront/internal/domain/promotion"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func promo(id int64, percent string, startsAgo, endsIn time.Duration) promotion.Promotion {
	return promotion.Promotion{
		ID:              id,
		Name:            "promo",
		DiscountPercent: decimal.RequireFromString(percent),
		StartsAt:        now.Add(-startsAgo),
		EndsAt:          now.Add(endsIn),
		IsActive:        true,
	}
}

func TestActiveAt(t *testing.T) {
	p := promo(1, "10", time.Hour, time.Hour)

	assert.True(t, p.ActiveAt(now))
	assert.True(t, p.ActiveAt(p.StartsAt))
	assert.False(t, p.ActiveAt(p.EndsAt))
	assert.False(t, p.ActiveAt(p.StartsAt.Add(-time.Nanosecond)))

	p.IsActive = false
	assert.False(t, p.ActiveAt(now))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, promo(1, "100", time.Hour, time.Hour).Validate())
	assert.ErrorIs(t, promo(1, "0", time.Hour, time.Hour).Validate(), promotion.ErrInvalidDiscountPercent)
	assert.ErrorIs(t, promo(1, "100.01", time.Hour, time.Hour).Validate(), promotion.ErrInvalidDiscountPercent)
}

func TestPick(t *testing.T) {
	tests := []struct {
		name   string
		promos []promotion.Promotion
		wantID int64
		found  bool
	}{
		{name: "none", found: false},
		{
			name:   "most recently started wins over larger discount",
			promos: []promotion.Promotion{promo(1, "50", 3*time.Hour, time.Hour), promo(2, "5", time.Hour, time.Hour)},
			wantID: 2,
			found:  true,
		},
		{
			name:   "expired and future promotions are skipped",
			promos: []promotion.Promotion{promo(1, "10", 3*time.Hour, -time.Hour), promo(2, "10", -time.Hour, 2*time.Hour), promo(3, "15", time.Hour, time.Hour)},
			wantID: 3,
			found:  true,
		},
		{
			name:   "same start picks the higher id",
			promos: []promotion.Promotion{promo(4, "10", time.Hour, time.Hour), promo(3, "20", time.Hour, time.Hour)},
			wantID: 4,
			found:  true,
		},
		{
			name:   "invalid percent is skipped",
			promos: []promotion.Promotion{promo(1, "10", 2*time.Hour, time.Hour), promo(2, "120", time.Hour, time.Hour)},
			wantID: 1,
			found:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := promotion.Pick(tt.promos, now)
			require.Equal(t, tt.found, ok)
			if ok {
				assert.Equal(t, tt.wantID, got.ID)
			}
		})
	}
}
