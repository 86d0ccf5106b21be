package promotion

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidDiscountPercent = errors.New("discount percent must be within (0, 100]")

type Promotion struct {
	ID              int64
	Name            string
	DiscountPercent decimal.Decimal
	StartsAt        time.Time
	EndsAt          time.Time
	IsActive        bool
}

func (p Promotion) Validate() error {
	if !p.DiscountPercent.IsPositive() || p.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return ErrInvalidDiscountPercent
	}
	return nil
}

// ActiveAt uses a half-open window [StartsAt, EndsAt).
func (p Promotion) ActiveAt(now time.Time) bool {
	return p.IsActive && !now.Before(p.StartsAt) && now.Before(p.EndsAt)
}

// Pick returns the most recently started promotion active at now.
func Pick(promos []Promotion, now time.Time) (Promotion, bool) {
	var (
		best  Promotion
		found bool
	)
	for _, p := range promos {
		if !p.ActiveAt(now) || p.Validate() != nil {
			continue
		}
		if !found || p.StartsAt.After(best.StartsAt) || (p.StartsAt.Equal(best.StartsAt) && p.ID > best.ID) {
			best = p
			found = true
		}
	}
	return best, found
}
