package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// Rates holds base units per one unit of each foreign currency plus the
// conversion fee charged on top, in percent.
type Rates struct {
	EUR        decimal.Decimal
	GBP        decimal.Decimal
	FeePercent decimal.Decimal
	FetchedAt  time.Time
}

// RateFor returns the base units per one unit of c. The base currency is 1.
func (r *Rates) RateFor(c Currency) (decimal.Decimal, bool) {
	if c.IsBase() {
		return one, true
	}
	if r == nil {
		return decimal.Zero, false
	}
	var rate decimal.Decimal
	switch c {
	case EUR:
		rate = r.EUR
	case GBP:
		rate = r.GBP
	default:
		return decimal.Zero, false
	}
	if !rate.IsPositive() {
		return decimal.Zero, false
	}
	return rate, true
}

// Convert turns a base amount into target. Without usable rates the amount is
// returned unchanged so display stays total. The result is not rounded.
func Convert(amount decimal.Decimal, target Currency, rates *Rates) decimal.Decimal {
	if target.IsBase() || rates == nil {
		return amount
	}
	rate, ok := rates.RateFor(target)
	if !ok {
		return amount
	}
	adjusted := amount.Mul(one.Add(rates.FeePercent.Div(hundred)))
	return adjusted.Div(rate)
}

// Round2 rounds half away from zero to two fraction digits.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders two fixed decimals; RON trails its code, the rest lead with a symbol.
func Format(amount decimal.Decimal, c Currency) string {
	s := Round2(amount).StringFixed(2)
	if sym, ok := symbols[c]; ok {
		if strings.HasPrefix(s, "-") {
			return "-" + sym + s[1:]
		}
		return sym + s
	}
	return s + " " + string(c)
}

// ParsePrice never fails; anything unparseable is treated as zero.
func ParsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ToMinorUnits returns the amount in cents after rounding.
func ToMinorUnits(d decimal.Decimal) int64 {
	return Round2(d).Mul(hundred).IntPart()
}

func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
