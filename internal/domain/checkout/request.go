package checkout

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"storefront/internal/domain/order"

	"golang.org/x/text/language"
)

const (
	MaxLines      = 50
	MaxQuantity   = 99
	DefaultLocale = "ro"
	minQuantity   = 1
	minProductID  = 1
)

var (
	ErrNoItems           = errors.New("checkout requires at least one item")
	ErrTooManyLines      = errors.New("too many checkout lines")
	ErrInvalidQuantity   = errors.New("quantity out of range")
	ErrInvalidProductID  = errors.New("invalid product id")
	ErrUnsupportedLocale = errors.New("unsupported locale")
)

type Line struct {
	ProductID int64
	Quantity  int
}

type Request struct {
	Lines      []Line
	Shipping   order.ShippingAddress
	GuestEmail *string
	Locale     string
}

// NormalizeLines validates every line and merges duplicate product ids, keeping
// first-seen order. Merged quantities are re-checked against MaxQuantity.
func NormalizeLines(lines []Line) ([]Line, error) {
	if len(lines) == 0 {
		return nil, ErrNoItems
	}
	if len(lines) > MaxLines {
		return nil, fmt.Errorf("%w: at most %d", ErrTooManyLines, MaxLines)
	}

	merged := make([]Line, 0, len(lines))
	index := make(map[int64]int, len(lines))
	for _, l := range lines {
		if l.ProductID < minProductID {
			return nil, fmt.Errorf("%w: %d", ErrInvalidProductID, l.ProductID)
		}
		if l.Quantity < minQuantity || l.Quantity > MaxQuantity {
			return nil, fmt.Errorf("%w: product %d quantity %d", ErrInvalidQuantity, l.ProductID, l.Quantity)
		}
		if i, ok := index[l.ProductID]; ok {
			merged[i].Quantity += l.Quantity
			continue
		}
		index[l.ProductID] = len(merged)
		merged = append(merged, l)
	}
	for _, l := range merged {
		if l.Quantity > MaxQuantity {
			return nil, fmt.Errorf("%w: product %d quantity %d", ErrInvalidQuantity, l.ProductID, l.Quantity)
		}
	}
	return merged, nil
}

// NormalizeLocale parses a BCP 47 tag and reduces it to its base language,
// which must be in supported. An empty locale falls back to DefaultLocale.
func NormalizeLocale(locale string, supported []string) (string, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	base, _ := tag.Base()
	code := base.String()
	if !slices.Contains(supported, code) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLocale, locale)
	}
	return code, nil
}

// Validate normalizes the whole request before any state is touched.
func (r Request) Validate(supportedLocales []string) (Request, error) {
	lines, err := NormalizeLines(r.Lines)
	if err != nil {
		return Request{}, err
	}
	shipping, err := order.NewShippingAddress(r.Shipping)
	if err != nil {
		return Request{}, err
	}
	email, err := order.NewGuestEmail(r.GuestEmail)
	if err != nil {
		return Request{}, err
	}
	locale, err := NormalizeLocale(r.Locale, supportedLocales)
	if err != nil {
		return Request{}, err
	}
	return Request{
		Lines:      lines,
		Shipping:   shipping,
		GuestEmail: email,
		Locale:     locale,
	}, nil
}

func (r Request) ProductIDs() []int64 {
	ids := make([]int64, len(r.Lines))
	for i, l := range r.Lines {
		ids[i] = l.ProductID
	}
	return ids
}
