package money

import (
	"errors"
	"strings"
)

var ErrUnsupportedCurrency = errors.New("unsupported currency")

type Currency string

const (
	RON Currency = "RON"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// Base is the currency every stored price is expressed in.
const Base = RON

var symbols = map[Currency]string{
	EUR: "€",
	GBP: "£",
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrUnsupportedCurrency
	}
	return c, nil
}

func (c Currency) IsValid() bool {
	switch c {
	case RON, EUR, GBP:
		return true
	default:
		return false
	}
}

func (c Currency) IsBase() bool {
	return c == Base
}

func (c Currency) String() string {
	return string(c)
}

// Lower is the form payment providers expect.
func (c Currency) Lower() string {
	return strings.ToLower(string(c))
}
