package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
)

var (
	ErrInvalidShippingAddress = errors.New("invalid shipping address")
	ErrInvalidGuestEmail      = errors.New("invalid guest email")
)

const numberPrefix = "ORD-"

var (
	emailRegex   = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	countryRegex = regexp.MustCompile(`^[A-Z]{2}$`)
)

// NewNumber builds the externally shown order number. ULIDs sort by creation time.
func NewNumber(now time.Time) string {
	return numberPrefix + ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String()
}

type ShippingAddress struct {
	Name         string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
}

type fieldBound struct {
	field    string
	value    string
	min, max int
}

// NewShippingAddress trims every field, upper-cases the country and checks the bounds.
func NewShippingAddress(a ShippingAddress) (ShippingAddress, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Phone = strings.TrimSpace(a.Phone)
	a.AddressLine1 = strings.TrimSpace(a.AddressLine1)
	a.AddressLine2 = strings.TrimSpace(a.AddressLine2)
	a.City = strings.TrimSpace(a.City)
	a.State = strings.TrimSpace(a.State)
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.ToUpper(strings.TrimSpace(a.Country))

	bounds := []fieldBound{
		{field: "name", value: a.Name, min: 2, max: 100},
		{field: "phone", value: a.Phone, min: 0, max: 30},
		{field: "addressLine1", value: a.AddressLine1, min: 5, max: 200},
		{field: "addressLine2", value: a.AddressLine2, min: 0, max: 200},
		{field: "city", value: a.City, min: 2, max: 100},
		{field: "state", value: a.State, min: 0, max: 100},
		{field: "postalCode", value: a.PostalCode, min: 2, max: 20},
	}
	for _, b := range bounds {
		n := utf8.RuneCountInString(b.value)
		if n < b.min || n > b.max {
			return ShippingAddress{}, fmt.Errorf("%w: %s must be %d-%d characters", ErrInvalidShippingAddress, b.field, b.min, b.max)
		}
	}
	if !countryRegex.MatchString(a.Country) {
		return ShippingAddress{}, fmt.Errorf("%w: country must be a 2-letter code", ErrInvalidShippingAddress)
	}
	return a, nil
}

// NewGuestEmail accepts an absent email and validates a present one.
func NewGuestEmail(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil, nil
	}
	if len(v) > 254 || !emailRegex.MatchString(v) {
		return nil, ErrInvalidGuestEmail
	}
	v = strings.ToLower(v)
	return &v, nil
}
