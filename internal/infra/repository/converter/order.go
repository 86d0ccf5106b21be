package converter

import (
	"storefront/internal/domain/money"
	"storefront/internal/domain/order"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/pgconv"

	"github.com/shopspring/decimal"
)

func OrderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	ship := o.Shipping()
	totals := o.Totals()
	return sqlc.CreateOrderParams{
		ID:                   o.ID(),
		OrderNumber:          o.Number(),
		UserID:               pgconv.UUIDPtrToPgtype(o.UserID()),
		GuestEmail:           pgconv.StringPtrToPgtype(o.GuestEmail()),
		Locale:               o.Locale(),
		ShippingName:         ship.Name,
		ShippingPhone:        ship.Phone,
		ShippingAddressLine1: ship.AddressLine1,
		ShippingAddressLine2: ship.AddressLine2,
		ShippingCity:         ship.City,
		ShippingState:        ship.State,
		ShippingPostalCode:   ship.PostalCode,
		ShippingCountry:      ship.Country,
		Subtotal:             pgconv.DecimalToNumeric(totals.Subtotal),
		DiscountPercent:      pgconv.DecimalToNumeric(totals.DiscountPercent),
		Discount:             pgconv.DecimalToNumeric(totals.Discount),
		Total:                pgconv.DecimalToNumeric(totals.Total),
		SettlementCurrency:   o.SettlementCurrency().String(),
		Status:               o.Status().String(),
		FulfillmentHold:      string(o.Hold()),
		CreatedAt:            pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:            pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderItemToCreateParams(o *order.Order, it order.Item) sqlc.CreateOrderItemParams {
	return sqlc.CreateOrderItemParams{
		OrderID:     o.ID(),
		ProductID:   it.ProductID,
		ProductName: it.ProductName,
		Brand:       it.Brand,
		Slug:        it.Slug,
		VolumeMl:    int32(it.VolumeML), // #nosec G115 -- volumes are small positive integers
		UnitPrice:   pgconv.DecimalToNumeric(it.UnitPrice),
		Quantity:    int32(it.Quantity), // #nosec G115 -- bounded by checkout validation
		LineTotal:   pgconv.DecimalToNumeric(it.LineTotal),
	}
}

func OrderToUpdateStateParams(o *order.Order) sqlc.UpdateOrderStateParams {
	var paidCurrency *string
	if c := o.PaidCurrency(); c != nil {
		s := c.String()
		paidCurrency = &s
	}
	return sqlc.UpdateOrderStateParams{
		ID:               o.ID(),
		Status:           o.Status().String(),
		FulfillmentHold:  string(o.Hold()),
		PaymentSessionID: pgconv.StringPtrToPgtype(o.PaymentSessionID()),
		PaidAmount:       pgconv.DecimalPtrToNumeric(o.PaidAmount()),
		PaidCurrency:     pgconv.StringPtrToPgtype(paidCurrency),
		ExchangeRateUsed: pgconv.DecimalPtrToNumeric(o.ExchangeRateUsed()),
		PaidAt:           pgconv.TimePtrToPgtype(o.PaidAt()),
		UpdatedAt:        pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderItemToDomain(row sqlc.OrderItems) (order.Item, error) {
	unit, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	line, err := pgconv.DecimalFromNumeric(row.LineTotal)
	if err != nil {
		return order.Item{}, err
	}
	return order.Item{
		ProductID:   row.ProductID,
		ProductName: row.ProductName,
		Brand:       row.Brand,
		Slug:        row.Slug,
		VolumeML:    int(row.VolumeMl),
		UnitPrice:   unit,
		Quantity:    int(row.Quantity),
		LineTotal:   line,
	}, nil
}

// OrderToDomain rebuilds the aggregate; unknown status or currency values in
// the row are treated as corruption.
func OrderToDomain(row sqlc.Orders, itemRows []sqlc.OrderItems) (*order.Order, error) {
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}
	settlement, err := money.ParseCurrency(row.SettlementCurrency)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}

	amounts, err := decodeAmounts(row)
	if err != nil {
		return nil, errs.Wrapf(err, "order %s", row.ID)
	}

	var paidCurrency *money.Currency
	if row.PaidCurrency.Valid {
		c, cerr := money.ParseCurrency(row.PaidCurrency.String)
		if cerr != nil {
			return nil, errs.Wrapf(cerr, "order %s", row.ID)
		}
		paidCurrency = &c
	}

	items := make([]order.Item, 0, len(itemRows))
	for _, ir := range itemRows {
		it, ierr := OrderItemToDomain(ir)
		if ierr != nil {
			return nil, errs.Wrapf(ierr, "order %s", row.ID)
		}
		items = append(items, it)
	}

	return order.Reconstruct(order.ReconstructParams{
		ID:         row.ID,
		Number:     row.OrderNumber,
		UserID:     pgconv.UUIDPtrFromPgtype(row.UserID),
		GuestEmail: pgconv.StringPtrFromPgtype(row.GuestEmail),
		Locale:     row.Locale,
		Shipping: order.ShippingAddress{
			Name:         row.ShippingName,
			Phone:        row.ShippingPhone,
			AddressLine1: row.ShippingAddressLine1,
			AddressLine2: row.ShippingAddressLine2,
			City:         row.ShippingCity,
			State:        row.ShippingState,
			PostalCode:   row.ShippingPostalCode,
			Country:      row.ShippingCountry,
		},
		Items:              items,
		Totals:             amounts.totals,
		SettlementCurrency: settlement,
		PaymentSessionID:   pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		Status:             status,
		Hold:               order.FulfillmentHold(row.FulfillmentHold),
		PaidAmount:         amounts.paidAmount,
		PaidCurrency:       paidCurrency,
		ExchangeRateUsed:   amounts.exchangeRate,
		PaidAt:             pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

type orderAmounts struct {
	totals       order.Totals
	paidAmount   *decimal.Decimal
	exchangeRate *decimal.Decimal
}

func decodeAmounts(row sqlc.Orders) (orderAmounts, error) {
	var (
		a   orderAmounts
		err error
	)
	if a.totals.Subtotal, err = pgconv.DecimalFromNumeric(row.Subtotal); err != nil {
		return a, err
	}
	if a.totals.DiscountPercent, err = pgconv.DecimalFromNumeric(row.DiscountPercent); err != nil {
		return a, err
	}
	if a.totals.Discount, err = pgconv.DecimalFromNumeric(row.Discount); err != nil {
		return a, err
	}
	if a.totals.Total, err = pgconv.DecimalFromNumeric(row.Total); err != nil {
		return a, err
	}
	if a.paidAmount, err = pgconv.DecimalPtrFromNumeric(row.PaidAmount); err != nil {
		return a, err
	}
	if a.exchangeRate, err = pgconv.DecimalPtrFromNumeric(row.ExchangeRateUsed); err != nil {
		return a, err
	}
	return a, nil
}
