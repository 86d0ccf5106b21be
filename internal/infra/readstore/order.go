package readstore

import (
	"context"

	"storefront/internal/infra"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderViewQueries interface {
	GetOrder(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOrderBySessionID(ctx context.Context, db sqlc.DBTX, paymentSessionID pgtype.Text) (sqlc.Orders, error)
	ListOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersParams) ([]sqlc.Orders, error)
	CountOrders(ctx context.Context, db sqlc.DBTX, status pgtype.Text) (int64, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID uuid.UUID) ([]sqlc.OrderItems, error)
	ListOrderItemsByOrderIDs(ctx context.Context, db sqlc.DBTX, orderIds []uuid.UUID) ([]sqlc.OrderItems, error)
}

type OrderReadStore struct {
	queries OrderViewQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderViewQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrder(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}
	return r.withItems(ctx, row)
}

func (r *OrderReadStore) FindBySessionID(ctx context.Context, sessionID string) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderBySessionID(ctx, r.db, pgconv.StringToPgtype(sessionID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by session id", err)
	}
	return r.withItems(ctx, row)
}

func (r *OrderReadStore) List(ctx context.Context, status *string, limit, offset int) ([]queries.OrderView, int64, error) {
	statusParam := pgconv.StringPtrToPgtype(status)

	rows, err := r.queries.ListOrders(ctx, r.db, sqlc.ListOrdersParams{
		Status:    statusParam,
		RowLimit:  int32(limit),  // #nosec G115 -- clamped by queries.ValidateLimit
		RowOffset: int32(offset), // #nosec G115 -- request offsets are small
	})
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list orders", err)
	}
	total, err := r.queries.CountOrders(ctx, r.db, statusParam)
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to count orders", err)
	}

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	itemsByOrder := map[uuid.UUID][]sqlc.OrderItems{}
	if len(ids) > 0 {
		itemRows, ierr := r.queries.ListOrderItemsByOrderIDs(ctx, r.db, ids)
		if ierr != nil {
			return nil, 0, infra.WrapRepoErr("failed to list order items", ierr)
		}
		for _, it := range itemRows {
			itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], it)
		}
	}

	views := make([]queries.OrderView, 0, len(rows))
	for _, row := range rows {
		v, verr := toOrderView(row, itemsByOrder[row.ID])
		if verr != nil {
			return nil, 0, infra.WrapRepoErr("failed to decode order", verr, infra.KindDBFailure)
		}
		views = append(views, *v)
	}
	return views, total, nil
}

func (r *OrderReadStore) withItems(ctx context.Context, row sqlc.Orders) (*queries.OrderView, error) {
	items, err := r.queries.ListOrderItems(ctx, r.db, row.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	v, err := toOrderView(row, items)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode order", err, infra.KindDBFailure)
	}
	return v, nil
}

func toOrderView(row sqlc.Orders, itemRows []sqlc.OrderItems) (*queries.OrderView, error) {
	subtotal, err := pgconv.DecimalFromNumeric(row.Subtotal)
	if err != nil {
		return nil, err
	}
	discountPercent, err := pgconv.DecimalFromNumeric(row.DiscountPercent)
	if err != nil {
		return nil, err
	}
	discount, err := pgconv.DecimalFromNumeric(row.Discount)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.Total)
	if err != nil {
		return nil, err
	}
	paidAmount, err := pgconv.DecimalPtrFromNumeric(row.PaidAmount)
	if err != nil {
		return nil, err
	}
	rate, err := pgconv.DecimalPtrFromNumeric(row.ExchangeRateUsed)
	if err != nil {
		return nil, err
	}

	items := make([]queries.OrderItemView, 0, len(itemRows))
	for _, it := range itemRows {
		unit, uerr := pgconv.DecimalFromNumeric(it.UnitPrice)
		if uerr != nil {
			return nil, uerr
		}
		line, lerr := pgconv.DecimalFromNumeric(it.LineTotal)
		if lerr != nil {
			return nil, lerr
		}
		items = append(items, queries.OrderItemView{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Brand:       it.Brand,
			Slug:        it.Slug,
			VolumeML:    int(it.VolumeMl),
			UnitPrice:   unit,
			Quantity:    int(it.Quantity),
			LineTotal:   line,
		})
	}

	return &queries.OrderView{
		ID:              row.ID,
		OrderNumber:     row.OrderNumber,
		UserID:          pgconv.UUIDPtrFromPgtype(row.UserID),
		GuestEmail:      pgconv.StringPtrFromPgtype(row.GuestEmail),
		Locale:          row.Locale,
		Status:          row.Status,
		FulfillmentHold: row.FulfillmentHold,
		Shipping: queries.ShippingView{
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
		Subtotal:           subtotal,
		DiscountPercent:    discountPercent,
		Discount:           discount,
		Total:              total,
		SettlementCurrency: row.SettlementCurrency,
		PaymentSessionID:   pgconv.StringPtrFromPgtype(row.PaymentSessionID),
		PaidAmount:         paidAmount,
		PaidCurrency:       pgconv.StringPtrFromPgtype(row.PaidCurrency),
		ExchangeRateUsed:   rate,
		PaidAt:             pgconv.TimePtrFromPgtype(row.PaidAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
