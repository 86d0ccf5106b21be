package queries

import (
	"context"
	"strings"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order_mock.go -package=queriesmock

var (
	ErrOrderNotFound  = errs.New("order not found")
	ErrInvalidFilter  = errs.New("invalid order filter")
	ErrSessionMissing = errs.New("session id required")
)

type OrderFilter struct {
	Status string
	Page   Page
}

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	GetBySessionID(ctx context.Context, sessionID string) (*OrderView, error)
	List(ctx context.Context, filter OrderFilter) (*OrderListView, error)
	GetAdminDetail(ctx context.Context, id uuid.UUID) (*AdminOrderView, error)
	StatusTable() *StatusTableView
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindBySessionID(ctx context.Context, sessionID string) (*OrderView, error)
	List(ctx context.Context, status *string, limit, offset int) ([]OrderView, int64, error)
}

type orderQueriesImpl struct {
	readStore OrderReadStore
}

func NewOrderQueries(readStore OrderReadStore) OrderQueries {
	return &orderQueriesImpl{readStore: readStore}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, mapOrderErr(err)
	}
	return v, nil
}

func (q *orderQueriesImpl) GetBySessionID(ctx context.Context, sessionID string) (*OrderView, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, errs.Validation(ErrSessionMissing)
	}
	v, err := q.readStore.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, mapOrderErr(err)
	}
	return v, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, filter OrderFilter) (*OrderListView, error) {
	var status *string
	if strings.TrimSpace(filter.Status) != "" {
		st, err := order.ParseStatus(filter.Status)
		if err != nil {
			return nil, errs.Validation(errs.Mark(err, ErrInvalidFilter))
		}
		s := st.String()
		status = &s
	}

	limit := ValidateLimit(filter.Page.Limit)
	offset := ValidateOffset(filter.Page.Offset)

	items, total, err := q.readStore.List(ctx, status, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &OrderListView{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (q *orderQueriesImpl) GetAdminDetail(ctx context.Context, id uuid.UUID) (*AdminOrderView, error) {
	v, err := q.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	allowed := []string{}
	if st, perr := order.ParseStatus(v.Status); perr == nil {
		for _, t := range order.AllowedTargetsFor(st, order.FulfillmentHold(v.FulfillmentHold)) {
			allowed = append(allowed, t.String())
		}
	}
	return &AdminOrderView{OrderView: *v, AllowedTransitions: allowed}, nil
}

func (q *orderQueriesImpl) StatusTable() *StatusTableView {
	statuses := order.AllStatuses()
	table := order.TransitionTable()

	view := &StatusTableView{
		Statuses:    make([]string, 0, len(statuses)),
		Transitions: make(map[string][]string, len(table)),
	}
	for _, s := range statuses {
		view.Statuses = append(view.Statuses, s.String())
		targets := make([]string, 0, len(table[s]))
		for _, t := range table[s] {
			targets = append(targets, t.String())
		}
		view.Transitions[s.String()] = targets
	}
	return view
}

func mapOrderErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, ErrOrderNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
