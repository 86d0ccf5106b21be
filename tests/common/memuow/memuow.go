//go:build unit

// Package memuow is an in-memory shared.UnitOfWork. Each Within call works on
// a copy of the state that is committed only when fn returns nil.
package memuow

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/domain/product"
	"storefront/internal/domain/promotion"
	"storefront/internal/domain/user"
	"storefront/internal/infra"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	products   map[int64]product.Product
	orders     map[uuid.UUID]order.Order
	promotions []promotion.Promotion
	events     map[string]string
	users      map[string]user.User
}

func (s state) clone() state {
	return state{
		products:   maps.Clone(s.products),
		orders:     maps.Clone(s.orders),
		promotions: slices.Clone(s.promotions),
		events:     maps.Clone(s.events),
		users:      maps.Clone(s.users),
	}
}

type Store struct {
	mu    sync.Mutex
	state state

	// Fail makes the named repository call return the error, e.g. "orders.save".
	Fail    map[string]error
	Commits int
	Calls   int
}

func New() *Store {
	return &Store{
		state: state{
			products: map[int64]product.Product{},
			orders:   map[uuid.UUID]order.Order{},
			events:   map[string]string{},
			users:    map[string]user.User{},
		},
		Fail: map[string]error{},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Calls++
	t := &tx{store: s, state: s.state.clone()}
	if err := fn(ctx, t); err != nil {
		return err
	}
	s.state = t.state
	s.Commits++
	return nil
}

// Seeding and inspection helpers

func (s *Store) AddProduct(p product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.products[p.ID] = p
}

func (s *Store) AddPromotion(p promotion.Promotion) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.promotions = append(s.state.promotions, p)
}

func (s *Store) AddOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.orders[o.ID()] = *o
}

func (s *Store) AddUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.users[u.Email().Value()] = *u
}

func (s *Store) Product(id int64) product.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.products[id]
}

func (s *Store) Order(id uuid.UUID) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.state.orders[id]
	if !ok {
		return nil, false
	}
	return &o, true
}

func (s *Store) Orders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*order.Order, 0, len(s.state.orders))
	for _, o := range s.state.orders {
		out = append(out, &o)
	}
	return out
}

func (s *Store) User(email string) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.state.users[email]
	if !ok {
		return nil, false
	}
	return &u, true
}

func (s *Store) EventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.events)
}

type tx struct {
	store *Store
	state state
}

func (t *tx) fail(op string) error {
	return t.store.Fail[op]
}

func (t *tx) Products() shared.ProductRepository           { return productRepo{t} }
func (t *tx) Orders() shared.OrderRepository               { return orderRepo{t} }
func (t *tx) Promotions() shared.PromotionRepository       { return promotionRepo{t} }
func (t *tx) PaymentEvents() shared.PaymentEventRepository { return eventRepo{t} }
func (t *tx) Users() shared.UserRepository                 { return userRepo{t} }

type productRepo struct{ t *tx }

func (r productRepo) lock(op string, ids []int64) ([]product.Product, error) {
	if err := r.t.fail(op); err != nil {
		return nil, err
	}
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	out := make([]product.Product, 0, len(sorted))
	for _, id := range sorted {
		if p, ok := r.t.state.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r productRepo) LockForCheckout(_ context.Context, ids []int64) ([]product.Product, error) {
	return r.lock("products.lock_for_checkout", ids)
}

func (r productRepo) LockForUpdate(_ context.Context, ids []int64) ([]product.Product, error) {
	return r.lock("products.lock_for_update", ids)
}

func (r productRepo) SetStock(_ context.Context, id int64, stock int) error {
	if err := r.t.fail("products.set_stock"); err != nil {
		return err
	}
	p, ok := r.t.state.products[id]
	if !ok {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	if stock < 0 {
		return infra.WrapRepoErr("negative stock", product.ErrNegativeStock, infra.KindConstraintViolated)
	}
	p.Stock = stock
	r.t.state.products[id] = p
	return nil
}

type orderRepo struct{ t *tx }

func (r orderRepo) Create(_ context.Context, o *order.Order) error {
	if err := r.t.fail("orders.create"); err != nil {
		return err
	}
	if _, ok := r.t.state.orders[o.ID()]; ok {
		return infra.WrapRepoErr("order exists", nil, infra.KindDuplicateKey)
	}
	r.t.state.orders[o.ID()] = *o
	return nil
}

func (r orderRepo) FindForUpdate(_ context.Context, id uuid.UUID) (*order.Order, error) {
	if err := r.t.fail("orders.find_for_update"); err != nil {
		return nil, err
	}
	o, ok := r.t.state.orders[id]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", errors.New("no rows"), infra.KindNotFound)
	}
	return &o, nil
}

func (r orderRepo) Save(_ context.Context, o *order.Order) error {
	if err := r.t.fail("orders.save"); err != nil {
		return err
	}
	if _, ok := r.t.state.orders[o.ID()]; !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	r.t.state.orders[o.ID()] = *o
	return nil
}

type promotionRepo struct{ t *tx }

func (r promotionRepo) ListActive(_ context.Context, at time.Time) ([]promotion.Promotion, error) {
	if err := r.t.fail("promotions.list_active"); err != nil {
		return nil, err
	}
	var out []promotion.Promotion
	for _, p := range r.t.state.promotions {
		if p.ActiveAt(at) {
			out = append(out, p)
		}
	}
	return out, nil
}

type eventRepo struct{ t *tx }

func (r eventRepo) Record(_ context.Context, eventID, eventType string, _ *uuid.UUID, _ time.Time) (bool, error) {
	if err := r.t.fail("payment_events.record"); err != nil {
		return false, err
	}
	if _, ok := r.t.state.events[eventID]; ok {
		return false, nil
	}
	r.t.state.events[eventID] = eventType
	return true, nil
}

type userRepo struct{ t *tx }

func (r userRepo) FindByEmailForUpdate(_ context.Context, email user.Email) (*user.User, error) {
	if err := r.t.fail("users.find_by_email"); err != nil {
		return nil, err
	}
	u, ok := r.t.state.users[email.Value()]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", errors.New("no rows"), infra.KindNotFound)
	}
	return &u, nil
}

func (r userRepo) Create(_ context.Context, u *user.User) error {
	if err := r.t.fail("users.create"); err != nil {
		return err
	}
	if _, ok := r.t.state.users[u.Email().Value()]; ok {
		return infra.WrapRepoErr("user exists", errors.New("unique violation"), infra.KindDuplicateKey)
	}
	r.t.state.users[u.Email().Value()] = *u
	return nil
}

func (r userRepo) SaveLoginState(_ context.Context, u *user.User) error {
	if err := r.t.fail("users.save_login_state"); err != nil {
		return err
	}
	r.t.state.users[u.Email().Value()] = *u
	return nil
}
