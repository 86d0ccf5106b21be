package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"storefront/internal/domain/cart"
	"storefront/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

var ErrCorruptCart = errs.New("stored cart is not valid JSON")

// RedisCartStore keeps each cart as a JSON line list under <prefix>:cart:<id>.
// Every read and write extends the TTL.
type RedisCartStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, prefix string, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (s *RedisCartStore) key(cartID string) string {
	return s.prefix + ":cart:" + cartID
}

func (s *RedisCartStore) Load(ctx context.Context, cartID string) ([]cart.Item, error) {
	raw, err := s.client.GetEx(ctx, s.key(cartID), s.ttl).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []cart.Item{}, nil
		}
		return nil, errs.Wrap(err, "failed to load cart")
	}

	var items []cart.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode cart"), ErrCorruptCart)
	}
	if items == nil {
		items = []cart.Item{}
	}
	return items, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cartID string, items []cart.Item) error {
	if items == nil {
		items = []cart.Item{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return errs.Wrap(err, "failed to encode cart")
	}
	if err := s.client.Set(ctx, s.key(cartID), raw, s.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to save cart")
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, s.key(cartID)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete cart")
	}
	return nil
}
