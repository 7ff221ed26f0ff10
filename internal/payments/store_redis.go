package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"paylens/pkg/platform/sentinel"
)

const (
	// Redis key for one payment document, suffixed with the payment ID.
	paymentKeyPrefix = "payments:id:"
	// Redis list of payment IDs in insertion order.
	paymentOrderKey = "payments:order"
)

// RedisStore keeps payments in Redis: one JSON document per payment plus a
// list of IDs that pins FindAll to insertion order. The client lifecycle is
// managed externally.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a Redis-backed payment store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, payment Payment) error {
	doc, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("marshal payment: %w", err)
	}

	// SetNX doubles as the duplicate check; only a fresh ID joins the order list.
	ok, err := s.client.SetNX(ctx, paymentKeyPrefix+payment.ID.String(), doc, 0).Result()
	if err != nil {
		return fmt.Errorf("store payment: %w", err)
	}
	if !ok {
		return fmt.Errorf("payment %s: %w", payment.ID, sentinel.ErrConflict)
	}

	if err := s.client.RPush(ctx, paymentOrderKey, payment.ID.String()).Err(); err != nil {
		return fmt.Errorf("append payment order: %w", err)
	}
	return nil
}

func (s *RedisStore) FindAll(ctx context.Context) ([]Payment, error) {
	ids, err := s.client.LRange(ctx, paymentOrderKey, 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("read payment order: %w", err)
	}
	if len(ids) == 0 {
		return []Payment{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = paymentKeyPrefix + id
	}

	docs, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("read payments: %w", err)
	}

	payments := make([]Payment, 0, len(docs))
	for i, doc := range docs {
		raw, ok := doc.(string)
		if !ok {
			return nil, fmt.Errorf("payment %s: %w", ids[i], sentinel.ErrNotFound)
		}
		var payment Payment
		if err := json.Unmarshal([]byte(raw), &payment); err != nil {
			return nil, fmt.Errorf("unmarshal payment %s: %w", ids[i], err)
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
