// Package draftstore keeps transient per-session checkout state in
// Redis: the shipping and payment drafts and the pending-order marker.
// Everything is TTL-bounded; an expired draft simply re-runs the step.
package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"maison-storefront/internal/domain/checkout"
	"maison-storefront/internal/infra"
	"maison-storefront/internal/pkg/config"
)

const (
	shippingKeyPrefix = "checkout:shipping:"
	paymentKeyPrefix  = "checkout:payment:"
	pendingKeyPrefix  = "checkout:pending_order:"
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, cfg config.CheckoutConfig, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    cfg.DraftTTL,
		logger: logger,
	}
}

func (s *RedisStore) SaveShipping(ctx context.Context, sessionKey string, draft checkout.ShippingDraft) error {
	return s.setJSON(ctx, shippingKeyPrefix+sessionKey, draft)
}

func (s *RedisStore) GetShipping(ctx context.Context, sessionKey string) (*checkout.ShippingDraft, error) {
	var draft checkout.ShippingDraft
	found, err := s.getJSON(ctx, shippingKeyPrefix+sessionKey, &draft)
	if err != nil || !found {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisStore) SavePayment(ctx context.Context, sessionKey string, draft checkout.PaymentDraft) error {
	return s.setJSON(ctx, paymentKeyPrefix+sessionKey, draft)
}

func (s *RedisStore) GetPayment(ctx context.Context, sessionKey string) (*checkout.PaymentDraft, error) {
	var draft checkout.PaymentDraft
	found, err := s.getJSON(ctx, paymentKeyPrefix+sessionKey, &draft)
	if err != nil || !found {
		return nil, err
	}
	return &draft, nil
}

func (s *RedisStore) SavePendingOrder(ctx context.Context, sessionKey, orderID string) error {
	if err := s.client.Set(ctx, pendingKeyPrefix+sessionKey, orderID, s.ttl).Err(); err != nil {
		return infra.WrapGatewayErr(s.logger, infra.KindStoreFailure, "save pending order", err)
	}
	return nil
}

func (s *RedisStore) GetPendingOrder(ctx context.Context, sessionKey string) (string, error) {
	orderID, err := s.client.Get(ctx, pendingKeyPrefix+sessionKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", infra.WrapGatewayErr(s.logger, infra.KindStoreFailure, "get pending order", err)
	}
	return orderID, nil
}

func (s *RedisStore) ClearDrafts(ctx context.Context, sessionKey string) error {
	keys := []string{
		shippingKeyPrefix + sessionKey,
		paymentKeyPrefix + sessionKey,
		pendingKeyPrefix + sessionKey,
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return infra.WrapGatewayErr(s.logger, infra.KindStoreFailure, "clear checkout drafts", err)
	}
	return nil
}

func (s *RedisStore) setJSON(ctx context.Context, key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return infra.WrapGatewayErr(s.logger, infra.KindStoreFailure, "marshal draft", err)
	}
	if err := s.client.Set(ctx, key, encoded, s.ttl).Err(); err != nil {
		return infra.WrapGatewayErr(s.logger, infra.KindStoreFailure, "save draft", err)
	}
	return nil
}

func (s *RedisStore) getJSON(ctx context.Context, key string, out any) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, infra.WrapGatewayErr(s.logger, infra.KindStoreFailure, "get draft", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, infra.WrapGatewayErr(s.logger, infra.KindStoreFailure, "unmarshal draft", err)
	}
	return true, nil
}
