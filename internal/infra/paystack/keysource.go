// Package paystack caches the Paystack public key served by the
// commerce backend. The key changes only on backend redeploys, so a
// successful fetch is kept for the process lifetime and concurrent
// cold-start fetches are collapsed into one backend call.
package paystack

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

type ConfigFetcher interface {
	PaystackConfig(ctx context.Context) (string, error)
}

type KeySource struct {
	fetcher ConfigFetcher
	group   singleflight.Group

	mu  sync.RWMutex
	key string
}

func NewKeySource(fetcher ConfigFetcher) *KeySource {
	return &KeySource{fetcher: fetcher}
}

func (s *KeySource) PublicKey(ctx context.Context) (string, error) {
	s.mu.RLock()
	cached := s.key
	s.mu.RUnlock()
	if cached != "" {
		return cached, nil
	}

	result, err, _ := s.group.Do("paystack_public_key", func() (any, error) {
		key, err := s.fetcher.PaystackConfig(ctx)
		if err != nil {
			return "", err
		}
		s.mu.Lock()
		s.key = key
		s.mu.Unlock()
		return key, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}
