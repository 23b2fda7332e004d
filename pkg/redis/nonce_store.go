package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNonceNotFound is returned when no nonce exists for a wallet
var ErrNonceNotFound = errors.New("nonce not found or expired")

const noncePrefix = "signin_nonce:"

// NonceStore holds single-use sign-in nonces with a TTL
type NonceStore struct {
	ttl time.Duration
}

// NewNonceStore creates a new nonce store
func NewNonceStore(ttl time.Duration) *NonceStore {
	return &NonceStore{ttl: ttl}
}

// Save stores the nonce for a wallet, replacing any previous one
func (s *NonceStore) Save(ctx context.Context, wallet, nonce string) error {
	return Set(ctx, noncePrefix+wallet, nonce, s.ttl)
}

// Consume retrieves and deletes the nonce for a wallet. A nonce can only
// be consumed once; replayed sign-in attempts fail with ErrNonceNotFound.
func (s *NonceStore) Consume(ctx context.Context, wallet string) (string, error) {
	key := noncePrefix + wallet
	nonce, err := Get(ctx, key)
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", ErrNonceNotFound
		}
		return "", err
	}
	if err := Del(ctx, key); err != nil {
		return "", err
	}
	return nonce, nil
}
