package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vibeguard/vibeguard/internal/logger"
)

// ErrCodeNotFound is returned when no code is stored for an email,
// or it has expired.
var ErrCodeNotFound = errors.New("verification code not found or expired")

// VerificationCodeRepository stores short-lived verification codes in
// Redis, keyed by purpose and email. Codes expire on their own, survive
// restarts, and are shared across server instances.
type VerificationCodeRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for stored codes
}

// NewVerificationCodeRepository creates a repository with the given TTL.
func NewVerificationCodeRepository(client *redis.Client, expiration time.Duration) *VerificationCodeRepository {
	return &VerificationCodeRepository{
		client: client,
		exp:    expiration,
	}
}

// Set stores a code for the email, replacing any previous one and
// restarting the TTL.
func (r *VerificationCodeRepository) Set(ctx context.Context, purpose, email, code string) error {
	key := fmt.Sprintf("verification_code:%s:%s", purpose, email)
	err := r.client.Set(ctx, key, code, r.exp).Err()

	logger.Log.Infow("verification code stored",
		"key", key,
		"error", err,
	)

	return err
}

// Get returns the stored code for the email.
func (r *VerificationCodeRepository) Get(ctx context.Context, purpose, email string) (string, error) {
	key := fmt.Sprintf("verification_code:%s:%s", purpose, email)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("verification code lookup failed",
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return "", ErrCodeNotFound
		}
		return "", err
	}

	return val, nil
}

// Delete removes the code once consumed.
func (r *VerificationCodeRepository) Delete(ctx context.Context, purpose, email string) error {
	key := fmt.Sprintf("verification_code:%s:%s", purpose, email)
	return r.client.Del(ctx, key).Err()
}
