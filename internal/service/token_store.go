package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenStore tracks issued access tokens so they can be revoked before they expire.
type TokenStore interface {
	Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error
}

type redisTokenStore struct {
	redisClient *redis.Client
}

func NewRedisTokenStore(redisClient *redis.Client) TokenStore {
	return &redisTokenStore{redisClient: redisClient}
}

func accessTokenKey(userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("access_token:%s:%s", userID.String(), tokenID)
}

func (s *redisTokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	return s.redisClient.Set(ctx, accessTokenKey(userID, tokenID), "valid", ttl).Err()
}

func (s *redisTokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, accessTokenKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisTokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	return s.redisClient.Del(ctx, accessTokenKey(userID, tokenID)).Err()
}
