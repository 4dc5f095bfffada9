package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrScheduleBusy is returned when another request keeps the dentist's schedule locked.
var ErrScheduleBusy = errors.New("another booking for this dentist is being processed, try again")

// releaseLockScript deletes the lock only if it still holds our token, so an
// expired lock taken over by another request is never released by us.
var releaseLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

const (
	RedisScheduleLockKeyPrefix = "dentist:schedule:lock:"

	lockAcquireAttempts = 5
	lockRetryDelay      = 100 * time.Millisecond
	lockReleaseTimeout  = 5 * time.Second
)

// ScheduleLocker serializes check-then-write sequences on one dentist's schedule.
type ScheduleLocker interface {
	// Lock blocks briefly until the dentist's schedule is free. The returned
	// function releases the lock and is safe to defer.
	Lock(ctx context.Context, dentistID int) (func(), error)
}

// RedisScheduleLocker implements ScheduleLocker with SET NX and a TTL, so a crashed
// instance never keeps a dentist locked longer than the TTL.
type RedisScheduleLocker struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewRedisScheduleLocker(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) *RedisScheduleLocker {
	return &RedisScheduleLocker{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (s *RedisScheduleLocker) Lock(ctx context.Context, dentistID int) (func(), error) {
	key := fmt.Sprintf("%s%d", RedisScheduleLockKeyPrefix, dentistID)
	token := uuid.NewString()

	for attempt := 1; attempt <= lockAcquireAttempts; attempt++ {
		acquired, err := s.redisClient.SetNX(ctx, key, token, s.ttl).Result()
		if err != nil {
			s.log.Warnf("Failed to acquire schedule lock for dentist %d: %+v", dentistID, err)
			return nil, fmt.Errorf("acquire schedule lock for dentist %d: %w", dentistID, err)
		}
		if acquired {
			s.log.Debugf("Acquired schedule lock for dentist %d (attempt %d)", dentistID, attempt)
			return func() { s.release(key, token, dentistID) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}

	return nil, ErrScheduleBusy
}

func (s *RedisScheduleLocker) release(key, token string, dentistID int) {
	// Detached from the request context: the lock must go even if the client hung up.
	ctx, cancel := context.WithTimeout(context.Background(), lockReleaseTimeout)
	defer cancel()

	if err := releaseLockScript.Run(ctx, s.redisClient, []string{key}, token).Err(); err != nil {
		s.log.Warnf("Failed to release schedule lock for dentist %d (expires in %v): %+v", dentistID, s.ttl, err)
		return
	}
	s.log.Debugf("Released schedule lock for dentist %d", dentistID)
}
