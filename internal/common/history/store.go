// Package history keeps a short per-user list of fulfilled pet matches in Redis.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"petfinder-bot/internal/common/errors"
	"petfinder-bot/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix  = "petfinder:history"
	DefaultMaxEntries = 20
	DefaultTTL        = 7 * 24 * time.Hour
)

type Config struct {
	KeyPrefix  string
	MaxEntries int
	TTL        time.Duration
}

type Store struct {
	rdb    redis.Cmdable
	config *Config
}

func NewStore(rdb redis.Cmdable, config *Config) *Store {
	if config == nil {
		config = &Config{}
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = DefaultKeyPrefix
	}
	if config.MaxEntries <= 0 {
		config.MaxEntries = DefaultMaxEntries
	}
	if config.TTL <= 0 {
		config.TTL = DefaultTTL
	}
	return &Store{rdb: rdb, config: config}
}

func (s *Store) key(userID string) string {
	return fmt.Sprintf("%s:%s", s.config.KeyPrefix, userID)
}

// Record prepends a match to the user's list, trims it to MaxEntries and
// refreshes its TTL.
func (s *Store) Record(ctx context.Context, record models.MatchRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return errors.NewHistoryWriteFailedError(fmt.Errorf("marshal record: %w", err))
	}

	key := s.key(record.UserID)
	_, err = s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, data)
		pipe.LTrim(ctx, key, 0, int64(s.config.MaxEntries-1))
		pipe.Expire(ctx, key, s.config.TTL)
		return nil
	})
	if err != nil {
		return errors.NewHistoryWriteFailedError(err)
	}
	return nil
}

// Recent returns up to limit matches for userID, newest first. Entries
// that fail to decode are skipped.
func (s *Store) Recent(ctx context.Context, userID string, limit int) ([]models.MatchRecord, error) {
	if limit <= 0 || limit > s.config.MaxEntries {
		limit = s.config.MaxEntries
	}

	raw, err := s.rdb.LRange(ctx, s.key(userID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("read history for %s: %w", userID, err)
	}

	records := make([]models.MatchRecord, 0, len(raw))
	for _, item := range raw {
		var rec models.MatchRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Clear removes the user's history.
func (s *Store) Clear(ctx context.Context, userID string) error {
	return s.rdb.Del(ctx, s.key(userID)).Err()
}
