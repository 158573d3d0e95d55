package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jiraclone/taskboard-backend/internal/accounts/domain"
)

const (
	directoryKey = "board:users" // cached account directory payload
	directoryTTL = 5 * time.Minute
)

// DirectoryCache keeps the account directory warm in Redis so the assignment
// dialog doesn't hit Firestore on every open. Misses and cache errors fall
// through to the backing store.
type DirectoryCache struct {
	client *redis.Client
}

func NewDirectoryCache(client *redis.Client) *DirectoryCache {
	return &DirectoryCache{client: client}
}

// Get returns the cached directory, or ok=false on a miss.
func (c *DirectoryCache) Get(ctx context.Context) ([]domain.Account, bool, error) {
	data, err := c.client.Get(ctx, directoryKey).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("directory cache get: %w", err)
	}

	var accounts []domain.Account
	if err := json.Unmarshal([]byte(data), &accounts); err != nil {
		return nil, false, fmt.Errorf("directory cache decode: %w", err)
	}
	return accounts, true, nil
}

// Set replaces the cached directory.
func (c *DirectoryCache) Set(ctx context.Context, accounts []domain.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("directory cache encode: %w", err)
	}

	if err := c.client.Set(ctx, directoryKey, data, directoryTTL).Err(); err != nil {
		return fmt.Errorf("directory cache set: %w", err)
	}
	return nil
}
