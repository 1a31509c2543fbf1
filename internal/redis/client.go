package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/models"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when the requested key is not cached.
var ErrCacheMiss = errors.New("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Bill snapshot caching. Bills are immutable once written, so a cached
// copy can never go stale.
func (c *Client) SetBill(orderID uint, txn *models.Transaction, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(txn)
	if err != nil {
		return fmt.Errorf("failed to marshal bill: %w", err)
	}

	key := fmt.Sprintf("bill:%d", orderID)
	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) GetBill(orderID uint) (*models.Transaction, error) {
	ctx := context.Background()
	key := fmt.Sprintf("bill:%d", orderID)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get bill from cache: %w", err)
	}

	var txn models.Transaction
	if err := json.Unmarshal([]byte(val), &txn); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bill: %w", err)
	}

	return &txn, nil
}

// Menu list caching, invalidated whenever the branch menu changes.
func (c *Client) SetMenu(branchID uint, items []models.Item, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal menu: %w", err)
	}

	key := fmt.Sprintf("menu:%d", branchID)
	return c.rdb.Set(ctx, key, jsonData, ttl).Err()
}

func (c *Client) GetMenu(branchID uint) ([]models.Item, error) {
	ctx := context.Background()
	key := fmt.Sprintf("menu:%d", branchID)
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get menu from cache: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal([]byte(val), &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal menu: %w", err)
	}

	return items, nil
}

func (c *Client) InvalidateMenu(branchID uint) error {
	ctx := context.Background()
	key := fmt.Sprintf("menu:%d", branchID)
	return c.rdb.Del(ctx, key).Err()
}

// Close Redis connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
