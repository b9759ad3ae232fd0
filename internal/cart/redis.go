package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// RedisStorage is the durable cart slot: one JSON value per cart token,
// refreshed to the configured TTL on every write.
type RedisStorage struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStorage(client *redis.Client, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

func cartKey(token string) string {
	return fmt.Sprintf("cart:%s", token)
}

func (s *RedisStorage) Load(ctx context.Context, token string) (*domain.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(token)).Bytes()
	if err == redis.Nil {
		return domain.NewCart(token), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	var c domain.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	c.Token = token
	return &c, nil
}

func (s *RedisStorage) Save(ctx context.Context, c *domain.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(c.Token), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *RedisStorage) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, cartKey(token)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
