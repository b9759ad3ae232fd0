package cart

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/OmarHosamCodes/noocommerce/internal/domain"
)

// Storage persists serialized carts keyed by cart token. Implementations
// must make every Save durable before returning so a reload never loses
// cart state; last write wins.
type Storage interface {
	Load(ctx context.Context, token string) (*domain.Cart, error)
	Save(ctx context.Context, c *domain.Cart) error
	Delete(ctx context.Context, token string) error
}

// NewToken mints an opaque cart token for a new client session.
func NewToken() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// MemoryStorage keeps carts in process memory. Used by tests and local
// development; production wires RedisStorage.
type MemoryStorage struct {
	mu    sync.Mutex
	carts map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{carts: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(ctx context.Context, token string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.carts[token]
	if !ok {
		return domain.NewCart(token), nil
	}
	var c domain.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *MemoryStorage) Save(ctx context.Context, c *domain.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[c.Token] = data
	return nil
}

func (s *MemoryStorage) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
	return nil
}
