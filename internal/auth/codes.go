package auth

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// Janela de validade do código enviado por WhatsApp/SMS.
	CodeTTL = 5 * time.Minute

	codeKeyPrefix = "verification_code:"
)

// CodeStore guarda códigos de verificação pendentes, um por telefone.
type CodeStore interface {
	Save(ctx context.Context, phone string, code string, ttl time.Duration) error

	// Get devolve "" quando não há código pendente para o telefone.
	Get(ctx context.Context, phone string) (string, error)

	Delete(ctx context.Context, phone string) error
}

// RedisCodeStore é a implementação padrão; o TTL fica por conta do redis.
type RedisCodeStore struct {
	rdb *redis.Client
}

func NewRedisCodeStore(rdb *redis.Client) *RedisCodeStore {
	return &RedisCodeStore{rdb: rdb}
}

func (s *RedisCodeStore) Save(
	ctx context.Context,
	phone string,
	code string,
	ttl time.Duration,
) error {
	return s.rdb.Set(ctx, codeKeyPrefix+phone, code, ttl).Err()
}

func (s *RedisCodeStore) Get(ctx context.Context, phone string) (string, error) {
	code, err := s.rdb.Get(ctx, codeKeyPrefix+phone).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (s *RedisCodeStore) Delete(ctx context.Context, phone string) error {
	return s.rdb.Del(ctx, codeKeyPrefix+phone).Err()
}

var _ CodeStore = (*RedisCodeStore)(nil)
