package dnsmap

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const mapKeyPrefix = "subsite:map:" // Mapping entry: subsite:map:{fqdn} -> target

// RedisMapper records subdomain targets in an external key-value table.
// An edge resolver reads the same keys to route traffic.
type RedisMapper struct {
	client *redis.Client
}

func NewRedisMapper(client *redis.Client) *RedisMapper {
	return &RedisMapper{client: client}
}

// Upsert sets the mapping entry for fqdn, replacing any previous target.
// Entries do not expire; they are overwritten or deleted explicitly.
func (m *RedisMapper) Upsert(ctx context.Context, fqdn, target string) error {
	if err := m.client.Set(ctx, m.key(fqdn), target, 0).Err(); err != nil {
		return fmt.Errorf("set mapping %s: %w", fqdn, err)
	}
	return nil
}

// Delete removes the mapping entry for fqdn.
func (m *RedisMapper) Delete(ctx context.Context, fqdn, _ string) error {
	if err := m.client.Del(ctx, m.key(fqdn)).Err(); err != nil {
		return fmt.Errorf("delete mapping %s: %w", fqdn, err)
	}
	return nil
}

// Lookup returns the current target for fqdn, or "" when unmapped.
func (m *RedisMapper) Lookup(ctx context.Context, fqdn string) (string, error) {
	target, err := m.client.Get(ctx, m.key(fqdn)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get mapping %s: %w", fqdn, err)
	}
	return target, nil
}

func (m *RedisMapper) key(fqdn string) string {
	return mapKeyPrefix + fqdn
}
