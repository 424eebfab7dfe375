package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Guruprasath-Annadurai/Nexture-sub001/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTTL     = 600 * time.Second
	defaultLockTTL = 30 * time.Second
	unlinkBatch    = 100
)

var ErrUnavailable = errors.New("redis unavailable")

// Redis is a namespaced JSON cache for job match pages and analytics. When
// the server is unreachable at startup it degrades to a no-op: reads miss and
// writes succeed silently.
type Redis struct {
	client *redis.Client
	logger *log.Logger
	ttl    time.Duration
	prefix string

	warned atomic.Bool
}

func NewRedis(cfg config.RedisConfig, logger *log.Logger) *Redis {
	if logger == nil {
		logger = log.Default()
	}
	r := &Redis{logger: logger, ttl: cfg.TTL, prefix: cfg.KeyPrefix}
	if r.ttl <= 0 {
		r.ttl = defaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     Addr(cfg),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Printf("[Cache] Redis unavailable at %s, bypassing cache: %v", Addr(cfg), err)
		_ = client.Close()
		return r
	}

	r.client = client
	logger.Printf("[Cache] Redis connected addr=%s prefix=%q ttl=%s", Addr(cfg), r.prefix, r.ttl)
	return r
}

// Addr joins host and port, falling back to localhost:6379.
func Addr(cfg config.RedisConfig) string {
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "localhost"
	}
	port := strings.TrimSpace(cfg.Port)
	if port == "" {
		port = "6379"
	}
	return net.JoinHostPort(host, port)
}

func (r *Redis) Available() bool {
	return r != nil && r.client != nil
}

func (r *Redis) key(k string) string {
	return r.prefix + k
}

// fail logs the first backend error only; later ones are returned quietly.
func (r *Redis) fail(err error) error {
	if r.logger != nil && r.warned.CompareAndSwap(false, true) {
		r.logger.Printf("[Cache] Redis error, continuing without cache: %v", err)
	}
	return err
}

func (r *Redis) Ping(ctx context.Context) error {
	if !r.Available() {
		return ErrUnavailable
	}
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	if !r.Available() {
		return nil
	}
	return r.client.Close()
}

// GetJSON decodes the value at key into out. A miss is (false, nil).
func (r *Redis) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	b, err := r.client.Get(ctx, r.key(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, r.fail(err)
	case len(b) == 0:
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores value for ttl, or for the configured TTL when ttl <= 0.
func (r *Redis) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !r.Available() {
		return nil
	}
	if ttl <= 0 {
		ttl = r.ttl
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(key), b, ttl).Err(); err != nil {
		return r.fail(err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	if !r.Available() {
		return nil
	}
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return r.fail(err)
	}
	return nil
}

// DeleteByPattern unlinks every key under the prefix matching pattern.
func (r *Redis) DeleteByPattern(ctx context.Context, pattern string) error {
	if !r.Available() {
		return nil
	}
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return nil
	}

	n, err := unlinkMatching(ctx, r.client, r.key(pattern))
	if err != nil {
		return r.fail(err)
	}
	if n > 0 {
		r.logger.Printf("[Cache] invalidated pattern=%s keys=%d", pattern, n)
	}
	return nil
}

// SetIfNotExists is a short-lived lock; ttl defaults to 30s.
func (r *Redis) SetIfNotExists(ctx context.Context, key string, value string, ttl time.Duration) (bool, error) {
	if !r.Available() {
		return false, nil
	}
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	ok, err := r.client.SetNX(ctx, r.key(key), value, ttl).Result()
	if err != nil {
		return false, r.fail(err)
	}
	return ok, nil
}

func unlinkMatching(ctx context.Context, rdb *redis.Client, pattern string) (int, error) {
	var (
		batch = make([]string, 0, unlinkBatch)
		total int
	)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := rdb.Unlink(ctx, batch...).Err(); err != nil {
			return err
		}
		total += len(batch)
		batch = batch[:0]
		return nil
	}

	iter := rdb.Scan(ctx, 0, pattern, unlinkBatch).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == unlinkBatch {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return total, err
	}
	return total, flush()
}
