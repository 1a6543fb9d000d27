// Package flash holds per-session user-facing messages between a redirect and
// the next page render. The store is in-memory by default; configuring redis
// switches to a shared store so messages survive across instances.
package flash

import (
	"context"
	"sync"
	"time"

	"skill-marks-system/config"

	"github.com/redis/go-redis/v9"
)

// Store queues messages keyed by session id. Pop drains the queue.
type Store interface {
	Push(sid string, messages ...string)
	Pop(sid string) []string
}

var (
	instance Store
	mu       sync.Mutex
)

// Init selects the store implementation from config.
func Init() {
	mu.Lock()
	defer mu.Unlock()
	cfg := config.Get()
	if cfg.Redis.Host != "" {
		instance = newRedisStore(cfg.Redis)
		return
	}
	instance = newMemoryStore()
}

// Get returns the active store, defaulting to in-memory.
func Get() Store {
	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = newMemoryStore()
	}
	return instance
}

// Set replaces the active store. Used by tests.
func Set(s Store) {
	mu.Lock()
	defer mu.Unlock()
	instance = s
}

type memoryStore struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{messages: make(map[string][]string)}
}

func (s *memoryStore) Push(sid string, messages ...string) {
	if sid == "" || len(messages) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[sid] = append(s.messages[sid], messages...)
}

func (s *memoryStore) Pop(sid string) []string {
	if sid == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.messages[sid]
	delete(s.messages, sid)
	return out
}

// redis keys expire with the session so abandoned queues do not accumulate.
const redisTTL = 24 * time.Hour

type redisStore struct {
	client *redis.Client
}

func newRedisStore(cfg config.Redis) *redisStore {
	return &redisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Host + ":" + cfg.Port,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (s *redisStore) key(sid string) string {
	return "flash:" + sid
}

func (s *redisStore) Push(sid string, messages ...string) {
	if sid == "" || len(messages) == 0 {
		return
	}
	ctx := context.Background()
	args := make([]interface{}, len(messages))
	for i, m := range messages {
		args[i] = m
	}
	pipe := s.client.Pipeline()
	pipe.RPush(ctx, s.key(sid), args...)
	pipe.Expire(ctx, s.key(sid), redisTTL)
	_, _ = pipe.Exec(ctx)
}

func (s *redisStore) Pop(sid string) []string {
	if sid == "" {
		return nil
	}
	ctx := context.Background()
	pipe := s.client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, s.key(sid), 0, -1)
	pipe.Del(ctx, s.key(sid))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil
	}
	return rangeCmd.Val()
}
