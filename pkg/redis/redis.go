package redis

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

var (
	redisClient *redis.Client
	once        = &sync.Once{}
)

func Init(url string) {
	if url == "" {
		panic("redis url is empty")
	}
	once.Do(func() {
		opt, err := redis.ParseURL(url)
		if err != nil {
			panic(err)
		}
		rdb := redis.NewClient(opt)
		redisClient = rdb
	})
}

func GetClient() *redis.Client {
	return redisClient
}

// Cache is a thin get/set wrapper used for balance caching. Errors are
// logged and swallowed, a broken cache must not break the read path.
type Cache struct {
	rdb *redis.Client
}

func NewCache() *Cache {
	return &Cache{rdb: redisClient}
}

func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c.rdb == nil {
		return "", false
	}
	v, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		log.Warnln("redis get failed:", err)
		return "", false
	}
	return v, true
}

func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Warnln("redis set failed:", err)
	}
}
