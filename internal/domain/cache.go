package domain

import "context"

// Кэш ответов и метаданных (Redis)
type Cache interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttlSeconds int) error
	Del(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
	Close()
}

// Ключи кэша
func CacheKeyMediaMeta(id MediaID) string { return "mediameta:" + id.String() }

// Версия списков: инкрементируется при любой мутации, входит в ключ
// кэша списка — старые ключи просто протухают по TTL.
const CacheKeyListVersion = "list:ver"
