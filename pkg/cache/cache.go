package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Service is a small TTL cache for read-heavy list endpoints. Mutating
// handlers delete their keys so subsequent reads are fresh.
type Service struct {
	cache *gocache.Cache
}

func NewService(defaultExpiration, cleanupInterval time.Duration) *Service {
	return &Service{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *Service) Get(key string) (interface{}, bool) {
	return s.cache.Get(key)
}

func (s *Service) Set(key string, value interface{}, duration time.Duration) {
	s.cache.Set(key, value, duration)
}

func (s *Service) Delete(key string) {
	s.cache.Delete(key)
}
