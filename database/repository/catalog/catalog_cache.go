package catalogRepo

import (
	"context"
	"encoding/json"
	"time"

	"glospa/models"

	"github.com/go-redis/redis/v8"
)

const catalogCacheKey = "catalog:services"

// CachedCatalogRepo wraps a CatalogRepository with a short-lived Redis cache.
// The catalog is read on every inbound SMS, so the menu is cached to keep the
// classifier off the database.
type CachedCatalogRepo struct {
	inner CatalogRepository
	cache *redis.Client
	ttl   time.Duration
}

// NewCachedCatalogRepo wraps the given repository with Redis caching.
func NewCachedCatalogRepo(inner CatalogRepository, cache *redis.Client, ttl time.Duration) *CachedCatalogRepo {
	return &CachedCatalogRepo{inner: inner, cache: cache, ttl: ttl}
}

func (r *CachedCatalogRepo) GetAllServices(ctx context.Context) ([]models.Service, error) {
	if data, err := r.cache.Get(ctx, catalogCacheKey).Result(); err == nil {
		var services []models.Service
		if err := json.Unmarshal([]byte(data), &services); err == nil {
			return services, nil
		}
	}

	services, err := r.inner.GetAllServices(ctx)
	if err != nil {
		return nil, err
	}
	if b, err := json.Marshal(services); err == nil {
		r.cache.Set(ctx, catalogCacheKey, b, r.ttl)
	}
	return services, nil
}

func (r *CachedCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	return r.inner.GetServiceByID(ctx, id)
}

func (r *CachedCatalogRepo) FindServiceByName(ctx context.Context, name string) (*models.Service, error) {
	return r.inner.FindServiceByName(ctx, name)
}
