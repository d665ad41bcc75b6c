package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"karriarsparet-gateway/internal/config"
	"karriarsparet-gateway/internal/logging"
	"karriarsparet-gateway/pkg/models"
	"karriarsparet-gateway/pkg/utils"
)

const (
	regionsCacheKey   = "cache:regions"
	providersCacheKey = "cache:providers"
)

// CachedCatalog serves the slow-moving reference lists (regions, providers)
// cache-aside from Redis. The upstream is only hit on a miss or on an explicit
// refresh; when Redis is down the lookup degrades to a direct upstream call.
type CachedCatalog struct {
	client *Client
	redis  *utils.RedisClient
	cfg    *config.Config
	logger logging.Logger
}

// NewCachedCatalog wraps the catalog client with Redis-backed list caching
func NewCachedCatalog(client *Client, redis *utils.RedisClient, cfg *config.Config) *CachedCatalog {
	return &CachedCatalog{
		client: client,
		redis:  redis,
		cfg:    cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Regions returns the region list, sorted by name
func (c *CachedCatalog) Regions(ctx context.Context) ([]models.Region, error) {
	var cached []models.Region
	if err := c.redis.GetJSON(ctx, regionsCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, utils.ErrCacheMiss) {
		c.logger.Warn("Region cache read failed, falling through to upstream", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return c.refreshRegions(ctx)
}

// Providers returns every provider from the upstream, walking its pages until
// the last one
func (c *CachedCatalog) Providers(ctx context.Context) ([]models.EducationProvider, error) {
	var cached []models.EducationProvider
	if err := c.redis.GetJSON(ctx, providersCacheKey, &cached); err == nil {
		return cached, nil
	} else if !errors.Is(err, utils.ErrCacheMiss) {
		c.logger.Warn("Provider cache read failed, falling through to upstream", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return c.refreshProviders(ctx)
}

// Refresh repopulates both cached lists. Used by the background warmer.
func (c *CachedCatalog) Refresh(ctx context.Context) error {
	if _, err := c.refreshRegions(ctx); err != nil {
		return fmt.Errorf("failed to refresh regions: %w", err)
	}
	if _, err := c.refreshProviders(ctx); err != nil {
		return fmt.Errorf("failed to refresh providers: %w", err)
	}
	return nil
}

func (c *CachedCatalog) refreshRegions(ctx context.Context) ([]models.Region, error) {
	regions, err := c.client.Regions(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Name < regions[j].Name
	})
	if err := c.redis.SetJSON(ctx, regionsCacheKey, regions, c.cfg.Cache.RegionsTTL); err != nil {
		c.logger.Warn("Failed to cache regions", map[string]interface{}{"error": err.Error()})
	}
	return regions, nil
}

func (c *CachedCatalog) refreshProviders(ctx context.Context) ([]models.EducationProvider, error) {
	var providers []models.EducationProvider
	for page := 0; ; page++ {
		chunk, err := c.client.Providers(ctx, page)
		if err != nil {
			return nil, err
		}
		providers = append(providers, chunk.Content...)
		if chunk.Last || len(chunk.Content) == 0 {
			break
		}
	}
	sort.Slice(providers, func(i, j int) bool {
		return providers[i].NameSwe < providers[j].NameSwe
	})
	if err := c.redis.SetJSON(ctx, providersCacheKey, providers, c.cfg.Cache.ProvidersTTL); err != nil {
		c.logger.Warn("Failed to cache providers", map[string]interface{}{"error": err.Error()})
	}
	return providers, nil
}
