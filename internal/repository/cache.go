package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/config"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/metrics"
	"github.com/sizzlenabeel/cateringbysizzle-orders-service/internal/models"
)

const (
	menuKeyPrefix     = "menu:"
	discountKeyPrefix = "discount_code:"
	defaultCacheTTL   = 5 * time.Minute
)

// RedisCatalogCache implements CatalogCache using Redis. Menu and
// discount-code reads are hot on the storefront; admin writes invalidate.
type RedisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewRedisCatalogCache(cfg config.RedisConfig, logger *zap.SugaredLogger) *RedisCatalogCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &RedisCatalogCache{client: client, ttl: ttl, logger: logger}
}

// GetMenu retrieves a cached menu offering. A miss returns (nil, nil).
func (c *RedisCatalogCache) GetMenu(ctx context.Context, id string) (*models.MenuOffering, error) {
	data, err := c.client.Get(ctx, menuKeyPrefix+id).Bytes()
	if err == redis.Nil {
		metrics.CacheMisses.WithLabelValues("menu").Inc()
		return nil, nil
	}
	if err != nil {
		c.logger.Errorw("menu cache get error", "menu_id", id, "error", err)
		return nil, err
	}

	var menu models.MenuOffering
	if err := json.Unmarshal(data, &menu); err != nil {
		return nil, err
	}

	metrics.CacheHits.WithLabelValues("menu").Inc()
	return &menu, nil
}

// SetMenu caches a menu offering with its add-on catalog.
func (c *RedisCatalogCache) SetMenu(ctx context.Context, menu *models.MenuOffering) error {
	data, err := json.Marshal(menu)
	if err != nil {
		return err
	}

	if err := c.client.Set(ctx, menuKeyPrefix+menu.ID, data, c.ttl).Err(); err != nil {
		c.logger.Errorw("menu cache set error", "menu_id", menu.ID, "error", err)
		return err
	}

	return nil
}

// InvalidateMenu drops a menu from cache after an admin edit.
func (c *RedisCatalogCache) InvalidateMenu(ctx context.Context, id string) error {
	return c.client.Del(ctx, menuKeyPrefix+id).Err()
}

// GetDiscountCode retrieves a cached discount code. A miss returns (nil, nil).
// Validity is judged by the caller at redemption time, never cached.
func (c *RedisCatalogCache) GetDiscountCode(ctx context.Context, code string) (*models.DiscountCode, error) {
	key := discountKeyPrefix + strings.ToLower(code)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		metrics.CacheMisses.WithLabelValues("discount_code").Inc()
		return nil, nil
	}
	if err != nil {
		c.logger.Errorw("discount code cache get error", "error", err)
		return nil, err
	}

	var dc models.DiscountCode
	if err := json.Unmarshal(data, &dc); err != nil {
		return nil, err
	}

	metrics.CacheHits.WithLabelValues("discount_code").Inc()
	return &dc, nil
}

// SetDiscountCode caches a discount code row.
func (c *RedisCatalogCache) SetDiscountCode(ctx context.Context, dc *models.DiscountCode) error {
	data, err := json.Marshal(dc)
	if err != nil {
		return err
	}

	key := discountKeyPrefix + strings.ToLower(dc.Code)
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// Close releases the Redis connection.
func (c *RedisCatalogCache) Close() error {
	return c.client.Close()
}
