package health

import (
	"context"
	"fmt"
	"time"

	"github.com/hellofresh/health-go/v5"
	"github.com/hellofresh/health-go/v5/checks/postgres"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
	"github.com/pasale/product-catalog/internal/cache"
	"github.com/pasale/product-catalog/internal/config"
)

const probeKey = "health:probe"

type Endpoints struct {
	Cache cache.Cache
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "database",
			Timeout:   3 * time.Second,
			SkipOnErr: false,
			Check: postgres.New(postgres.Config{
				DSN: cfg.Database.GetDSN(),
			}),
		},
	}

	if cfg.Cache.Backend == config.CacheBackendRedis {
		checks = append(checks, health.Config{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		})
	}

	if endpoints != nil && endpoints.Cache != nil {
		checks = append(checks, health.Config{
			Name:      "cache",
			Timeout:   2 * time.Second,
			SkipOnErr: true,
			Check:     CacheCheck(endpoints.Cache),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{
			Name:    "product-catalog",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}

// CacheCheck round-trips a probe value through the configured store.
func CacheCheck(c cache.Cache) func(ctx context.Context) error {
	return func(ctx context.Context) error {

		if err := c.Set(ctx, probeKey, time.Now().Unix(), 10*time.Second); err != nil {
			return fmt.Errorf("cache write failed: %w", err)
		}

		var stamp int64
		found, err := c.Get(ctx, probeKey, &stamp)
		if err != nil {
			return fmt.Errorf("cache read failed: %w", err)
		}
		if !found {
			return fmt.Errorf("cache probe key %s missing after write", probeKey)
		}

		return nil
	}
}
