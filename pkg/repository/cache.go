package repository

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"droscher.com/BeanJournal/pkg/model"
)

const allBeansKey = "beans:all"

// CachedBeanRepository keeps the full bean list in memory and drops it whenever a
// write through it succeeds. A list read that overlaps a write is not cached.
type CachedBeanRepository struct {
	inner  BeanRepository
	cache  *cache.Cache
	logger *zap.Logger

	mu         sync.Mutex
	generation uint64
}

func NewCachedBeanRepository(inner BeanRepository, ttl time.Duration, logger *zap.Logger) *CachedBeanRepository {
	return &CachedBeanRepository{
		inner:  inner,
		cache:  cache.New(ttl, 2*ttl),
		logger: logger,
	}
}

func (c *CachedBeanRepository) ListBeans(ctx context.Context) ([]*model.CoffeeBean, error) {
	if cached, found := c.cache.Get(allBeansKey); found {
		if beans, ok := cached.([]*model.CoffeeBean); ok {
			c.logger.Debug("coffee bean cache hit", zap.Int("count", len(beans)))

			return copyBeans(beans), nil
		}
	}

	generation := c.currentGeneration()

	beans, err := c.inner.ListBeans(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if generation == c.generation {
		c.cache.Set(allBeansKey, copyBeans(beans), cache.DefaultExpiration)
	} else {
		c.logger.Debug("skipping stale coffee bean list")
	}
	c.mu.Unlock()

	return beans, nil
}

func (c *CachedBeanRepository) GetBean(ctx context.Context, id string) (*model.CoffeeBean, error) {
	return c.inner.GetBean(ctx, id)
}

func (c *CachedBeanRepository) AddBean(ctx context.Context, bean model.CoffeeBean) (*model.CoffeeBean, error) {
	added, err := c.inner.AddBean(ctx, bean)
	if err != nil {
		return nil, err
	}

	c.invalidate("add")

	return added, nil
}

func (c *CachedBeanRepository) UpdateBean(ctx context.Context, id string, patch model.BeanPatch) (*model.CoffeeBean, error) {
	updated, err := c.inner.UpdateBean(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	c.invalidate("update")

	return updated, nil
}

func (c *CachedBeanRepository) IncrementPurchaseCount(ctx context.Context, id string) (*model.CoffeeBean, error) {
	updated, err := c.inner.IncrementPurchaseCount(ctx, id)
	if err != nil {
		return nil, err
	}

	c.invalidate("purchase")

	return updated, nil
}

func (c *CachedBeanRepository) DeleteBean(ctx context.Context, id string) error {
	if err := c.inner.DeleteBean(ctx, id); err != nil {
		return err
	}

	c.invalidate("delete")

	return nil
}

func (c *CachedBeanRepository) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.generation
}

func (c *CachedBeanRepository) invalidate(reason string) {
	c.mu.Lock()
	c.generation++
	c.cache.Delete(allBeansKey)
	c.mu.Unlock()

	c.logger.Debug("coffee bean cache invalidated", zap.String("reason", reason))
}

// copyBeans copies the slice and the records so callers cannot change the cached snapshot.
func copyBeans(beans []*model.CoffeeBean) []*model.CoffeeBean {
	copied := make([]*model.CoffeeBean, 0, len(beans))

	for _, bean := range beans {
		clone := *bean
		clone.Notes = append(clone.Notes[:0:0], bean.Notes...)
		copied = append(copied, &clone)
	}

	return copied
}
