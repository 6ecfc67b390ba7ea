package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/agendamento-api/internal/models"
)

const (
	catalogKey = "catalog:services"
	catalogTTL = 5 * time.Minute
)

// Catalog guarda o catálogo de serviços no redis. O catálogo é dado
// de referência imutável para o núcleo, então um TTL curto basta.
// Com rdb nil o cache fica desligado e tudo vira miss.
type Catalog struct {
	rdb *redis.Client
}

func NewCatalog(redisURL string) *Catalog {
	if redisURL == "" {
		return &Catalog{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return &Catalog{}
	}

	return &Catalog{rdb: redis.NewClient(opts)}
}

func (c *Catalog) Get(ctx context.Context) ([]models.Service, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, catalogKey).Result()
	if err != nil {
		return nil, false
	}

	var services []models.Service
	if err := json.Unmarshal([]byte(raw), &services); err != nil {
		return nil, false
	}

	return services, true
}

func (c *Catalog) Set(ctx context.Context, services []models.Service) {
	if c.rdb == nil {
		return
	}

	b, err := json.Marshal(services)
	if err != nil {
		return
	}

	// melhor esforço: API nunca quebra por causa do cache
	c.rdb.Set(ctx, catalogKey, b, catalogTTL)
}
