package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/steve-ongera/WildQuest/internal/domain"
)

// EventCache is a read-through cache for the public catalog. Keys are
// derived from the list filter; every event write drops the whole
// namespace, so staleness is bounded by the TTL plus write invalidation.
type EventCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewEventCache(client *redis.Client, ttl time.Duration) *EventCache {
	return &EventCache{client: client, ttl: ttl}
}

func listKey(filter domain.EventFilter) string {
	featured := ""
	if filter.Featured != nil {
		featured = fmt.Sprintf("%t", *filter.Featured)
	}
	return fmt.Sprintf("events:list:%s:%s:%s:%s",
		filter.CategoryID, filter.LocationID, filter.EventType, featured)
}

func (c *EventCache) GetList(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	data, err := c.client.Get(ctx, listKey(filter)).Result()
	if err != nil {
		return nil, err
	}

	var events []*domain.Event
	if err = json.Unmarshal([]byte(data), &events); err != nil {
		return nil, err
	}

	return events, nil
}

func (c *EventCache) SetList(ctx context.Context, filter domain.EventFilter, events []*domain.Event) error {
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, listKey(filter), data, c.ttl).Err()
}

// Invalidate removes every cached listing. Called after event writes.
func (c *EventCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, "events:list:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
