package trivia

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultSnapshotTTL = 5 * time.Minute

const (
	questionsKey  = "trivia:questions"
	categoriesKey = "trivia:categories"
)

// CachedStore is a Redis read-through layer over a Store. It caches the
// ordered question and category snapshots the core functions consume and
// drops them whenever a write goes through, so readers only ever see a
// snapshot at most one TTL stale. Redis being down degrades to the
// underlying store, never to an error.
type CachedStore struct {
	store  Store
	client *redis.Client
	ttl    time.Duration
}

var _ Store = (*CachedStore)(nil)

func NewCachedStore(store Store, client *redis.Client, ttl time.Duration) *CachedStore {
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &CachedStore{store: store, client: client, ttl: ttl}
}

func (c *CachedStore) ListQuestions(ctx context.Context) ([]Question, error) {
	if data, err := c.client.Get(ctx, questionsKey).Bytes(); err == nil {
		var qs []Question
		if err := json.Unmarshal(data, &qs); err == nil {
			return qs, nil
		}
	}
	qs, err := c.store.ListQuestions(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(qs); err == nil {
		_ = c.client.Set(ctx, questionsKey, data, c.ttl).Err()
	}
	return qs, nil
}

func (c *CachedStore) ListCategories(ctx context.Context) ([]Category, error) {
	if data, err := c.client.Get(ctx, categoriesKey).Bytes(); err == nil {
		var cats []Category
		if err := json.Unmarshal(data, &cats); err == nil {
			return cats, nil
		}
	}
	cats, err := c.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(cats); err == nil {
		_ = c.client.Set(ctx, categoriesKey, data, c.ttl).Err()
	}
	return cats, nil
}

func (c *CachedStore) GetCategory(ctx context.Context, id int) (*Category, error) {
	return c.store.GetCategory(ctx, id)
}

func (c *CachedStore) QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error) {
	return c.store.QuestionsByCategory(ctx, categoryID)
}

func (c *CachedStore) InsertQuestion(ctx context.Context, q NewQuestion) (Question, error) {
	inserted, err := c.store.InsertQuestion(ctx, q)
	if err != nil {
		return Question{}, err
	}
	c.invalidate(ctx)
	return inserted, nil
}

func (c *CachedStore) DeleteQuestion(ctx context.Context, id int) (bool, error) {
	deleted, err := c.store.DeleteQuestion(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		c.invalidate(ctx)
	}
	return deleted, nil
}

func (c *CachedStore) invalidate(ctx context.Context) {
	_ = c.client.Del(ctx, questionsKey, categoriesKey).Err()
}
