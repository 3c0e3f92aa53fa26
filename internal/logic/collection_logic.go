package logic

import (
	"context"
	"errors"
	"fmt"

	"github.com/blues/adagency/internal/cache"
	"github.com/blues/adagency/internal/logger"
	"gorm.io/gorm"
)

// Entity is an ordered content record such as a team member or partner.
type Entity[T any] interface {
	*T
	GetID() uint
	TableName() string
}

// normalizer is implemented by entities that default fields before a write.
type normalizer interface {
	Normalize()
}

func normalize(item any) {
	if n, ok := item.(normalizer); ok {
		n.Normalize()
	}
}

// FeedKey is the cache key of a public feed.
func FeedKey(name string) string {
	return "feed:" + name
}

// CollectionLogic is the admin CRUD and reorder logic shared by the
// team, partner and testimonial collections.
type CollectionLogic[T any, PT Entity[T]] struct {
	db      *gorm.DB
	cache   cache.Cache
	feedKey string
}

func NewCollectionLogic[T any, PT Entity[T]](db *gorm.DB, c cache.Cache) *CollectionLogic[T, PT] {
	if c == nil {
		c = cache.Nop{}
	}
	return &CollectionLogic[T, PT]{
		db:      db,
		cache:   c,
		feedKey: FeedKey(PT(new(T)).TableName()),
	}
}

// Name is the collection's table name.
func (l *CollectionLogic[T, PT]) Name() string {
	return PT(new(T)).TableName()
}

func (l *CollectionLogic[T, PT]) List(ctx context.Context) ([]T, error) {
	items := []T{}
	err := l.db.WithContext(ctx).
		Order("sort_order ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", l.Name(), err)
	}
	return items, nil
}

// PublicList returns active records in display order, served from cache when possible.
func (l *CollectionLogic[T, PT]) PublicList(ctx context.Context) ([]T, error) {
	return cached(ctx, l.cache, l.feedKey, func() ([]T, error) {
		items := []T{}
		err := l.db.WithContext(ctx).
			Where("active = ?", true).
			Order("sort_order ASC").
			Order("id ASC").
			Find(&items).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", l.Name(), err)
		}
		return items, nil
	})
}

func (l *CollectionLogic[T, PT]) Get(ctx context.Context, id uint) (PT, error) {
	item := PT(new(T))
	if err := l.db.WithContext(ctx).First(item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", l.Name(), err)
	}
	return item, nil
}

func (l *CollectionLogic[T, PT]) Create(ctx context.Context, item PT) error {
	if item.GetID() != 0 {
		return ErrIDNotAllowed
	}
	normalize(item)
	if err := l.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", l.Name(), err)
	}
	l.invalidate(ctx)
	return nil
}

// Update replaces every display field of the record identified by item's id.
func (l *CollectionLogic[T, PT]) Update(ctx context.Context, item PT) (PT, error) {
	if item.GetID() == 0 {
		return nil, ErrMissingID
	}
	existing, err := l.Get(ctx, item.GetID())
	if err != nil {
		return nil, err
	}
	normalize(item)

	err = l.db.WithContext(ctx).Model(existing).
		Select("*").
		Omit("id", "created_at").
		Updates(item).Error
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", l.Name(), err)
	}
	l.invalidate(ctx)

	return l.Get(ctx, item.GetID())
}

// Delete is idempotent; deleted is false when the id did not exist.
func (l *CollectionLogic[T, PT]) Delete(ctx context.Context, id uint) (bool, error) {
	res := l.db.WithContext(ctx).Delete(PT(new(T)), id)
	if res.Error != nil {
		return false, fmt.Errorf("failed to delete %s: %w", l.Name(), res.Error)
	}
	if res.RowsAffected > 0 {
		l.invalidate(ctx)
	}
	return res.RowsAffected > 0, nil
}

// Reorder assigns order = index to every id in one transaction. ids must list
// each record of the collection exactly once, otherwise nothing changes.
func (l *CollectionLogic[T, PT]) Reorder(ctx context.Context, ids []uint) ([]T, error) {
	if len(ids) == 0 {
		return nil, ErrNoIDs
	}

	seen := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrInvalidReorder, id)
		}
		seen[id] = struct{}{}
	}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total, matched int64
		if err := tx.Model(PT(new(T))).Count(&total).Error; err != nil {
			return err
		}
		if err := tx.Model(PT(new(T))).Where("id IN ?", ids).Count(&matched).Error; err != nil {
			return err
		}
		if matched != int64(len(ids)) || total != matched {
			return fmt.Errorf("%w: got %d ids, %d known, %d in collection", ErrInvalidReorder, len(ids), matched, total)
		}

		for i, id := range ids {
			if err := tx.Model(PT(new(T))).Where("id = ?", id).Update("sort_order", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidReorder) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to reorder %s: %w", l.Name(), err)
	}
	l.invalidate(ctx)

	return l.List(ctx)
}

func (l *CollectionLogic[T, PT]) invalidate(ctx context.Context) {
	if err := l.cache.Delete(ctx, l.feedKey); err != nil {
		logger.Warn("Failed to invalidate %s: %v", l.feedKey, err)
	}
}

// cached loads key from c, falling back to load and storing its result.
// Cache failures are logged and never fail the request.
func cached[T any](ctx context.Context, c cache.Cache, key string, load func() (T, error)) (T, error) {
	var out T
	found, err := c.Get(ctx, key, &out)
	if err != nil {
		logger.Warn("Cache get %s failed: %v", key, err)
	}
	if found && err == nil {
		return out, nil
	}

	out, err = load()
	if err != nil {
		return out, err
	}
	if err := c.Set(ctx, key, out); err != nil {
		logger.Warn("Cache set %s failed: %v", key, err)
	}
	return out, nil
}
