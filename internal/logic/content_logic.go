package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/blues/adagency/internal/cache"
	"github.com/blues/adagency/internal/logger"
	"github.com/blues/adagency/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContentLogic serves the read-only public feeds that are managed by seeding.
type ContentLogic struct {
	db    *gorm.DB
	cache cache.Cache
}

func NewContentLogic(db *gorm.DB, c cache.Cache) *ContentLogic {
	if c == nil {
		c = cache.Nop{}
	}
	return &ContentLogic{db: db, cache: c}
}

func (l *ContentLogic) Services(ctx context.Context) ([]model.Service, error) {
	return cached(ctx, l.cache, FeedKey(model.Service{}.TableName()), func() ([]model.Service, error) {
		return activeOrdered[model.Service](ctx, l.db)
	})
}

// Portfolio returns active portfolio items, optionally limited to one category.
func (l *ContentLogic) Portfolio(ctx context.Context, category string) ([]model.PortfolioItem, error) {
	items, err := cached(ctx, l.cache, FeedKey(model.PortfolioItem{}.TableName()), func() ([]model.PortfolioItem, error) {
		return activeOrdered[model.PortfolioItem](ctx, l.db)
	})
	if err != nil {
		return nil, err
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return items, nil
	}
	filtered := make([]model.PortfolioItem, 0, len(items))
	for _, it := range items {
		if strings.EqualFold(it.Category, category) {
			filtered = append(filtered, it)
		}
	}
	return filtered, nil
}

func (l *ContentLogic) FAQ(ctx context.Context) ([]model.FAQItem, error) {
	return cached(ctx, l.cache, FeedKey(model.FAQItem{}.TableName()), func() ([]model.FAQItem, error) {
		return activeOrdered[model.FAQItem](ctx, l.db)
	})
}

// Settings returns all site settings keyed by name.
func (l *ContentLogic) Settings(ctx context.Context) (map[string]string, error) {
	return cached(ctx, l.cache, FeedKey(model.Setting{}.TableName()), func() (map[string]string, error) {
		var rows []model.Setting
		if err := l.db.WithContext(ctx).Order(clause.OrderByColumn{Column: clause.Column{Name: "key"}}).Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to load settings: %w", err)
		}
		out := make(map[string]string, len(rows))
		for _, r := range rows {
			out[r.Key] = r.Value
		}
		return out, nil
	})
}

func activeOrdered[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	items := []T{}
	err := db.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order ASC").
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}
	return items, nil
}

// SeedContent is the document accepted by the seed command.
type SeedContent struct {
	Settings     map[string]string     `yaml:"settings"`
	Services     []model.Service       `yaml:"services"`
	Portfolio    []model.PortfolioItem `yaml:"portfolio"`
	FAQ          []model.FAQItem       `yaml:"faq"`
	Team         []model.TeamMember    `yaml:"team"`
	Partners     []model.Partner       `yaml:"partners"`
	Testimonials []model.Testimonial   `yaml:"testimonials"`
}

// SeedResult counts the rows written per table.
type SeedResult map[string]int

// Seed writes content in one transaction. Settings and services are upserted by
// key and slug; the other collections are only inserted into empty tables so a
// re-run never duplicates admin-managed records.
func (l *ContentLogic) Seed(ctx context.Context, content *SeedContent) (SeedResult, error) {
	result := SeedResult{}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(content.Settings) > 0 {
			rows := make([]model.Setting, 0, len(content.Settings))
			for k, v := range content.Settings {
				rows = append(rows, model.Setting{Key: k, Value: v})
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&rows).Error
			if err != nil {
				return fmt.Errorf("settings: %w", err)
			}
			result[model.Setting{}.TableName()] = len(rows)
		}

		if len(content.Services) > 0 {
			for i := range content.Services {
				content.Services[i].ID = 0
				content.Services[i].Icon = model.NormalizeIcon(string(content.Services[i].Icon))
			}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{"title", "description", "icon", "price_from", "active", "sort_order", "updated_at"}),
			}).Create(&content.Services).Error
			if err != nil {
				return fmt.Errorf("services: %w", err)
			}
			result[model.Service{}.TableName()] = len(content.Services)
		}

		if err := seedIfEmpty(tx, content.Portfolio, result); err != nil {
			return err
		}
		if err := seedIfEmpty(tx, content.FAQ, result); err != nil {
			return err
		}
		if err := seedIfEmpty(tx, content.Team, result); err != nil {
			return err
		}
		if err := seedIfEmpty(tx, content.Partners, result); err != nil {
			return err
		}
		return seedIfEmpty(tx, content.Testimonials, result)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to seed content: %w", err)
	}

	keys := make([]string, 0, 7)
	for _, m := range []interface{ TableName() string }{
		model.Setting{}, model.Service{}, model.PortfolioItem{}, model.FAQItem{},
		model.TeamMember{}, model.Partner{}, model.Testimonial{},
	} {
		keys = append(keys, FeedKey(m.TableName()))
	}
	if err := l.cache.Delete(ctx, keys...); err != nil {
		logger.Warn("Failed to invalidate feeds after seed: %v", err)
	}

	return result, nil
}

func seedIfEmpty[T any](tx *gorm.DB, rows []T, result SeedResult) error {
	if len(rows) == 0 {
		return nil
	}

	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(new(T)); err != nil {
		return err
	}
	table := stmt.Schema.Table

	var count int64
	if err := tx.Model(new(T)).Count(&count).Error; err != nil {
		return fmt.Errorf("%s: %w", table, err)
	}
	if count > 0 {
		logger.Info("Skipping %s seed, table has %d rows", table, count)
		return nil
	}

	if err := tx.Create(&rows).Error; err != nil {
		return fmt.Errorf("%s: %w", table, err)
	}
	result[table] = len(rows)
	return nil
}
