package logic

import (
	"context"
	"testing"

	"github.com/blues/adagency/internal/cache"
	"github.com/blues/adagency/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testContent = `
settings:
  phone: "+7 (495) 000-00-00"
  email: hello@agency.ru
services:
  - slug: outdoor
    title: Outdoor advertising
    icon: Billboard
    priceFrom: 3500
    active: true
    order: 1
  - slug: printing
    title: Printing
    icon: rocket
    active: true
    order: 0
  - slug: archived
    title: Old service
    active: false
portfolio:
  - title: Mall banners
    category: outdoor
    active: true
  - title: Brand book
    category: design
    active: true
  - title: Draft
    category: outdoor
    active: false
faq:
  - question: How fast?
    answer: Three days.
    active: true
team:
  - name: Olga
    position: Director
    active: true
partners:
  - name: Acme
    active: true
testimonials:
  - authorName: Maria
    text: Great work
    rating: 5
    active: true
`

func loadTestContent(t *testing.T) *SeedContent {
	t.Helper()
	var c SeedContent
	require.NoError(t, yaml.Unmarshal([]byte(testContent), &c))
	return &c
}

func TestSeedAndFeeds(t *testing.T) {
	ctx := context.Background()
	l := NewContentLogic(newTestDB(t), nil)

	res, err := l.Seed(ctx, loadTestContent(t))
	require.NoError(t, err)
	assert.Equal(t, 2, res["setting"])
	assert.Equal(t, 3, res["service"])
	assert.Equal(t, 1, res["team_member"])

	services, err := l.Services(ctx)
	require.NoError(t, err)
	require.Len(t, services, 2)
	assert.Equal(t, "printing", services[0].Slug)
	assert.Equal(t, model.DefaultServiceIcon, services[0].Icon)
	assert.Equal(t, model.IconBillboard, services[1].Icon)

	portfolio, err := l.Portfolio(ctx, "")
	require.NoError(t, err)
	assert.Len(t, portfolio, 2)

	portfolio, err = l.Portfolio(ctx, "Outdoor")
	require.NoError(t, err)
	require.Len(t, portfolio, 1)
	assert.Equal(t, "Mall banners", portfolio[0].Title)

	faq, err := l.FAQ(ctx)
	require.NoError(t, err)
	assert.Len(t, faq, 1)

	settings, err := l.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello@agency.ru", settings["email"])
}

func TestSeedIsRepeatable(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	l := NewContentLogic(db, nil)

	_, err := l.Seed(ctx, loadTestContent(t))
	require.NoError(t, err)

	again := loadTestContent(t)
	again.Settings["phone"] = "+7 (495) 111-11-11"
	again.Services[0].Title = "Outdoor & transit"
	res, err := l.Seed(ctx, again)
	require.NoError(t, err)
	assert.NotContains(t, res, "team_member")

	var services, team int64
	require.NoError(t, db.Model(&model.Service{}).Count(&services).Error)
	require.NoError(t, db.Model(&model.TeamMember{}).Count(&team).Error)
	assert.EqualValues(t, 3, services)
	assert.EqualValues(t, 1, team)

	settings, err := l.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+7 (495) 111-11-11", settings["phone"])

	var outdoor model.Service
	require.NoError(t, db.Where("slug = ?", "outdoor").First(&outdoor).Error)
	assert.Equal(t, "Outdoor & transit", outdoor.Title)
}

func TestFeedsAreCached(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mem := cache.NewMemory()
	l := NewContentLogic(db, mem)

	_, err := l.Seed(ctx, loadTestContent(t))
	require.NoError(t, err)

	faq, err := l.FAQ(ctx)
	require.NoError(t, err)
	require.Len(t, faq, 1)
	assert.True(t, mem.Has(FeedKey("faq_item")))

	// served from cache until the next seed invalidates it
	require.NoError(t, db.Create(&model.FAQItem{Question: "Price?", Active: true}).Error)
	faq, err = l.FAQ(ctx)
	require.NoError(t, err)
	assert.Len(t, faq, 1)

	_, err = l.Seed(ctx, &SeedContent{})
	require.NoError(t, err)
	faq, err = l.FAQ(ctx)
	require.NoError(t, err)
	assert.Len(t, faq, 2)
}
