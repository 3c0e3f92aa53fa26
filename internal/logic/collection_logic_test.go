package logic

import (
	"context"
	"testing"

	"github.com/blues/adagency/internal/cache"
	"github.com/blues/adagency/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partnerNames(items []model.Partner) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.Name)
	}
	return out
}

func seedPartners(t *testing.T, l *CollectionLogic[model.Partner, *model.Partner], names ...string) []*model.Partner {
	t.Helper()
	out := make([]*model.Partner, 0, len(names))
	for i, name := range names {
		p := &model.Partner{Name: name, Active: true, Order: i}
		require.NoError(t, l.Create(context.Background(), p))
		out = append(out, p)
	}
	return out
}

func TestCollectionCreateAndList(t *testing.T) {
	ctx := context.Background()
	l := NewCollectionLogic[model.TeamMember](newTestDB(t), nil)

	require.NoError(t, l.Create(ctx, &model.TeamMember{Name: "Second", Active: true, Order: 2}))
	require.NoError(t, l.Create(ctx, &model.TeamMember{Name: "First", Active: true, Order: 1}))
	require.NoError(t, l.Create(ctx, &model.TeamMember{Name: "Hidden", Active: false, Order: 0}))

	all, err := l.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Hidden", all[0].Name)
	assert.False(t, all[0].Active)

	public, err := l.PublicList(ctx)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "First", public[0].Name)
	assert.Equal(t, "Second", public[1].Name)

	err = l.Create(ctx, &model.TeamMember{ID: 7, Name: "Preset"})
	assert.ErrorIs(t, err, ErrIDNotAllowed)
}

func TestCollectionUpdate(t *testing.T) {
	ctx := context.Background()
	l := NewCollectionLogic[model.Testimonial](newTestDB(t), nil)

	item := &model.Testimonial{AuthorName: "Maria", Text: "Great work", Rating: 5, Active: true}
	require.NoError(t, l.Create(ctx, item))

	updated, err := l.Update(ctx, &model.Testimonial{ID: item.ID, AuthorName: "Maria K.", Text: "Great work again", Rating: 4, Active: false, Order: 3})
	require.NoError(t, err)
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, "Maria K.", updated.AuthorName)
	assert.Equal(t, 4, updated.Rating)
	assert.False(t, updated.Active)
	assert.Equal(t, 3, updated.Order)
	assert.True(t, item.CreatedAt.Equal(updated.CreatedAt))

	_, err = l.Update(ctx, &model.Testimonial{AuthorName: "No id"})
	assert.ErrorIs(t, err, ErrMissingID)

	_, err = l.Update(ctx, &model.Testimonial{ID: item.ID + 50, AuthorName: "Ghost", Text: "boo"})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCollectionDefaultsTestimonialRating(t *testing.T) {
	ctx := context.Background()
	l := NewCollectionLogic[model.Testimonial](newTestDB(t), nil)

	item := &model.Testimonial{AuthorName: "Ivan", Text: "Quick and neat", Rating: 3}
	require.NoError(t, l.Create(ctx, item))

	updated, err := l.Update(ctx, &model.Testimonial{ID: item.ID, AuthorName: "Ivan", Text: "Quick and neat"})
	require.NoError(t, err)
	assert.Equal(t, model.DefaultRating, updated.Rating)

	created := &model.Testimonial{AuthorName: "Olga", Text: "Thanks"}
	require.NoError(t, l.Create(ctx, created))
	stored, err := l.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultRating, stored.Rating)
}

func TestCollectionDelete(t *testing.T) {
	ctx := context.Background()
	l := NewCollectionLogic[model.Partner](newTestDB(t), nil)
	items := seedPartners(t, l, "Acme", "Globex")

	deleted, err := l.Delete(ctx, items[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = l.Delete(ctx, items[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	all, err := l.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Globex"}, partnerNames(all))
}

func TestCollectionReorder(t *testing.T) {
	ctx := context.Background()
	l := NewCollectionLogic[model.Partner](newTestDB(t), nil)
	items := seedPartners(t, l, "A", "B", "C")
	a, b, c := items[0].ID, items[1].ID, items[2].ID

	reordered, err := l.Reorder(ctx, []uint{c, a, b})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, partnerNames(reordered))
	for i, p := range reordered {
		assert.Equal(t, i, p.Order)
	}

	public, err := l.PublicList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, partnerNames(public))
}

func TestCollectionReorderRejectsPartialLists(t *testing.T) {
	ctx := context.Background()
	l := NewCollectionLogic[model.Partner](newTestDB(t), nil)
	items := seedPartners(t, l, "A", "B", "C")
	a, b, c := items[0].ID, items[1].ID, items[2].ID

	for name, ids := range map[string][]uint{
		"missing":   {c, a},
		"duplicate": {c, a, a},
		"unknown":   {c, a, b, 999},
		"foreign":   {c, a, 999},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := l.Reorder(ctx, ids)
			assert.ErrorIs(t, err, ErrInvalidReorder)
			assert.True(t, IsValidation(err))

			all, err := l.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C"}, partnerNames(all))
		})
	}

	_, err := l.Reorder(ctx, nil)
	assert.ErrorIs(t, err, ErrNoIDs)
}

func TestCollectionWritesInvalidateFeed(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()
	l := NewCollectionLogic[model.Partner](newTestDB(t), mem)
	key := FeedKey("partner")

	items := seedPartners(t, l, "A", "B")

	_, err := l.PublicList(ctx)
	require.NoError(t, err)
	assert.True(t, mem.Has(key))

	_, err = l.Reorder(ctx, []uint{items[1].ID, items[0].ID})
	require.NoError(t, err)
	assert.False(t, mem.Has(key))

	public, err := l.PublicList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, partnerNames(public))
	assert.True(t, mem.Has(key))

	_, err = l.Update(ctx, &model.Partner{ID: items[0].ID, Name: "A2", Active: false})
	require.NoError(t, err)
	assert.False(t, mem.Has(key))

	public, err = l.PublicList(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, partnerNames(public))
}
