package calculator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBanners(t *testing.T) {
	c := DefaultCatalog()

	est, err := c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 10})
	require.NoError(t, err)
	assert.Equal(t, "Наружная реклама", est.ServiceName)
	assert.Equal(t, "Баннеры", est.OptionName)
	assert.Equal(t, int64(3500), est.Total)
	assert.Empty(t, est.Steps)

	est, err = c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 10, Extras: []string{"urgent"}})
	require.NoError(t, err)
	assert.Equal(t, int64(5250), est.Total)
}

func TestCalculateAppliesExtrasInOrder(t *testing.T) {
	c := DefaultCatalog()

	// (3500 + 3000) × 1.5
	est, err := c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 10, Extras: []string{"design", "urgent"}})
	require.NoError(t, err)
	assert.Equal(t, int64(9750), est.Total)

	want := []Step{
		{Extra: "design", Name: "Разработка дизайна", Price: 3000, Subtotal: 6500},
		{Extra: "urgent", Name: "Срочное изготовление", Multiplier: 1.5, Subtotal: 9750},
	}
	if diff := cmp.Diff(want, est.Steps); diff != "" {
		t.Errorf("steps mismatch (-want +got):\n%s", diff)
	}

	// 3500 × 1.5 + 3000
	est, err = c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 10, Extras: []string{"urgent", "design"}})
	require.NoError(t, err)
	assert.Equal(t, int64(8250), est.Total)
}

func TestCalculateRoundsToWholeRoubles(t *testing.T) {
	est, err := DefaultCatalog().Calculate(Request{Service: "printing", Option: "flyers", Quantity: 2.5})
	require.NoError(t, err)
	assert.Equal(t, int64(13), est.Total) // 12.5
}

func TestCalculateErrors(t *testing.T) {
	c := DefaultCatalog()

	_, err := c.Calculate(Request{Service: "tv", Option: "banners", Quantity: 1})
	assert.ErrorIs(t, err, ErrUnknownService)

	_, err = c.Calculate(Request{Service: "outdoor", Option: "mugs", Quantity: 1})
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 0})
	assert.ErrorIs(t, err, ErrBadQuantity)

	_, err = c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: -2})
	assert.ErrorIs(t, err, ErrBadQuantity)

	_, err = c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 1, Extras: []string{"gold"}})
	assert.ErrorIs(t, err, ErrUnknownExtra)
}

func TestCalculateRejectsTotalsOutOfRange(t *testing.T) {
	c := DefaultCatalog()

	_, err := c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 1e20})
	assert.ErrorIs(t, err, ErrBadQuantity)

	_, err = c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 1e307})
	assert.ErrorIs(t, err, ErrBadQuantity)

	// 7e18 fits, the urgent multiplier pushes it past int64
	_, err = c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 2e16, Extras: []string{"urgent"}})
	assert.ErrorIs(t, err, ErrBadQuantity)

	est, err := c.Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 1e12})
	require.NoError(t, err)
	assert.Equal(t, int64(350e12), est.Total)
}

func TestEstimateDetails(t *testing.T) {
	est, err := DefaultCatalog().Calculate(Request{Service: "outdoor", Option: "banners", Quantity: 10, Extras: []string{"urgent"}})
	require.NoError(t, err)

	d := est.Details()
	assert.Equal(t, "outdoor", d["service"])
	assert.Equal(t, []string{"urgent"}, d["extras"])
	assert.Equal(t, int64(5250), d["total"])
}
