package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravico/dinefinder/internal/constants"
	"github.com/ravico/dinefinder/internal/database"
)

var testClockLayouts = []string{"3:04 pm", "3 pm", "15:04"}

func TestLoaderParsesStoredCatalog(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceCatalog(ctx, []database.RestaurantRecord{
		{Name: "Weekday Diner", Clauses: []string{"Mon-Fri 11 am - 9 pm"}},
		{Name: "Night Owl", Clauses: []string{"Fri 10 pm - 2 am"}},
	}))

	loader := NewLoader(store, constants.WeekdayOrder, testClockLayouts)
	restaurants, err := loader.Load(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 2)

	assert.Equal(t, "Weekday Diner", restaurants[0].Name)
	assert.Len(t, restaurants[0].Schedule, 5)

	assert.Equal(t, "Night Owl", restaurants[1].Name)
	require.Contains(t, restaurants[1].Schedule, "Fri")
	assert.True(t, restaurants[1].Schedule["Fri"].Overnight())
}

func TestLoaderKeepsSourceOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	records := []database.RestaurantRecord{
		{Name: "Charlie", Clauses: []string{"Sun 8 am - 10 pm"}},
		{Name: "Alpha", Clauses: []string{"Sun 8 am - 10 pm"}},
		{Name: "Bravo", Clauses: []string{"Sun 8 am - 10 pm"}},
	}
	require.NoError(t, store.ReplaceCatalog(ctx, records))

	loader := NewLoader(store, constants.WeekdayOrder, testClockLayouts)
	restaurants, err := loader.Load(ctx)
	require.NoError(t, err)

	got := make([]string, len(restaurants))
	for i, r := range restaurants {
		got[i] = r.Name
	}
	assert.Equal(t, []string{"Charlie", "Alpha", "Bravo"}, got)
}

func TestLoaderSkipsUnmatchedClausesSilently(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.ReplaceCatalog(ctx, []database.RestaurantRecord{
		{Name: "Oddball", Clauses: []string{"open when we feel like it", "Sun 8 am - 10 pm"}},
	}))

	loader := NewLoader(store, constants.WeekdayOrder, testClockLayouts)
	restaurants, err := loader.Load(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)

	// the unmatched clause produced no entry, the valid one did
	assert.Len(t, restaurants[0].Schedule, 1)
	assert.Contains(t, restaurants[0].Schedule, "Sun")
}

func TestLoaderEmptyStore(t *testing.T) {
	store := newTestStore(t)

	loader := NewLoader(store, constants.WeekdayOrder, testClockLayouts)
	restaurants, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, restaurants)
}
