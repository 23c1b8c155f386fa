package catalog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ravico/dinefinder/internal/database"
	"github.com/ravico/dinefinder/internal/hours"
	"github.com/ravico/dinefinder/internal/logging"
	"github.com/ravico/dinefinder/internal/metrics"
)

// Loader reads raw restaurant records from the state store and parses
// their hour clauses into schedules.
type Loader struct {
	store        *database.CatalogStore
	weekdayOrder []string
	clockLayouts []string
	logger       zerolog.Logger
}

// NewLoader creates a new catalog loader. order is the canonical week and
// layouts the clock formats accepted inside hour clauses.
func NewLoader(store *database.CatalogStore, order []string, layouts []string) *Loader {
	return &Loader{
		store:        store,
		weekdayOrder: order,
		clockLayouts: layouts,
		logger:       logging.GetLogger("catalog-loader"),
	}
}

// Load produces the parsed restaurant list in source order. Hour clauses
// matching no recognized pattern are skipped, not failed; skips surface in
// metrics and debug logs only.
func (l *Loader) Load(ctx context.Context) ([]Restaurant, error) {
	records, err := l.store.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}

	restaurants := make([]Restaurant, 0, len(records))
	totalSkipped := 0
	for _, record := range records {
		schedule, skipped := hours.ParseSchedule(record.Clauses, l.weekdayOrder, l.clockLayouts)
		if skipped > 0 {
			totalSkipped += skipped
			l.logger.Debug().
				Str("restaurant", record.Name).
				Int("skipped_clauses", skipped).
				Msg("Some hour clauses matched no recognized pattern")
		}
		restaurants = append(restaurants, Restaurant{
			Name:     record.Name,
			Schedule: schedule,
		})
	}

	metrics.AddSkippedClauses(totalSkipped)
	metrics.SetCatalogSize(len(restaurants))
	l.logger.Info().
		Int("restaurants", len(restaurants)).
		Int("skipped_clauses", totalSkipped).
		Msg("Catalog loaded")

	return restaurants, nil
}
