package catalog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ravico/dinefinder/internal/database"
	"github.com/ravico/dinefinder/internal/logging"
)

// Seeder copies the static hours file into the state store. The source
// file is only consulted when the store is empty (or a reseed is forced),
// mirroring the seed-once configuration flow: the database is the source
// of truth after first start.
type Seeder struct {
	store  *database.CatalogStore
	logger zerolog.Logger
}

// NewSeeder creates a new catalog seeder
func NewSeeder(store *database.CatalogStore) *Seeder {
	return &Seeder{
		store:  store,
		logger: logging.GetLogger("catalog-seeder"),
	}
}

// Seed populates the store from the JSON source file. When the store
// already holds a catalog the file is not touched unless force is set.
func (s *Seeder) Seed(ctx context.Context, sourcePath string, force bool) error {
	hasCatalog, err := s.store.HasCatalog(ctx)
	if err != nil {
		return err
	}
	if hasCatalog && !force {
		s.logger.Info().Msg("Catalog already seeded, skipping source file")
		return nil
	}

	s.logger.Info().Str("source", sourcePath).Bool("force", force).Msg("Seeding catalog from source file")

	raws, err := ReadSource(sourcePath)
	if err != nil {
		return err
	}

	records := make([]database.RestaurantRecord, len(raws))
	for i, raw := range raws {
		records[i] = database.RestaurantRecord{
			Name:    raw.Name,
			Clauses: raw.Times,
		}
	}

	if err := s.store.ReplaceCatalog(ctx, records); err != nil {
		return err
	}

	s.logger.Info().Int("restaurants", len(records)).Msg("Catalog seeded")
	return nil
}
