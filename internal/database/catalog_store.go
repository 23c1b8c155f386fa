package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ravico/dinefinder/internal/logging"
)

// RestaurantRecord is one raw catalog row: a display name plus its ordered
// hour clauses, exactly as they appeared in the source file.
type RestaurantRecord struct {
	Name    string
	Clauses []string
}

// CatalogStore handles the seeded restaurant catalog in SQLite
type CatalogStore struct {
	db     *DB
	logger zerolog.Logger
}

// NewCatalogStore creates a new catalog store
func NewCatalogStore(db *DB) (*CatalogStore, error) {
	return &CatalogStore{
		db:     db,
		logger: logging.GetLogger("catalog-store"),
	}, nil
}

// HasCatalog checks if any restaurants have been seeded
func (s *CatalogStore) HasCatalog(ctx context.Context) (bool, error) {
	var count int
	err := s.db.Conn().QueryRowContext(ctx, `SELECT COUNT(*) FROM restaurants`).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check catalog existence: %w", err)
	}
	return count > 0, nil
}

// ReplaceCatalog atomically replaces the stored catalog with the given
// records, preserving both restaurant order and clause order.
func (s *CatalogStore) ReplaceCatalog(ctx context.Context, records []RestaurantRecord) error {
	return s.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM restaurants`); err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}

		for i, record := range records {
			res, err := tx.ExecContext(ctx,
				`INSERT INTO restaurants (name, position) VALUES (?, ?)`,
				record.Name, i)
			if err != nil {
				return fmt.Errorf("failed to insert restaurant %q: %w", record.Name, err)
			}
			restaurantID, err := res.LastInsertId()
			if err != nil {
				return fmt.Errorf("failed to read id for restaurant %q: %w", record.Name, err)
			}

			for j, clause := range record.Clauses {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO restaurant_hours (restaurant_id, position, clause) VALUES (?, ?, ?)`,
					restaurantID, j, clause); err != nil {
					return fmt.Errorf("failed to insert hours for restaurant %q: %w", record.Name, err)
				}
			}
		}

		s.logger.Info().Int("restaurants", len(records)).Msg("Catalog replaced")
		return nil
	})
}

// ListRestaurants returns all seeded restaurants in their original source
// order, each with its hour clauses in clause order.
func (s *CatalogStore) ListRestaurants(ctx context.Context) ([]RestaurantRecord, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
SELECT r.id, r.name
FROM restaurants r
ORDER BY r.position`)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var records []RestaurantRecord
	var ids []int64
	for rows.Next() {
		var id int64
		var record RestaurantRecord
		if err := rows.Scan(&id, &record.Name); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant row: %w", err)
		}
		ids = append(ids, id)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restaurant rows: %w", err)
	}

	for i, id := range ids {
		clauses, err := s.listClauses(ctx, id)
		if err != nil {
			return nil, err
		}
		records[i].Clauses = clauses
	}

	return records, nil
}

func (s *CatalogStore) listClauses(ctx context.Context, restaurantID int64) ([]string, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
SELECT clause
FROM restaurant_hours
WHERE restaurant_id = ?
ORDER BY position`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list hour clauses: %w", err)
	}
	defer rows.Close()

	var clauses []string
	for rows.Next() {
		var clause string
		if err := rows.Scan(&clause); err != nil {
			return nil, fmt.Errorf("failed to scan hour clause: %w", err)
		}
		clauses = append(clauses, clause)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hour clauses: %w", err)
	}
	return clauses, nil
}
