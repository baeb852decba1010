package history

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository is a PostgreSQL implementation of Repository.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL history repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Insert persists a record.
func (r *PostgresRepository) Insert(ctx context.Context, record *Record) error {
	query := `
		INSERT INTO oxygen_calculations (
			id, district_name, population,
			aqi, soil_quality, disaster_frequency,
			oxygen_deficit_kg_per_year, trees_required, confidence_level,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.DistrictName,
		record.Population,
		record.AQI,
		record.SoilQuality,
		record.DisasterFrequency,
		record.OxygenDeficitKgPerYear,
		record.TreesRequired,
		record.ConfidenceLevel,
		record.CreatedAt,
	)
	return err
}

// ListRecent returns records ordered by creation time, newest first.
func (r *PostgresRepository) ListRecent(ctx context.Context, opts ListOptions) ([]*Record, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT
			id, district_name, population,
			aqi, soil_quality, disaster_frequency,
			oxygen_deficit_kg_per_year, trees_required, confidence_level,
			created_at
		FROM oxygen_calculations
		ORDER BY created_at DESC
		LIMIT $1
	`
	args := []interface{}{limit}

	if opts.District != "" {
		query = `
			SELECT
				id, district_name, population,
				aqi, soil_quality, disaster_frequency,
				oxygen_deficit_kg_per_year, trees_required, confidence_level,
				created_at
			FROM oxygen_calculations
			WHERE district_name = $1
			ORDER BY created_at DESC
			LIMIT $2
		`
		args = []interface{}{opts.District, limit}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		var record Record
		err := rows.Scan(
			&record.ID,
			&record.DistrictName,
			&record.Population,
			&record.AQI,
			&record.SoilQuality,
			&record.DisasterFrequency,
			&record.OxygenDeficitKgPerYear,
			&record.TreesRequired,
			&record.ConfidenceLevel,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	return records, rows.Err()
}
