package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"masstimes/internal/schedule"
)

// LoadTableFromPostgres reads the full schedule dataset from the
// mass_schedules table and assembles the in-memory lookup table. The
// pool is only needed for the duration of the call; the table is
// read-only afterwards.
func LoadTableFromPostgres(ctx context.Context, dsn string) (schedule.Table, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	defer pool.Close()

	rows, err := pool.Query(ctx,
		`SELECT parish_name, category, times FROM mass_schedules ORDER BY parish_name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying mass_schedules: %w", err)
	}
	defer rows.Close()

	table := make(schedule.Table)
	for rows.Next() {
		var parish, category, times string
		if err := rows.Scan(&parish, &category, &times); err != nil {
			return nil, fmt.Errorf("scanning mass_schedules row: %w", err)
		}
		key := schedule.Normalize(parish)
		if key == "" {
			continue
		}
		table[key] = append(table[key], schedule.Entry{
			Category: schedule.Category(category),
			Times:    times,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading mass_schedules rows: %w", err)
	}
	return table, nil
}
