package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountEmployees(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

func (r *statsRepository) CountShoutOuts(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM shoutouts`)
	if err != nil {
		return 0, fmt.Errorf("failed to count shoutouts: %w", err)
	}

	return count, nil
}

func (r *statsRepository) CountEmployeesByDepartment(ctx context.Context) (map[string]int, error) {
	rows := []struct {
		Department string `db:"department"`
		Count      int    `db:"count"`
	}{}

	query := `
		SELECT department, COUNT(*) AS count
		FROM users
		GROUP BY department
	`

	err := r.db.SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by department: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Department] = row.Count
	}

	return counts, nil
}
