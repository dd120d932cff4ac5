package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/database/postgres"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
)

const performanceTable = "performance"

const performanceColumns = "id, district_id, year, month, person_days, households_worked, total_wages, material_expenditure, created_at, updated_at"

type PerformanceRepository interface {
	Upsert(ctx context.Context, districtID, year, month int, metrics domain.PerformanceMetrics) (bool, error)
	GetByDistrictPeriod(ctx context.Context, districtID, year, month int) (*domain.Performance, error)
	LatestByDistrict(ctx context.Context, districtID int) (*domain.Performance, error)
	GetHistory(ctx context.Context, districtID, fromYear, fromMonth, toYear, toMonth int) ([]*domain.Performance, error)
	StateAverages(ctx context.Context, state string, year, month int) (*domain.StateAverages, error)
	CompareByMetric(ctx context.Context, districtIDs []int, column string, year, month int) ([]domain.ComparisonEntry, error)
}

type performanceRepository struct {
	conn *postgres.Connection
}

func NewPerformanceRepository(conn *postgres.Connection) PerformanceRepository {
	return &performanceRepository{
		conn: conn,
	}
}

// Upsert writes one snapshot keyed by (district_id, year, month) in a single
// atomic statement. The composite uniqueness constraint resolves concurrent
// duplicate inserts into the update arm. Returns whether a new row was
// inserted (as opposed to overwritten).
func (r *performanceRepository) Upsert(ctx context.Context, districtID, year, month int, metrics domain.PerformanceMetrics) (bool, error) {
	query := squirrel.StatementBuilder.
		Insert(performanceTable).
		Columns("district_id", "year", "month", "person_days", "households_worked", "total_wages", "material_expenditure").
		Values(
			districtID,
			year,
			month,
			metrics.PersonDays,
			metrics.HouseholdsWorked,
			metrics.TotalWages,
			metrics.MaterialExpenditure,
		).
		Suffix(`
			ON CONFLICT (district_id, year, month) DO UPDATE SET
				person_days = EXCLUDED.person_days,
				households_worked = EXCLUDED.households_worked,
				total_wages = EXCLUDED.total_wages,
				material_expenditure = EXCLUDED.material_expenditure,
				updated_at = NOW()
			RETURNING (xmax = 0) AS inserted
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building query: %w", err)
	}

	var inserted bool
	err = r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&inserted)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return false, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}

	return inserted, nil
}

func (r *performanceRepository) GetByDistrictPeriod(ctx context.Context, districtID, year, month int) (*domain.Performance, error) {
	query, args, err := squirrel.
		Select(performanceColumns).
		From(performanceTable).
		Where(squirrel.Eq{"district_id": districtID, "year": year, "month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	perf := &domain.Performance{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&perf.ID,
		&perf.DistrictID,
		&perf.Year,
		&perf.Month,
		&perf.PersonDays,
		&perf.HouseholdsWorked,
		&perf.TotalWages,
		&perf.MaterialExpenditure,
		&perf.CreatedAt,
		&perf.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning performance: %w", err)
	}

	return perf, nil
}

// LatestByDistrict returns the most recent snapshot for a district, or nil
// when the district has no data yet.
func (r *performanceRepository) LatestByDistrict(ctx context.Context, districtID int) (*domain.Performance, error) {
	query, args, err := squirrel.
		Select(performanceColumns).
		From(performanceTable).
		Where(squirrel.Eq{"district_id": districtID}).
		OrderBy("year DESC", "month DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	perf := &domain.Performance{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&perf.ID,
		&perf.DistrictID,
		&perf.Year,
		&perf.Month,
		&perf.PersonDays,
		&perf.HouseholdsWorked,
		&perf.TotalWages,
		&perf.MaterialExpenditure,
		&perf.CreatedAt,
		&perf.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning performance: %w", err)
	}

	return perf, nil
}

// GetHistory returns the snapshots between (fromYear, fromMonth) and
// (toYear, toMonth) inclusive, oldest first.
func (r *performanceRepository) GetHistory(ctx context.Context, districtID, fromYear, fromMonth, toYear, toMonth int) ([]*domain.Performance, error) {
	query, args, err := squirrel.
		Select(performanceColumns).
		From(performanceTable).
		Where(squirrel.Eq{"district_id": districtID}).
		Where(squirrel.Or{
			squirrel.Gt{"year": fromYear},
			squirrel.And{squirrel.Eq{"year": fromYear}, squirrel.GtOrEq{"month": fromMonth}},
		}).
		Where(squirrel.Or{
			squirrel.Lt{"year": toYear},
			squirrel.And{squirrel.Eq{"year": toYear}, squirrel.LtOrEq{"month": toMonth}},
		}).
		OrderBy("year ASC", "month ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	history := make([]*domain.Performance, 0)
	for rows.Next() {
		perf := &domain.Performance{}
		err := rows.Scan(
			&perf.ID,
			&perf.DistrictID,
			&perf.Year,
			&perf.Month,
			&perf.PersonDays,
			&perf.HouseholdsWorked,
			&perf.TotalWages,
			&perf.MaterialExpenditure,
			&perf.CreatedAt,
			&perf.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning performance history: %w", err)
		}
		history = append(history, perf)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating performance rows: %w", err)
	}

	return history, nil
}

// StateAverages aggregates per-metric means over every district of a state
// for one period. Averages are nil when the state has no rows for the period.
func (r *performanceRepository) StateAverages(ctx context.Context, state string, year, month int) (*domain.StateAverages, error) {
	query, args, err := squirrel.
		Select(
			"AVG(p.person_days)",
			"AVG(p.households_worked)",
			"AVG(p.total_wages)",
		).
		From(performanceTable + " p").
		Join(districtsTable + " d ON d.id = p.district_id").
		Where(squirrel.Eq{"d.state": state, "p.year": year, "p.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	averages := &domain.StateAverages{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&averages.PersonDays,
		&averages.HouseholdsWorked,
		&averages.TotalWages,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return &domain.StateAverages{}, nil
		}
		return nil, fmt.Errorf("error scanning state averages: %w", err)
	}

	return averages, nil
}

// CompareByMetric fetches one period's snapshots for the given districts
// ordered by the metric column descending. column must come from
// domain.ComparisonMetrics; it is never caller input.
func (r *performanceRepository) CompareByMetric(ctx context.Context, districtIDs []int, column string, year, month int) ([]domain.ComparisonEntry, error) {
	query, args, err := squirrel.
		Select("d.id", "d.name", "d.state", "p."+column).
		From(performanceTable + " p").
		Join(districtsTable + " d ON d.id = p.district_id").
		Where(squirrel.Eq{"p.district_id": districtIDs, "p.year": year, "p.month": month}).
		OrderBy("p." + column + " DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.ComparisonEntry, 0)
	for rows.Next() {
		var entry domain.ComparisonEntry
		if err := rows.Scan(&entry.ID, &entry.Name, &entry.State, &entry.Value); err != nil {
			return nil, fmt.Errorf("error scanning comparison rows: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comparison rows: %w", err)
	}

	return entries, nil
}
