package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/database/postgres"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
)

const districtsTable = "district"

const districtColumns = "id, name, code, state, population, lat, lon, created_at, updated_at"

type DistrictRepository interface {
	GetByID(ctx context.Context, id int) (*domain.District, error)
	GetByCode(ctx context.Context, code string) (*domain.District, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filters domain.DistrictFilters) ([]*domain.District, error)
}

type districtRepository struct {
	conn *postgres.Connection
}

func NewDistrictRepository(conn *postgres.Connection) DistrictRepository {
	return &districtRepository{
		conn: conn,
	}
}

func (r *districtRepository) GetByID(ctx context.Context, id int) (*domain.District, error) {
	query, args, err := squirrel.
		Select(districtColumns).
		From(districtsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	district, err := r.scanDistrict(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning district: %w", err)
	}

	return district, nil
}

func (r *districtRepository) GetByCode(ctx context.Context, code string) (*domain.District, error) {
	query, args, err := squirrel.
		Select(districtColumns).
		From(districtsTable).
		Where(squirrel.Eq{"code": code}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	district, err := r.scanDistrict(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning district: %w", err)
	}

	return district, nil
}

func (r *districtRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(districtsTable).
		Where(squirrel.Eq{"code": code}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("error building query: %w", err)
	}

	var one int
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&one)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error checking district code: %w", err)
	}

	return true, nil
}

func (r *districtRepository) List(ctx context.Context, filters domain.DistrictFilters) ([]*domain.District, error) {
	builder := squirrel.
		Select(districtColumns).
		From(districtsTable).
		OrderBy("state ASC", "name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filters.State != "" {
		builder = builder.Where(squirrel.Expr("LOWER(state) = LOWER(?)", filters.State))
	}

	if filters.Name != "" {
		builder = builder.Where(squirrel.ILike{"name": "%" + filters.Name + "%"})
	}

	if filters.Code != "" {
		builder = builder.Where(squirrel.Expr("LOWER(code) = LOWER(?)", filters.Code))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	districts := make([]*domain.District, 0)
	for rows.Next() {
		district := &domain.District{}
		err := rows.Scan(
			&district.ID,
			&district.Name,
			&district.Code,
			&district.State,
			&district.Population,
			&district.Lat,
			&district.Lon,
			&district.CreatedAt,
			&district.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning districts: %w", err)
		}
		districts = append(districts, district)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating district rows: %w", err)
	}

	return districts, nil
}

func (r *districtRepository) scanDistrict(row *sql.Row) (*domain.District, error) {
	district := &domain.District{}

	err := row.Scan(
		&district.ID,
		&district.Name,
		&district.Code,
		&district.State,
		&district.Population,
		&district.Lat,
		&district.Lon,
		&district.CreatedAt,
		&district.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return district, nil
}
