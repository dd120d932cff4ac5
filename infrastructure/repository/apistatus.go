package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/im-AtharvaWarankar/MGNREGA-Insight/infrastructure/database/postgres"
	"github.com/im-AtharvaWarankar/MGNREGA-Insight/internal/domain"
)

const apiStatusTable = "api_status"

// APIStatusRepository is the append-only audit log of sync runs. Create opens
// a run's row in progress; Finalize writes its terminal state exactly once;
// rows of past runs are never mutated.
type APIStatusRepository interface {
	Create(ctx context.Context, source, message string) (*domain.APIStatus, error)
	Finalize(ctx context.Context, id int, status, message string, lastFetched *time.Time, processed, failed int) error
	LatestBySource(ctx context.Context, source string) (*domain.APIStatus, error)
}

type apiStatusRepository struct {
	conn *postgres.Connection
}

func NewAPIStatusRepository(conn *postgres.Connection) APIStatusRepository {
	return &apiStatusRepository{
		conn: conn,
	}
}

func (r *apiStatusRepository) Create(ctx context.Context, source, message string) (*domain.APIStatus, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(apiStatusTable).
		Columns("source", "status", "message").
		Values(source, domain.SyncStatusInProgress, message).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	status := &domain.APIStatus{
		Source:  source,
		Status:  domain.SyncStatusInProgress,
		Message: message,
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&status.ID, &status.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating api status: %w", err)
	}

	return status, nil
}

func (r *apiStatusRepository) Finalize(ctx context.Context, id int, status, message string, lastFetched *time.Time, processed, failed int) error {
	builder := squirrel.
		Update(apiStatusTable).
		Set("status", status).
		Set("message", message).
		Set("records_processed", processed).
		Set("records_failed", failed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	if lastFetched != nil {
		builder = builder.Set("last_fetched", *lastFetched)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("error finalizing api status: %w", err)
	}

	return nil
}

func (r *apiStatusRepository) LatestBySource(ctx context.Context, source string) (*domain.APIStatus, error) {
	query, args, err := squirrel.
		Select("id, source, status, last_fetched, message, records_processed, records_failed, created_at, updated_at").
		From(apiStatusTable).
		Where(squirrel.Eq{"source": source}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	status := &domain.APIStatus{}
	var message sql.NullString

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&status.ID,
		&status.Source,
		&status.Status,
		&status.LastFetched,
		&message,
		&status.RecordsProcessed,
		&status.RecordsFailed,
		&status.CreatedAt,
		&status.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning api status: %w", err)
	}

	status.Message = message.String

	return status, nil
}
