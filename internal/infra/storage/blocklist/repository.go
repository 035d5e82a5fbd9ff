package blocklist

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const table = "blocked_clients"

// Repository репозиторий заблокированных телефонов
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert блокирует телефон; повторная блокировка обновляет причину
func (r *Repository) Upsert(ctx context.Context, phone string, reason *string) (*domain.BlockedClient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("phone", "reason").
		Values(phone, reason).
		Suffix("ON CONFLICT (phone) DO UPDATE SET reason = EXCLUDED.reason RETURNING phone, reason, blocked_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	blocked, err := scanBlocked(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return blocked, nil
}

// Delete снимает блокировку; возвращает false, если телефон не был заблокирован
func (r *Repository) Delete(ctx context.Context, phone string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"phone": phone}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// IsBlocked проверяет, заблокирован ли телефон
func (r *Repository) IsBlocked(ctx context.Context, phone string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"phone": phone}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: IsBlocked - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}

// List возвращает все заблокированные телефоны, последние сверху
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedClient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("phone", "reason", "blocked_at").
		From(table).
		OrderBy("blocked_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BlockedClient, 0)
	for rows.Next() {
		blocked, err := scanBlocked(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, blocked)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBlocked(row rowScanner) (*domain.BlockedClient, error) {
	var (
		b      domain.BlockedClient
		reason sql.NullString
	)
	if err := row.Scan(&b.Phone, &reason, &b.BlockedAt); err != nil {
		return nil, err
	}
	if reason.Valid {
		b.Reason = &reason.String
	}
	return &b, nil
}
