package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/safety_incident_tracker/internal/identifier"
)

// querier - общий интерфейс пула и транзакции
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// nextID атомарно увеличивает счетчик пространства имен и возвращает новый идентификатор.
// Вызывается внутри транзакции, создающей запись: при откате номер не расходуется.
func nextID(ctx context.Context, q querier, prefix identifier.Prefix) (string, error) {
	query := `
		INSERT INTO id_counters (namespace, value)
		VALUES ($1, 1)
		ON CONFLICT (namespace) DO UPDATE SET value = id_counters.value + 1
		RETURNING value;
	`
	var n int
	if err := q.QueryRow(ctx, query, string(prefix)).Scan(&n); err != nil {
		return "", fmt.Errorf("failed to allocate %s identifier: %w", prefix, err)
	}
	return identifier.Format(prefix, n), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
