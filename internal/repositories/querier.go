package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier — общий интерфейс для *pgxpool.Pool и pgx.Tx: репозиторные методы,
// которым важна транзакция (проверил -> вставил), принимают его явно.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Querier — экспортированный алиас для сервисного слоя.
type Querier = querier
