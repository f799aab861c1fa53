// Package postgres реализует репозитории блога поверх пула pgx.
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"blogcore/internal/blog/domain/services"
	pgdb "blogcore/pkg/db/postgres"
	"blogcore/pkg/logger"
)

// PgxPoolInterface - подмножество pgxpool.Pool, которым пользуются репозитории.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// rollback откатывает транзакцию, ошибку отката только логирует: исходная ошибка важнее.
func rollback(ctx context.Context, tx pgx.Tx, log *logger.Logger) {
	if err := tx.Rollback(ctx); err != nil {
		log.Warn(ctx, "error rolling back transaction", zap.Error(err))
	}
}

// lockUser блокирует строку пользователя до конца транзакции.
// Параллельные вставки одного пользователя выстраиваются в очередь, и подсчет за день остается точным.
func lockUser(ctx context.Context, tx pgx.Tx, username string) error {
	query := `
        SELECT username FROM users
        WHERE username = $1
        FOR UPDATE
    `

	var locked string
	return tx.QueryRow(ctx, query, username).Scan(&locked)
}

// tooLong превращает ошибку 22001 в ошибку валидации. Для прочих ошибок возвращает nil.
func tooLong(err error) error {
	if pgdb.HasCode(err, pgdb.CodeStringTooLong) {
		return services.NewValidationError("value exceeds column length")
	}
	return nil
}

func scanStrings(rows pgx.Rows) ([]string, error) {
	defer rows.Close()

	result := make([]string, 0)
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, err
		}
		result = append(result, value)
	}

	return result, rows.Err()
}
