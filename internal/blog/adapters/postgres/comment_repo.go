package postgres

import (
	"context"

	"go.uber.org/zap"

	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
	"blogcore/internal/blog/ports/repositories"
	pgdb "blogcore/pkg/db/postgres"
	"blogcore/pkg/logger"
)

const countCommentsQuery = `
        SELECT COUNT(*) FROM comments
        WHERE username = $1 AND comment_date >= $2 AND comment_date < $3
    `

// CommentRepository реализует repositories.CommentRepository для Postgres.
type CommentRepository struct {
	pool PgxPoolInterface
}

// NewCommentRepository создает новый экземпляр репозитория комментариев.
func NewCommentRepository(pool PgxPoolInterface) repositories.CommentRepository {
	return &CommentRepository{pool: pool}
}

// CountByUser считает комментарии пользователя за день.
func (r *CommentRepository) CountByUser(ctx context.Context, username string, window services.DayWindow) (int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "comment"), zap.String("method", "CountByUser"))

	var count int
	if err := r.pool.QueryRow(ctx, countCommentsQuery, username, window.From, window.To).Scan(&count); err != nil {
		log.Error(ctx, "error counting comments", zap.Error(err))
		return 0, services.StorageError("error counting comments", err)
	}

	return count, nil
}

// Exists проверяет, комментировал ли пользователь блог.
func (r *CommentRepository) Exists(ctx context.Context, username string, blogID int64) (bool, error) {
	log := logger.Log(ctx).With(zap.String("repository", "comment"), zap.String("method", "Exists"))

	query := `
        SELECT EXISTS (SELECT 1 FROM comments WHERE blogid = $1 AND username = $2)
    `

	var exists bool
	if err := r.pool.QueryRow(ctx, query, blogID, username).Scan(&exists); err != nil {
		log.Error(ctx, "error checking comment", zap.Error(err))
		return false, services.StorageError("error checking comment", err)
	}

	return exists, nil
}

// Create проверяет дневной лимит и вставляет комментарий в одной транзакции.
func (r *CommentRepository) Create(ctx context.Context, comment *entities.Comment, quota services.Quota) error {
	log := logger.Log(ctx).With(
		zap.String("repository", "comment"),
		zap.String("method", "Create"),
		zap.String("username", comment.Username),
		zap.Int64("blogid", comment.BlogID),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return services.StorageError("error starting transaction", err)
	}

	if err := lockUser(ctx, tx, comment.Username); err != nil {
		rollback(ctx, tx, log)
		if pgdb.IsNoRows(err) {
			log.Debug(ctx, "commenter not found")
			return entities.ErrUserNotFound
		}
		log.Error(ctx, "error locking commenter", zap.Error(err))
		return services.StorageError("error locking commenter", err)
	}

	var count int
	if err := tx.QueryRow(ctx, countCommentsQuery, comment.Username, quota.Window.From, quota.Window.To).Scan(&count); err != nil {
		rollback(ctx, tx, log)
		log.Error(ctx, "error counting comments", zap.Error(err))
		return services.StorageError("error counting comments", err)
	}

	if !quota.Allows(count) {
		rollback(ctx, tx, log)
		log.Debug(ctx, "daily comment limit reached", zap.Int("count", count))
		return services.ErrRateLimitExceeded
	}

	insert := `
        INSERT INTO comments (blogid, username, sentiment, comment_text, comment_date)
        VALUES ($1, $2, $3, $4, $5)
    `

	_, err = tx.Exec(ctx, insert,
		comment.BlogID,
		comment.Username,
		string(comment.Sentiment),
		comment.Text,
		comment.CommentDate,
	)
	if err != nil {
		rollback(ctx, tx, log)
		if _, ok := pgdb.ConstraintViolation(err, pgdb.CodeUniqueViolation); ok {
			log.Debug(ctx, "comment already exists")
			return services.ErrDuplicateComment
		}
		if _, ok := pgdb.ConstraintViolation(err, pgdb.CodeForeignKeyViolation); ok {
			log.Debug(ctx, "blog vanished before comment insert")
			return services.ErrBlogNotFound
		}
		if verr := tooLong(err); verr != nil {
			log.Debug(ctx, "comment field too long", zap.Error(err))
			return verr
		}
		log.Error(ctx, "error inserting comment", zap.Error(err))
		return services.StorageError("error inserting comment", err)
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing comment", zap.Error(err))
		return services.StorageError("error committing comment", err)
	}

	return nil
}

// ListByBlog возвращает комментарии к блогу, новые первыми.
func (r *CommentRepository) ListByBlog(ctx context.Context, blogID int64) ([]*entities.Comment, error) {
	log := logger.Log(ctx).With(zap.String("repository", "comment"), zap.String("method", "ListByBlog"))

	query := `
        SELECT blogid, username, sentiment, comment_text, comment_date
        FROM comments
        WHERE blogid = $1
        ORDER BY comment_date DESC, commentid DESC
    `

	rows, err := r.pool.Query(ctx, query, blogID)
	if err != nil {
		log.Error(ctx, "error querying comments", zap.Error(err))
		return nil, services.StorageError("error querying comments", err)
	}
	defer rows.Close()

	comments := make([]*entities.Comment, 0)
	for rows.Next() {
		var (
			comment   entities.Comment
			sentiment string
		)
		if err := rows.Scan(
			&comment.BlogID,
			&comment.Username,
			&sentiment,
			&comment.Text,
			&comment.CommentDate,
		); err != nil {
			log.Error(ctx, "error scanning comment row", zap.Error(err))
			return nil, services.StorageError("error scanning comment row", err)
		}
		comment.Sentiment = entities.Sentiment(sentiment)
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating comment rows", zap.Error(err))
		return nil, services.StorageError("error iterating comment rows", err)
	}

	return comments, nil
}
