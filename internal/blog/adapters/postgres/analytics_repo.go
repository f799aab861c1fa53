package postgres

import (
	"context"
	"time"

	"go.uber.org/zap"

	"blogcore/internal/blog/domain/entities"
	"blogcore/internal/blog/domain/services"
	"blogcore/internal/blog/ports/repositories"
	"blogcore/pkg/logger"
)

// Запросы "для всех X выполнено P" записаны как COUNT(*) > 0 AND SUM(нарушений) = 0:
// хотя бы одна строка есть, и ни одна не нарушает P.
const (
	tagPairQuery = `
        SELECT DISTINCT b1.username
        FROM blogs b1
        JOIN blog_tags t1 ON t1.blogid = b1.blogid
        JOIN blogs b2 ON b2.username = b1.username
            AND b2.blogid <> b1.blogid
            AND (b2.post_date AT TIME ZONE $3)::date = (b1.post_date AT TIME ZONE $3)::date
        JOIN blog_tags t2 ON t2.blogid = b2.blogid
        WHERE strpos(t1.tag, lower($1)) > 0
          AND strpos(t2.tag, lower($2)) > 0
        ORDER BY b1.username
    `

	topAuthorsQuery = `
        WITH daily AS (
            SELECT username, COUNT(*) AS posts
            FROM blogs
            WHERE post_date >= $1 AND post_date < $2
            GROUP BY username
        )
        SELECT username FROM daily
        WHERE posts = (SELECT MAX(posts) FROM daily)
        ORDER BY username
    `

	commonFolloweesQuery = `
        SELECT f1.followee
        FROM follows f1
        JOIN follows f2 ON f2.followee = f1.followee
        WHERE f1.follower = $1 AND f2.follower = $2
        ORDER BY f1.followee
    `

	silentUsersQuery = `
        SELECT u.username
        FROM users u
        LEFT JOIN blogs b ON b.username = u.username
        WHERE b.blogid IS NULL
        ORDER BY u.username
    `

	praisedBlogsQuery = `
        SELECT b.blogid, b.subject
        FROM blogs b
        JOIN comments c ON c.blogid = b.blogid
        WHERE b.username = $1
        GROUP BY b.blogid, b.subject
        HAVING COUNT(*) > 0
           AND SUM(CASE WHEN c.sentiment = 'negative' THEN 1 ELSE 0 END) = 0
        ORDER BY b.blogid
    `

	criticalCommentersQuery = `
        SELECT c.username
        FROM comments c
        GROUP BY c.username
        HAVING COUNT(*) > 0
           AND SUM(CASE WHEN c.sentiment <> 'negative' THEN 1 ELSE 0 END) = 0
        ORDER BY c.username
    `

	unscathedAuthorsQuery = `
        SELECT b.username
        FROM blogs b
        LEFT JOIN comments c ON c.blogid = b.blogid
        GROUP BY b.username
        HAVING COUNT(b.blogid) > 0
           AND SUM(CASE WHEN c.sentiment = 'negative' THEN 1 ELSE 0 END) = 0
        ORDER BY b.username
    `
)

// AnalyticsRepository реализует repositories.AnalyticsRepository для Postgres.
type AnalyticsRepository struct {
	pool PgxPoolInterface
}

// NewAnalyticsRepository создает новый экземпляр аналитического репозитория.
func NewAnalyticsRepository(pool PgxPoolInterface) repositories.AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// UsersWithTagPairSameDay - авторы, у которых в один день есть блог с тегом tagX
// и другой блог с тегом tagY. Теги сравниваются по вхождению подстроки.
func (r *AnalyticsRepository) UsersWithTagPairSameDay(
	ctx context.Context,
	tagX, tagY string,
	loc *time.Location,
) ([]string, error) {
	if loc == nil {
		loc = time.UTC
	}
	return r.usernames(ctx, "UsersWithTagPairSameDay", tagPairQuery, tagX, tagY, loc.String())
}

// TopAuthorsOn - авторы с максимальным числом записей за день, все при равенстве.
func (r *AnalyticsRepository) TopAuthorsOn(ctx context.Context, day services.DayWindow) ([]string, error) {
	return r.usernames(ctx, "TopAuthorsOn", topAuthorsQuery, day.From, day.To)
}

// CommonFollowees - пользователи, на которых подписаны оба.
func (r *AnalyticsRepository) CommonFollowees(ctx context.Context, userX, userY string) ([]string, error) {
	return r.usernames(ctx, "CommonFollowees", commonFolloweesQuery, userX, userY)
}

// SilentUsers - пользователи без единой записи.
func (r *AnalyticsRepository) SilentUsers(ctx context.Context) ([]string, error) {
	return r.usernames(ctx, "SilentUsers", silentUsersQuery)
}

// PraisedBlogsOf - блоги автора, у которых есть комментарии и ни одного негативного.
func (r *AnalyticsRepository) PraisedBlogsOf(ctx context.Context, username string) ([]entities.BlogSummary, error) {
	log := logger.Log(ctx).With(zap.String("repository", "analytics"), zap.String("method", "PraisedBlogsOf"))

	rows, err := r.pool.Query(ctx, praisedBlogsQuery, username)
	if err != nil {
		log.Error(ctx, "error querying praised blogs", zap.Error(err))
		return nil, services.StorageError("error querying praised blogs", err)
	}
	defer rows.Close()

	result := make([]entities.BlogSummary, 0)
	for rows.Next() {
		var summary entities.BlogSummary
		if err := rows.Scan(&summary.ID, &summary.Subject); err != nil {
			log.Error(ctx, "error scanning blog summary", zap.Error(err))
			return nil, services.StorageError("error scanning blog summary", err)
		}
		result = append(result, summary)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating blog summaries", zap.Error(err))
		return nil, services.StorageError("error iterating blog summaries", err)
	}

	return result, nil
}

// CriticalCommenters - пользователи, все комментарии которых негативные.
func (r *AnalyticsRepository) CriticalCommenters(ctx context.Context) ([]string, error) {
	return r.usernames(ctx, "CriticalCommenters", criticalCommentersQuery)
}

// UnscathedAuthors - авторы, ни одна запись которых не получила негативного комментария.
// Записи без комментариев условию удовлетворяют.
func (r *AnalyticsRepository) UnscathedAuthors(ctx context.Context) ([]string, error) {
	return r.usernames(ctx, "UnscathedAuthors", unscathedAuthorsQuery)
}

func (r *AnalyticsRepository) usernames(ctx context.Context, method, query string, args ...any) ([]string, error) {
	log := logger.Log(ctx).With(zap.String("repository", "analytics"), zap.String("method", method))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "error running analytics query", zap.Error(err))
		return nil, services.StorageError("error running "+method, err)
	}

	result, err := scanStrings(rows)
	if err != nil {
		log.Error(ctx, "error reading analytics rows", zap.Error(err))
		return nil, services.StorageError("error reading "+method, err)
	}

	log.Debug(ctx, "analytics query done", zap.Int("rows", len(result)))
	return result, nil
}
