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

const countBlogsQuery = `
        SELECT COUNT(*) FROM blogs
        WHERE username = $1 AND post_date >= $2 AND post_date < $3
    `

// BlogRepository реализует repositories.BlogRepository для Postgres.
type BlogRepository struct {
	pool PgxPoolInterface
}

// NewBlogRepository создает новый экземпляр репозитория блогов.
func NewBlogRepository(pool PgxPoolInterface) repositories.BlogRepository {
	return &BlogRepository{pool: pool}
}

// CountByAuthor считает записи автора за день.
func (r *BlogRepository) CountByAuthor(ctx context.Context, username string, window services.DayWindow) (int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "blog"), zap.String("method", "CountByAuthor"))

	var count int
	if err := r.pool.QueryRow(ctx, countBlogsQuery, username, window.From, window.To).Scan(&count); err != nil {
		log.Error(ctx, "error counting blogs", zap.Error(err))
		return 0, services.StorageError("error counting blogs", err)
	}

	return count, nil
}

// CreateWithTags записывает блог и теги одной транзакцией.
func (r *BlogRepository) CreateWithTags(ctx context.Context, blog *entities.Blog, quota services.Quota) (int64, error) {
	log := logger.Log(ctx).With(
		zap.String("repository", "blog"),
		zap.String("method", "CreateWithTags"),
		zap.String("username", blog.Username),
	)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		log.Error(ctx, "error starting transaction", zap.Error(err))
		return 0, services.StorageError("error starting transaction", err)
	}

	if err := lockUser(ctx, tx, blog.Username); err != nil {
		rollback(ctx, tx, log)
		if pgdb.IsNoRows(err) {
			log.Debug(ctx, "author not found")
			return 0, entities.ErrUserNotFound
		}
		log.Error(ctx, "error locking author", zap.Error(err))
		return 0, services.StorageError("error locking author", err)
	}

	var count int
	if err := tx.QueryRow(ctx, countBlogsQuery, blog.Username, quota.Window.From, quota.Window.To).Scan(&count); err != nil {
		rollback(ctx, tx, log)
		log.Error(ctx, "error counting blogs", zap.Error(err))
		return 0, services.StorageError("error counting blogs", err)
	}

	if !quota.Allows(count) {
		rollback(ctx, tx, log)
		log.Debug(ctx, "daily blog limit reached", zap.Int("count", count))
		return 0, services.ErrRateLimitExceeded
	}

	insertBlog := `
        INSERT INTO blogs (username, subject, description, post_date)
        VALUES ($1, $2, $3, $4)
        RETURNING blogid
    `

	var id int64
	err = tx.QueryRow(ctx, insertBlog, blog.Username, blog.Subject, blog.Description, blog.PostDate).Scan(&id)
	if err != nil {
		rollback(ctx, tx, log)
		if verr := tooLong(err); verr != nil {
			log.Debug(ctx, "blog field too long", zap.Error(err))
			return 0, verr
		}
		log.Error(ctx, "error inserting blog", zap.Error(err))
		return 0, services.StorageError("error inserting blog", err)
	}

	if len(blog.Tags) > 0 {
		insertTags := `
        INSERT INTO blog_tags (blogid, tag)
        SELECT $1, unnest($2::text[])
    `
		if _, err := tx.Exec(ctx, insertTags, id, blog.Tags); err != nil {
			rollback(ctx, tx, log)
			if verr := tooLong(err); verr != nil {
				log.Debug(ctx, "tag too long", zap.Error(err))
				return 0, verr
			}
			log.Error(ctx, "error inserting tags", zap.Error(err))
			return 0, services.StorageError("error inserting tags", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		log.Error(ctx, "error committing blog", zap.Error(err))
		return 0, services.StorageError("error committing blog", err)
	}

	log.Debug(ctx, "blog created", zap.Int64("blogid", id), zap.Int("tags", len(blog.Tags)))
	return id, nil
}

// FindByID возвращает блог с тегами в лексическом порядке.
func (r *BlogRepository) FindByID(ctx context.Context, id int64) (*entities.Blog, error) {
	log := logger.Log(ctx).With(zap.String("repository", "blog"), zap.String("method", "FindByID"))

	query := `
        SELECT b.blogid, b.username, b.subject, b.description, b.post_date,
               COALESCE(array_agg(t.tag ORDER BY t.tag) FILTER (WHERE t.tag IS NOT NULL), '{}')
        FROM blogs b
        LEFT JOIN blog_tags t ON t.blogid = b.blogid
        WHERE b.blogid = $1
        GROUP BY b.blogid
    `

	var blog entities.Blog
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&blog.ID,
		&blog.Username,
		&blog.Subject,
		&blog.Description,
		&blog.PostDate,
		&blog.Tags,
	)
	if err != nil {
		if pgdb.IsNoRows(err) {
			log.Debug(ctx, "blog not found", zap.Int64("blogid", id))
			return nil, nil
		}
		log.Error(ctx, "error finding blog", zap.Error(err))
		return nil, services.StorageError("error querying blog", err)
	}

	return &blog, nil
}

// FindAuthor возвращает имя автора блога.
func (r *BlogRepository) FindAuthor(ctx context.Context, id int64) (string, error) {
	log := logger.Log(ctx).With(zap.String("repository", "blog"), zap.String("method", "FindAuthor"))

	query := `
        SELECT username FROM blogs
        WHERE blogid = $1
    `

	var author string
	if err := r.pool.QueryRow(ctx, query, id).Scan(&author); err != nil {
		if pgdb.IsNoRows(err) {
			log.Debug(ctx, "blog not found", zap.Int64("blogid", id))
			return "", services.ErrBlogNotFound
		}
		log.Error(ctx, "error finding blog author", zap.Error(err))
		return "", services.StorageError("error querying blog author", err)
	}

	return author, nil
}

// SearchByTag возвращает блоги с точным совпадением тега, новые первыми.
func (r *BlogRepository) SearchByTag(ctx context.Context, tag string) ([]*entities.Blog, error) {
	log := logger.Log(ctx).With(zap.String("repository", "blog"), zap.String("method", "SearchByTag"))

	query := `
        SELECT b.blogid, b.username, b.subject, b.description, b.post_date,
               array_agg(t.tag ORDER BY t.tag)
        FROM blogs b
        JOIN blog_tags t ON t.blogid = b.blogid
        WHERE b.blogid IN (SELECT blogid FROM blog_tags WHERE tag = lower($1))
        GROUP BY b.blogid
        ORDER BY b.post_date DESC, b.blogid DESC
    `

	rows, err := r.pool.Query(ctx, query, tag)
	if err != nil {
		log.Error(ctx, "error searching blogs by tag", zap.Error(err))
		return nil, services.StorageError("error searching blogs by tag", err)
	}
	defer rows.Close()

	blogs := make([]*entities.Blog, 0)
	for rows.Next() {
		var blog entities.Blog
		if err := rows.Scan(
			&blog.ID,
			&blog.Username,
			&blog.Subject,
			&blog.Description,
			&blog.PostDate,
			&blog.Tags,
		); err != nil {
			log.Error(ctx, "error scanning blog row", zap.Error(err))
			return nil, services.StorageError("error scanning blog row", err)
		}
		blogs = append(blogs, &blog)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating blog rows", zap.Error(err))
		return nil, services.StorageError("error iterating blog rows", err)
	}

	return blogs, nil
}
