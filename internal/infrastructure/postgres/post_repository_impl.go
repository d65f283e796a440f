package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mygroup/simple-community/internal/domain/entity"
	"github.com/mygroup/simple-community/internal/domain/repository"
)

const postColumns = `p.id, p.title, p.content, p.author_id, u.name, p.created_at, p.modified_at`

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(p *entity.Post) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (title, content, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, modified_at
	`, p.Title, p.Content, p.AuthorID)

	return row.Scan(&p.ID, &p.CreatedAt, &p.ModifiedAt)
}

func (r *PostRepository) GetByID(id int64) (*entity.Post, error) {
	ctx := context.Background()
	p := &entity.Post{}

	row := r.pool.QueryRow(ctx, `
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`, id)

	if err := scanPost(row, p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PostRepository) ListAllDesc() ([]*entity.Post, error) {
	return r.list(`
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		ORDER BY p.id DESC
	`)
}

// ListByTitleDesc matches titles containing keyword, unanchored.
func (r *PostRepository) ListByTitleDesc(keyword string) ([]*entity.Post, error) {
	return r.list(`
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.title LIKE '%' || $1 || '%'
		ORDER BY p.id DESC
	`, keyword)
}

// ListByAuthorDesc matches author display names containing keyword, unanchored.
func (r *PostRepository) ListByAuthorDesc(keyword string) ([]*entity.Post, error) {
	return r.list(`
		SELECT `+postColumns+`
		FROM posts p
		JOIN users u ON u.id = p.author_id
		WHERE u.name LIKE '%' || $1 || '%'
		ORDER BY p.id DESC
	`, keyword)
}

func (r *PostRepository) list(query string, args ...any) ([]*entity.Post, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]*entity.Post, 0)
	for rows.Next() {
		p := &entity.Post{}
		if err := scanPost(rows, p); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Update rewrites title and content and bumps modified_at. The row-level
// now() keeps modified_at monotonic across successive modifies.
func (r *PostRepository) Update(p *entity.Post) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		UPDATE posts
		SET title = $1, content = $2, modified_at = now()
		WHERE id = $3
		RETURNING modified_at
	`, p.Title, p.Content, p.ID)

	if err := row.Scan(&p.ModifiedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

func (r *PostRepository) Delete(id int64) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanPost(row pgx.Row, p *entity.Post) error {
	return row.Scan(&p.ID, &p.Title, &p.Content, &p.AuthorID, &p.AuthorName,
		&p.CreatedAt, &p.ModifiedAt)
}

var _ repository.PostRepository = (*PostRepository)(nil)
