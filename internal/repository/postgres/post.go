package postgres

import (
	"context"

	"github.com/BloggingApp/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, title string, sections []model.Section) (*model.Post, error) {
	post := model.Post{
		Title:    title,
		Sections: sections,
	}
	if err := r.db.QueryRow(
		ctx,
		"INSERT INTO posts(title, sections) VALUES($1, $2) RETURNING id, likes, created_at",
		title,
		sections,
	).Scan(&post.ID, &post.Likes, &post.CreatedAt); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) FindAll(ctx context.Context) ([]*model.Post, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, title, sections, likes, created_at
		FROM posts
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		var post model.Post
		if err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Sections,
			&post.Likes,
			&post.CreatedAt,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		"SELECT id, title, sections, likes, created_at FROM posts WHERE id = $1",
		id,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Sections,
		&post.Likes,
		&post.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) Update(ctx context.Context, id uuid.UUID, title string, sections []model.Section) (*model.Post, error) {
	var post model.Post
	if err := r.db.QueryRow(
		ctx,
		`UPDATE posts SET title = $2, sections = $3
		WHERE id = $1
		RETURNING id, title, sections, likes, created_at`,
		id,
		title,
		sections,
	).Scan(
		&post.ID,
		&post.Title,
		&post.Sections,
		&post.Likes,
		&post.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

// IncrementLikes applies the +1 in a single statement so concurrent likes
// never lose updates.
func (r *postRepo) IncrementLikes(ctx context.Context, id uuid.UUID) (int64, error) {
	var likes int64
	if err := r.db.QueryRow(
		ctx,
		"UPDATE posts SET likes = likes + 1 WHERE id = $1 RETURNING likes",
		id,
	).Scan(&likes); err != nil {
		return 0, err
	}

	return likes, nil
}
