package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vibeguard/vibeguard/internal/models"
)

type PostRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create stores a new post.
func (r *PostRepository) Create(ctx context.Context, userID uuid.UUID, content, imageURL string) (uuid.UUID, error) {
	const query = `
		INSERT INTO posts (post_id, user_id, content, image_url, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	postID := uuid.New()
	if _, err := ext(ctx, r.db).ExecContext(ctx, query, postID, userID, content, imageURL); err != nil {
		return uuid.Nil, err
	}
	return postID, nil
}

// Exists reports whether a post is present.
func (r *PostRepository) Exists(ctx context.Context, postID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM posts WHERE post_id = $1)`

	var exists bool
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &exists, query, postID); err != nil {
		return false, err
	}
	return exists, nil
}

// List returns all posts, newest first.
func (r *PostRepository) List(ctx context.Context) ([]models.PostDB, error) {
	const query = `
		SELECT post_id, user_id, content, image_url, like_count, average_rating, created_at
		FROM posts
		ORDER BY created_at DESC
	`

	var posts []models.PostDB
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &posts, query); err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleLike likes the post for the user, or removes the like when one
// exists. Returns the new like count.
func (r *PostRepository) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (int, error) {
	e := ext(ctx, r.db)

	res, err := e.ExecContext(ctx,
		`INSERT INTO post_likes (post_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		postID, userID)
	if err != nil {
		return 0, err
	}

	inserted, _ := res.RowsAffected()
	if inserted == 0 {
		if _, err := e.ExecContext(ctx,
			`DELETE FROM post_likes WHERE post_id = $1 AND user_id = $2`, postID, userID); err != nil {
			return 0, err
		}
	}

	const recount = `
		UPDATE posts
		SET like_count = (SELECT COUNT(*) FROM post_likes WHERE post_id = $1)
		WHERE post_id = $1
		RETURNING like_count
	`
	var count int
	if err := sqlx.GetContext(ctx, e, &count, recount, postID); err != nil {
		return 0, err
	}
	return count, nil
}

// AddComment appends a comment and returns it.
func (r *PostRepository) AddComment(ctx context.Context, postID, userID uuid.UUID, text string) (*models.PostCommentDB, error) {
	const query = `
		INSERT INTO post_comments (comment_id, post_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING comment_id, post_id, user_id, text, created_at
	`

	var comment models.PostCommentDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &comment, query, uuid.New(), postID, userID, text)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Rate stores or replaces the user's rating for a post in one atomic
// upsert and returns the recomputed average.
func (r *PostRepository) Rate(ctx context.Context, postID, userID uuid.UUID, value int) (float64, error) {
	e := ext(ctx, r.db)

	const upsert = `
		INSERT INTO post_ratings (post_id, user_id, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (post_id, user_id) DO UPDATE SET value = EXCLUDED.value
	`
	if _, err := e.ExecContext(ctx, upsert, postID, userID, value); err != nil {
		return 0, err
	}

	const recompute = `
		UPDATE posts
		SET average_rating = COALESCE((SELECT AVG(value) FROM post_ratings WHERE post_id = $1), 0)
		WHERE post_id = $1
		RETURNING average_rating
	`
	var avg float64
	if err := sqlx.GetContext(ctx, e, &avg, recompute, postID); err != nil {
		return 0, err
	}
	return avg, nil
}

// Delete removes a post. Returns false when it did not exist.
func (r *PostRepository) Delete(ctx context.Context, postID uuid.UUID) (bool, error) {
	const query = `DELETE FROM posts WHERE post_id = $1`

	res, err := ext(ctx, r.db).ExecContext(ctx, query, postID)
	if err != nil {
		return false, err
	}
	deleted, _ := res.RowsAffected()
	return deleted > 0, nil
}

type FeedbackRepository struct {
	db *sqlx.DB
}

func NewFeedbackRepository(db *sqlx.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

// Create stores feedback with the submitter's display name captured.
func (r *FeedbackRepository) Create(ctx context.Context, userID uuid.UUID, name, text string) error {
	const query = `
		INSERT INTO feedbacks (feedback_id, user_id, name, feedback, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	_, err := ext(ctx, r.db).ExecContext(ctx, query, uuid.New(), userID, name, text)
	return err
}

// List returns a page of feedback, newest first, with the total count.
func (r *FeedbackRepository) List(ctx context.Context, limit, offset int) ([]models.FeedbackDB, int, error) {
	const query = `
		SELECT feedback_id, user_id, name, feedback, created_at
		FROM feedbacks
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	var items []models.FeedbackDB
	err := sqlx.SelectContext(ctx, ext(ctx, r.db), &items, query, limit, offset)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, 0, err
	}

	var total int
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &total, `SELECT COUNT(*) FROM feedbacks`); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
