package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/models"
)

// PostStore persists posts and their likes, comments and ratings.
type PostStore interface {
	Create(ctx context.Context, userID uuid.UUID, content, imageURL string) (uuid.UUID, error)
	Exists(ctx context.Context, postID uuid.UUID) (bool, error)
	List(ctx context.Context) ([]models.PostDB, error)
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (int, error)
	AddComment(ctx context.Context, postID, userID uuid.UUID, text string) (*models.PostCommentDB, error)
	Rate(ctx context.Context, postID, userID uuid.UUID, value int) (float64, error)
	Delete(ctx context.Context, postID uuid.UUID) (bool, error)
}

// FeedbackStore persists user feedback.
type FeedbackStore interface {
	Create(ctx context.Context, userID uuid.UUID, name, text string) error
	List(ctx context.Context, limit, offset int) ([]models.FeedbackDB, int, error)
}

// CommunityService backs the social posts and feedback features.
type CommunityService struct {
	posts    PostStore
	feedback FeedbackStore
	users    UserReader
}

// NewCommunityService creates a new CommunityService.
func NewCommunityService(posts PostStore, feedback FeedbackStore, users UserReader) *CommunityService {
	return &CommunityService{
		posts:    posts,
		feedback: feedback,
		users:    users,
	}
}

// CreatePost stores a new post.
func (svc *CommunityService) CreatePost(ctx context.Context, userID uuid.UUID, content, imageURL string) (uuid.UUID, error) {
	if content == "" {
		return uuid.Nil, ErrMissingFields
	}
	return svc.posts.Create(ctx, userID, content, imageURL)
}

// ListPosts returns all posts, newest first.
func (svc *CommunityService) ListPosts(ctx context.Context) ([]models.PostDB, error) {
	return svc.posts.List(ctx)
}

// ToggleLike likes or unlikes a post and returns the new count.
func (svc *CommunityService) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (int, error) {
	exists, err := svc.posts.Exists(ctx, postID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrNotFound
	}
	return svc.posts.ToggleLike(ctx, postID, userID)
}

// AddComment appends a comment to a post.
func (svc *CommunityService) AddComment(ctx context.Context, postID, userID uuid.UUID, text string) (*models.PostCommentDB, error) {
	if text == "" {
		return nil, ErrMissingFields
	}
	exists, err := svc.posts.Exists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return svc.posts.AddComment(ctx, postID, userID, text)
}

// RatePost stores or replaces the user's rating and returns the new
// average. The write is an atomic upsert keyed on (post, user).
func (svc *CommunityService) RatePost(ctx context.Context, postID, userID uuid.UUID, value int) (float64, error) {
	if value < 1 || value > 5 {
		return 0, ErrMissingFields
	}
	exists, err := svc.posts.Exists(ctx, postID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, ErrNotFound
	}
	return svc.posts.Rate(ctx, postID, userID, value)
}

// DeletePost removes a post (admin only at the route level).
func (svc *CommunityService) DeletePost(ctx context.Context, postID uuid.UUID) error {
	deleted, err := svc.posts.Delete(ctx, postID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// CreateFeedback stores feedback, capturing the submitter's display name.
func (svc *CommunityService) CreateFeedback(ctx context.Context, userID uuid.UUID, text string) error {
	if text == "" {
		return ErrMissingFields
	}

	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserDoesNotExist
	}

	name := user.Username
	if name == "" {
		name = user.Email
	}
	return svc.feedback.Create(ctx, userID, name, text)
}

// ListFeedback returns one page of feedback, newest first.
func (svc *CommunityService) ListFeedback(ctx context.Context, page, limit int) ([]models.FeedbackDB, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return svc.feedback.List(ctx, limit, (page-1)*limit)
}
