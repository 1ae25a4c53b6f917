package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vibeguard/vibeguard/internal/logger"
	"github.com/vibeguard/vibeguard/internal/middlewares"
	"github.com/vibeguard/vibeguard/internal/models"
	"github.com/vibeguard/vibeguard/internal/services"
)

// PostManager backs the community post endpoints.
type PostManager interface {
	CreatePost(ctx context.Context, userID uuid.UUID, content, imageURL string) (uuid.UUID, error)
	ListPosts(ctx context.Context) ([]models.PostDB, error)
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (int, error)
	AddComment(ctx context.Context, postID, userID uuid.UUID, text string) (*models.PostCommentDB, error)
	RatePost(ctx context.Context, postID, userID uuid.UUID, value int) (float64, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
}

// CreatePostRequest carries a new post
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

// CreatePostResponse returns the new post's ID
// swagger:model CreatePostResponse
type CreatePostResponse struct {
	PostID  uuid.UUID `json:"post_id"`
	Message string    `json:"message"`
}

// CommentRequest carries a new comment
// swagger:model CommentRequest
type CommentRequest struct {
	Text string `json:"text"`
}

// RateRequest carries a 1-5 rating
// swagger:model RateRequest
type RateRequest struct {
	Rating int `json:"rating"`
}

// LikeResponse returns the post's new like count
// swagger:model LikeResponse
type LikeResponse struct {
	LikeCount int `json:"like_count"`
}

// RateResponse returns the post's new average rating
// swagger:model RateResponse
type RateResponse struct {
	AverageRating float64 `json:"average_rating"`
}

// PostDeletedResponse confirms a deleted post
// swagger:model PostDeletedResponse
type PostDeletedResponse struct {
	Message string `json:"message"`
}

// PostErrorResponse is the error payload for post endpoints
// swagger:model PostErrorResponse
type PostErrorResponse struct {
	Error string `json:"error"`
}

func postIDFromRequest(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "id"))
}

// NewCreatePostHandler stores a new post by the caller.
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body handlers.CreatePostRequest true "Post content"
// @Success 201 {object} handlers.CreatePostResponse "Post created"
// @Failure 400 {object} handlers.PostErrorResponse "Empty content"
// @Router /posts [post]
func NewCreatePostHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Invalid request body"})
			return
		}

		postID, err := svc.CreatePost(r.Context(), claims.UserID, req.Content, req.ImageURL)
		if err != nil {
			if errors.Is(err, services.ErrMissingFields) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Post content is required."})
				return
			}
			logger.Log.Errorw("error creating post", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Error creating post"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreatePostResponse{PostID: postID, Message: "Post created successfully"})
	}
}

// NewListPostsHandler returns all posts, newest first.
// @Summary List posts
// @Tags posts
// @Produce json
// @Success 200 {array} models.PostDB "Posts"
// @Failure 500 {object} handlers.PostErrorResponse "Internal server error"
// @Router /posts [get]
func NewListPostsHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := svc.ListPosts(r.Context())
		if err != nil {
			logger.Log.Errorw("error fetching posts", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Error fetching posts"})
			return
		}
		if posts == nil {
			posts = []models.PostDB{}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(posts)
	}
}

// NewToggleLikeHandler likes or unlikes a post for the caller.
// @Summary Toggle like
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} handlers.LikeResponse "New like count"
// @Failure 404 {object} handlers.PostErrorResponse "Post not found"
// @Router /posts/{id}/like [post]
func NewToggleLikeHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		postID, err := postIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Invalid post ID"})
			return
		}

		count, err := svc.ToggleLike(r.Context(), postID, claims.UserID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Post not found."})
				return
			}
			logger.Log.Errorw("error toggling like", "post_id", postID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Error updating like"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LikeResponse{LikeCount: count})
	}
}

// NewAddCommentHandler appends a comment to a post.
// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body handlers.CommentRequest true "Comment text"
// @Success 201 {object} models.PostCommentDB "Stored comment"
// @Failure 400 {object} handlers.PostErrorResponse "Empty comment"
// @Failure 404 {object} handlers.PostErrorResponse "Post not found"
// @Router /posts/{id}/comments [post]
func NewAddCommentHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		postID, err := postIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Invalid post ID"})
			return
		}

		var req CommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Invalid request body"})
			return
		}

		comment, err := svc.AddComment(r.Context(), postID, claims.UserID, req.Text)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Comment text is required."})
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Post not found."})
			default:
				logger.Log.Errorw("error adding comment", "post_id", postID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Error adding comment"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(comment)
	}
}

// NewRatePostHandler stores or replaces the caller's rating.
// @Summary Rate a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Param request body handlers.RateRequest true "Rating 1-5"
// @Success 200 {object} handlers.RateResponse "New average"
// @Failure 400 {object} handlers.PostErrorResponse "Rating out of range"
// @Failure 404 {object} handlers.PostErrorResponse "Post not found"
// @Router /posts/{id}/rate [post]
func NewRatePostHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		postID, err := postIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Invalid post ID"})
			return
		}

		var req RateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Invalid request body"})
			return
		}

		avg, err := svc.RatePost(r.Context(), postID, claims.UserID, req.Rating)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingFields):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Rating must be between 1 and 5."})
			case errors.Is(err, services.ErrNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Post not found."})
			default:
				logger.Log.Errorw("error rating post", "post_id", postID, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Error rating post"})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RateResponse{AverageRating: avg})
	}
}

// NewDeletePostHandler removes a post. Admin only at the route level.
// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} handlers.PostDeletedResponse "Post deleted"
// @Failure 404 {object} handlers.PostErrorResponse "Post not found"
// @Router /admin/posts/{id} [delete]
func NewDeletePostHandler(svc PostManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := postIDFromRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Invalid post ID"})
			return
		}

		if err := svc.DeletePost(r.Context(), postID); err != nil {
			if errors.Is(err, services.ErrNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(PostErrorResponse{Error: "Post not found."})
				return
			}
			logger.Log.Errorw("error deleting post", "post_id", postID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PostErrorResponse{Error: "Error deleting post"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(PostDeletedResponse{Message: "Post deleted successfully"})
	}
}
