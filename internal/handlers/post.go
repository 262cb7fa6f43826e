package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/amnafatimaa/blog-app/internal/services"
	"github.com/amnafatimaa/blog-app/internal/store"
	"github.com/amnafatimaa/blog-app/types"
	"github.com/go-chi/chi/v5"
)

// PostHandler provides HTTP handlers for posts.
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler constructs a handler with the provided service.
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// PostRouter registers post routes on the given router. Reads are public;
// mutations require authentication.
func PostRouter(r chi.Router, postService *services.PostService, authMiddleware func(http.Handler) http.Handler) {
	handler := NewPostHandler(postService)

	r.Get("/", handler.ListPosts)
	r.With(authMiddleware).Post("/", handler.CreatePost)
	r.Route("/{postID}", func(r chi.Router) {
		r.Get("/", handler.GetPost)
		r.With(authMiddleware).Put("/", handler.UpdatePost)
		r.With(authMiddleware).Delete("/", handler.DeletePost)
	})
}

func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := parseListParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := h.postService.List(r.Context(), skip, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}

	writeJSON(w, http.StatusOK, posts)
}

func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch post")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	callerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w, "not authenticated")
		return
	}

	req, err := decodePostBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postService.Create(r.Context(), req.Title, req.Content, callerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create post")
		return
	}

	writeJSON(w, http.StatusOK, post)
}

func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := decodePostBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := h.lookupOwned(w, r, id); !ok {
		return
	}

	updated, err := h.postService.Update(r.Context(), id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update post")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parsePostID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, ok := h.lookupOwned(w, r, id); !ok {
		return
	}

	if _, err := h.postService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete post")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted"})
}

// lookupOwned fetches the post and enforces ownership, writing the 401/404/403
// response itself when the check fails.
func (h *PostHandler) lookupOwned(w http.ResponseWriter, r *http.Request, id int) (types.Post, bool) {
	callerID, err := userIDFromContext(r.Context())
	if err != nil {
		writeUnauthorized(w, "not authenticated")
		return types.Post{}, false
	}

	post, err := h.postService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "post not found")
			return types.Post{}, false
		}
		writeError(w, http.StatusInternalServerError, "failed to fetch post")
		return types.Post{}, false
	}

	if !ownedBy(post, callerID) {
		writeError(w, http.StatusForbidden, "not the post owner")
		return types.Post{}, false
	}
	return post, true
}

// ownedBy reports whether userID is the post's owner.
func ownedBy(post types.Post, userID int) bool {
	return post.AuthorID == userID
}

// PostUpsertRequest is the JSON payload for creating or updating a post.
type PostUpsertRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func decodePostBody(r *http.Request) (PostUpsertRequest, error) {
	var req PostUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return PostUpsertRequest{}, errors.New("invalid request")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return PostUpsertRequest{}, errors.New("title is required")
	}
	if req.Content == "" {
		return PostUpsertRequest{}, errors.New("content is required")
	}
	return req, nil
}

func parseListParams(r *http.Request) (skip, limit int, err error) {
	if raw := strings.TrimSpace(r.URL.Query().Get("skip")); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return 0, 0, errors.New("invalid skip")
		}
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return 0, 0, errors.New("invalid limit")
		}
	}

	return skip, limit, nil
}

func parsePostID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "postID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid post id")
	}
	return id, nil
}
