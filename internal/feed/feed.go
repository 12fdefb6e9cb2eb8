// Package feed is the synchronization layer between the UI and the remote
// API: reads go through the shared entity cache, and every mutation
// invalidates the query keys it affects so the next read reflects server
// truth.
package feed

import (
	"context"

	"github.com/sarthakbiswas97/X-clone/internal/cache"
	"github.com/sarthakbiswas97/X-clone/internal/model"
	log "github.com/sirupsen/logrus"
)

// Query keys shared by all consumers of the same logical data.
const (
	KeyCurrentUser = "current-user"
	KeyAllTweets   = "all-tweets"
)

// KeyUser is the cache key for one user's profile.
func KeyUser(id string) string { return "user:" + id }

// API is the slice of the operation catalog the sync layer drives.
type API interface {
	GetCurrentUser(ctx context.Context) (model.User, error)
	GetUserByID(ctx context.Context, id string) (model.User, error)
	GetAllTweets(ctx context.Context) ([]model.Tweet, error)
	CreateTweet(ctx context.Context, content, imageURL string) (model.Tweet, error)
	FollowUser(ctx context.Context, to string) error
	UnfollowUser(ctx context.Context, to string) error
}

// Hooks couples the operation catalog to the entity cache.
type Hooks struct {
	api   API
	cache *cache.Cache
}

func New(api API, c *cache.Cache) *Hooks { return &Hooks{api: api, cache: c} }

// CurrentUser returns the authenticated user, shared across consumers.
func (h *Hooks) CurrentUser(ctx context.Context) (model.User, error) {
	v, err := h.cache.Get(ctx, KeyCurrentUser, func(ctx context.Context) (any, error) {
		return h.api.GetCurrentUser(ctx)
	})
	if err != nil {
		return model.User{}, err
	}
	return v.(model.User), nil
}

// AllTweets returns the global feed, shared across consumers.
func (h *Hooks) AllTweets(ctx context.Context) ([]model.Tweet, error) {
	v, err := h.cache.Get(ctx, KeyAllTweets, func(ctx context.Context) (any, error) {
		return h.api.GetAllTweets(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Tweet), nil
}

// UserByID returns one user's profile, shared across consumers of that id.
func (h *Hooks) UserByID(ctx context.Context, id string) (model.User, error) {
	v, err := h.cache.Get(ctx, KeyUser(id), func(ctx context.Context) (any, error) {
		return h.api.GetUserByID(ctx, id)
	})
	if err != nil {
		return model.User{}, err
	}
	return v.(model.User), nil
}

// CreateTweet posts a tweet and marks the feed stale. The tweet is not
// inserted locally; it appears once the all-tweets query re-resolves.
func (h *Hooks) CreateTweet(ctx context.Context, content, imageURL string) (model.Tweet, error) {
	t, err := h.api.CreateTweet(ctx, content, imageURL)
	if err != nil {
		return model.Tweet{}, err
	}
	h.invalidateFor(MutCreateTweet)
	return t, nil
}

// Follow makes the current user follow the user with id to.
func (h *Hooks) Follow(ctx context.Context, to string) error {
	if err := h.api.FollowUser(ctx, to); err != nil {
		return err
	}
	h.invalidateFor(MutFollowUser, KeyUser(to))
	return nil
}

// Unfollow removes the follow relationship toward the user with id to.
func (h *Hooks) Unfollow(ctx context.Context, to string) error {
	if err := h.api.UnfollowUser(ctx, to); err != nil {
		return err
	}
	h.invalidateFor(MutUnfollowUser, KeyUser(to))
	return nil
}

func (h *Hooks) invalidateFor(mutation string, extra ...string) {
	keys := append(append([]string{}, Invalidations[mutation]...), extra...)
	h.cache.Invalidate(keys...)
	log.WithFields(log.Fields{"mutation": mutation, "keys": keys}).Debug("cache invalidated")
}
