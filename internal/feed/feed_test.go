package feed

import (
	"context"
	"fmt"
	"testing"

	"github.com/sarthakbiswas97/X-clone/internal/cache"
	"github.com/sarthakbiswas97/X-clone/internal/model"
)

// fakeAPI holds mutable server-side state the way the remote API would.
type fakeAPI struct {
	me           model.User
	tweets       []model.Tweet
	following    map[string]bool
	fetchTweets  int
	fetchMe      int
	fetchProfile int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		me:        model.User{ID: "me", FirstName: "Current", LastName: "User"},
		following: map[string]bool{},
	}
}

func (f *fakeAPI) GetCurrentUser(ctx context.Context) (model.User, error) {
	f.fetchMe++
	me := f.me
	me.Following = nil
	for id := range f.following {
		me.Following = append(me.Following, model.User{ID: id})
	}
	return me, nil
}

func (f *fakeAPI) GetUserByID(ctx context.Context, id string) (model.User, error) {
	f.fetchProfile++
	return model.User{ID: id}, nil
}

func (f *fakeAPI) GetAllTweets(ctx context.Context) ([]model.Tweet, error) {
	f.fetchTweets++
	out := make([]model.Tweet, len(f.tweets))
	copy(out, f.tweets)
	return out, nil
}

func (f *fakeAPI) CreateTweet(ctx context.Context, content, imageURL string) (model.Tweet, error) {
	t := model.Tweet{
		ID:       fmt.Sprintf("t%d", len(f.tweets)+1),
		Content:  content,
		ImageURL: imageURL,
		Author:   &model.User{ID: f.me.ID},
	}
	// prepend: the feed is newest-first
	f.tweets = append([]model.Tweet{t}, f.tweets...)
	return model.Tweet{ID: t.ID}, nil
}

func (f *fakeAPI) FollowUser(ctx context.Context, to string) error {
	f.following[to] = true
	return nil
}

func (f *fakeAPI) UnfollowUser(ctx context.Context, to string) error {
	delete(f.following, to)
	return nil
}

func TestCreateTweetInvalidatesFeed(t *testing.T) {
	api := newFakeAPI()
	h := New(api, cache.New())
	ctx := context.Background()

	if tweets, err := h.AllTweets(ctx); err != nil || len(tweets) != 0 {
		t.Fatalf("expected empty feed, got %v err=%v", tweets, err)
	}
	// repeated reads share the cached result
	if _, err := h.AllTweets(ctx); err != nil {
		t.Fatal(err)
	}
	if api.fetchTweets != 1 {
		t.Fatalf("expected one fetch before mutation, got %d", api.fetchTweets)
	}

	if _, err := h.CreateTweet(ctx, "hello", ""); err != nil {
		t.Fatal(err)
	}
	tweets, err := h.AllTweets(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if api.fetchTweets != 2 {
		t.Fatalf("expected refetch after create, got %d fetches", api.fetchTweets)
	}
	if len(tweets) != 1 || tweets[0].Content != "hello" || tweets[0].Author.ID != "me" {
		t.Fatalf("new tweet missing from refetched feed: %+v", tweets)
	}
}

func TestFollowUnfollowRoundTrip(t *testing.T) {
	api := newFakeAPI()
	h := New(api, cache.New())
	ctx := context.Background()

	before, err := h.CurrentUser(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(before.Following) != 0 {
		t.Fatalf("expected no following, got %+v", before.Following)
	}

	if err := h.Follow(ctx, "u7"); err != nil {
		t.Fatal(err)
	}
	mid, err := h.CurrentUser(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(mid.Following) != 1 || mid.Following[0].ID != "u7" {
		t.Fatalf("expected following u7 after refetch, got %+v", mid.Following)
	}

	if err := h.Unfollow(ctx, "u7"); err != nil {
		t.Fatal(err)
	}
	after, err := h.CurrentUser(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// follow then unfollow restores the pre-toggle relationship
	if len(after.Following) != len(before.Following) {
		t.Fatalf("expected %d following, got %+v", len(before.Following), after.Following)
	}
	if api.fetchMe != 3 {
		t.Fatalf("expected a refetch per mutation, got %d fetches", api.fetchMe)
	}
}

func TestFollowInvalidatesTargetProfile(t *testing.T) {
	api := newFakeAPI()
	c := cache.New()
	h := New(api, c)
	ctx := context.Background()

	if _, err := h.UserByID(ctx, "u7"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Peek(KeyUser("u7")); !ok {
		t.Fatal("profile should be cached")
	}
	if err := h.Follow(ctx, "u7"); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Peek(KeyUser("u7")); ok {
		t.Fatal("target profile should be stale after follow")
	}
}

func TestInvalidationTableIsComplete(t *testing.T) {
	for _, m := range Mutations {
		keys, ok := Invalidations[m]
		if !ok {
			t.Fatalf("mutation %s has no invalidation entry", m)
		}
		if len(keys) == 0 {
			t.Fatalf("mutation %s declares no affected keys", m)
		}
	}
	for m := range Invalidations {
		found := false
		for _, known := range Mutations {
			if m == known {
				found = true
			}
		}
		if !found {
			t.Fatalf("invalidation entry for unknown mutation %s", m)
		}
	}
}
