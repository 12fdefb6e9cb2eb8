// Package likes holds the like toggle state shown on feed cards. The state
// is local to the process and reflects user intent only: no mutation backs
// it, nothing is persisted, and it resets on every fresh render of the
// feed, matching the behavior of the web client.
package likes

import "sync"

// State is the like flag and counter for one rendered tweet card.
type State struct {
	Liked bool
	Count int
}

// Registry tracks like state per tweet for one render of the feed.
type Registry struct {
	mu      sync.Mutex
	byTweet map[string]State
}

func NewRegistry() *Registry {
	return &Registry{byTweet: make(map[string]State)}
}

// Toggle flips the like flag for tweetID and moves the counter by one,
// returning the new state. Starting from zero, N toggles leave
// count = N mod 2.
func (r *Registry) Toggle(tweetID string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	s := r.byTweet[tweetID]
	if s.Liked {
		s.Liked = false
		s.Count--
	} else {
		s.Liked = true
		s.Count++
	}
	r.byTweet[tweetID] = s
	return s
}

// Get returns the current state for tweetID without changing it.
func (r *Registry) Get(tweetID string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byTweet[tweetID]
}
