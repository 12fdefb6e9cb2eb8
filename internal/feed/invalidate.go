package feed

// Mutations known to the sync layer.
const (
	MutCreateTweet  = "CreateTweet"
	MutFollowUser   = "FollowUser"
	MutUnfollowUser = "UnfollowUser"
)

// Mutations lists every mutation the catalog exposes, for completeness
// checks against the invalidation table.
var Mutations = []string{MutCreateTweet, MutFollowUser, MutUnfollowUser}

// Invalidations declares, per mutation, the query keys it makes stale.
// A mutation missing from this table leaves consumers rendering stale data
// until a full reload, so every mutation must have an entry. Keys that
// depend on call arguments (the target user's profile on follow/unfollow)
// are passed alongside the table entry at the call site.
var Invalidations = map[string][]string{
	// a new tweet changes the feed and the author's own tweet list
	MutCreateTweet: {KeyAllTweets, KeyCurrentUser},
	// the following list is embedded in the current-user query
	MutFollowUser:   {KeyCurrentUser},
	MutUnfollowUser: {KeyCurrentUser},
}
