package model

// User represents a user as returned by the API. Nested lists carry only
// the fields their selection set requests; lists the operation did not ask
// for stay nil.
type User struct {
	ID               string
	FirstName        string
	LastName         string
	Email            string
	ProfileImageURL  string
	Followers        []User
	Following        []User
	RecommendedUsers []User
	Tweets           []Tweet
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Tweet represents a tweet as returned by the API. Content is immutable
// once created; ImageURL, when set, references a completed upload.
type Tweet struct {
	ID       string
	Content  string
	ImageURL string
	Author   *User
}
