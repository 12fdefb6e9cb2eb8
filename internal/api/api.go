package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/sarthakbiswas97/X-clone/internal/gql"
	"github.com/sarthakbiswas97/X-clone/internal/model"
)

// ErrNoCurrentUser is returned when the server resolves getCurrentUser to
// null, i.e. the request carried no usable token.
var ErrNoCurrentUser = errors.New("no current user")

// ErrVerificationFailed is returned when the server resolves the Google
// token exchange to null. The caller must not persist anything in this case.
var ErrVerificationFailed = errors.New("google token verification failed")

// ErrUserNotFound is returned when getUserById resolves to null.
var ErrUserNotFound = errors.New("user not found")

// Doer sends one GraphQL operation; satisfied by *gql.Client.
type Doer interface {
	Do(ctx context.Context, op gql.Operation, vars any, out any) error
}

// Client exposes the operation catalog as typed calls.
type Client struct {
	gql Doer
}

func New(g Doer) *Client { return &Client{gql: g} }

// rawUser and rawTweet mirror the wire shape; each operation's out struct
// declares exactly the top-level field it expects so strict decoding can
// catch schema drift.
type rawUser struct {
	ID              string     `json:"id"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Email           string     `json:"email"`
	ProfileImageURL string     `json:"profileImageURL"`
	RecommendedUser []rawUser  `json:"recommendedUser"`
	Followers       []rawUser  `json:"followers"`
	Following       []rawUser  `json:"following"`
	Tweets          []rawTweet `json:"tweets"`
}

type rawTweet struct {
	ID       string   `json:"id"`
	Content  string   `json:"content"`
	ImageURL string   `json:"imageURL"`
	Author   *rawUser `json:"author"`
}

func toUser(r rawUser) model.User {
	u := model.User{
		ID:              r.ID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		ProfileImageURL: r.ProfileImageURL,
	}
	for _, f := range r.Followers {
		u.Followers = append(u.Followers, toUser(f))
	}
	for _, f := range r.Following {
		u.Following = append(u.Following, toUser(f))
	}
	for _, f := range r.RecommendedUser {
		u.RecommendedUsers = append(u.RecommendedUsers, toUser(f))
	}
	for _, t := range r.Tweets {
		u.Tweets = append(u.Tweets, toTweet(t))
	}
	return u
}

func toTweet(r rawTweet) model.Tweet {
	t := model.Tweet{ID: r.ID, Content: r.Content, ImageURL: r.ImageURL}
	if r.Author != nil {
		a := toUser(*r.Author)
		t.Author = &a
	}
	return t
}

// VerifyGoogleToken exchanges a Google ID token for an application token.
func (c *Client) VerifyGoogleToken(ctx context.Context, providerToken string) (string, error) {
	if providerToken == "" {
		return "", errors.New("empty provider token")
	}
	var out struct {
		VerifyGoogleToken *string `json:"verifyGoogleToken"`
	}
	if err := c.gql.Do(ctx, opVerifyUserGoogleToken, map[string]any{"token": providerToken}, &out); err != nil {
		return "", err
	}
	if out.VerifyGoogleToken == nil || *out.VerifyGoogleToken == "" {
		return "", ErrVerificationFailed
	}
	return *out.VerifyGoogleToken, nil
}

// GetCurrentUser fetches the authenticated user with followers, following,
// recommendations and authored tweets.
func (c *Client) GetCurrentUser(ctx context.Context) (model.User, error) {
	var out struct {
		GetCurrentUser *rawUser `json:"getCurrentUser"`
	}
	if err := c.gql.Do(ctx, opGetCurrentUser, nil, &out); err != nil {
		return model.User{}, err
	}
	if out.GetCurrentUser == nil {
		return model.User{}, ErrNoCurrentUser
	}
	return toUser(*out.GetCurrentUser), nil
}

// GetUserByID fetches a user profile with its tweets.
func (c *Client) GetUserByID(ctx context.Context, id string) (model.User, error) {
	if id == "" {
		return model.User{}, errors.New("empty user id")
	}
	var out struct {
		GetUserByID *rawUser `json:"getUserById"`
	}
	if err := c.gql.Do(ctx, opGetUserByID, map[string]any{"id": id}, &out); err != nil {
		return model.User{}, err
	}
	if out.GetUserByID == nil {
		return model.User{}, ErrUserNotFound
	}
	return toUser(*out.GetUserByID), nil
}

// GetAllTweets fetches the global feed.
func (c *Client) GetAllTweets(ctx context.Context) ([]model.Tweet, error) {
	var out struct {
		GetAllTweets []rawTweet `json:"getAllTweets"`
	}
	if err := c.gql.Do(ctx, opGetAllTweets, nil, &out); err != nil {
		return nil, err
	}
	tweets := make([]model.Tweet, 0, len(out.GetAllTweets))
	for _, t := range out.GetAllTweets {
		tweets = append(tweets, toTweet(t))
	}
	return tweets, nil
}

// CreateTweet posts a tweet. imageURL may be empty; when set it must be a
// durable URL derived from a completed upload.
func (c *Client) CreateTweet(ctx context.Context, content, imageURL string) (model.Tweet, error) {
	if content == "" {
		return model.Tweet{}, errors.New("empty content")
	}
	payload := map[string]any{"content": content}
	if imageURL != "" {
		payload["imageURL"] = imageURL
	}
	var out struct {
		CreateTweet *rawTweet `json:"createTweet"`
	}
	if err := c.gql.Do(ctx, opCreateTweet, map[string]any{"payload": payload}, &out); err != nil {
		return model.Tweet{}, err
	}
	if out.CreateTweet == nil || out.CreateTweet.ID == "" {
		return model.Tweet{}, fmt.Errorf("createTweet returned no tweet reference")
	}
	return toTweet(*out.CreateTweet), nil
}

// FollowUser makes the authenticated user follow the user with id to.
func (c *Client) FollowUser(ctx context.Context, to string) error {
	if to == "" {
		return errors.New("empty target id")
	}
	var out struct {
		FollowUser bool `json:"followUser"`
	}
	return c.gql.Do(ctx, opFollowUser, map[string]any{"to": to}, &out)
}

// UnfollowUser removes the follow relationship toward the user with id to.
func (c *Client) UnfollowUser(ctx context.Context, to string) error {
	if to == "" {
		return errors.New("empty target id")
	}
	var out struct {
		UnfollowUser bool `json:"unfollowUser"`
	}
	return c.gql.Do(ctx, opUnfollowUser, map[string]any{"to": to}, &out)
}

// GetSignedURLForTweet asks the API for a pre-signed upload target for an
// asset with the given name and content type.
func (c *Client) GetSignedURLForTweet(ctx context.Context, imageName, imageType string) (string, error) {
	var out struct {
		GetSignedURLForTweet string `json:"getSignedURLForTweet"`
	}
	vars := map[string]any{"imageName": imageName, "imageType": imageType}
	if err := c.gql.Do(ctx, opGetSignedURLForTweet, vars, &out); err != nil {
		return "", err
	}
	if out.GetSignedURLForTweet == "" {
		return "", errors.New("empty signed url")
	}
	return out.GetSignedURLForTweet, nil
}
