package gql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sarthakbiswas97/X-clone/internal/metrics"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Operation is a named GraphQL query or mutation with a fixed document.
type Operation struct {
	Name     string
	Document string
}

// TokenSource yields the bearer token attached to outgoing requests.
// An empty token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client sends GraphQL operations to a single HTTP endpoint. The token is
// read fresh from the source on every call, so a login or logout in the
// same process takes effect on the next request. Failures are returned to
// the caller exactly once: no retry, no backoff.
type Client struct {
	endpoint   string
	tokens     TokenSource
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client for endpoint. tokens may be nil, in which case
// every request is unauthenticated (the server-side render path).
func NewClient(endpoint string, tokens TokenSource) *Client {
	return &Client{
		endpoint:   endpoint,
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		limiter:    newDefaultLimiter(),
	}
}

type request struct {
	OperationName string `json:"operationName,omitempty"`
	Query         string `json:"query"`
	Variables     any    `json:"variables,omitempty"`
}

// Error is a single server-side GraphQL error.
type Error struct {
	Message string `json:"message"`
}

// ErrorList is the error payload of a failed operation.
type ErrorList []Error

func (e ErrorList) Error() string {
	msgs := make([]string, 0, len(e))
	for _, it := range e {
		msgs = append(msgs, it.Message)
	}
	return "graphql: " + strings.Join(msgs, "; ")
}

// Do sends op with vars and decodes the response data into out. Decoding is
// strict: a GraphQL error payload becomes an ErrorList, and data fields the
// out shape does not declare fail the call rather than pass silently.
func (c *Client) Do(ctx context.Context, op Operation, vars any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	body, err := json.Marshal(request{OperationName: op.Name, Query: op.Document, Variables: vars})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			return fmt.Errorf("read session token: %w", err)
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	metrics.IncGraphQLRequest(op.Name)
	start := time.Now()
	log.WithField("operation", op.Name).Debug("graphql request")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.IncGraphQLError(op.Name)
		return err
	}
	defer resp.Body.Close()
	metrics.ObserveGraphQLDuration(op.Name, start)
	if resp.StatusCode >= 400 {
		metrics.IncGraphQLError(op.Name)
		return fmt.Errorf("%s: api status %d", op.Name, resp.StatusCode)
	}
	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors ErrorList       `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		metrics.IncGraphQLError(op.Name)
		return fmt.Errorf("%s: decode response: %w", op.Name, err)
	}
	if len(envelope.Errors) > 0 {
		metrics.IncGraphQLError(op.Name)
		return envelope.Errors
	}
	if out == nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(envelope.Data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		metrics.IncGraphQLError(op.Name)
		return fmt.Errorf("%s: decode data: %w", op.Name, err)
	}
	return nil
}
