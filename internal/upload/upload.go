// Package upload implements the three-step asset upload flow: request a
// pre-signed URL from the API, PUT the raw bytes to it, and derive the
// durable public URL by stripping the signing query parameters. The steps
// run strictly in order and any failure aborts the rest; nothing is rolled
// back on a partial failure.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sarthakbiswas97/X-clone/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// SignedURLSource issues pre-signed upload targets; satisfied by *api.Client.
type SignedURLSource interface {
	GetSignedURLForTweet(ctx context.Context, imageName, imageType string) (string, error)
}

// Uploader uploads assets destined to ride on a tweet.
type Uploader struct {
	api        SignedURLSource
	httpClient *http.Client
}

func New(api SignedURLSource) *Uploader {
	return &Uploader{
		api:        api,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// UploadFile uploads the image at path under a random object name that
// keeps the file's extension, and returns the durable URL to reference
// from a tweet.
func (u *Uploader) UploadFile(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	ext := filepath.Ext(path)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		return "", fmt.Errorf("unknown content type for %q", path)
	}
	name := uuid.NewString() + ext
	return u.Upload(ctx, name, contentType, data)
}

// Upload runs the signed-URL flow for one named asset.
func (u *Uploader) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	metrics.UploadRuns.Inc()
	signed, err := u.api.GetSignedURLForTweet(ctx, name, contentType)
	if err != nil {
		metrics.UploadErrors.Inc()
		return "", fmt.Errorf("get signed url: %w", err)
	}
	if err := u.put(ctx, signed, contentType, data); err != nil {
		metrics.UploadErrors.Inc()
		return "", fmt.Errorf("put %s: %w", name, err)
	}
	public, err := PublicURL(signed)
	if err != nil {
		metrics.UploadErrors.Inc()
		return "", err
	}
	log.WithFields(log.Fields{"name": name, "url": public}).Info("upload complete")
	return public, nil
}

func (u *Uploader) put(ctx context.Context, signed, contentType string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signed, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)
	resp, err := u.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("asset store status %d", resp.StatusCode)
	}
	return nil
}

// PublicURL derives the durable asset URL from a signed upload URL:
// scheme, host and path only, with the signing query parameters dropped.
func PublicURL(signed string) (string, error) {
	parsed, err := url.Parse(signed)
	if err != nil {
		return "", err
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return "", errors.New("signed url missing scheme or host")
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String(), nil
}
