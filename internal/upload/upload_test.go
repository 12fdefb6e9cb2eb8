package upload

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeSigner struct {
	signed string
	err    error
	name   string
	typ    string
}

func (f *fakeSigner) GetSignedURLForTweet(ctx context.Context, imageName, imageType string) (string, error) {
	f.name = imageName
	f.typ = imageType
	return f.signed, f.err
}

func TestPublicURLStripsSigningParams(t *testing.T) {
	cases := []struct{ signed, want string }{
		{"https://host/path?X-Signature=abc&Expires=123", "https://host/path"},
		{"https://bucket.s3.amazonaws.com/uploads/a.png?X-Amz-Algorithm=x&X-Amz-Signature=y", "https://bucket.s3.amazonaws.com/uploads/a.png"},
		{"https://host/plain", "https://host/plain"},
	}
	for _, c := range cases {
		got, err := PublicURL(c.signed)
		if err != nil {
			t.Fatalf("%s: %v", c.signed, err)
		}
		if got != c.want {
			t.Fatalf("%s: got %q want %q", c.signed, got, c.want)
		}
	}
	if _, err := PublicURL("not a url at all://"); err == nil {
		t.Fatal("expected error for unparseable url")
	}
	if _, err := PublicURL("/relative/only"); err == nil {
		t.Fatal("expected error for url without host")
	}
}

func TestUploadFlow(t *testing.T) {
	var gotMethod, gotType string
	var gotBody []byte
	var gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotQuery = r.URL.RawQuery
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	signer := &fakeSigner{signed: ts.URL + "/uploads/pic.png?X-Amz-Signature=abc&Expires=9"}
	u := New(signer)

	public, err := u.Upload(context.Background(), "pic.png", "image/png", []byte("rawbytes"))
	if err != nil {
		t.Fatal(err)
	}
	if signer.name != "pic.png" || signer.typ != "image/png" {
		t.Fatalf("signing request carried %q %q", signer.name, signer.typ)
	}
	if gotMethod != http.MethodPut || gotType != "image/png" || string(gotBody) != "rawbytes" {
		t.Fatalf("bad PUT: method=%s type=%s body=%q", gotMethod, gotType, gotBody)
	}
	if gotQuery == "" {
		t.Fatal("PUT must target the signed url including its query")
	}
	if public != ts.URL+"/uploads/pic.png" {
		t.Fatalf("derived url %q", public)
	}
}

func TestUploadFileDerivesNameAndType(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	dir := t.TempDir()
	path := filepath.Join(dir, "holiday.png")
	if err := os.WriteFile(path, []byte("pngbytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	signer := &fakeSigner{signed: ts.URL + "/uploads/obj.png?sig=1"}
	u := New(signer)
	public, err := u.UploadFile(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	if signer.typ != "image/png" {
		t.Fatalf("content type %q", signer.typ)
	}
	// object name is random but keeps the extension
	if !strings.HasSuffix(signer.name, ".png") || signer.name == "holiday.png" {
		t.Fatalf("object name %q", signer.name)
	}
	if public != ts.URL+"/uploads/obj.png" {
		t.Fatalf("derived url %q", public)
	}
}

func TestUploadAbortsWhenSigningFails(t *testing.T) {
	puts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		puts++
	}))
	defer ts.Close()

	u := New(&fakeSigner{err: errors.New("quota exceeded")})
	if _, err := u.Upload(context.Background(), "a.png", "image/png", []byte("x")); err == nil {
		t.Fatal("expected error from signing step")
	}
	if puts != 0 {
		t.Fatalf("no PUT may happen after signing fails, got %d", puts)
	}
}

func TestUploadFailsOnRejectedPut(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	u := New(&fakeSigner{signed: ts.URL + "/uploads/a.png?sig=1"})
	if _, err := u.Upload(context.Background(), "a.png", "image/png", []byte("x")); err == nil {
		t.Fatal("expected error on 403 from asset store")
	}
}
