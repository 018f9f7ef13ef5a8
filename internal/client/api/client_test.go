package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkozlov/stylist/internal/common"
	"github.com/dkozlov/stylist/internal/logging"
)

type fakeStore struct {
	token   string
	cleared bool
}

func (f *fakeStore) Token() string { return f.token }
func (f *fakeStore) Clear(context.Context) error {
	f.cleared = true
	f.token = ""
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, store *fakeStore) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 5*time.Second, store, logging.NewDefault(io.Discard))
}

func TestDo_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}, &fakeStore{token: "t1"})

	resp, err := c.Do(context.Background(), http.MethodGet, "/items", Opts{})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "Bearer t1", gotAuth)
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	var hasHeader bool
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		w.WriteHeader(http.StatusOK)
	}, &fakeStore{})

	resp, err := c.Do(context.Background(), http.MethodPost, "/auth/login", Opts{})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, gotAuth)
	assert.False(t, hasHeader)
}

func TestDo_QueryEncoding(t *testing.T) {
	var gotQuery url.Values
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.WriteHeader(http.StatusOK)
	}, &fakeStore{token: "t"})

	q := url.Values{}
	q.Set("slot", "top")
	resp, err := c.Do(context.Background(), http.MethodGet, "/items", Opts{Query: q})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "top", gotQuery.Get("slot"))
}

func TestDo_MultipartOverridesCallerContentType(t *testing.T) {
	var gotContentType string
	var gotField string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotField = r.FormValue("username")
		w.WriteHeader(http.StatusOK)
	}, &fakeStore{})

	h := http.Header{}
	h.Set("Content-Type", "application/json") // must be discarded

	body := NewMultipartBody().WriteField("username", "abc")
	resp, err := c.Do(context.Background(), http.MethodPost, "/auth/login", Opts{Multipart: body, Header: h})
	require.NoError(t, err)
	resp.Body.Close()

	assert.True(t, strings.HasPrefix(gotContentType, "multipart/form-data; boundary="), gotContentType)
	assert.Equal(t, "abc", gotField)
}

func TestDo_MultipartFileUpload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shirt.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpegdata"), 0o600))

	var gotName string
	var gotContent []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		gotName = hdr.Filename
		gotContent, _ = io.ReadAll(f)
		w.WriteHeader(http.StatusOK)
	}, &fakeStore{token: "t"})

	body := NewMultipartBody().WriteFile("file", path)
	resp, err := c.Do(context.Background(), http.MethodPost, "/items", Opts{Multipart: body})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "shirt.jpg", gotName)
	assert.Equal(t, []byte("jpegdata"), gotContent)
}

func TestDo_JSONBody(t *testing.T) {
	var gotContentType, gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		w.WriteHeader(http.StatusOK)
	}, &fakeStore{token: "t"})

	payload := map[string]any{"name": "Beach day"}
	resp, err := c.Do(context.Background(), http.MethodPatch, "/outfits/o1", Opts{JSON: payload})
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"name":"Beach day"}`, gotBody)
}

func TestDo_UnauthorizedForcesLogout(t *testing.T) {
	store := &fakeStore{token: "stale"}
	expired := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, store)
	c.SetOnSessionExpired(func() { expired = true })

	resp, err := c.Do(context.Background(), http.MethodGet, "/items", Opts{})

	require.Nil(t, resp, "caller must not receive a response on 401")
	require.ErrorIs(t, err, common.ErrSessionExpired)
	assert.True(t, store.cleared, "session must be cleared")
	assert.True(t, expired, "expiry hook must fire")
}

func TestDo_NetworkErrorIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := New(srv.URL, time.Second, &fakeStore{}, logging.NewDefault(io.Discard))
	_, err := c.Do(context.Background(), http.MethodGet, "/weather", Opts{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrUnavailable), "got %v", err)
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		status      int
		want        string
	}{
		{
			name:        "json detail",
			contentType: "application/json",
			body:        `{"detail":"No file provided"}`,
			status:      http.StatusBadRequest,
			want:        "No file provided",
		},
		{
			name:        "json message fallback",
			contentType: "application/json",
			body:        `{"message":"broken"}`,
			status:      http.StatusBadRequest,
			want:        "broken",
		},
		{
			name:        "html error page",
			contentType: "text/html",
			body:        "<html>502</html>",
			status:      http.StatusBadGateway,
			want:        "Upload failed: 502 Bad Gateway",
		},
		{
			name:        "malformed json",
			contentType: "application/json",
			body:        "{nope",
			status:      http.StatusInternalServerError,
			want:        "Upload failed: 500 Internal Server Error",
		},
		{
			name:        "empty json object",
			contentType: "application/json",
			body:        "{}",
			status:      http.StatusNotFound,
			want:        "Upload failed: 404 Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			resp, err := http.Get(srv.URL)
			require.NoError(t, err)

			assert.Equal(t, tt.want, ErrorMessage(resp, "Upload failed"))
		})
	}
}
