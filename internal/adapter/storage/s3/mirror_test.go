package s3

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
	"sync"
	"testing"

	"github.com/bnema/vidqueue/internal/port/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeS3 accepts object writes and deletes and records what it saw.
type fakeS3 struct {
	mu       sync.Mutex
	requests []string
	objects  map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)

	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = body
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	case http.MethodHead:
		w.WriteHeader(http.StatusOK)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func newTestMirror(t *testing.T) (*Mirror, *fakeS3, *mocks.ThumbnailStoreMock) {
	t.Helper()
	fake := &fakeS3{objects: make(map[string][]byte)}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	local := mocks.NewThumbnailStoreMock(t)
	m, err := NewMirror(Config{
		Endpoint:  u.Host,
		Bucket:    "thumbs",
		AccessKey: "access",
		SecretKey: "secret",
	}, local)
	require.NoError(t, err)
	return m, fake, local
}

func TestMirror_Publish(t *testing.T) {
	m, fake, local := newTestMirror(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "abc_thumbnail.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg-bytes"), 0644))

	local.EXPECT().Publish(mock.Anything, "abc", path).Return("http://localhost/thumbnails/abc_thumbnail.jpg", nil).Once()

	url, err := m.Publish(ctx, "abc", path)

	require.NoError(t, err)
	assert.Equal(t, m.client.EndpointURL().String()+"/thumbs/thumbnails/abc_thumbnail.jpg", url)
	assert.Contains(t, fake.requests, "PUT /thumbs/thumbnails/abc_thumbnail.jpg")
}

func TestMirror_Publish_LocalFailureSkipsUpload(t *testing.T) {
	m, fake, local := newTestMirror(t)
	boom := errors.New("missing thumbnail")

	local.EXPECT().Publish(mock.Anything, "abc", "/nope.jpg").Return("", boom).Once()

	_, err := m.Publish(context.Background(), "abc", "/nope.jpg")

	assert.ErrorIs(t, err, boom)
	assert.Empty(t, fake.requests)
}

func TestMirror_Remove(t *testing.T) {
	m, fake, local := newTestMirror(t)

	local.EXPECT().Remove(mock.Anything, "abc").Return(nil).Once()

	require.NoError(t, m.Remove(context.Background(), "abc"))
	assert.Contains(t, fake.requests, "DELETE /thumbs/thumbnails/abc_thumbnail.jpg")
}

func TestMirror_EnsureBucket_Exists(t *testing.T) {
	m, fake, _ := newTestMirror(t)

	require.NoError(t, m.EnsureBucket(context.Background()))
	require.Len(t, fake.requests, 1)
	assert.True(t, strings.HasPrefix(fake.requests[0], "HEAD /thumbs"), fake.requests[0])
}
