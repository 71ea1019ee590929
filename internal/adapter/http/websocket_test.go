package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocket_SnapshotThenUpdates(t *testing.T) {
	job := domain.NewJob("clip.mp4", "/data/uploads/clip.mp4")
	srv, bus := newTestServer(&fakeSubmissions{}, newFakeStatus(job), t.TempDir())
	ts := httptest.NewServer(srv)
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	defer conn.Close()      //nolint:errcheck

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var snapshot wsMessage
	require.NoError(t, conn.ReadJSON(&snapshot))
	assert.Equal(t, "snapshot", snapshot.Type)
	require.Len(t, snapshot.Jobs, 1)
	assert.Equal(t, job.ID, snapshot.Jobs[0].ID)
	assert.Equal(t, domain.JobStatusPending, snapshot.Jobs[0].Status)

	other := domain.NewJob("other.mp4", "")
	require.NoError(t, other.MarkProcessing(time.Now()))
	bus.Publish(other.ID, domain.NewStatusEvent(other))

	var update wsMessage
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, "job_update", update.Type)
	require.NotNil(t, update.Event)
	assert.Equal(t, other.ID, update.Event.JobID)
	assert.Equal(t, domain.JobStatusProcessing, update.Event.Status)
	assert.Equal(t, 1, update.Event.Attempts)
}

func TestWebSocket_RejectsPlainHTTP(t *testing.T) {
	srv, _ := newTestServer(&fakeSubmissions{}, newFakeStatus(), t.TempDir())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebSocket_Origin(t *testing.T) {
	srv, _ := newTestServer(&fakeSubmissions{}, newFakeStatus(), t.TempDir())
	ts := httptest.NewServer(srv)
	defer ts.Close()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	tests := []struct {
		name     string
		origin   string
		wantCode int
	}{
		{"no origin", "", http.StatusSwitchingProtocols},
		{"same origin", ts.URL, http.StatusSwitchingProtocols},
		{"foreign origin", "https://evil.example", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.origin != "" {
				header.Set("Origin", tt.origin)
			}

			conn, resp, err := websocket.DefaultDialer.Dial(url, header)
			require.NotNil(t, resp)
			defer resp.Body.Close() //nolint:errcheck
			if conn != nil {
				defer conn.Close() //nolint:errcheck
			}

			assert.Equal(t, tt.wantCode, resp.StatusCode)
			if tt.wantCode == http.StatusForbidden {
				assert.ErrorIs(t, err, websocket.ErrBadHandshake)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
