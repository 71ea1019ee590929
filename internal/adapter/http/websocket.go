package http

import (
	"net/http"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/service"
	"github.com/gorilla/websocket"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
	wsSnapshot   = 100
)

type wsMessage struct {
	Type  string                   `json:"type"`
	Jobs  []*service.JobStatusView `json:"jobs,omitempty"`
	Event *domain.Event            `json:"event,omitempty"`
}

// WebSocketHandler streams every job event to each connected client, starting
// with a snapshot of the most recent jobs.
type WebSocketHandler struct {
	eventBus *service.EventBus
	status   StatusService
	upgrader websocket.Upgrader
}

func NewWebSocketHandler(eventBus *service.EventBus, status StatusService) *WebSocketHandler {
	return &WebSocketHandler{
		eventBus: eventBus,
		status:   status,
		// The zero CheckOrigin refuses a browser Origin whose host differs
		// from the request Host.
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (h *WebSocketHandler) Stream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Warn.Printf("websocket upgrade failed: %v", err)
			return
		}
		defer conn.Close() //nolint:errcheck

		ch := h.eventBus.SubscribeAll()
		defer h.eventBus.UnsubscribeAll(ch)

		closed := make(chan struct{})
		go h.readPump(conn, closed)

		if err := h.writeSnapshot(r, conn); err != nil {
			logger.Debug.Printf("websocket snapshot failed: %v", err)
			return
		}

		ping := time.NewTicker(wsPingPeriod)
		defer ping.Stop()

		for {
			select {
			case <-closed:
				return
			case <-r.Context().Done():
				return
			case <-ping.C:
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			case event, ok := <-ch:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
				if err := conn.WriteJSON(wsMessage{Type: "job_update", Event: &event}); err != nil {
					logger.Debug.Printf("websocket write failed: %v", err)
					return
				}
			}
		}
	}
}

func (h *WebSocketHandler) writeSnapshot(r *http.Request, conn *websocket.Conn) error {
	jobs, err := h.status.ListJobs(r.Context(), domain.JobFilter{Limit: wsSnapshot})
	if err != nil {
		logger.Error.Printf("websocket snapshot list error: %v", err)
		jobs = nil
	}
	views := make([]*service.JobStatusView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, service.NewJobStatusView(job))
	}
	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	return conn.WriteJSON(wsMessage{Type: "snapshot", Jobs: views})
}

// readPump discards client messages and signals when the peer goes away.
func (h *WebSocketHandler) readPump(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
