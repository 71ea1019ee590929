package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/service"
)

type SSEHandler struct {
	eventBus *service.EventBus
	status   StatusService
}

func NewSSEHandler(eventBus *service.EventBus, status StatusService) *SSEHandler {
	return &SSEHandler{
		eventBus: eventBus,
		status:   status,
	}
}

// sseWrite writes an SSE event, handling multi-line data correctly.
func sseWrite(w http.ResponseWriter, eventName string, data string) {
	_, _ = fmt.Fprintf(w, "event: %s\n", eventName)
	for _, line := range strings.Split(data, "\n") {
		_, _ = fmt.Fprintf(w, "data: %s\n", line)
	}
	_, _ = fmt.Fprint(w, "\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

// sendStatus writes a "status" event unless the view equals the last one sent.
func (h *SSEHandler) sendStatus(w http.ResponseWriter, view, last *service.JobStatusView) (*service.JobStatusView, error) {
	if last != nil && reflect.DeepEqual(view, last) {
		return last, nil
	}
	data, err := json.Marshal(view)
	if err != nil {
		return last, err
	}
	sseWrite(w, "status", string(data))
	return view, nil
}

// sendKeepAlive writes an SSE comment to keep the connection active.
func sendKeepAlive(w http.ResponseWriter) {
	_, _ = fmt.Fprint(w, ": keep-alive\n\n")
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}
}

func (h *SSEHandler) Events() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "Missing video ID")
			return
		}

		ctx := r.Context()

		// Subscribe before reading the current state so no transition is missed.
		ch := h.eventBus.Subscribe(id)
		defer h.eventBus.Unsubscribe(id, ch)

		view, err := h.status.GetJobStatus(ctx, id)
		if err != nil {
			writeLookupError(w, "Video", err)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		last, _ := h.sendStatus(w, view, nil)

		// Let the client close the connection once the job is settled.
		if isSettled(view) {
			<-ctx.Done()
			return
		}

		keepAlive := time.NewTicker(15 * time.Second)
		defer keepAlive.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-keepAlive.C:
				sendKeepAlive(w)
			case _, ok := <-ch:
				if !ok {
					return
				}
				// Re-fetch for the full view; events only carry the transition.
				view, err := h.status.GetJobStatus(ctx, id)
				if err != nil {
					return
				}
				last, _ = h.sendStatus(w, view, last)

				if isSettled(view) {
					<-ctx.Done()
					return
				}
			}
		}
	}
}

func isSettled(view *service.JobStatusView) bool {
	return view.Status == domain.JobStatusDone || (view.Status == domain.JobStatusError && view.Terminal)
}
