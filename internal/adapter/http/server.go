package http

import (
	"net/http"

	"github.com/bnema/vidqueue/internal/adapter/http/middleware"
	"github.com/bnema/vidqueue/internal/adapter/http/ratelimit"
	"github.com/bnema/vidqueue/internal/service"
)

type Server struct {
	mux        *http.ServeMux
	handlers   *Handlers
	sseHandler *SSEHandler
	wsHandler  *WebSocketHandler
	thumbDir   string
	uploads    *ratelimit.Limiter
}

// NewServer wires the API routes. A nil uploads limiter leaves uploads unthrottled.
func NewServer(submissions SubmissionService, status StatusService, eventBus *service.EventBus, thumbDir string, maxSizeMB int, checks []HealthCheck, uploads *ratelimit.Limiter) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		handlers:   NewHandlers(submissions, status, maxSizeMB, checks),
		sseHandler: NewSSEHandler(eventBus, status),
		wsHandler:  NewWebSocketHandler(eventBus, status),
		thumbDir:   thumbDir,
		uploads:    uploads,
	}

	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("GET /{$}", s.handlers.Root())
	s.mux.HandleFunc("GET /healthz", s.handlers.Health())

	upload := s.handlers.Upload()
	if s.uploads != nil {
		upload = s.uploads.Middleware(upload)
	}
	s.mux.HandleFunc("POST /upload-video", upload)
	s.mux.HandleFunc("POST /upload-video/", upload)

	s.mux.HandleFunc("GET /videos", s.handlers.ListVideos())
	s.mux.HandleFunc("GET /videos/{id}", s.handlers.Video())
	s.mux.HandleFunc("GET /videos/{id}/status", s.handlers.VideoStatus())
	s.mux.HandleFunc("GET /tasks/{id}", s.handlers.TaskStatus())

	// Paths kept for clients of the first API revision.
	s.mux.HandleFunc("GET /video-status/{id}", s.handlers.VideoStatus())
	s.mux.HandleFunc("GET /video-metadata/{id}", s.handlers.Video())
	s.mux.HandleFunc("GET /task/{id}", s.handlers.TaskStatus())

	s.mux.HandleFunc("GET /events/{id}", s.sseHandler.Events())
	s.mux.HandleFunc("GET /ws", s.wsHandler.Stream())

	s.mux.Handle("GET /thumbnails/", s.handlers.Thumbnails(s.thumbDir))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	middleware.SecurityHeaders(s.mux).ServeHTTP(w, r)
}
