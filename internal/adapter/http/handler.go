package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/vidqueue/internal/adapter/http/validation"
	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/service"
)

type SubmissionService interface {
	Upload(ctx context.Context, originalName string, src io.Reader) (*service.Submission, error)
}

type StatusService interface {
	GetJob(ctx context.Context, id string) (*domain.Job, error)
	ListJobs(ctx context.Context, filter domain.JobFilter) ([]*domain.Job, error)
	GetJobStatus(ctx context.Context, id string) (*service.JobStatusView, error)
	GetTaskStatus(ctx context.Context, taskID string) (*service.TaskStatusView, error)
}

// HealthCheck is a named dependency probed by /healthz.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

type Handlers struct {
	submissions SubmissionService
	status      StatusService
	maxSizeMB   int
	checks      []HealthCheck
}

func NewHandlers(submissions SubmissionService, status StatusService, maxSizeMB int, checks []HealthCheck) *Handlers {
	return &Handlers{
		submissions: submissions,
		status:      status,
		maxSizeMB:   maxSizeMB,
		checks:      checks,
	}
}

type uploadResponse struct {
	VideoID string `json:"video_id"`
	TaskID  string `json:"task_id"`
	Message string `json:"message"`
}

func (h *Handlers) Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"message": "vidqueue video processor"})
	}
}

func (h *Handlers) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := http.StatusOK
		result := map[string]string{}
		for _, c := range h.checks {
			if err := c.Check(r.Context()); err != nil {
				logger.Warn.Printf("health check %s failed: %v", c.Name, err)
				result[c.Name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			result[c.Name] = "ok"
		}
		writeJSON(w, status, map[string]any{"status": http.StatusText(status), "checks": result})
	}
}

func (h *Handlers) Upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxBytes := int64(h.maxSizeMB) * 1024 * 1024
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
				writeError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large (max %d MB)", h.maxSizeMB))
				return
			}
			writeError(w, http.StatusBadRequest, "Invalid multipart upload")
			return
		}
		defer r.MultipartForm.RemoveAll() //nolint:errcheck

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Missing file field")
			return
		}
		defer file.Close() //nolint:errcheck

		sniffed, _, err := validation.ValidateMagicBytes(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Failed to read upload")
			return
		}
		declared := header.Header.Get("Content-Type")
		if !validation.IsVideo(header.Filename, declared, sniffed) {
			logger.Warn.Printf("rejected upload %s: declared=%s sniffed=%s",
				logger.SanitizeForLog(header.Filename), logger.SanitizeForLog(declared), sniffed)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s. Received: %s, Extension: %s",
				"File must be a video", declared, strings.ToLower(filepath.Ext(header.Filename))))
			return
		}

		name := validation.SanitizeFilename(header.Filename)
		sub, err := h.submissions.Upload(r.Context(), name, file)
		if err != nil {
			logger.Error.Printf("upload error for %s: %v", logger.SanitizeForLog(name), err)
			msg := "Upload failed"
			if strings.Contains(err.Error(), "no space left") {
				msg = "Upload failed: disk full"
			} else if strings.Contains(err.Error(), "permission denied") {
				msg = "Upload failed: permission error"
			}
			writeError(w, http.StatusInternalServerError, msg)
			return
		}

		writeJSON(w, http.StatusCreated, uploadResponse{
			VideoID: sub.Job.ID,
			TaskID:  sub.Task.ID,
			Message: "Video uploaded successfully, processing started",
		})
	}
}

func (h *Handlers) ListVideos() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter domain.JobFilter
		if s := r.URL.Query().Get("status"); s != "" {
			filter.Status = domain.JobStatus(s)
			if !filter.Status.Valid() {
				writeError(w, http.StatusBadRequest, "Unknown status "+strconv.Quote(s))
				return
			}
		}
		if s := r.URL.Query().Get("limit"); s != "" {
			limit, err := strconv.Atoi(s)
			if err != nil || limit < 0 {
				writeError(w, http.StatusBadRequest, "Invalid limit")
				return
			}
			filter.Limit = limit
		}

		jobs, err := h.status.ListJobs(r.Context(), filter)
		if err != nil {
			logger.Error.Printf("list videos error: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to list videos")
			return
		}
		if jobs == nil {
			jobs = []*domain.Job{}
		}
		writeJSON(w, http.StatusOK, jobs)
	}
}

func (h *Handlers) Video() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		job, err := h.status.GetJob(r.Context(), r.PathValue("id"))
		if err != nil {
			writeLookupError(w, "Video", err)
			return
		}
		writeJSON(w, http.StatusOK, job)
	}
}

func (h *Handlers) VideoStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.status.GetJobStatus(r.Context(), r.PathValue("id"))
		if err != nil {
			writeLookupError(w, "Video", err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

func (h *Handlers) TaskStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.status.GetTaskStatus(r.Context(), r.PathValue("id"))
		if err != nil {
			writeLookupError(w, "Task", err)
			return
		}
		writeJSON(w, http.StatusOK, view)
	}
}

// Thumbnails serves generated thumbnails. Directory listings are not exposed.
func (h *Handlers) Thumbnails(dir string) http.Handler {
	files := http.StripPrefix("/thumbnails/", http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

func writeLookupError(w http.ResponseWriter, what string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, what+" not found")
		return
	}
	logger.Error.Printf("%s lookup error: %v", strings.ToLower(what), err)
	writeError(w, http.StatusInternalServerError, "Internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error.Printf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
