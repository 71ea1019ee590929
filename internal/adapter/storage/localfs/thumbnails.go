package localfs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/port"
)

// ThumbnailStore serves thumbnails straight from the directory the extractor
// writes to, under <baseURL>/thumbnails/.
type ThumbnailStore struct {
	dir     string
	baseURL string
}

func NewThumbnailStore(dir, baseURL string) *ThumbnailStore {
	return &ThumbnailStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *ThumbnailStore) Dir() string {
	return s.dir
}

// Path is where the extractor should write the thumbnail of jobID.
func (s *ThumbnailStore) Path(jobID string) string {
	return filepath.Join(s.dir, domain.ThumbnailFilename(jobID))
}

func (s *ThumbnailStore) URL(jobID string) string {
	return s.baseURL + "/thumbnails/" + domain.ThumbnailFilename(jobID)
}

func (s *ThumbnailStore) Publish(_ context.Context, jobID, localPath string) (string, error) {
	if filepath.Clean(localPath) != s.Path(jobID) {
		return "", fmt.Errorf("thumbnail %s is outside %s", localPath, s.dir)
	}
	if _, err := os.Stat(localPath); err != nil {
		return "", fmt.Errorf("stat thumbnail: %w", err)
	}
	return s.URL(jobID), nil
}

func (s *ThumbnailStore) Remove(_ context.Context, jobID string) error {
	err := os.Remove(s.Path(jobID))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

var _ port.ThumbnailStore = (*ThumbnailStore)(nil)
