package uploads

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ErrFileNotFound is returned when a receipt reference points at a file that
// no longer exists on disk.
var ErrFileNotFound = errors.New("receipt file not found")

// thumbnailWidth is the pixel width of the thumbnail generated alongside
// each stored receipt.
const thumbnailWidth = 320

// Store persists receipt images in a local directory and hands out
// URL-like references for retrieving them later.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Ingest decodes a base64 image payload, writes it under a collision-resistant
// name and returns the reference path clients use to retrieve it. The payload
// may carry a data-URL prefix ("data:image/jpeg;base64,...."), which is
// stripped before decoding.
func (s *Store) Ingest(payload string) (string, error) {
	if idx := strings.Index(payload, "base64,"); idx >= 0 {
		payload = payload[idx+len("base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}

	filename := fmt.Sprintf("receipt-%d-%s.jpg", time.Now().UnixMilli(), uuid.NewString()[:8])
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write receipt file: %w", err)
	}

	// Thumbnail generation is best-effort: a payload that isn't a decodable
	// image still gets stored as-is.
	s.writeThumbnail(filename, data)

	return "/expenses/uploads/" + filename, nil
}

func (s *Store) writeThumbnail(filename string, data []byte) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		log.Printf("uploads: skipping thumbnail for %s: %v", filename, err)
		return
	}

	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	thumbName := strings.TrimSuffix(filename, filepath.Ext(filename)) + "_thumb.jpg"
	if err := imaging.Save(thumb, filepath.Join(s.dir, thumbName)); err != nil {
		log.Printf("uploads: failed to save thumbnail %s: %v", thumbName, err)
	}
}

// Path resolves a stored filename to its on-disk path. Filenames are
// restricted to their base component so a reference can never escape the
// upload directory.
func (s *Store) Path(filename string) (string, error) {
	base := filepath.Base(filename)
	if base != filename || base == "." || base == ".." {
		return "", ErrFileNotFound
	}

	path := filepath.Join(s.dir, base)
	if _, err := os.Stat(path); err != nil {
		return "", ErrFileNotFound
	}

	return path, nil
}
