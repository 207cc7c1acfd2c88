package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// MaxFiles is the maximum number of images accepted per request.
	MaxFiles = 5
	// MaxFileSize is the per-file size limit in bytes (2 MiB).
	MaxFileSize = 2 << 20
	// PublicPrefix is the URL prefix under which stored files are served.
	PublicPrefix = "/uploads"
)

var (
	ErrTooManyFiles    = errors.New("too many files")
	ErrFileTooLarge    = errors.New("file exceeds size limit")
	ErrUnsupportedType = errors.New("only .png, .jpg and .jpeg formats allowed")
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// Store writes accepted image files into a local directory and hands out
// their public-relative paths.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a Store for it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Validate checks file count, per-file size and declared MIME type. It is
// called before any file is written so a rejected batch leaves no files
// behind.
func (s *Store) Validate(files []*multipart.FileHeader) error {
	if len(files) > MaxFiles {
		return fmt.Errorf("%w: got %d, limit is %d", ErrTooManyFiles, len(files), MaxFiles)
	}
	for _, fh := range files {
		if fh.Size > MaxFileSize {
			return fmt.Errorf("%w: %s is %d bytes", ErrFileTooLarge, fh.Filename, fh.Size)
		}
		if !allowedTypes[strings.ToLower(fh.Header.Get("Content-Type"))] {
			return fmt.Errorf("%w: %s", ErrUnsupportedType, fh.Filename)
		}
	}
	return nil
}

// Save validates then writes every file, naming each by ingestion timestamp
// plus the original extension. It returns the public-relative path of each
// stored file.
func (s *Store) Save(files []*multipart.FileHeader) ([]string, error) {
	if err := s.Validate(files); err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		name := fmt.Sprintf("%d%s", time.Now().UnixNano(), strings.ToLower(filepath.Ext(fh.Filename)))
		if err := s.write(fh, name); err != nil {
			// Roll back files already written in this batch.
			for _, p := range paths {
				_ = s.Remove(p)
			}
			return nil, err
		}
		paths = append(paths, PublicPrefix+"/"+name)
	}
	return paths, nil
}

func (s *Store) write(fh *multipart.FileHeader, name string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file %s: %w", fh.Filename, err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Remove deletes a stored file given its public-relative path.
func (s *Store) Remove(publicPath string) error {
	name := filepath.Base(publicPath)
	return os.Remove(filepath.Join(s.dir, name))
}

// Dir returns the local directory files are stored in.
func (s *Store) Dir() string {
	return s.dir
}
