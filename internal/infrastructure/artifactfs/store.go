// Package artifactfs stores rendered document artifacts on the local
// filesystem, gzip-compressed, partitioned by document type and period.
//
// Layout: <root>/<type>/<year>/<month>/<number>.html.gz
package artifactfs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/artifact"
	"fakturo/pkg/logger"
)

var _ artifact.Store = (*Store)(nil)

const (
	fileExt = ".html.gz"

	// maxRetries bounds retries of a failed filesystem operation before it
	// surfaces as StorageUnavailable.
	maxRetries   = 3
	retryBackoff = 20 * time.Millisecond
)

// Store is the filesystem-backed artifact store. Writes are atomic
// (temp file, fsync, rename) and last-write-wins per key.
type Store struct {
	root string
}

// New creates a store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create artifact root: %w", err)
	}
	return &Store{root: dir}, nil
}

// Save stores content under key, replacing any previous artifact, and
// returns the storage path.
func (s *Store) Save(ctx context.Context, key artifact.Key, content []byte) (string, error) {
	if err := key.Validate(); err != nil {
		return "", err
	}

	path := s.path(key)

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(content); err != nil {
		return "", fmt.Errorf("compress artifact: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("compress artifact: %w", err)
	}

	err := s.withRetry(ctx, "save artifact", func() error {
		return writeAtomic(path, buf.Bytes())
	})
	if err != nil {
		return "", err
	}

	logger.Debug(ctx, "artifact saved", "path", path, "bytes", len(content))
	return path, nil
}

// Load retrieves and decompresses the content stored under key.
func (s *Store) Load(ctx context.Context, key artifact.Key) ([]byte, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	path := s.path(key)

	var compressed []byte
	err := s.withRetry(ctx, "load artifact", func() error {
		var readErr error
		compressed, readErr = os.ReadFile(path)
		return readErr
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperror.NewNotFound("artifact", keyString(key))
		}
		return nil, err
	}

	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("decompress artifact %s: %w", path, err)
	}
	defer zr.Close()

	content, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompress artifact %s: %w", path, err)
	}
	return content, nil
}

// Delete removes the artifact under key. A missing artifact is NotFound.
func (s *Store) Delete(ctx context.Context, key artifact.Key) error {
	if err := key.Validate(); err != nil {
		return err
	}

	path := s.path(key)

	err := s.withRetry(ctx, "delete artifact", func() error {
		return os.Remove(path)
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return apperror.NewNotFound("artifact", keyString(key))
		}
		return err
	}
	return nil
}

// path builds the storage location for a key.
func (s *Store) path(key artifact.Key) string {
	return filepath.Join(
		s.root,
		string(key.DocumentType),
		fmt.Sprintf("%04d", key.Year),
		fmt.Sprintf("%02d", key.Month),
		sanitizeNumber(key.InvoiceNumber)+fileExt,
	)
}

// sanitizeNumber makes an invoice number filesystem-safe. Path separators
// become dashes so a number can never escape its partition directory.
func sanitizeNumber(number string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-")
	return replacer.Replace(number)
}

func keyString(key artifact.Key) string {
	return fmt.Sprintf("%s/%04d/%02d/%s", key.DocumentType, key.Year, key.Month, key.InvoiceNumber)
}

// withRetry runs op up to maxRetries times, backing off between attempts.
// Missing files are never retried; anything still failing after the last
// attempt surfaces as StorageUnavailable.
func (s *Store) withRetry(ctx context.Context, operation string, op func() error) error {
	var err error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
			logger.Debug(ctx, "retrying artifact operation", "operation", operation, "attempt", attempt)
		}

		err = op()
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return apperror.NewStorageUnavailable(operation, err)
}

// writeAtomic writes data to path via a temp file in the same directory,
// fsyncs, and renames over the destination so readers never observe a
// partial artifact.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create artifact dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
