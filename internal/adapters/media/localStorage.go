package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid"
)

// LocalStorage writes uploads below Root. Returned names use forward slashes
// and are relative to Root, e.g. "posts/small.gif".
type LocalStorage struct {
	Root string
}

func NewLocalStorage(root string) *LocalStorage {
	return &LocalStorage{Root: root}
}

func (s *LocalStorage) Save(ctx context.Context, dir, filename string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := cleanFilename(filename)
	if err := os.MkdirAll(filepath.Join(s.Root, dir), 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	// An existing file is never overwritten; a short random suffix is added instead.
	candidate := name
	for attempt := 0; ; attempt++ {
		full := filepath.Join(s.Root, dir, candidate)
		f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) && attempt < 10 {
			candidate = withSuffix(name, uuid.Must(uuid.NewV4()).String()[:7])
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create media file: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("write media file: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("close media file: %w", err)
		}
		return path.Join(dir, candidate), nil
	}
}

func cleanFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r == '/' || r == 0:
			return -1
		}
		return r
	}, name)
	if name == "" || name == "." || name == ".." {
		return "upload"
	}
	return name
}

func withSuffix(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_" + suffix + ext
}
