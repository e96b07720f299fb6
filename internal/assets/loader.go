package assets

import (
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"
)

// Loader discovers and decodes ribbon images from a directory tree.
type Loader struct {
	log *slog.Logger
}

// NewLoader creates a loader that reports skipped files on the given logger.
// A nil logger falls back to slog.Default().
func NewLoader(log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}
	return &Loader{log: log}
}

// Load returns all PNG images under dir, recursively, keyed by file path.
// Files that fail to decode are skipped with a warning (best-effort). An
// empty directory yields an empty map, not an error.
func (l *Loader) Load(dir string) (map[string]image.Image, error) {
	ribbons := make(map[string]image.Image)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".png") {
			return nil
		}

		img, err := imaging.Open(path)
		if err != nil {
			l.log.Warn("skipping undecodable ribbon image", "path", path, "error", err)
			return nil
		}
		ribbons[path] = img
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning ribbon directory %s: %w", dir, err)
	}

	return ribbons, nil
}

// Open decodes a single image file.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	return img, nil
}

// SortedPaths returns the map keys in lexical order, for a deterministic
// ribbon sequence.
func SortedPaths(ribbons map[string]image.Image) []string {
	paths := make([]string, 0, len(ribbons))
	for path := range ribbons {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
