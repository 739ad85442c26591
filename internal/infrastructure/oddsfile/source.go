package oddsfile

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	crerr "github.com/cockroachdb/errors"

	"github.com/frenchfries11234/ff.gg/internal/domain/odds"
)

// DirectorySource reads odds documents saved as <root>/<dir>/*.json.
type DirectorySource struct {
	root string
}

func NewDirectorySource(root string) *DirectorySource {
	return &DirectorySource{root: root}
}

// List returns the JSON file paths of dir sorted by file name.
func (s *DirectorySource) List(dir string) ([]string, error) {
	path := filepath.Join(s.root, dir)
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, crerr.Wrapf(err, "read odds directory %s", path)
	}

	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		out = append(out, filepath.Join(path, entry.Name()))
	}
	sort.Strings(out)
	return out, nil
}

func (s *DirectorySource) Load(ctx context.Context, dir string) ([]odds.RawDocument, error) {
	paths, err := s.List(dir)
	if err != nil {
		return nil, err
	}

	out := make([]odds.RawDocument, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, crerr.Wrap(err, "load odds documents")
		}
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, crerr.Wrapf(err, "read odds document %s", path)
		}
		out = append(out, odds.RawDocument{Name: filepath.Base(path), Body: body})
	}
	return out, nil
}
