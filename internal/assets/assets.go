// Package assets resolves font and image paths used by ui nodes against a list of asset directories.
package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FontExts and ImageExts are the file types Scan reports.
var (
	FontExts  = []string{".ttf", ".otf"}
	ImageExts = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif"}
)

// ErrNotFound is returned when no asset directory holds the requested file.
var ErrNotFound = errors.New("asset not found")

// Resolver looks files up under Dirs in order. Paths are tried as given first,
// so absolute paths and paths relative to the working directory always win.
type Resolver struct {
	Dirs []string
}

// New returns a Resolver over dirs.
func New(dirs ...string) *Resolver {
	return &Resolver{Dirs: dirs}
}

// Resolve returns the first existing file for path.
func (r *Resolver) Resolve(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("assets: empty path: %w", ErrNotFound)
	}
	if isFile(path) {
		return path, nil
	}
	for _, dir := range r.Dirs {
		full := filepath.Join(dir, stripAssetsPrefix(path))
		if isFile(full) {
			return full, nil
		}
	}
	return "", fmt.Errorf("assets: %s: %w", path, ErrNotFound)
}

// Font resolves a font by path or, failing that, by a loose family name such
// as "Inter" or "Fira Sans" searched under each dir's fonts/ folder. When
// several files match, one with "Regular" in its name is preferred.
func (r *Resolver) Font(search string) (string, error) {
	if full, err := r.Resolve(search); err == nil {
		return full, nil
	}
	for _, candidate := range searchCandidates(search) {
		norm := normalizeForMatch(candidate)
		if norm == "" {
			continue
		}
		var matches []string
		for _, dir := range r.Dirs {
			base := filepath.Join(dir, "fonts")
			list, err := Scan(base, FontExts)
			if err != nil {
				continue
			}
			for _, rel := range list {
				if strings.Contains(normalizeForMatch(rel), norm) {
					matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
				}
			}
		}
		if len(matches) == 0 {
			continue
		}
		for _, m := range matches {
			if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
				return m, nil
			}
		}
		return matches[0], nil
	}
	return "", fmt.Errorf("assets: font %q: %w", search, ErrNotFound)
}

// Scan returns slash-separated paths, relative to dir, of every file under
// dir whose extension is in exts. A missing dir yields no files.
func Scan(dir string, exts []string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() || !hasExt(path, exts) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func hasExt(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// stripAssetsPrefix drops a leading "assets/" so "assets/logo.png" and "logo.png" resolve alike.
func stripAssetsPrefix(path string) string {
	for _, prefix := range []string{"assets/", "assets\\"} {
		if strings.HasPrefix(path, prefix) {
			return strings.TrimPrefix(path, prefix)
		}
	}
	return path
}

// normalizeForMatch lowercases and removes spaces, dashes and underscores.
func normalizeForMatch(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}

// searchCandidates lists search terms to try in order, e.g.
// "Inter/Inter-Regular.ttf" -> ["Inter/Inter-Regular.ttf", "Inter"].
func searchCandidates(pathOrName string) []string {
	pathOrName = strings.TrimSpace(pathOrName)
	seen := map[string]bool{pathOrName: true}
	candidates := []string{pathOrName}
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			candidates = append(candidates, s)
		}
	}
	base := filepath.Base(filepath.ToSlash(pathOrName))
	if i := strings.IndexAny(pathOrName, "/\\"); i > 0 {
		add(pathOrName[:i])
	}
	if hasExt(base, FontExts) {
		add(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	if i := strings.Index(base, "-"); i > 0 {
		add(base[:i])
	}
	return candidates
}
