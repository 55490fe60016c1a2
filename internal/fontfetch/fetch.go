// Package fontfetch downloads fonts from the google/fonts repository and
// installs local font files or zips into the asset font directory.
package fontfetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	defaultAPIBase   = "https://api.github.com/repos/google/fonts/contents/ofl"
	defaultRawPrefix = "https://raw.githubusercontent.com/google/fonts/"
)

// ErrFamilyNotFound is returned when no folder in the repository matches a family name.
var ErrFamilyNotFound = errors.New("font family not found")

// Fetcher resolves family names against the google/fonts listing and saves
// the chosen file under Dir/<family>/.
type Fetcher struct {
	Dir    string
	Client *http.Client
	// APIBase is the contents listing of the ofl folder.
	APIBase string
	// RawPrefix restricts downloads to files served from the repository.
	RawPrefix string
}

// New returns a Fetcher saving into dir.
func New(dir string) *Fetcher {
	return &Fetcher{
		Dir:       dir,
		Client:    &http.Client{Timeout: 60 * time.Second},
		APIBase:   defaultAPIBase,
		RawPrefix: defaultRawPrefix,
	}
}

type githubFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Folders converts a display name to the folder names google/fonts uses,
// e.g. "Fira Sans" -> ["firasans", "fira-sans"].
func Folders(family string) []string {
	lower := strings.ToLower(strings.TrimSpace(family))
	if lower == "" {
		return nil
	}
	noSpaces := strings.ReplaceAll(lower, " ", "")
	out := []string{noSpaces}
	if hyphens := strings.ReplaceAll(lower, " ", "-"); hyphens != noSpaces {
		out = append(out, hyphens)
	}
	return out
}

// Get downloads one upright font file of family and returns where it was saved.
func (f *Fetcher) Get(ctx context.Context, family string) (string, error) {
	folders := Folders(family)
	if len(folders) == 0 {
		return "", fmt.Errorf("fontfetch: empty family name")
	}
	var lastErr error
	for _, folder := range folders {
		u, err := f.downloadURL(ctx, folder)
		if err != nil {
			lastErr = err
			continue
		}
		return f.download(ctx, u, filepath.Join(f.Dir, sanitizeFilename(strings.ReplaceAll(family, " ", ""))))
	}
	return "", lastErr
}

// downloadURL picks a .ttf/.otf in folder, preferring one without "Italic" in its name.
func (f *Fetcher) downloadURL(ctx context.Context, folder string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.APIBase+"/"+url.PathEscape(folder), nil)
	if err != nil {
		return "", fmt.Errorf("fontfetch: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fontfetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("fontfetch: %q: %w", folder, ErrFamilyNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fontfetch: listing %q: HTTP %d", folder, resp.StatusCode)
	}
	var files []githubFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return "", fmt.Errorf("fontfetch: %w", err)
	}
	var italic string
	for _, file := range files {
		if file.Type != "file" || !isFont(file.Name) || !strings.HasPrefix(file.DownloadURL, f.RawPrefix) {
			continue
		}
		if strings.Contains(strings.ToLower(file.Name), "italic") {
			if italic == "" {
				italic = file.DownloadURL
			}
			continue
		}
		return file.DownloadURL, nil
	}
	if italic != "" {
		return italic, nil
	}
	return "", fmt.Errorf("fontfetch: no .ttf/.otf in %q: %w", folder, ErrFamilyNotFound)
}

// download saves rawURL into destDir, naming the file after the URL path.
func (f *Fetcher) download(ctx context.Context, rawURL, destDir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("fontfetch: %w", err)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fontfetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fontfetch: download: HTTP %d", resp.StatusCode)
	}

	name := filenameFromURL(rawURL)
	if !isFont(name) {
		name += extensionFromContentType(resp.Header.Get("Content-Type"))
	}
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("fontfetch: %w", err)
	}
	saved := filepath.Join(destDir, name)
	if err := writeFile(saved, resp.Body); err != nil {
		return "", err
	}
	return saved, nil
}

func isFont(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".ttf" || ext == ".otf"
}

func filenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "font"
	}
	name, err := url.PathUnescape(path.Base(u.Path))
	if err != nil || name == "/" || name == "." {
		return "font"
	}
	return sanitizeFilename(name)
}

func extensionFromContentType(ct string) string {
	ct = strings.ToLower(ct)
	if strings.Contains(ct, "otf") || strings.Contains(ct, "opentype") {
		return ".otf"
	}
	return ".ttf"
}

var unsafeName = regexp.MustCompile(`[^a-zA-Z0-9_.\[\],-]+`)

func sanitizeFilename(name string) string {
	name = unsafeName.ReplaceAllString(name, "_")
	if name == "" {
		return "font"
	}
	if len(name) > 96 {
		name = name[:96]
	}
	return name
}
