package fontfetch

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Install copies a .ttf/.otf into Dir, or extracts the fonts of a .zip into
// Dir/<zip name>/. It returns the installed font paths, Regular weights first.
func (f *Fetcher) Install(src string) ([]string, error) {
	switch ext := strings.ToLower(filepath.Ext(src)); {
	case ext == ".zip":
		dest := filepath.Join(f.Dir, sanitizeFilename(strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))))
		files, err := unzipFonts(src, dest)
		if err != nil {
			return nil, err
		}
		return regularFirst(files), nil
	case isFont(src):
		dest := filepath.Join(f.Dir, sanitizeFilename(filepath.Base(src)))
		if err := copyFile(src, dest); err != nil {
			return nil, err
		}
		return []string{dest}, nil
	default:
		return nil, fmt.Errorf("fontfetch: %s: not a font or zip", src)
	}
}

// unzipFonts extracts only font files from zipPath into destDir, keeping their
// folders. Entries that would land outside destDir are skipped.
func unzipFonts(zipPath, destDir string) ([]string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("fontfetch: unzip: %w", err)
	}
	defer r.Close()

	absDir, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("fontfetch: unzip: %w", err)
	}
	var extracted []string
	for _, zf := range r.File {
		if zf.FileInfo().IsDir() || !isFont(zf.Name) {
			continue
		}
		dest := filepath.Join(absDir, filepath.FromSlash(zf.Name))
		if !strings.HasPrefix(dest, absDir+string(os.PathSeparator)) {
			continue
		}
		if err := extract(zf, dest); err != nil {
			return nil, err
		}
		extracted = append(extracted, dest)
	}
	if len(extracted) == 0 {
		return nil, fmt.Errorf("fontfetch: %s: no fonts in archive", zipPath)
	}
	return extracted, nil
}

func extract(zf *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("fontfetch: unzip: %w", err)
	}
	rc, err := zf.Open()
	if err != nil {
		return fmt.Errorf("fontfetch: unzip: %w", err)
	}
	defer rc.Close()
	return writeFile(dest, rc)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("fontfetch: %w", err)
	}
	defer in.Close()
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("fontfetch: %w", err)
	}
	return writeFile(dest, in)
}

func writeFile(dest string, r io.Reader) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("fontfetch: %w", err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		_ = os.Remove(dest)
		return fmt.Errorf("fontfetch: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("fontfetch: %w", err)
	}
	return nil
}

func regularFirst(paths []string) []string {
	var regular, other []string
	for _, p := range paths {
		if strings.Contains(strings.ToLower(filepath.Base(p)), "regular") {
			regular = append(regular, p)
		} else {
			other = append(other, p)
		}
	}
	return append(regular, other...)
}
