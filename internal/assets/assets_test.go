package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "branding", "logo.png"))
	r := New(filepath.Join(t.TempDir(), "empty"), dir)

	got, err := r.Resolve("branding/logo.png")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "branding", "logo.png"), got)

	got, err = r.Resolve("assets/branding/logo.png")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "branding", "logo.png"), got)

	_, err = r.Resolve("branding/missing.png")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = r.Resolve(" ")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFontByFamily(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "fonts", "FiraSans", "FiraSans-Bold.ttf"))
	touch(t, filepath.Join(dir, "fonts", "FiraSans", "FiraSans-Regular.ttf"))
	touch(t, filepath.Join(dir, "fonts", "notes.txt"))
	r := New(dir)

	tests := []string{"Fira Sans", "fira_sans", "FiraSans/FiraSans-Medium.ttf", "fonts/FiraSans/FiraSans-Regular.ttf"}
	for _, search := range tests {
		t.Run(search, func(t *testing.T) {
			got, err := r.Font(search)
			require.NoError(t, err)
			require.Equal(t, "FiraSans-Regular.ttf", filepath.Base(got))
		})
	}

	_, err := r.Font("Inter")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.PNG"))
	touch(t, filepath.Join(dir, "sub", "b.jpg"))
	touch(t, filepath.Join(dir, "sub", "c.ttf"))

	got, err := Scan(dir, ImageExts)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"a.PNG", "sub/b.jpg"}, got)

	got, err = Scan(filepath.Join(dir, "missing"), FontExts)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSearchCandidates(t *testing.T) {
	require.Equal(t, []string{"Inter/Inter-Regular.ttf", "Inter", "Inter-Regular"}, searchCandidates("Inter/Inter-Regular.ttf"))
	require.Equal(t, []string{"GoogleSans-Regular.ttf", "GoogleSans-Regular", "GoogleSans"}, searchCandidates("GoogleSans-Regular.ttf"))
}
