package corpus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsearch/internal/domain"
	"docsearch/internal/extract"
	"docsearch/internal/extract/pdftest"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

type failingExtractor struct {
	fail map[string]bool
	next domain.Extractor
}

func (f failingExtractor) Extract(path string) (string, error) {
	if f.fail[filepath.Base(path)] {
		return "", errors.New("boom")
	}
	return f.next.Extract(path)
}

func TestLoad_SkipsCorruptPDF(t *testing.T) {
	dir := t.TempDir()
	pdftest.Write(t, filepath.Join(dir, "a.pdf"), "kucing makan ikan")
	writeFile(t, dir, "b.pdf", "%PDF-1.4 garbage that is not a real document")
	pdftest.Write(t, filepath.Join(dir, "c.pdf"), "anjing makan tulang")

	loader := NewLoader(NewDirectory(dir, ".pdf"), extract.Default(), nil)
	docs, err := loader.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, []string{"a.pdf", "c.pdf"}, docs.Names())
	assert.Contains(t, docs[0].Text, "kucing makan ikan")
	assert.Equal(t, filepath.Join(dir, "a.pdf"), docs[0].Path)
}

func TestLoad_ListingOrderAndExtensionFilter(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc2.txt", "anjing makan tulang")
	writeFile(t, dir, "doc1.txt", "kucing makan ikan")
	writeFile(t, dir, "notes.md", "ignored")
	writeFile(t, dir, "DOC3.TXT", "burung")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))

	docs, err := NewLoader(NewDirectory(dir, ".txt"), extract.Default(), nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"DOC3.TXT", "doc1.txt", "doc2.txt"}, docs.Names())
}

func TestLoad_DropsBlankDocuments(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docA.txt", "   ")
	writeFile(t, dir, "docB.txt", "\n\t\n")

	var dropped []string
	loader := NewLoader(NewDirectory(dir, ".txt"), extract.Default(), nil).
		WithDropObserver(func(name string, err error) {
			assert.NoError(t, err)
			dropped = append(dropped, name)
		})
	docs, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
	assert.Equal(t, []string{"docA.txt", "docB.txt"}, dropped)
}

func TestLoad_ExtractionErrorsAreAbsorbed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.txt", "satu")
	writeFile(t, dir, "two.txt", "dua")
	writeFile(t, dir, "three.txt", "tiga")

	ext := failingExtractor{fail: map[string]bool{"three.txt": true}, next: extract.NewPlainText()}
	var dropErr error
	loader := NewLoader(NewDirectory(dir, ".txt"), ext, nil).
		WithDropObserver(func(_ string, err error) { dropErr = err })

	docs, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"one.txt", "two.txt"}, docs.Names())
	assert.EqualError(t, dropErr, "boom")
}

func TestLoad_InvalidLocation(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	_, err := NewLoader(NewDirectory(missing, ".pdf"), extract.Default(), nil).Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)
}

func TestLoad_Cancelled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "one.txt", "satu")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewLoader(NewDirectory(dir, ".txt"), extract.Default(), nil).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoad_EmptyDirectory(t *testing.T) {
	docs, err := NewLoader(NewDirectory(t.TempDir(), ".pdf"), extract.Default(), nil).Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestLoad_FollowsSymlinkedDocuments(t *testing.T) {
	dir := t.TempDir()
	elsewhere := t.TempDir()
	writeFile(t, dir, "plain.txt", "kucing makan ikan")
	writeFile(t, elsewhere, "target.txt", "anjing makan tulang")
	if err := os.Symlink(filepath.Join(elsewhere, "target.txt"), filepath.Join(dir, "linked.txt")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	require.NoError(t, os.Mkdir(filepath.Join(elsewhere, "sub.txt"), 0o755))
	require.NoError(t, os.Symlink(filepath.Join(elsewhere, "sub.txt"), filepath.Join(dir, "dirlink.txt")))
	require.NoError(t, os.Symlink(filepath.Join(elsewhere, "gone.txt"), filepath.Join(dir, "dangling.txt")))

	source := NewDirectory(dir, ".txt")
	docs, err := NewLoader(source, extract.Default(), nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"linked.txt", "plain.txt"}, docs.Names())
	assert.Equal(t, "anjing makan tulang", docs[0].Text)

	f, err := source.Open("linked.txt")
	require.NoError(t, err)
	require.NoError(t, f.Close())
}
