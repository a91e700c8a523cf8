package catalog

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/zoomalbum/internal/config"
	"github.com/ivlev/zoomalbum/internal/photo"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.Local)

func writePNG(t *testing.T, dir, name string, mtime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewGray(image.Rect(0, 0, 2, 2))))
	require.NoError(t, f.Close())
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func sources(inputs []photo.Input) []string {
	var out []string
	for _, in := range inputs {
		out = append(out, filepath.Base(in.Source))
	}
	return out
}

func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writePNG(t, dir, "img10.png", base.Add(1*time.Hour))
	writePNG(t, dir, "img2.png", base.Add(3*time.Hour))
	writePNG(t, dir, "img1.png", base.Add(2*time.Hour))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0644))
	return dir
}

func TestCollectSortsByTime(t *testing.T) {
	opts := config.Default().Catalog
	inputs, err := New(opts, "out").Collect([]string{fixture(t)})
	require.NoError(t, err)

	assert.Equal(t, []string{"img10.png", "img1.png", "img2.png"}, sources(inputs))
	assert.Equal(t, base.Add(time.Hour).Format(TimeLayout), inputs[0].Caption)
	assert.Equal(t, filepath.Join("out", "tn-img10.jpg"), inputs[0].Thumbnail)
	assert.Equal(t, "img10.html", inputs[0].PageURL)
}

func TestCollectSortsByFilename(t *testing.T) {
	opts := config.Default().Catalog
	opts.SortByFilename = true
	opts.CaptionByFilename = true
	inputs, err := New(opts, "out").Collect([]string{fixture(t)})
	require.NoError(t, err)

	assert.Equal(t, []string{"img1.png", "img2.png", "img10.png"}, sources(inputs))
	assert.Equal(t, "img1.png", inputs[0].Caption)
}

func TestCollectKeepsArgumentOrder(t *testing.T) {
	dir := fixture(t)
	opts := config.Default().Catalog
	opts.NoSort = true
	paths := []string{filepath.Join(dir, "img2.png"), filepath.Join(dir, "img10.png"), filepath.Join(dir, "img1.png")}

	inputs, err := New(opts, "out").Collect(paths)
	require.NoError(t, err)
	assert.Equal(t, []string{"img2.png", "img10.png", "img1.png"}, sources(inputs))
}

func TestCollectSequentialNames(t *testing.T) {
	opts := config.Default().Catalog
	opts.Sequential = true
	opts.HTMLSuffix = ".ja"
	inputs, err := New(opts, "out").Collect([]string{fixture(t)})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("out", "tn-000002.jpg"), inputs[1].Thumbnail)
	assert.Equal(t, "000003.html.ja", inputs[2].PageURL)
}

func TestCollectDeduplicatesNames(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	writePNG(t, a, "same.png", base)
	writePNG(t, b, "same.png", base.Add(time.Minute))

	inputs, err := New(config.Default().Catalog, "out").Collect([]string{a, b})
	require.NoError(t, err)
	require.Len(t, inputs, 2)
	assert.Equal(t, "same.html", inputs[0].PageURL)
	assert.Equal(t, "same-2.html", inputs[1].PageURL)
}

func TestCollectMissingInput(t *testing.T) {
	_, err := New(config.Default().Catalog, "out").Collect([]string{filepath.Join(t.TempDir(), "nope.jpg")})
	assert.ErrorContains(t, err, "nope.jpg")
}

func TestCaptionFile(t *testing.T) {
	dir := fixture(t)
	table := filepath.Join(t.TempDir(), "captions.txt")
	data := "# album captions\n\nimg1.png\tFirst light\nimg2.png\t  Harbour  \n"
	require.NoError(t, os.WriteFile(table, []byte(data), 0644))

	opts := config.Default().Catalog
	opts.CaptionFile = table
	opts.SortByFilename = true
	inputs, err := New(opts, "out").Collect([]string{dir})
	require.NoError(t, err)

	assert.Equal(t, "First light", inputs[0].Caption)
	assert.Equal(t, "Harbour", inputs[1].Caption)
	assert.Equal(t, base.Add(time.Hour).Format(TimeLayout), inputs[2].Caption)
}

func TestReadCaptionsRejectsMissingTab(t *testing.T) {
	table := filepath.Join(t.TempDir(), "captions.txt")
	require.NoError(t, os.WriteFile(table, []byte("img1.png First light\n"), 0644))

	_, err := ReadCaptions(table)
	assert.ErrorContains(t, err, ":1:")
}
