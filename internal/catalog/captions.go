package catalog

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivlev/zoomalbum/internal/photo"
)

// ReadCaptions reads "<file name>\t<caption>" lines. Blank lines and lines
// starting with # are ignored.
func ReadCaptions(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("caption file: %w", err)
	}
	defer f.Close()

	captions := map[string]string{}
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		name, caption, ok := strings.Cut(text, "\t")
		if !ok {
			return nil, fmt.Errorf("caption file %s:%d: missing tab", path, line)
		}
		captions[filepath.Base(name)] = strings.TrimSpace(caption)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("caption file %s: %w", path, err)
	}
	return captions, nil
}

// caption picks the table entry, then the file name, then the timestamp.
func (c *Catalog) caption(in photo.Input, table map[string]string) string {
	if s, ok := table[filepath.Base(in.Source)]; ok {
		return s
	}
	if c.Options.CaptionByFilename || in.Time.IsZero() {
		return filepath.Base(in.Source)
	}
	return in.Time.Format(TimeLayout)
}
