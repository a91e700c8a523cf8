// Package catalog turns command line inputs into ordered, named album
// entries.
package catalog

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/ivlev/zoomalbum/internal/config"
	"github.com/ivlev/zoomalbum/internal/photo"
	"github.com/ivlev/zoomalbum/internal/source"
)

// TimeLayout formats timestamps used as captions.
const TimeLayout = "2006-01-02 15:04:05"

type Catalog struct {
	Options   config.Catalog
	OutputDir string
}

func New(opts config.Catalog, outputDir string) *Catalog {
	return &Catalog{Options: opts, OutputDir: outputDir}
}

// Collect expands directories, drops files of unknown type, orders the
// rest and assigns captions, thumbnail paths and page names.
func (c *Catalog) Collect(paths []string) ([]photo.Input, error) {
	files, err := expand(paths)
	if err != nil {
		return nil, err
	}

	var inputs []photo.Input
	for _, path := range files {
		kind, err := source.Detect(path)
		if errors.Is(err, source.ErrUnsupported) {
			log.Printf("[!] Skipping %s: %v", path, err)
			continue
		}
		if err != nil {
			return nil, err
		}

		if kind == source.KindDocument {
			pages, err := documentPages(path)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, pages...)
			continue
		}
		inputs = append(inputs, photo.Input{Source: path, Kind: kind, Time: c.timestamp(path, kind)})
	}

	c.sort(inputs)

	captions := map[string]string{}
	if c.Options.CaptionFile != "" {
		captions, err = ReadCaptions(c.Options.CaptionFile)
		if err != nil {
			return nil, err
		}
	}

	names := map[string]int{}
	for i := range inputs {
		in := &inputs[i]
		in.Caption = c.caption(*in, captions)

		name := c.name(i, *in)
		if n := names[name]; n > 0 {
			names[name]++
			name = fmt.Sprintf("%s-%d", name, n+1)
		} else {
			names[name] = 1
		}
		in.Thumbnail = filepath.Join(c.OutputDir, c.Options.ThumbnailPrefix+name+".jpg")
		in.PageURL = name + ".html" + c.Options.HTMLSuffix
	}
	return inputs, nil
}

func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, &source.AssetError{Path: p, Err: err}
		}
		if !fi.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, &source.AssetError{Path: p, Err: err}
		}
		for _, e := range entries {
			if !e.IsDir() && source.Supported(e.Name()) {
				files = append(files, filepath.Join(p, e.Name()))
			}
		}
	}
	return files, nil
}

func documentPages(path string) ([]photo.Input, error) {
	doc, err := source.OpenPDF(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	fi, err := os.Stat(path)
	if err != nil {
		return nil, &source.AssetError{Path: path, Err: err}
	}

	pages := make([]photo.Input, 0, doc.PageCount())
	for i := 0; i < doc.PageCount(); i++ {
		pages = append(pages, photo.Input{Source: path, Kind: source.KindDocument, Page: i, Time: fi.ModTime()})
	}
	return pages, nil
}

func nosuffix(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// name is the base for the thumbnail and page of an entry.
func (c *Catalog) name(index int, in photo.Input) string {
	if c.Options.Sequential {
		return fmt.Sprintf("%06d", index+1)
	}
	if in.Kind == source.KindDocument {
		return fmt.Sprintf("%s-p%03d", nosuffix(in.Source), in.Page+1)
	}
	return nosuffix(in.Source)
}
