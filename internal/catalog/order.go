package catalog

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/facette/natsort"
	"github.com/rwcarlsen/goexif/exif"

	"github.com/ivlev/zoomalbum/internal/photo"
	"github.com/ivlev/zoomalbum/internal/source"
)

// timestamp prefers the EXIF capture time of images over the file
// modification time.
func (c *Catalog) timestamp(path string, kind source.Kind) time.Time {
	if kind == source.KindImage && !c.Options.NoExif {
		if t, ok := exifTime(path); ok {
			return t
		}
	}
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return fi.ModTime()
}

func exifTime(path string) (time.Time, bool) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, false
	}
	t, err := x.DateTime()
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (c *Catalog) sort(inputs []photo.Input) {
	switch {
	case c.Options.NoSort:
	case c.Options.SortByFilename:
		sort.SliceStable(inputs, func(i, j int) bool {
			return lessName(inputs[i], inputs[j])
		})
	default:
		sort.SliceStable(inputs, func(i, j int) bool {
			a, b := inputs[i], inputs[j]
			if !a.Time.Equal(b.Time) {
				return a.Time.Before(b.Time)
			}
			return lessName(a, b)
		})
	}
}

func lessName(a, b photo.Input) bool {
	an, bn := filepath.Base(a.Source), filepath.Base(b.Source)
	if an == bn {
		return a.Page < b.Page
	}
	return natsort.Compare(an, bn)
}
