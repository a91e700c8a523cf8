package config

import (
	"fmt"
	"os"
	"regexp"
	"runtime"
)

// Config holds every tunable of an album build. Zero values are never
// meaningful; start from Default.
type Config struct {
	Inputs    []string `yaml:"inputs,omitempty" toml:"inputs"`
	OutputDir string   `yaml:"output_dir" toml:"output_dir"`
	MovieFile string   `yaml:"movie_file" toml:"movie_file"`
	Workers   int      `yaml:"workers" toml:"workers"`
	Quiet     bool     `yaml:"quiet" toml:"quiet"`
	ShowStats bool     `yaml:"show_stats" toml:"show_stats"`
	AlbumURL  string   `yaml:"album_url,omitempty" toml:"album_url"`

	Stage   Stage   `yaml:"stage" toml:"stage"`
	Frames  Frames  `yaml:"frames" toml:"frames"`
	Margins Margins `yaml:"margins" toml:"margins"`
	Caption Caption `yaml:"caption" toml:"caption"`
	Borders Borders `yaml:"borders" toml:"borders"`
	Colors  Colors  `yaml:"colors" toml:"colors"`
	Catalog Catalog `yaml:"catalog" toml:"catalog"`

	Art    bool   `yaml:"art" toml:"art"`
	NoFade bool   `yaml:"no_fade" toml:"no_fade"`
	Font   string `yaml:"font,omitempty" toml:"font"`

	ThumbnailWidth int     `yaml:"thumbnail_width" toml:"thumbnail_width"`
	Gamma          float64 `yaml:"gamma" toml:"gamma"`

	BuildVersion string `yaml:"-" toml:"-"`
}

type Stage struct {
	Width     int `yaml:"width" toml:"width"`
	Height    int `yaml:"height" toml:"height"`
	FrameRate int `yaml:"frame_rate" toml:"frame_rate"`
}

// Frames are counted in output frames at Stage.FrameRate.
type Frames struct {
	Zoom       int `yaml:"zoom" toml:"zoom"`
	Wait       int `yaml:"wait" toml:"wait"`
	Transition int `yaml:"transition" toml:"transition"`
	Samples    int `yaml:"samples" toml:"samples"`
}

type Margins struct {
	Album  float64 `yaml:"album" toml:"album"`
	Photo  float64 `yaml:"photo" toml:"photo"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
}

type Caption struct {
	Disabled   bool    `yaml:"disabled" toml:"disabled"`
	Height     float64 `yaml:"height" toml:"height"`
	Margin     float64 `yaml:"margin" toml:"margin"`
	WidthRatio float64 `yaml:"width_ratio" toml:"width_ratio"`
}

type Borders struct {
	Inactive     uint16 `yaml:"inactive" toml:"inactive"`
	Active       uint16 `yaml:"active" toml:"active"`
	Caption      uint16 `yaml:"caption" toml:"caption"`
	ProgressLine uint16 `yaml:"progress_line" toml:"progress_line"`
}

// Colors are "#rrggbb" or "#rrggbbaa".
type Colors struct {
	Background     string `yaml:"background" toml:"background"`
	BorderInactive string `yaml:"border_inactive" toml:"border_inactive"`
	BorderActive   string `yaml:"border_active" toml:"border_active"`
	Shadow         string `yaml:"shadow" toml:"shadow"`
	CaptionBorder  string `yaml:"caption_border" toml:"caption_border"`
	CaptionFrame   string `yaml:"caption_frame" toml:"caption_frame"`
	CaptionText    string `yaml:"caption_text" toml:"caption_text"`
	ProgressBar    string `yaml:"progress_bar" toml:"progress_bar"`
	ProgressText   string `yaml:"progress_text" toml:"progress_text"`
	ProgressFrame  string `yaml:"progress_frame" toml:"progress_frame"`
}

type Catalog struct {
	SortByFilename    bool   `yaml:"sort_by_filename" toml:"sort_by_filename"`
	NoSort            bool   `yaml:"no_sort" toml:"no_sort"`
	NoExif            bool   `yaml:"no_exif" toml:"no_exif"`
	CaptionFile       string `yaml:"caption_file,omitempty" toml:"caption_file"`
	CaptionByFilename bool   `yaml:"caption_by_filename" toml:"caption_by_filename"`
	Sequential        bool   `yaml:"sequential" toml:"sequential"`
	ThumbnailPrefix   string `yaml:"thumbnail_prefix" toml:"thumbnail_prefix"`
	HTMLSuffix        string `yaml:"html_suffix,omitempty" toml:"html_suffix"`
}

// FontEnv names the environment variable consulted for the default font.
const FontEnv = "ZOOMALBUM_FONT"

func Default() *Config {
	return &Config{
		OutputDir: "zoomalbum",
		MovieFile: "album.movie.yaml",
		Workers:   runtime.NumCPU(),
		Stage:     Stage{Width: 750, Height: 500, FrameRate: 30},
		Frames:    Frames{Zoom: 10, Wait: 5, Transition: 20, Samples: 4},
		Margins:   Margins{Album: 0.25, Photo: 0.12, Bottom: 0.02},
		Caption:   Caption{Height: 100, Margin: 0.3, WidthRatio: 0.75},
		Borders:   Borders{Inactive: 1, Active: 150, Caption: 1, ProgressLine: 20},
		Colors: Colors{
			Background:     "#ffffff",
			BorderInactive: "#00008866",
			BorderActive:   "#ffffffcc",
			Shadow:         "#0000ff44",
			CaptionBorder:  "#ffffffcc",
			CaptionFrame:   "#ffffffcc",
			CaptionText:    "#000077ff",
			ProgressBar:    "#00ff0033",
			ProgressText:   "#ff7f0077",
			ProgressFrame:  "#000088cc",
		},
		Catalog:        Catalog{ThumbnailPrefix: "tn-"},
		Font:           os.Getenv(FontEnv),
		ThumbnailWidth: 320,
		Gamma:          1.0,
	}
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$`)

// Validate reports the first setting that cannot produce an album.
func (c *Config) Validate() error {
	switch {
	case c.Stage.Width <= 0 || c.Stage.Height <= 0:
		return fmt.Errorf("stage size must be positive, got %dx%d", c.Stage.Width, c.Stage.Height)
	case c.Stage.FrameRate <= 0:
		return fmt.Errorf("frame rate must be positive, got %d", c.Stage.FrameRate)
	case c.Frames.Zoom <= 0:
		return fmt.Errorf("zoom frames must be positive, got %d", c.Frames.Zoom)
	case c.Frames.Wait < 0:
		return fmt.Errorf("wait frames must not be negative, got %d", c.Frames.Wait)
	case c.Frames.Transition <= 0:
		return fmt.Errorf("transition frames must be positive, got %d", c.Frames.Transition)
	case c.Frames.Samples <= 0:
		return fmt.Errorf("movie samples must be positive, got %d", c.Frames.Samples)
	case c.Margins.Album < 0 || c.Margins.Album >= 1:
		return fmt.Errorf("album margin must be in [0, 1), got %g", c.Margins.Album)
	case c.Margins.Photo < 0 || c.Margins.Photo >= 1:
		return fmt.Errorf("photo margin must be in [0, 1), got %g", c.Margins.Photo)
	case c.Margins.Bottom < 0 || c.Margins.Bottom >= 0.5:
		return fmt.Errorf("bottom margin must be in [0, 0.5), got %g", c.Margins.Bottom)
	case c.Caption.Height <= 0 || c.Caption.WidthRatio <= 0:
		return fmt.Errorf("caption height and width ratio must be positive")
	case c.Caption.Margin < 0 || c.Caption.Margin >= 1:
		return fmt.Errorf("caption margin must be in [0, 1), got %g", c.Caption.Margin)
	case c.ThumbnailWidth <= 0:
		return fmt.Errorf("thumbnail width must be positive, got %d", c.ThumbnailWidth)
	case c.Gamma <= 0:
		return fmt.Errorf("gamma must be positive, got %g", c.Gamma)
	case c.Workers <= 0:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	case c.Catalog.NoSort && c.Catalog.SortByFilename:
		return fmt.Errorf("no_sort and sort_by_filename are mutually exclusive")
	}

	for name, v := range c.Colors.byName() {
		if !colorPattern.MatchString(v) {
			return fmt.Errorf("color %s: want #rrggbb or #rrggbbaa, got %q", name, v)
		}
	}
	return nil
}

func (c Colors) byName() map[string]string {
	return map[string]string{
		"background":      c.Background,
		"border_inactive": c.BorderInactive,
		"border_active":   c.BorderActive,
		"shadow":          c.Shadow,
		"caption_border":  c.CaptionBorder,
		"caption_frame":   c.CaptionFrame,
		"caption_text":    c.CaptionText,
		"progress_bar":    c.ProgressBar,
		"progress_text":   c.ProgressText,
		"progress_frame":  c.ProgressFrame,
	}
}
