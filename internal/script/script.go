// Package script renders the action code embedded in album documents.
package script

import (
	"fmt"
	"math"
	"strings"
)

// Frame labels shared by clips and the code that jumps to them.
const (
	LabelLoaded  = "loaded"
	LabelZoomIn  = "zoom_in"
	LabelBlink   = "blink"
	LabelOpen    = "open"
	LabelZoomOut = "zoom_out"
)

// CaptionName is the instance name of a clip's caption.
const CaptionName = "caption"

// Blink pulses the clip alpha between BlinkBase and BlinkBase+BlinkAmplitude.
const (
	BlinkBase      = 77
	BlinkAmplitude = 23
	BlinkPeriod    = 30
)

// ClipName is the root instance name of photo id.
func ClipName(id int) string {
	return fmt.Sprintf("photo_%d", id)
}

func Goto(label string) string {
	return fmt.Sprintf("gotoAndPlay('%s');", label)
}

func Stop() string {
	return "stop();"
}

// LoadCheck skips the appear animation for a clip that already loaded.
func LoadCheck() string {
	return fmt.Sprintf("if (loaded) %s", Goto(LabelLoaded))
}

func MarkLoaded() string {
	return "stop(); loaded = 1;"
}

func ResetCounter() string { return "nframes = 0;" }
func Increment() string    { return "nframes++;" }
func Decrement() string    { return "nframes--;" }

// RaiseDepth brings the zooming clip above its neighbours.
func RaiseDepth() string {
	return "swapDepths(0);"
}

func StartBlink() string {
	return "Mouse.hide(); var i = 0;"
}

func Blink() string {
	return fmt.Sprintf("_alpha = %d + %d * Math.abs(Math.cos(i/%d)); i++;", BlinkBase, BlinkAmplitude, BlinkPeriod)
}

// BlinkAlpha evaluates Blink for tick i, in percent.
func BlinkAlpha(i int) float64 {
	return BlinkBase + BlinkAmplitude*math.Abs(math.Cos(float64(i)/BlinkPeriod))
}

// Open navigates to a detail page in a new window.
func Open(page string) string {
	return fmt.Sprintf("getURL('%s', '_blank');", EscapeURL(page))
}

// ZoomOut resumes the zoom-out steps at the step matching the number of
// zoom-in frames already played.
func ZoomOut(frames int, caption bool) string {
	hide := ""
	if caption {
		hide = fmt.Sprintf(" %s._visible = false;", CaptionName)
	}
	return fmt.Sprintf("_alpha = 100;%s gotoAndPlay(_currentframe + %d - nframes);", hide, frames)
}

// EscapeURL percent-encodes everything except ASCII letters, digits and "_.-".
func EscapeURL(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '.' || c == '-' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "%%%02X", c)
	}
	return b.String()
}
