package script

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeURL(t *testing.T) {
	tests := map[string]string{
		"img_0001.html": "img_0001.html",
		"my photo.html": "my%20photo.html",
		"a'b.html":      "a%27b.html",
		"dir/x.html":    "dir%2Fx.html",
		"été.html":      "%C3%A9t%C3%A9.html",
	}
	for in, want := range tests {
		assert.Equal(t, want, EscapeURL(in), in)
	}
}

func TestOpenEscapesQuotes(t *testing.T) {
	assert.Equal(t, "getURL('it%27s.html', '_blank');", Open("it's.html"))
}

func TestZoomOut(t *testing.T) {
	assert.Equal(t, "_alpha = 100; caption._visible = false; gotoAndPlay(_currentframe + 10 - nframes);", ZoomOut(10, true))
	assert.Equal(t, "_alpha = 100; gotoAndPlay(_currentframe + 10 - nframes);", ZoomOut(10, false))
}

func TestBlinkAlphaBounds(t *testing.T) {
	period := int(math.Round(math.Pi * BlinkPeriod))
	for i := 0; i < 1000; i++ {
		a := BlinkAlpha(i)
		assert.GreaterOrEqual(t, a, float64(BlinkBase))
		assert.LessOrEqual(t, a, float64(BlinkBase+BlinkAmplitude))
	}
	assert.Equal(t, 100.0, BlinkAlpha(0))
	// |cos| repeats every pi*30 ticks.
	assert.InDelta(t, BlinkAlpha(5), BlinkAlpha(5+period), 0.5)
}

func TestNavigate(t *testing.T) {
	code := Navigate(-3, 10)
	assert.Contains(t, code, "var tmp = _root.current_id + -3;")
	assert.Contains(t, code, "tmp < 10")
	assert.Contains(t, code, "if (_root.first_time) { _root.current_id = 0; _root.first_time = 0; }")
	assert.Contains(t, code, "gotoAndPlay('zoom_in');")
}

func TestActivateAndDeactivate(t *testing.T) {
	assert.Contains(t, Activate(7), "_root.current_id = 7; _root.first_time = 0;")
	assert.Equal(t, "Mouse.show(); photo_7.gotoAndPlay('zoom_out');", Deactivate(7))
	assert.Equal(t, "var current_id = 0; var first_time = 1;", InitNavigation(0, true))
}
