package script

import "fmt"

// PreloadText is shown inside the progress bar housing.
const PreloadText = "now loading..."

// Instance names of the preloader parts.
const (
	ProgressBarName     = "progress_bar"
	ProgressHousingName = "progress_bar_housing"
)

func BarInit() string {
	return "_width = 0; var nframes = 0;"
}

// BarPoll grows the bar with the loaded byte ratio, pulsing the housing
// until everything is loaded, then hides both.
func BarPoll() string {
	bar := "_root." + ProgressBarName
	housing := "_root." + ProgressHousingName
	return fmt.Sprintf("if (_root.getBytesLoaded() >= _root.getBytesTotal()) { "+
		"%[1]s._width = %[2]s._width; stop(); %[1]s._visible = false; %[2]s._visible = false; "+
		"} else { "+
		"%[1]s._width = %[2]s._width * _root.getBytesLoaded() / _root.getBytesTotal(); "+
		"%[2]s._alpha = 50 + 50 * Math.abs(Math.cos(nframes / 10)); nframes++; gotoAndPlay(1); }",
		bar, housing)
}
