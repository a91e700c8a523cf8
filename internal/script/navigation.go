package script

import "fmt"

// Runtime variables of the root timeline.
const (
	CurrentVar = "_root.current_id"
	FirstVar   = "_root.first_time"
)

// InitNavigation declares the navigation state on the root timeline.
func InitNavigation(current int, first bool) string {
	f := 0
	if first {
		f = 1
	}
	return fmt.Sprintf("var current_id = %d; var first_time = %d;", current, f)
}

func target(expr string) string {
	return fmt.Sprintf("setTarget('/photo_' + %s);", expr)
}

// Activate zooms out the current photo and zooms in photo id.
func Activate(id int) string {
	return target(CurrentVar) + " " + Goto(LabelZoomOut) + " " +
		fmt.Sprintf("%s = %d; %s = 0; ", CurrentVar, id, FirstVar) +
		target(CurrentVar) + " " + Goto(LabelZoomIn)
}

// Deactivate restores the cursor and zooms photo id out.
func Deactivate(id int) string {
	return fmt.Sprintf("Mouse.show(); %s.%s", ClipName(id), Goto(LabelZoomOut))
}

// Navigate moves the current photo by delta within [0, count). The first
// move from the initial state lands on photo 0.
func Navigate(delta, count int) string {
	return target(CurrentVar) + " " + Goto(LabelZoomOut) + " " +
		fmt.Sprintf("var tmp = %s + %d; ", CurrentVar, delta) +
		fmt.Sprintf("if (%s) { %s = 0; %s = 0; } ", FirstVar, CurrentVar, FirstVar) +
		fmt.Sprintf("else if (tmp >= 0 && tmp < %d) { %s = tmp; } ", count, CurrentVar) +
		target(CurrentVar) + " " + Goto(LabelZoomIn)
}

// OpenCurrent jumps the current photo to its open label.
func OpenCurrent() string {
	return target(CurrentVar) + " " + Goto(LabelOpen)
}

// OpenPhoto jumps photo id to its open label.
func OpenPhoto(id int) string {
	return fmt.Sprintf("%s.%s", ClipName(id), Goto(LabelOpen))
}
