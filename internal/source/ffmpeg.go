package source

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// MediaDuration asks ffprobe for the container duration in seconds.
func MediaDuration(ctx context.Context, ffprobe, path string) (float64, error) {
	cmd := exec.CommandContext(ctx, ffprobe, "-v", "error", "-show_entries", "format=duration", "-of", "default=noprint_wrappers=1:nokey=1", path)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w", err)
	}

	var duration float64
	if _, err := fmt.Sscanf(strings.TrimSpace(string(out)), "%f", &duration); err != nil {
		return 0, fmt.Errorf("ffprobe output %q: %w", strings.TrimSpace(string(out)), err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("ffprobe reported duration %g", duration)
	}
	return duration, nil
}

// ExtractFrame writes the frame at the given second as a JPEG scaled to
// width, keeping the aspect ratio.
func ExtractFrame(ctx context.Context, ffmpeg, path string, at float64, width int, out string) error {
	args := []string{
		"-y", "-v", "error",
		"-ss", strconv.FormatFloat(at, 'f', 3, 64),
		"-i", path,
		"-frames:v", "1",
		"-vf", fmt.Sprintf("scale=%d:-2", width),
		"-q:v", "3",
		out,
	}
	cmd := exec.CommandContext(ctx, ffmpeg, args...)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("ffmpeg frame at %.3fs: %w: %s", at, err, strings.TrimSpace(string(output)))
	}
	return nil
}
