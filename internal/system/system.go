package system

import (
	"fmt"
	"log"
	"os/exec"
	"strings"
	"syscall"
)

// reserve covers the handles the process needs besides held bitmaps.
const reserve = 64

// InitResourceLimits raises the soft open-file limit so that every bitmap
// of an album can stay open until the document is written.
func InitResourceLimits(handles int) {
	var rLimit syscall.Rlimit
	err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Could not read the open file limit: %v", err)
		return
	}

	want := uint64(handles + reserve)
	if rLimit.Cur >= want {
		return
	}
	if want > rLimit.Max {
		log.Printf("[!] Album needs %d open files, hard limit is %d", want, rLimit.Max)
		want = rLimit.Max
	}
	rLimit.Cur = want

	err = syscall.Setrlimit(syscall.RLIMIT_NOFILE, &rLimit)
	if err != nil {
		log.Printf("[!] Could not raise the open file limit: %v", err)
	} else {
		fmt.Printf("[*] Open file limit raised to %d\n", rLimit.Cur)
	}
}

// CheckFFmpeg reports whether both ffmpeg and ffprobe run.
func CheckFFmpeg(ffmpeg, ffprobe string) error {
	for _, bin := range []string{ffmpeg, ffprobe} {
		out, err := exec.Command(bin, "-version").CombinedOutput()
		if err != nil {
			return fmt.Errorf("%s is required for movie files: %w", bin, err)
		}
		if !strings.Contains(string(out), "version") {
			return fmt.Errorf("%s -version: unexpected output", bin)
		}
	}
	return nil
}
