package system

import (
	"syscall"
	"testing"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 << 30, "3.0 GiB"},
	}
	for _, tt := range tests {
		if got := FormatBytes(tt.n); got != tt.want {
			t.Errorf("FormatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestTakeSnapshot(t *testing.T) {
	s := TakeSnapshot()
	t.Logf("snapshot: %s", s)
	if s.MemTotal > 0 && s.MemUsed > s.MemTotal {
		t.Errorf("used memory %d exceeds total %d", s.MemUsed, s.MemTotal)
	}
}

func TestInitResourceLimitsNeverLowers(t *testing.T) {
	var before, after syscall.Rlimit
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &before); err != nil {
		t.Skipf("getrlimit: %v", err)
	}
	InitResourceLimits(0)
	if err := syscall.Getrlimit(syscall.RLIMIT_NOFILE, &after); err != nil {
		t.Fatal(err)
	}
	if after.Cur < before.Cur {
		t.Errorf("limit lowered from %d to %d", before.Cur, after.Cur)
	}
}
