package progress

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConsole(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Start("movie", 3)
	c.Step(0, "a.jpg")
	c.Step(2, "c.jpg")
	c.Finish()

	out := buf.String()
	for _, want := range []string{"[*] movie: 3 items", "[>] movie: 1/3 a.jpg", "[>] movie: 3/3 c.jpg", "[*] movie: done"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q lacks %q", out, want)
		}
	}
}

func TestCheckpoint(t *testing.T) {
	q := &Quiet{}
	if err := Checkpoint(context.Background(), q); err != nil {
		t.Fatalf("Checkpoint = %v", err)
	}

	q.Abort()
	if err := Checkpoint(context.Background(), q); !errors.Is(err, ErrAborted) {
		t.Errorf("Checkpoint after Abort = %v, want ErrAborted", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Checkpoint(ctx, &Quiet{})
	if !errors.Is(err, ErrAborted) {
		t.Errorf("Checkpoint with cancelled context = %v, want ErrAborted", err)
	}
}
