// Package progress reports long-running album stages.
package progress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync/atomic"
)

// ErrAborted is returned by stages stopped through their progress sink or
// context.
var ErrAborted = errors.New("aborted")

// Sink receives stage progress. Aborted is polled between steps.
type Sink interface {
	Start(task string, total int)
	Step(index int, label string)
	Finish()
	Aborted() bool
}

// Checkpoint reports whether work may continue.
func Checkpoint(ctx context.Context, s Sink) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrAborted, err)
	}
	if s.Aborted() {
		return ErrAborted
	}
	return nil
}

// Console prints "[>]" progress lines.
type Console struct {
	Out     io.Writer
	task    string
	total   int
	aborted atomic.Bool
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) Start(task string, total int) {
	c.task, c.total = task, total
	fmt.Fprintf(c.Out, "[*] %s: %d items\n", task, total)
}

func (c *Console) Step(index int, label string) {
	fmt.Fprintf(c.Out, "\r[>] %s: %d/%d %s\x1b[K", c.task, index+1, c.total, label)
}

func (c *Console) Finish() {
	fmt.Fprintf(c.Out, "\n[*] %s: done\n", c.task)
}

// Abort makes the next checkpoint fail. Safe from any goroutine.
func (c *Console) Abort() {
	c.aborted.Store(true)
}

func (c *Console) Aborted() bool {
	return c.aborted.Load()
}

// Quiet discards progress but still honours Abort.
type Quiet struct {
	aborted atomic.Bool
}

func (*Quiet) Start(string, int) {}
func (*Quiet) Step(int, string) {}
func (*Quiet) Finish() {}
func (q *Quiet) Abort() { q.aborted.Store(true) }
func (q *Quiet) Aborted() bool { return q.aborted.Load() }
