// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package status

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Animator draws a spinner next to a message while a long step runs
type Animator struct {
	writer   io.Writer
	isTTY    bool
	interval time.Duration
}

// NewAnimator creates an animator writing to writer
func NewAnimator(writer io.Writer) *Animator {
	return &Animator{
		writer:   writer,
		isTTY:    isTerminal(writer),
		interval: 100 * time.Millisecond,
	}
}

// IsTTY reports whether the animator draws frames or plain lines
func (a *Animator) IsTTY() bool {
	return a.isTTY
}

// isTerminal checks if the writer is a terminal
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminalFile(f)
	}
	return false
}

// isTerminalFile checks if a file is a terminal
func isTerminalFile(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Task is a running animation. Exactly one of Succeed, Fail or Stop ends it.
type Task struct {
	a       *Animator
	message string
	start   time.Time

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once

	mu             sync.Mutex
	lastLineLength int
}

// Start begins animating message until the returned task is stopped or ctx
// is done. On a non-terminal writer it prints the message once.
func (a *Animator) Start(ctx context.Context, message string) *Task {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task{
		a:       a,
		message: message,
		start:   time.Now(),
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	if !a.isTTY {
		fmt.Fprintf(a.writer, "%s...\n", message)
		close(t.done)
		return t
	}
	go t.run(ctx)
	return t
}

func (t *Task) run(ctx context.Context) {
	defer close(t.done)
	ticker := time.NewTicker(t.a.interval)
	defer ticker.Stop()
	for frame := 0; ; frame++ {
		t.draw(spinnerFrames[frame%len(spinnerFrames)])
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (t *Task) draw(frame string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clearLine()
	line := fmt.Sprintf("%s %s...", frame, t.message)
	fmt.Fprint(t.a.writer, line)
	t.lastLineLength = len([]rune(line))
}

// clearLine clears the current line
func (t *Task) clearLine() {
	if t.lastLineLength > 0 {
		fmt.Fprint(t.a.writer, "\r")
		fmt.Fprint(t.a.writer, strings.Repeat(" ", t.lastLineLength))
		fmt.Fprint(t.a.writer, "\r")
		t.lastLineLength = 0
	}
}

// Stop ends the animation and clears its line. It blocks until the spinner
// goroutine has exited and is safe to call more than once.
func (t *Task) Stop() {
	t.once.Do(func() {
		t.cancel()
		<-t.done
		t.mu.Lock()
		t.clearLine()
		t.mu.Unlock()
	})
}

// Succeed stops the animation and prints a completion line
func (t *Task) Succeed() {
	t.Stop()
	fmt.Fprintf(t.a.writer, "✓ %s (%.1fs)\n", t.message, time.Since(t.start).Seconds())
}

// Fail stops the animation and prints a failure line
func (t *Task) Fail(err error) {
	t.Stop()
	fmt.Fprintf(t.a.writer, "✗ %s: %v\n", t.message, err)
}

// CreateProgressBar creates a progress bar for a specific task. It returns
// nil when writer is not a terminal.
func CreateProgressBar(writer io.Writer, task string, total int) *progressbar.ProgressBar {
	if !isTerminal(writer) {
		return nil
	}

	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription(fmt.Sprintf("[[cyan]]%s[[reset]]", task)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionClearOnFinish(),
	)
}
