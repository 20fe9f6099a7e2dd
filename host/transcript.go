package host

import (
	"io"
	"strings"
	"sync"
)

const (
	// transcriptSize is the number of lines the console keeps.
	// Newly attached writers first receive these.
	transcriptSize = 256
)

// lineBuffer is a ring buffer of console lines.
type lineBuffer struct {
	lines []string
	start int // Index of oldest line
	count int // Number of lines in buffer
}

// push adds a line, evicting the oldest if full.
func (b *lineBuffer) push(line string) {
	if b.lines == nil {
		b.lines = make([]string, transcriptSize)
	}
	idx := (b.start + b.count) % transcriptSize
	if b.count < transcriptSize {
		b.lines[idx] = line
		b.count++
	} else {
		b.lines[b.start] = line
		b.start = (b.start + 1) % transcriptSize
	}
}

// getAll returns all buffered lines in chronological order.
func (b *lineBuffer) getAll() []string {
	if b.count == 0 {
		return nil
	}
	result := make([]string, b.count)
	for i := 0; i < b.count; i++ {
		result[i] = b.lines[(b.start+i)%transcriptSize]
	}
	return result
}

func (b *lineBuffer) reset() {
	b.start = 0
	b.count = 0
}

// Transcript is the console log. It keeps the most recent lines and
// mirrors every printed line to the attached writers.
type Transcript struct {
	mu      sync.RWMutex
	buffer  lineBuffer
	writers map[io.Writer]struct{}
}

func NewTranscript() *Transcript {
	return &Transcript{
		writers: map[io.Writer]struct{}{},
	}
}

// Attach starts mirroring the transcript to w, replaying the buffered
// lines first. Nil writers are ignored.
func (t *Transcript) Attach(w io.Writer) {
	if w == nil {
		return
	}
	t.mu.Lock()
	backlog := t.buffer.getAll()
	t.writers[w] = struct{}{}
	t.mu.Unlock()
	for _, line := range backlog {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			t.Detach(w)
			return
		}
	}
}

// Detach stops mirroring to w.
func (t *Transcript) Detach(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.writers, w)
}

// Print appends s to the transcript, one line per newline separated part.
// A single trailing newline is ignored. Writers that fail are detached.
func (t *Transcript) Print(s string) {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")

	t.mu.Lock()
	for _, line := range lines {
		t.buffer.push(line)
	}
	list := make([]io.Writer, 0, len(t.writers))
	for w := range t.writers {
		list = append(list, w)
	}
	t.mu.Unlock()

	var failed []io.Writer
	for _, w := range list {
		for _, line := range lines {
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				failed = append(failed, w)
				break
			}
		}
	}
	if len(failed) > 0 {
		t.mu.Lock()
		for _, w := range failed {
			delete(t.writers, w)
		}
		t.mu.Unlock()
	}
}

// Lines returns the buffered lines in chronological order.
func (t *Transcript) Lines() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.buffer.getAll()
}

// Clear drops the buffered lines. Attached writers stay attached.
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer.reset()
}
