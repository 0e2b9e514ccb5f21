package trace

import (
	"bufio"
	"io"
	"os"
	"sync"
)

// StreamTracer writes formatted events through a buffer; Flush pushes them
// to the underlying writer.
type StreamTracer struct {
	mu     sync.Mutex
	out    io.Writer
	bw     *bufio.Writer
	level  Level
	format Format
}

func NewStreamTracer(w io.Writer, level Level, format Format) *StreamTracer {
	return &StreamTracer{out: w, bw: bufio.NewWriter(w), level: level, format: format}
}

// Emit buffers one event. Write errors surface on Flush.
func (t *StreamTracer) Emit(ev *Event) {
	if !t.level.ShouldEmit(ev.Scope) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	ev.Seq = nextSeq()
	_, _ = t.bw.Write(FormatEvent(ev, t.format))
}

func (t *StreamTracer) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bw.Flush()
}

// Close flushes and closes the writer when it is a closer other than
// stdout or stderr.
func (t *StreamTracer) Close() error {
	if err := t.Flush(); err != nil {
		return err
	}
	if f, ok := t.out.(*os.File); ok && (f == os.Stdout || f == os.Stderr) {
		return nil
	}
	if c, ok := t.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (t *StreamTracer) Level() Level  { return t.level }
func (t *StreamTracer) Enabled() bool { return t.level > LevelOff }
