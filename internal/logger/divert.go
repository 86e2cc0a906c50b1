package logger

import (
	"bytes"
	"io"
	"sync"
)

// DivertableWriter forwards log output to a destination that can be put on
// hold, so a full-screen program can own the terminal while it runs.
type DivertableWriter struct {
	mu   sync.Mutex
	out  io.Writer
	held *bytes.Buffer
}

func NewDivertableWriter(out io.Writer) *DivertableWriter {
	return &DivertableWriter{out: out}
}

func (w *DivertableWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.held != nil {
		return w.held.Write(p)
	}
	return w.out.Write(p)
}

// Divert buffers everything written until the returned func is called, which
// flushes the buffer to the original destination. Nested calls share the
// outermost buffer.
func (w *DivertableWriter) Divert() (restore func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.held != nil {
		return func() {}
	}
	w.held = new(bytes.Buffer)

	var once sync.Once
	return func() {
		once.Do(func() {
			w.mu.Lock()
			defer w.mu.Unlock()
			_, _ = w.held.WriteTo(w.out)
			w.held = nil
		})
	}
}
