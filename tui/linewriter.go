package tui

import "bytes"

// LineWriter adapts an io.Writer stream into per-line callbacks. The
// renderer writes whole lines, but Write makes no such guarantee, so
// partial lines are buffered until their newline arrives.
type LineWriter struct {
	emit func(string)
	buf  bytes.Buffer
}

// NewLineWriter creates a LineWriter that calls emit once per
// completed line, without the trailing newline.
func NewLineWriter(emit func(string)) *LineWriter {
	return &LineWriter{emit: emit}
}

// Write buffers p and emits every completed line in it.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.buf.Write(p)
	for {
		b := w.buf.Bytes()
		i := bytes.IndexByte(b, '\n')
		if i < 0 {
			return len(p), nil
		}
		line := string(b[:i])
		w.buf.Next(i + 1)
		w.emit(line)
	}
}

// Flush emits any buffered partial line. Call it once the stream is
// complete.
func (w *LineWriter) Flush() {
	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}
