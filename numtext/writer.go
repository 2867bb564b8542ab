package numtext

import (
	"io"

	"github.com/clusty-go/clusty/internal/pool"
)

// maxLineLen bounds how much a single row can grow the scratch buffer before a flush is
// forced, mirroring saveTableBuffered's "max_line_len" headroom check.
const maxLineLen = 1024

// TableWriter accumulates formatted rows into a pooled 64MiB scratch buffer and flushes
// it to the underlying writer once headroom runs low, avoiding a syscall per row.
type TableWriter struct {
	w         io.Writer
	separator byte
	buf       *pool.ByteBuffer
	err       error
}

// NewTableWriter wraps w with a buffered row writer using the given column separator.
func NewTableWriter(w io.Writer, separator byte) *TableWriter {
	return &TableWriter{
		w:         w,
		separator: separator,
		buf:       pool.GetOutputBuffer(),
	}
}

// WriteHeader writes the column names as the first row.
func (t *TableWriter) WriteHeader(names ...string) error {
	if t.err != nil {
		return t.err
	}

	for i, name := range names {
		if i > 0 {
			t.buf.MustWrite([]byte{t.separator})
		}
		t.buf.MustWrite([]byte(name))
	}
	t.buf.MustWrite([]byte{'\n'})

	return t.maybeFlush()
}

// WriteRow appends one row's already-formatted cells, joined by the writer's separator
// and terminated with a newline, flushing to the underlying writer when the scratch
// buffer's remaining headroom drops below maxLineLen.
func (t *TableWriter) WriteRow(cells ...[]byte) error {
	if t.err != nil {
		return t.err
	}

	for i, cell := range cells {
		if i > 0 {
			t.buf.MustWrite([]byte{t.separator})
		}
		t.buf.MustWrite(cell)
	}
	t.buf.MustWrite([]byte{'\n'})

	return t.maybeFlush()
}

func (t *TableWriter) maybeFlush() error {
	if t.buf.Cap()-t.buf.Len() >= maxLineLen {
		return nil
	}
	return t.Flush()
}

// Flush writes any buffered rows to the underlying writer.
func (t *TableWriter) Flush() error {
	if t.buf.Len() == 0 {
		return nil
	}

	_, err := t.buf.WriteTo(t.w)
	t.buf.Reset()
	if err != nil {
		t.err = err
	}

	return err
}

// Close flushes remaining rows and returns the scratch buffer to its pool. The
// TableWriter must not be used afterward, except that a repeated Close is a no-op.
func (t *TableWriter) Close() error {
	if t.buf == nil {
		return nil
	}

	err := t.Flush()
	pool.PutOutputBuffer(t.buf)
	t.buf = nil

	return err
}
