package buffer

import (
	"io"

	"github.com/zeebo/errs/v2"
)

// readChunk is how much free space ReadFrom keeps available per read.
const readChunk = 512

// Write implements io.Writer. It cannot fail.
func (t *T[S]) Write(p []byte) (int, error) {
	t.Push(p)
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (t *T[S]) WriteString(s string) (int, error) {
	t.PushString(s)
	return len(s), nil
}

// WriteByte implements io.ByteWriter.
func (t *T[S]) WriteByte(c byte) error {
	t.PushByte(c)
	return nil
}

// ReadFrom implements io.ReaderFrom, appending from r until EOF.
func (t *T[S]) ReadFrom(r io.Reader) (total int64, err error) {
	for {
		if t.Remaining() == 0 {
			t.EnsureFit(readChunk)
		}
		n, err := r.Read(t.Tail())
		t.Advance(n)
		total += int64(n)
		if err == io.EOF {
			return total, nil
		} else if err != nil {
			return total, errs.Wrap(err)
		}
	}
}

// WriteTo implements io.WriterTo, draining the content into w. Bytes
// accepted by w are popped even when the write errors partway.
func (t *T[S]) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.View())
	t.Pop(n)
	return int64(n), errs.Wrap(err)
}
