package logging

import (
	"bytes"
	"io"
)

// PrefixWriter writes every complete line it receives to the wrapped writer
// with a fixed prefix. Partial lines are held until their newline arrives
// or Flush is called.
type PrefixWriter struct {
	prefix  []byte
	writer  io.Writer
	pending bytes.Buffer
}

// NewPrefixWriter creates a new PrefixWriter.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{
		prefix: []byte(prefix),
		writer: w,
	}
}

// Write implements io.Writer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.pending.Write(p)

	for {
		data := pw.pending.Bytes()
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			break
		}
		if err := pw.emit(data[:idx+1]); err != nil {
			return 0, err
		}
		pw.pending.Next(idx + 1)
	}

	return len(p), nil
}

// Flush writes any buffered partial line, terminated with a newline.
func (pw *PrefixWriter) Flush() error {
	if pw.pending.Len() == 0 {
		return nil
	}
	line := append(pw.pending.Bytes(), '\n')
	pw.pending.Reset()
	return pw.emit(line)
}

func (pw *PrefixWriter) emit(line []byte) error {
	if _, err := pw.writer.Write(pw.prefix); err != nil {
		return err
	}
	_, err := pw.writer.Write(line)
	return err
}
