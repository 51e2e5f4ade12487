// Package frame moves fixed-length records over byte streams.
//
// Records of one schema are read back to back, optionally separated by a
// terminator such as "\n". The codec itself adds no framing; the terminator
// belongs to the stream, not the message.
package frame

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/danmuck/fixwire/internal/observability"
	"github.com/danmuck/fixwire/internal/protocol"
	"github.com/danmuck/fixwire/internal/protocol/record"
	"github.com/danmuck/fixwire/internal/protocol/schema"
)

// Options configures record framing on a stream.
type Options struct {
	// Terminator follows every record. The last record of a stream may omit it.
	Terminator []byte
}

func DefaultOptions() Options {
	return Options{}
}

// LineOptions frames one record per line.
func LineOptions() Options {
	return Options{Terminator: []byte("\n")}
}

// Reader decodes consecutive records of one schema.
type Reader struct {
	r     *bufio.Reader
	s     *schema.Schema
	opts  Options
	buf   []byte
	term  []byte
	count int
}

func NewReader(r io.Reader, s *schema.Schema, opts Options) *Reader {
	return &Reader{
		r:    bufio.NewReader(r),
		s:    s,
		opts: opts,
		buf:  make([]byte, s.Len()),
		term: make([]byte, len(opts.Terminator)),
	}
}

// Next returns the next record, or io.EOF when the stream ends cleanly between
// records. A partial record is protocol.ErrInputTooSmall.
func (fr *Reader) Next() (*record.Record, error) {
	logger := observability.Component("frame")
	n, err := io.ReadFull(fr.r, fr.buf)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("%w: record %d of %s: stream ended after %d of %d bytes",
				protocol.ErrInputTooSmall, fr.count, fr.s.Name(), n, fr.s.Len())
			observability.RecordCodec(fr.s.Name(), observability.DirectionDecode, 0, err)
			logger.Debug().Err(err).Msg("frame.Next short record")
		}
		return nil, err
	}

	rec, err := record.Parse(fr.s, fr.buf)
	observability.RecordCodec(fr.s.Name(), observability.DirectionDecode, fr.s.Len(), err)
	if err != nil {
		logger.Debug().Str("schema", fr.s.Name()).Int("record", fr.count).Err(err).Msg("frame.Next rejected")
		return nil, fmt.Errorf("record %d: %w", fr.count, err)
	}
	if err := fr.readTerminator(); err != nil {
		return nil, fmt.Errorf("record %d: %w", fr.count, err)
	}
	fr.count++
	return rec, nil
}

func (fr *Reader) readTerminator() error {
	if len(fr.term) == 0 {
		return nil
	}
	n, err := io.ReadFull(fr.r, fr.term)
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: terminator cut after %d bytes", protocol.ErrInputTooSmall, n)
	case err != nil:
		return err
	}
	if !bytes.Equal(fr.term, fr.opts.Terminator) {
		return fmt.Errorf("%w: want terminator %q, got %q", protocol.ErrInvalidInput, fr.opts.Terminator, fr.term)
	}
	return nil
}

// Count is the number of records returned so far.
func (fr *Reader) Count() int { return fr.count }

// Writer encodes records onto a stream.
type Writer struct {
	w     io.Writer
	opts  Options
	buf   []byte
	count int
}

func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{w: w, opts: opts}
}

// Write encodes rec and writes it followed by the terminator. Nothing is
// written when encoding fails.
func (fw *Writer) Write(rec *record.Record) error {
	s := rec.Schema()
	if cap(fw.buf) < s.Len() {
		fw.buf = make([]byte, s.Len())
	}
	buf := fw.buf[:s.Len()]
	err := rec.Write(buf)
	observability.RecordCodec(s.Name(), observability.DirectionEncode, s.Len(), err)
	if err != nil {
		return fmt.Errorf("record %d: %w", fw.count, err)
	}
	if _, err := fw.w.Write(buf); err != nil {
		return err
	}
	if len(fw.opts.Terminator) > 0 {
		if _, err := fw.w.Write(fw.opts.Terminator); err != nil {
			return err
		}
	}
	fw.count++
	return nil
}

// Count is the number of records written so far.
func (fw *Writer) Count() int { return fw.count }

// ReadRecord reads exactly one unterminated record from r.
func ReadRecord(r io.Reader, s *schema.Schema) (*record.Record, error) {
	rec, err := NewReader(r, s, DefaultOptions()).Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty stream", protocol.ErrInputTooSmall)
	}
	return rec, err
}

// WriteRecord writes one unterminated record to w.
func WriteRecord(w io.Writer, rec *record.Record) error {
	return NewWriter(w, DefaultOptions()).Write(rec)
}
