/**
 * Copyright (c) 2024, The Selene Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Package jsonwriter provides a small streaming JSON encoder. Unlike encoding/json, the writes are
// sent directly to the output via io.Writer; the GraphQL document printer uses it to emit string
// literals (GraphQL string escaping coincides with JSON's).
package jsonwriter

import (
	"io"
	"strconv"
)

const initialStreamBufSize = 512

// Stream provides functions for writing JSON encoding.
type Stream struct {
	// Output stream
	w io.Writer

	// Buffer that sits in front of writes to w. Its capacity is initialized to 512 bytes and may grow
	// if a single write exceeds it.
	buf []byte

	// Error occurred during writing
	err error
}

// NewStream creates a stream for writing data in JSON encoding.
func NewStream(w io.Writer) *Stream {
	return &Stream{
		w:   w,
		buf: make([]byte, 0, initialStreamBufSize),
	}
}

// Error returns the error occurred during use of the stream.
func (stream *Stream) Error() error {
	return stream.err
}

// write is the lowest level that performs writes. It writes the contents given in b into w.
func (stream *Stream) write(b []byte) {
	// Discard writes if an error already occurred.
	if stream.err != nil {
		return
	}

	buf := stream.buf
	bufSize := len(buf)
	if bufSize+len(b) < initialStreamBufSize {
		buf = buf[:bufSize+len(b)]
		stream.buf = buf
		copy(buf[bufSize:], b)
		return
	}

	if bufSize > 0 {
		_, err := stream.w.Write(buf)
		stream.buf = buf[:0]
		if err != nil {
			stream.err = err
			return
		}
	}

	if len(b) > 0 {
		if _, err := stream.w.Write(b); err != nil {
			stream.err = err
		}
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (stream *Stream) Flush() error {
	if stream.err != nil {
		return stream.err
	}

	buf := stream.buf
	if len(buf) > 0 {
		_, err := stream.w.Write(buf)
		stream.buf = buf[:0]
		if err != nil {
			stream.err = err
			return err
		}
	}

	return nil
}

func (stream *Stream) writeByte(b byte) {
	stream.buf = append(stream.buf, b)
}

// WriteRawString writes a string into the output without any escaping.
func (stream *Stream) WriteRawString(s string) {
	stream.write([]byte(s))
}

// WriteMore writes a ",".
func (stream *Stream) WriteMore() {
	stream.writeByte(',')
}

// WriteArrayStart writes a "[".
func (stream *Stream) WriteArrayStart() {
	stream.writeByte('[')
}

// WriteArrayEnd writes a "]".
func (stream *Stream) WriteArrayEnd() {
	stream.writeByte(']')
}

// WriteObjectStart writes a "{".
func (stream *Stream) WriteObjectStart() {
	stream.writeByte('{')
}

// WriteObjectField writes a quoted field name followed by ":".
func (stream *Stream) WriteObjectField(field string) {
	stream.WriteString(field)
	stream.writeByte(':')
}

// WriteObjectEnd writes a "}".
func (stream *Stream) WriteObjectEnd() {
	stream.writeByte('}')
}

// WriteBool encodes a boolean value.
func (stream *Stream) WriteBool(b bool) {
	if b {
		stream.WriteRawString("true")
	} else {
		stream.WriteRawString("false")
	}
}

// WriteNil writes "null".
func (stream *Stream) WriteNil() {
	stream.WriteRawString("null")
}

// WriteInt32 encodes a 32-bit signed integer value.
func (stream *Stream) WriteInt32(v int32) {
	stream.buf = strconv.AppendInt(stream.buf, int64(v), 10)
}

const hexDigits = "0123456789abcdef"

// WriteString encodes s as a double-quoted JSON string. Control characters are emitted with the
// short escapes where JSON defines one and \u00XX otherwise; bytes above 0x7f pass through
// untouched, so the output stays byte-for-byte faithful to valid UTF-8 input.
func (stream *Stream) WriteString(s string) {
	buf := stream.buf
	buf = append(buf, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}

		buf = append(buf, s[start:i]...)
		switch c {
		case '"', '\\':
			buf = append(buf, '\\', c)
		case '\b':
			buf = append(buf, '\\', 'b')
		case '\f':
			buf = append(buf, '\\', 'f')
		case '\n':
			buf = append(buf, '\\', 'n')
		case '\r':
			buf = append(buf, '\\', 'r')
		case '\t':
			buf = append(buf, '\\', 't')
		default:
			buf = append(buf, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
		}
		start = i + 1
	}
	buf = append(buf, s[start:]...)
	buf = append(buf, '"')
	stream.buf = buf
}
