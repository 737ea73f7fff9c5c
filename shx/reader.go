// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package shx

import (
	"fmt"
	"io"
)

// A reader interprets a seekable byte stream as a sequence of little-endian
// integer, string and raw-block fields. It plays the same role as the
// truetype package's unexported "data" slice-cursor type, but is backed by
// an io.ReadSeeker rather than an in-memory slice: the bigfont and unifont
// container layouts require absolute seeks that the shapes layout does not.
type reader struct {
	r io.ReadSeeker
}

func newReader(r io.ReadSeeker) *reader {
	return &reader{r: r}
}

func (d *reader) read(buf []byte, context string) error {
	n, err := io.ReadFull(d.r, buf)
	if err != nil {
		return TruncatedStreamError(fmt.Sprintf("%s: wanted %d bytes, got %d (%v)", context, len(buf), n, err))
	}
	return nil
}

// u8 reads an unsigned byte.
func (d *reader) u8(context string) (uint8, error) {
	var buf [1]byte
	if err := d.read(buf[:], context); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// i8 reads a two's-complement signed byte.
func (d *reader) i8(context string) (int8, error) {
	b, err := d.u8(context)
	if err != nil {
		return 0, err
	}
	return int8(b), nil
}

// u16 reads a little-endian uint16.
func (d *reader) u16(context string) (uint16, error) {
	var buf [2]byte
	if err := d.read(buf[:], context); err != nil {
		return 0, err
	}
	return uint16(buf[0]) | uint16(buf[1])<<8, nil
}

// u32 reads a little-endian uint32.
func (d *reader) u32(context string) (uint32, error) {
	var buf [4]byte
	if err := d.read(buf[:], context); err != nil {
		return 0, err
	}
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24, nil
}

// bytes reads exactly n raw bytes.
func (d *reader) bytes(n int, context string) ([]byte, error) {
	buf := make([]byte, n)
	if err := d.read(buf, context); err != nil {
		return nil, err
	}
	return buf, nil
}

// skip advances the stream by n bytes without returning them.
func (d *reader) skip(n int64, context string) error {
	_, err := d.r.Seek(n, io.SeekCurrent)
	if err != nil {
		return TruncatedStreamError(fmt.Sprintf("%s: cannot skip %d bytes: %v", context, n, err))
	}
	return nil
}

// pos returns the current absolute stream position.
func (d *reader) pos(context string) (int64, error) {
	n, err := d.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, TruncatedStreamError(fmt.Sprintf("%s: cannot read stream position: %v", context, err))
	}
	return n, nil
}

// seekAbs seeks to an absolute offset from the start of the stream.
func (d *reader) seekAbs(offset int64, context string) error {
	_, err := d.r.Seek(offset, io.SeekStart)
	if err != nil {
		return TruncatedStreamError(fmt.Sprintf("%s: cannot seek to offset %d: %v", context, offset, err))
	}
	return nil
}

// str reads a string terminated by NUL, CR, LF or EOF. The terminator itself
// is consumed but not included in the result.
func (d *reader) str(context string) (string, error) {
	var buf []byte
	var one [1]byte
	for {
		n, err := d.r.Read(one[:])
		if n == 0 {
			if err == io.EOF {
				return string(buf), nil
			}
			if err != nil {
				return "", TruncatedStreamError(fmt.Sprintf("%s: %v", context, err))
			}
			continue
		}
		switch one[0] {
		case 0, '\r', '\n':
			return string(buf), nil
		default:
			buf = append(buf, one[0])
		}
	}
}
