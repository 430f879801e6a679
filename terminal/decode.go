package terminal

import (
	"unicode/utf8"
)

// Decoder turns raw stdin chunks into runes. Decoding is lossy: an invalid byte becomes
// utf8.RuneError and decoding resumes at the next byte, so a malformed byte never
// swallows a following escape sequence. A sequence split across chunks is carried over
type Decoder struct {
	pending []byte
}

// Decode appends the runes decoded from chunk to dst and returns it
func (d *Decoder) Decode(dst []rune, chunk []byte) []rune {
	data := chunk
	if len(d.pending) > 0 {
		data = append(d.pending, chunk...)
		d.pending = d.pending[:0]
	}

	for len(data) > 0 {
		b := data[0]
		if b < utf8.RuneSelf {
			dst = append(dst, rune(b))
			data = data[1:]
			continue
		}
		if !utf8.FullRune(data) {
			// Incomplete but possibly valid prefix, wait for more bytes
			if validPrefix(data) {
				d.pending = append(d.pending[:0], data...)
				return dst
			}
		}
		r, size := utf8.DecodeRune(data)
		dst = append(dst, r)
		data = data[size:]
	}
	return dst
}

// Flush returns any carried bytes as replacement characters; used when input closes
func (d *Decoder) Flush(dst []rune) []rune {
	for range d.pending {
		dst = append(dst, utf8.RuneError)
	}
	d.pending = d.pending[:0]
	return dst
}

// validPrefix reports whether data could still become a valid encoding
func validPrefix(data []byte) bool {
	n := seqLen(data[0])
	if n == 0 || len(data) >= n {
		return false
	}
	for _, c := range data[1:] {
		if c&0xc0 != 0x80 {
			return false
		}
	}
	return true
}

// seqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func seqLen(b byte) int {
	switch {
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	}
	return 0
}

// DecodeString is a stateless convenience for complete buffers
func DecodeString(data []byte) []rune {
	var d Decoder
	return d.Flush(d.Decode(nil, data))
}
