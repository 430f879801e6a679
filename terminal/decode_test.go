package terminal

import (
	"testing"
	"unicode/utf8"
)

func TestDecodeLossy(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []rune
	}{
		{"ascii", []byte("ab"), []rune{'a', 'b'}},
		{"multibyte", []byte("é世"), []rune{'é', '世'}},
		{"invalid byte", []byte{'a', 0xff, 'b'}, []rune{'a', utf8.RuneError, 'b'}},
		{"invalid before escape", []byte{0xc3, 0x1b, '[', 'A'}, []rune{utf8.RuneError, 0x1b, '[', 'A'}},
		{"stray continuation", []byte{0x80, 'x'}, []rune{utf8.RuneError, 'x'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeString(tt.in)
			if string(got) != string(tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeCarriesSplitSequence(t *testing.T) {
	var d Decoder
	enc := []byte("世")

	got := d.Decode(nil, enc[:1])
	if len(got) != 0 {
		t.Fatalf("Expected nothing decoded from a partial sequence, got %q", got)
	}
	got = d.Decode(got, enc[1:])
	if len(got) != 1 || got[0] != '世' {
		t.Errorf("Expected 世 after the rest arrives, got %q", got)
	}
}

func TestDecodeFlushPending(t *testing.T) {
	var d Decoder
	got := d.Decode(nil, []byte{0xe4, 0xb8})
	got = d.Flush(got)
	if len(got) != 2 || got[0] != utf8.RuneError {
		t.Errorf("Expected two replacement runes on flush, got %q", got)
	}
}
