package lexicodec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestArrayEscapesEmbeddedBytes covers the boundary case spec.md calls out
// explicitly: strings containing 0x00 and 0x01 at arbitrary positions must
// survive round-trip when nested inside an array, where the escape layer
// actually runs (a bare string value's own body is never escaped; only the
// frame a string occupies inside an array or object is).
func TestArrayEscapesEmbeddedBytes(t *testing.T) {
	c := JSON
	cases := []Value{
		[]Value{"\x00"},
		[]Value{"\x01"},
		[]Value{"\x00\x01\x00\x01"},
		[]Value{"lead\x00ing", "trail\x01ing", "\x00both\x01ends\x00"},
		[]Value{[]Value{"nested\x00\x01deep"}},
	}
	for _, v := range cases {
		enc, err := c.Encode(v)
		if err != nil {
			t.Fatalf("Encode(%#v): %v", v, err)
		}
		dec, err := c.Decode(enc)
		if err != nil {
			t.Fatalf("Decode(Encode(%#v)): %v", v, err)
		}
		if diff := cmp.Diff(v, dec); diff != "" {
			t.Errorf("round trip mismatch for %#v (-want +got):\n%s", v, diff)
		}
	}
}

// TestArrayZeroLengthElement covers an element whose body is empty: the
// empty string still carries its prefix byte, so its frame is that one
// byte followed by the terminator.
func TestArrayZeroLengthElement(t *testing.T) {
	c := JSON
	v := []Value{""}
	enc, err := c.Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	// prefix 'd' (array) + prefix 'f' (string, empty body) + terminator.
	want := []byte{'d', 'f', 0x00}
	if string(enc) != string(want) {
		t.Errorf("Encode([\"\"]) = %q, want %q", enc, want)
	}

	dec, err := c.Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, dec); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestArrayEmptyBodyDecodesToEmptySequence covers the §4.3 edge case: an
// empty array body decodes to an empty sequence, not nil.
func TestArrayEmptyBodyDecodesToEmptySequence(t *testing.T) {
	c := JSON
	dec, err := c.Decode([]byte{'d'})
	if err != nil {
		t.Fatal(err)
	}
	arr, ok := dec.([]Value)
	if !ok {
		t.Fatalf("Decode(empty array body) = %#v, want []Value", dec)
	}
	if len(arr) != 0 {
		t.Errorf("Decode(empty array body) = %#v, want empty slice", arr)
	}
}

// TestArrayDeeplyNested covers the §8 boundary test for deep nesting.
func TestArrayDeeplyNested(t *testing.T) {
	c := JSON
	v := []Value{1.0, []Value{2.0, []Value{3.0, []Value{4.0}}}}
	enc, err := c.Encode(v)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := c.Decode(enc)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(v, dec); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

// TestArrayMalformedTrailingBytesLeniency covers §7's MalformedBody
// policy: a dangling escape byte or unterminated trailing frame is
// accepted leniently, truncating at the last complete frame.
func TestArrayMalformedTrailingBytesLeniency(t *testing.T) {
	c := JSON

	// "a" encoded, terminated, followed by a dangling escape byte with no
	// partner: the dangling byte is dropped, decode still succeeds.
	aEnc, err := c.Encode("a")
	if err != nil {
		t.Fatal(err)
	}
	body := append(append([]byte{}, aEnc...), terminatorByte, escapeByte)
	dec, err := c.Decode(append([]byte{'d'}, body...))
	if err != nil {
		t.Fatalf("Decode with dangling escape byte: %v", err)
	}
	want := []Value{"a"}
	if diff := cmp.Diff(want, dec); diff != "" {
		t.Errorf("lenient decode mismatch (-want +got):\n%s", diff)
	}

	// "a" terminated, followed by an unterminated trailing frame: the
	// trailing partial frame is discarded.
	body2 := append(append([]byte{}, aEnc...), terminatorByte)
	body2 = append(body2, []byte("partial-no-terminator")...)
	dec2, err := c.Decode(append([]byte{'d'}, body2...))
	if err != nil {
		t.Fatalf("Decode with unterminated trailing frame: %v", err)
	}
	if diff := cmp.Diff(want, dec2); diff != "" {
		t.Errorf("lenient decode mismatch (-want +got):\n%s", diff)
	}
}
