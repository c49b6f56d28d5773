package lexicodec

import "reflect"

// Codec dispatches Encode, Decode, and Compare across a fixed, ordered
// registry of Encodings. A Codec is immutable after construction and safe
// for concurrent use by multiple callers, so long as no caller mutates a
// value while it is being encoded or compared.
type Codec struct {
	registrations []Registration
	byPrefix      map[byte]Encoding
}

// NewCodec builds a Codec from an ordered list of Registrations. The order
// given is the order Match predicates are tried in, so an ambiguous
// registration (one value two Encodings would both match) is resolved by
// whichever is registered first.
//
// NewCodec fails if any Prefix is not exactly one byte, or if two
// Registrations share a prefix byte.
func NewCodec(registrations []Registration) (*Codec, error) {
	byPrefix := make(map[byte]Encoding, len(registrations))
	ordered := make([]Registration, 0, len(registrations))

	for _, r := range registrations {
		if len(r.Prefix) != 1 {
			return nil, &MalformedRegistryError{Prefix: r.Prefix, Reason: "prefix must be exactly one byte"}
		}
		p := r.Prefix[0]
		if _, exists := byPrefix[p]; exists {
			return nil, &MalformedRegistryError{Prefix: r.Prefix, Reason: "prefix already registered"}
		}
		byPrefix[p] = r.Encoding
		ordered = append(ordered, r)
	}

	return &Codec{registrations: ordered, byPrefix: byPrefix}, nil
}

// match finds the first registered Encoding whose Match predicate accepts
// v, returning it alongside its prefix byte.
func (c *Codec) match(v Value) (Encoding, byte, bool) {
	for _, r := range c.registrations {
		if r.Encoding.Match(v) {
			return r.Encoding, r.Prefix[0], true
		}
	}
	return nil, 0, false
}

// Encode produces the byte encoding of v: one prefix byte identifying the
// matched Encoding, followed by that Encoding's body.
func (c *Codec) Encode(v Value) ([]byte, error) {
	enc, prefix, ok := c.match(v)
	if !ok {
		return nil, &UnsupportedValueError{Value: v}
	}
	body, err := enc.EncodeBody(v, c)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+1)
	out = append(out, prefix)
	out = append(out, body...)
	return out, nil
}

// Decode parses the value encoded at the start of data, which must be the
// complete encoding of exactly one value.
func (c *Codec) Decode(data []byte) (Value, error) {
	if len(data) == 0 {
		return nil, &UnknownPrefixError{Prefix: 0}
	}
	enc, ok := c.byPrefix[data[0]]
	if !ok {
		return nil, &UnknownPrefixError{Prefix: data[0]}
	}
	return enc.DecodeBody(data[1:], c)
}

// Compare returns -1, 0, or 1 according to whether a orders before, the
// same as, or after b. Compare agrees with byte-comparison of Encode(a) and
// Encode(b) whenever both encode successfully.
func (c *Codec) Compare(a, b Value) (int, error) {
	if identical(a, b) {
		return 0, nil
	}

	encA, prefixA, ok := c.match(a)
	if !ok {
		return 0, &UnsupportedValueError{Value: a}
	}
	_, prefixB, ok := c.match(b)
	if !ok {
		return 0, &UnsupportedValueError{Value: b}
	}

	if prefixA != prefixB {
		return sign(int(prefixA) - int(prefixB)), nil
	}
	return encA.Compare(a, b, c)
}

// identical implements the compare-time identity short-circuit. Scalars
// (including sentinels) are compared by value, since equal scalars should
// always short-circuit to 0; arrays are compared by backing array and
// length, and objects by map identity, since comparing their contents for
// equality is exactly the expensive work Compare is for.
func identical(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool, float64, string, bound:
		return av == b
	case []Value:
		bv, ok := b.([]Value)
		if !ok || av == nil || bv == nil || len(av) != len(bv) {
			return false
		}
		return reflect.ValueOf(av).Pointer() == reflect.ValueOf(bv).Pointer()
	case map[string]Value:
		bv, ok := b.(map[string]Value)
		if !ok || av == nil || bv == nil {
			return false
		}
		return reflect.ValueOf(av).Pointer() == reflect.ValueOf(bv).Pointer()
	default:
		return false
	}
}
