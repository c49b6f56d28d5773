// Package lexicodec implements a lexicographically order-preserving codec
// for structured values.
//
// It maps a bounded universe of composite values — null, boolean, number,
// string, array, object, and user-defined extensions — to byte strings such
// that natural byte-wise comparison of the encoded form agrees with a
// component-wise semantic ordering on the original values. This lets
// ordered key-value stores, which only accept byte keys, index structured
// tuples while preserving prefix-range and component-wise semantics.
//
// # Data model
//
// Values are represented with plain Go types, the same shape
// encoding/json.Unmarshal produces into an any: nil for null, bool, float64
// for numbers, string for raw byte strings, []any for arrays, and
// map[string]any for objects. Two sentinel values, Min and Max, sort below
// and above everything else and are meant for inclusive range bounds; they
// are not expected to round-trip through Decode.
//
// # Dispatch
//
// A Codec is built from an ordered list of Registrations, each pairing a
// one-byte prefix with an Encoding. Encode, Decode, and Compare all dispatch
// on this registry: Encode and Compare pick the first Encoding whose Match
// predicate accepts the value; Decode looks up the Encoding by the leading
// prefix byte. Encodings receive the owning Codec as an explicit argument
// so they can recurse into nested values without reaching for global state.
//
// # Default codec
//
// JSON provides the canonical prefix assignment (Min 0x00, Null 'b', Object
// 'c', Array 'd', Number 'e', String 'f', Bool 'g', Max 0xFF), giving the
// order Min < Null < Object < Array < Number < String < Bool < Max. NewJSONCodec builds an equivalent codec with the same
// prefixes, optionally selecting the legacy paired object form.
package lexicodec
