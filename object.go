package lexicodec

import "sort"

// ObjectForm selects how an Object's entries are canonicalized before
// being handed to the array escape layer. Both forms compare identically;
// they differ only in the bytes produced, which matters for interop with
// previously persisted data.
type ObjectForm int

const (
	// ObjectFormFlat sorts entries by key and flattens them into
	// [k0, v0, k1, v1, ...]. This is the default, used by the canonical
	// JSON-style codec.
	ObjectFormFlat ObjectForm = iota

	// ObjectFormPaired sorts entries by key and encodes each as a
	// two-element array [k, v]. Kept for backward compatibility with data
	// persisted by codecs built before ObjectFormFlat was the default.
	ObjectFormPaired
)

// objectEncoding implements the Object built-in, canonicalizing entries by
// key before delegating to the array escape layer.
type objectEncoding struct {
	form ObjectForm
}

func newObjectEncoding(form ObjectForm) *objectEncoding {
	return &objectEncoding{form: form}
}

func (e *objectEncoding) Match(v Value) bool {
	_, ok := v.(map[string]Value)
	return ok
}

// sortedKeys returns the keys of m sorted ascending by the primitive
// string order, giving two objects with equal entries an identical
// encoding regardless of original insertion order.
func sortedKeys(m map[string]Value) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e *objectEncoding) toArray(v Value) []Value {
	m := v.(map[string]Value)
	keys := sortedKeys(m)

	switch e.form {
	case ObjectFormPaired:
		out := make([]Value, 0, len(keys))
		for _, k := range keys {
			out = append(out, []Value{k, m[k]})
		}
		return out
	default: // ObjectFormFlat
		out := make([]Value, 0, len(keys)*2)
		for _, k := range keys {
			out = append(out, k, m[k])
		}
		return out
	}
}

func (e *objectEncoding) EncodeBody(v Value, c *Codec) ([]byte, error) {
	return encodeFrames(e.toArray(v), c)
}

func (e *objectEncoding) DecodeBody(body []byte, c *Codec) (Value, error) {
	arr, err := decodeFrames(body, c)
	if err != nil {
		return nil, err
	}

	m := map[string]Value{}
	switch e.form {
	case ObjectFormPaired:
		for _, pairV := range arr {
			pair, ok := pairV.([]Value)
			if !ok || len(pair) != 2 {
				return nil, &MalformedBodyError{Reason: "paired object element is not a 2-tuple"}
			}
			k, ok := pair[0].(string)
			if !ok {
				return nil, &MalformedBodyError{Reason: "paired object key is not a string"}
			}
			m[k] = pair[1]
		}
	default: // ObjectFormFlat
		if len(arr)%2 != 0 {
			return nil, &MalformedBodyError{Reason: "flat object body has an odd number of elements"}
		}
		for i := 0; i < len(arr); i += 2 {
			k, ok := arr[i].(string)
			if !ok {
				return nil, &MalformedBodyError{Reason: "flat object key is not a string"}
			}
			m[k] = arr[i+1]
		}
	}
	return m, nil
}

// Compare canonicalizes both sides and compares entry-wise as (key, value)
// pairs, key first. This agrees with comparing the flattened/paired array
// forms because key comparison always precedes value comparison.
func (e *objectEncoding) Compare(a, b Value, c *Codec) (int, error) {
	am := a.(map[string]Value)
	bm := b.(map[string]Value)

	aKeys := sortedKeys(am)
	bKeys := sortedKeys(bm)

	n := len(aKeys)
	if len(bKeys) < n {
		n = len(bKeys)
	}
	for i := 0; i < n; i++ {
		if keyCmp := cmpString(aKeys[i], bKeys[i]); keyCmp != 0 {
			return keyCmp, nil
		}
		valCmp, err := c.Compare(am[aKeys[i]], bm[bKeys[i]])
		if err != nil {
			return 0, err
		}
		if valCmp != 0 {
			return valCmp, nil
		}
	}
	return sign(len(aKeys) - len(bKeys)), nil
}
