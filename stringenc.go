package lexicodec

// stringEncoding implements the String built-in. The body is the raw bytes
// of the string, unmodified: escaping of 0x00/0x01 only happens one layer
// up, when a string is embedded inside an array or object frame.
type stringEncoding struct{}

func (stringEncoding) Match(v Value) bool {
	_, ok := v.(string)
	return ok
}

func (stringEncoding) EncodeBody(v Value, _ *Codec) ([]byte, error) {
	return []byte(v.(string)), nil
}

func (stringEncoding) DecodeBody(body []byte, _ *Codec) (Value, error) {
	return string(body), nil
}

func (stringEncoding) Compare(a, b Value, _ *Codec) (int, error) {
	return cmpString(a.(string), b.(string)), nil
}
