package lexicodec

// boolEncoding implements the Bool built-in. Bodies are the literal bytes
// "true" or "false", so false sorts before true purely from 'f' < 't'.
type boolEncoding struct{}

func (boolEncoding) Match(v Value) bool {
	_, ok := v.(bool)
	return ok
}

func (boolEncoding) EncodeBody(v Value, _ *Codec) ([]byte, error) {
	if v.(bool) {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

func (boolEncoding) DecodeBody(body []byte, _ *Codec) (Value, error) {
	switch string(body) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return nil, &MalformedBodyError{Reason: "bool body must be \"true\" or \"false\""}
	}
}

func (boolEncoding) Compare(a, b Value, _ *Codec) (int, error) {
	return cmpBool(a.(bool), b.(bool)), nil
}
