package lexicodec

// nullEncoding implements the Null built-in: an empty body, always equal.
type nullEncoding struct{}

func (nullEncoding) Match(v Value) bool {
	return v == nil
}

func (nullEncoding) EncodeBody(Value, *Codec) ([]byte, error) {
	return nil, nil
}

func (nullEncoding) DecodeBody(body []byte, _ *Codec) (Value, error) {
	if len(body) != 0 {
		return nil, &MalformedBodyError{Reason: "null body must be empty"}
	}
	return nil, nil
}

func (nullEncoding) Compare(Value, Value, *Codec) (int, error) {
	return 0, nil
}
