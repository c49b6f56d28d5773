package lexicodec

import (
	"math"

	"github.com/ccorcos/lexicodec/internal/elen"
)

// numberEncoding implements the Number built-in, delegating the actual
// byte layout to the elen ordered-float primitive. NaN is rejected at
// encode time since its ordering is undefined (see spec's open question on
// NaN handling).
type numberEncoding struct{}

func (numberEncoding) Match(v Value) bool {
	_, ok := v.(float64)
	return ok
}

func (numberEncoding) EncodeBody(v Value, _ *Codec) ([]byte, error) {
	x := v.(float64)
	if math.IsNaN(x) {
		return nil, &UnsupportedValueError{Value: v}
	}
	return elen.EncodeFloat64(x), nil
}

func (numberEncoding) DecodeBody(body []byte, _ *Codec) (Value, error) {
	x, err := elen.DecodeFloat64(body)
	if err != nil {
		return nil, &MalformedBodyError{Reason: err.Error()}
	}
	return x, nil
}

func (numberEncoding) Compare(a, b Value, _ *Codec) (int, error) {
	return cmpFloat64(a.(float64), b.(float64)), nil
}
