package lexicodec

// minEncoding and maxEncoding implement the Min and Max sentinels: empty
// bodies, registered at the smallest and largest prefix bytes in a
// registry so that, combined with prefix-order-agreement, they sort below
// and above every other registered variant. Decoding either yields nil,
// the neutral placeholder value — sentinels are not meant to round-trip.
type minEncoding struct{}

func (minEncoding) Match(v Value) bool { return isMin(v) }

func (minEncoding) EncodeBody(Value, *Codec) ([]byte, error) { return nil, nil }

func (minEncoding) DecodeBody([]byte, *Codec) (Value, error) { return nil, nil }

func (minEncoding) Compare(Value, Value, *Codec) (int, error) { return 0, nil }

type maxEncoding struct{}

func (maxEncoding) Match(v Value) bool { return isMax(v) }

func (maxEncoding) EncodeBody(Value, *Codec) ([]byte, error) { return nil, nil }

func (maxEncoding) DecodeBody([]byte, *Codec) (Value, error) { return nil, nil }

func (maxEncoding) Compare(Value, Value, *Codec) (int, error) { return 0, nil }
