package lexicodec

// jsonCodecConfig collects NewJSONCodec's options before the registry is
// built. It is unexported; callers configure it only through Option
// functions.
type jsonCodecConfig struct {
	objectForm ObjectForm
}

// Option configures NewJSONCodec.
type Option func(*jsonCodecConfig)

// WithPairedObjectForm selects the legacy two-element-array object
// encoding (see ObjectFormPaired) instead of the default flat form.
func WithPairedObjectForm() Option {
	return func(cfg *jsonCodecConfig) {
		cfg.objectForm = ObjectFormPaired
	}
}

// NewJSONCodec builds the canonical JSON-style codec: prefixes assigned so
// that Min < Null < Object < Array < Number < String < Bool < Max.
func NewJSONCodec(opts ...Option) *Codec {
	cfg := jsonCodecConfig{objectForm: ObjectFormFlat}
	for _, opt := range opts {
		opt(&cfg)
	}

	codec, err := NewCodec([]Registration{
		{Prefix: "\x00", Encoding: minEncoding{}},
		{Prefix: "b", Encoding: nullEncoding{}},
		{Prefix: "c", Encoding: newObjectEncoding(cfg.objectForm)},
		{Prefix: "d", Encoding: arrayEncoding{}},
		{Prefix: "e", Encoding: numberEncoding{}},
		{Prefix: "f", Encoding: stringEncoding{}},
		{Prefix: "g", Encoding: boolEncoding{}},
		{Prefix: "\xFF", Encoding: maxEncoding{}},
	})
	if err != nil {
		// Unreachable: the registration table above is a fixed literal
		// with eight distinct one-byte prefixes.
		panic(err)
	}
	return codec
}

// JSON is the default JSON-style codec, provided as a module-level
// convenience. There is no hidden global state behind it: it is exactly
// the Codec NewJSONCodec() would build.
var JSON = NewJSONCodec()
