package codec

import "errors"

var (
	// ErrInvalidPayload is returned when a payload is not valid JSON of the
	// expected shape or fails validation. Nothing from such a payload may be
	// applied to any store.
	ErrInvalidPayload = errors.New("invalid sync payload")

	// ErrEncodingPayload is returned when a payload cannot be serialized.
	ErrEncodingPayload = errors.New("error encoding sync payload")

	// ErrDeobfuscation is returned when a stored field is not valid base64.
	ErrDeobfuscation = errors.New("error deobfuscating field")
)
