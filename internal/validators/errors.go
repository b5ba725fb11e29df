package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidCursor       = errors.New("invalid lastSync cursor")
	ErrInvalidNote         = errors.New("invalid note")
	ErrInvalidDeletedUUIDs = errors.New("invalid deleted uuids")
	ErrInvalidCredentials  = errors.New("invalid credentials")
)
