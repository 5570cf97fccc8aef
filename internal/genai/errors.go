package genai

import "errors"

// Internal failure classes for model calls. These never escape the gateway;
// they exist so outcomes can carry a coarse reason code.
var (
	ErrTransport = errors.New("model service unreachable")
	ErrDecode    = errors.New("model response malformed")
)
