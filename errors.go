package clipwire

import "errors"

var (
	ErrBadMagic               = errors.New("clipwire: bad magic")
	ErrUnsupportedVersion     = errors.New("clipwire: unsupported protocol version")
	ErrTruncated              = errors.New("clipwire: truncated input")
	ErrInvalidEncoding        = errors.New("clipwire: mime type is not valid UTF-8")
	ErrContentWithoutMIMEType = errors.New("clipwire: content section without mime type")
	ErrUnknownSectionTag      = errors.New("clipwire: unknown section tag")
	ErrNoValidMIMEType        = errors.New("clipwire: no valid mime type")
	ErrLimitExceeded          = errors.New("clipwire: limit exceeded")
	ErrValidation             = errors.New("clipwire: validation failed")
)
