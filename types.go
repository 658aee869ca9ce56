package clipwire

// Version is the single protocol version this package emits and accepts.
const Version byte = 0x00

// Magic is the 4-byte clipwire stream signature.
var Magic = [4]byte{0x20, 0x09, 0x02, 0x14}

const (
	// TagMIMEType marks a section carrying one UTF-8 MIME-type label.
	TagMIMEType byte = 'M'
	// TagContent marks a section carrying one binary payload.
	TagContent byte = 'C'
)

// Item is one decoded payload together with the MIME-type labels declared
// for it.
//
// MIMETypes preserves declaration order and is never empty for an item
// produced by this package. Duplicate labels are allowed and kept as-is.
// Content may be empty; a zero-length payload is valid.
//
// Both decoders hand each Item to the caller exactly once and never alias
// its slices with another item or with internal state.
type Item struct {
	MIMETypes []string
	Content   []byte
}
