// Package clipwire implements the clipwire framing format, a length-prefixed
// binary protocol for transferring one or more typed payloads (each tagged
// with one or more MIME-type labels) over an arbitrary byte stream such as a
// file, pipe, or socket.
//
// # Wire Format Overview
//
// A clipwire stream consists of a 5-byte fixed header followed by zero or
// more tagged sections. All integers are big-endian.
//
//	| Item             | Bytes | Content             |
//	|------------------|-------|---------------------|
//	| Magic            | 4     | 0x20 0x09 0x02 0x14 |
//	| Protocol Version | 1     | 0x00                |
//	| Section Tag      | 1     | 'M'                 |
//	| Section Length   | 4     | 0x00 0x00 0x00 0x0a |
//	| Section Payload  | 10    | "text/plain"        |
//	| Section Tag      | 1     | 'C'                 |
//	| Section Length   | 4     | 0x00 0x00 0x00 0x04 |
//	| Section Payload  | 4     | "GOOD"              |
//
// An 'M' section declares one UTF-8 MIME-type label for the next content
// payload; a 'C' section carries the payload itself and completes one [Item].
// Every 'C' section must be preceded, since the last 'C' (or the stream
// start), by at least one 'M' section. Trailing 'M' sections with no
// following 'C' are tolerated and produce no item.
//
// # Decoding
//
// [DecodeBulk] parses a self-describing multi-section stream:
//
//	f, _ := os.Open("transfer.cw")
//	defer f.Close()
//	items, err := clipwire.DecodeBulk(f)
//
// [DecodeOneshot] treats the entire stream as a single untyped payload whose
// MIME-type labels are supplied by the caller:
//
//	items, err := clipwire.DecodeOneshot(conn, []string{"text/plain"})
//
// Both decoders either fully parse the stream or fail; no partial result is
// ever returned alongside an error.
//
// # Encoding
//
// [Encode] is the counterpart that produces conforming streams:
//
//	err := clipwire.Encode(w, []clipwire.Item{
//		{MIMETypes: []string{"text/plain", "TEXT"}, Content: []byte("hello")},
//	})
//
// # Security Considerations
//
// Section lengths come from the stream and are attacker-controlled. All
// length prefixes are checked against configurable [Limits] before any
// allocation, so a corrupt or hostile stream cannot request an arbitrarily
// large buffer. The protocol itself imposes no bound on the number of
// sections; callers reading from untrusted peers should additionally cap the
// stream (for example with io.LimitReader) before decoding.
package clipwire
