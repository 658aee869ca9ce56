package clipwire

import (
	"fmt"
	"io"
	"math"

	"github.com/rs/zerolog"
)

// bulkState enumerates the decoder's position within the stream. Every
// transition is dispatched from a single point in DecodeBulk, which keeps
// the "content requires a prior MIME type" rule a structural precondition
// of entering stateContentBody.
type bulkState int

const (
	stateHeader bulkState = iota
	stateAwaitSection
	stateMIMEBody
	stateContentBody
	stateDone
)

// DecodeBulk reads a self-describing multi-section stream from r and returns
// the decoded items in stream order. The returned list may be empty if the
// stream contained only a header.
//
// The decoding process:
//  1. Reads and validates the 5-byte fixed header (magic, version)
//  2. Repeatedly reads a one-byte section tag and its length-prefixed body,
//     accumulating 'M' labels and completing one Item per 'C' section
//  3. Stops at a clean end-of-stream on a section boundary
//
// End-of-stream is valid only where a section tag would start; anywhere else
// it is ErrTruncated. Labels accumulated without a following content section
// are dropped without error. Decoding is all-or-nothing: on any failure no
// items are returned.
//
// By default DecodeBulk uses safe default size limits and stays silent.
// Use ReadOption functions to customize this behavior:
//   - WithReadLimits(l): set custom size limits
//   - WithLogger(l): trace sections at debug level
//
// DecodeBulk returns ErrBadMagic if the stream is not a clipwire stream,
// ErrUnsupportedVersion if the version byte is not 0, ErrLimitExceeded if a
// length prefix exceeds the configured cap, ErrContentWithoutMIMEType if a
// 'C' section has no pending labels, ErrUnknownSectionTag for any other tag
// byte, ErrInvalidEncoding for a non-UTF-8 label, and ErrTruncated for a
// short read inside a field.
func DecodeBulk(r io.Reader, opts ...ReadOption) ([]Item, error) {
	cfg := readConfig{limits: defaultLimits(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	var (
		items   []Item
		pending []string
		st      = stateHeader
	)
	for st != stateDone {
		switch st {
		case stateHeader:
			if err := readHeader(r); err != nil {
				return nil, err
			}
			st = stateAwaitSection

		case stateAwaitSection:
			var tag [1]byte
			if _, err := io.ReadFull(r, tag[:]); err != nil {
				if err == io.EOF {
					// Clean end of stream at a section boundary. Pending
					// labels with no following content produce no item.
					if len(pending) > 0 {
						cfg.logger.Debug().Strs("mime_types", pending).Msg("dropping trailing labels with no content")
					}
					st = stateDone
					continue
				}
				return nil, fmt.Errorf("reading section tag: %w", err)
			}
			cfg.logger.Debug().Uint8("tag", tag[0]).Msg("read section tag")
			switch tag[0] {
			case TagMIMEType:
				st = stateMIMEBody
			case TagContent:
				if len(pending) == 0 {
					return nil, fmt.Errorf("%w: 'C' section after %d item(s)", ErrContentWithoutMIMEType, len(items))
				}
				st = stateContentBody
			default:
				return nil, fmt.Errorf("%w: 0x%02x", ErrUnknownSectionTag, tag[0])
			}

		case stateMIMEBody:
			if len(pending) >= cfg.limits.MaxMIMETypesPerItem {
				return nil, fmt.Errorf("%w: more than %d mime types for one item", ErrLimitExceeded, cfg.limits.MaxMIMETypesPerItem)
			}
			mt, err := readMIMEType(r, cfg.limits.MaxSectionLen)
			if err != nil {
				return nil, err
			}
			cfg.logger.Debug().Str("mime_type", mt).Msg("read mime type")
			pending = append(pending, mt)
			st = stateAwaitSection

		case stateContentBody:
			if len(items) >= cfg.limits.MaxItems {
				return nil, fmt.Errorf("%w: more than %d items", ErrLimitExceeded, cfg.limits.MaxItems)
			}
			content, err := readContent(r, cfg.limits.MaxSectionLen)
			if err != nil {
				return nil, err
			}
			cfg.logger.Debug().Int("size", len(content)).Msg("read content")
			items = append(items, Item{MIMETypes: pending, Content: content})
			pending = nil
			st = stateAwaitSection
		}
	}
	return items, nil
}

// DecodeOneshot reads r to exhaustion as a single untyped payload and pairs
// it with the caller-supplied MIME-type labels. Empty labels are discarded;
// the relative order of the rest is preserved. A zero-length stream is
// valid.
//
// DecodeOneshot returns ErrNoValidMIMEType if every candidate label is
// empty, ErrLimitExceeded if the stream exceeds Limits.MaxOneshotLen, and
// ErrTruncated if the underlying read fails.
func DecodeOneshot(r io.Reader, mimeTypes []string, opts ...ReadOption) ([]Item, error) {
	cfg := readConfig{limits: defaultLimits(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	// Read one byte past the cap to detect oversized streams. The cap is a
	// uint64; clamp it so the int64 conversion cannot wrap negative and turn
	// LimitReader into an immediate EOF.
	max := cfg.limits.MaxOneshotLen
	if max > math.MaxInt64-1 {
		max = math.MaxInt64 - 1
	}
	content, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading content: %w", ErrTruncated, err)
	}
	if uint64(len(content)) > cfg.limits.MaxOneshotLen {
		return nil, fmt.Errorf("%w: content exceeds %d bytes", ErrLimitExceeded, cfg.limits.MaxOneshotLen)
	}

	filtered := make([]string, 0, len(mimeTypes))
	for _, mt := range mimeTypes {
		if mt != "" {
			filtered = append(filtered, mt)
		}
	}
	if len(filtered) == 0 {
		return nil, fmt.Errorf("%w: all %d candidate label(s) are empty", ErrNoValidMIMEType, len(mimeTypes))
	}

	cfg.logger.Debug().Int("size", len(content)).Strs("mime_types", filtered).Msg("oneshot decode")
	return []Item{{MIMETypes: filtered, Content: content}}, nil
}
