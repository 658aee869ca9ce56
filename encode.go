package clipwire

import "io"

// Encode writes items to w as one clipwire stream: the fixed header, then
// for each item its 'M' sections in label order followed by one 'C' section.
//
// Items are validated before any byte is written. Validation checks that
// every item carries at least one MIME-type label, that labels are valid
// UTF-8, and that no label or payload exceeds the configured limits. An
// empty item list is valid and produces a header-only stream.
//
// Use WriteOption functions to customize this behavior:
//   - WithWriteLimits(l): set custom size limits
//
// Encode returns ErrValidation or ErrLimitExceeded on an invalid input, or
// the underlying write error.
func Encode(w io.Writer, items []Item, opts ...WriteOption) error {
	cfg := writeConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	if err := validateItems(items, cfg.limits); err != nil {
		return err
	}
	if err := writeHeader(w); err != nil {
		return err
	}
	for _, it := range items {
		for _, mt := range it.MIMETypes {
			if err := writeSection(w, TagMIMEType, []byte(mt)); err != nil {
				return err
			}
		}
		if err := writeSection(w, TagContent, it.Content); err != nil {
			return err
		}
	}
	return nil
}
