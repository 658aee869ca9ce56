package clipwire

import (
	"fmt"
	"unicode/utf8"
)

func validateItems(items []Item, limits Limits) error {
	if len(items) > limits.MaxItems {
		return fmt.Errorf("%w: %d items, cap is %d", ErrLimitExceeded, len(items), limits.MaxItems)
	}
	for i, it := range items {
		if len(it.MIMETypes) == 0 {
			return fmt.Errorf("%w: item %d has no mime types", ErrValidation, i)
		}
		if len(it.MIMETypes) > limits.MaxMIMETypesPerItem {
			return fmt.Errorf("%w: item %d has %d mime types, cap is %d", ErrLimitExceeded, i, len(it.MIMETypes), limits.MaxMIMETypesPerItem)
		}
		for j, mt := range it.MIMETypes {
			if !utf8.ValidString(mt) {
				return fmt.Errorf("%w: item %d mime type %d is not valid UTF-8", ErrValidation, i, j)
			}
			if uint64(len(mt)) > uint64(limits.MaxSectionLen) {
				return fmt.Errorf("%w: item %d mime type %d too large", ErrLimitExceeded, i, j)
			}
		}
		if uint64(len(it.Content)) > uint64(limits.MaxSectionLen) {
			return fmt.Errorf("%w: item %d content too large", ErrLimitExceeded, i)
		}
	}
	return nil
}
