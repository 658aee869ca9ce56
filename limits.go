package clipwire

// Limits bounds decoder allocations driven by stream-supplied lengths and
// encoder output driven by caller-supplied items. A zero field means "use
// the default".
type Limits struct {
	MaxSectionLen       uint32 // cap on any section's u32 length prefix
	MaxItems            int    // cap on decoded items per stream
	MaxMIMETypesPerItem int    // cap on labels accumulated for one item
	MaxOneshotLen       uint64 // cap on the oneshot full-stream read
}

func defaultLimits() Limits {
	return Limits{
		MaxSectionLen:       256 << 20, // 256 MiB
		MaxItems:            10_000,
		MaxMIMETypesPerItem: 1_000,
		MaxOneshotLen:       1 << 30, // 1 GiB
	}
}

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxSectionLen == 0 {
		l.MaxSectionLen = d.MaxSectionLen
	}
	if l.MaxItems == 0 {
		l.MaxItems = d.MaxItems
	}
	if l.MaxMIMETypesPerItem == 0 {
		l.MaxMIMETypesPerItem = d.MaxMIMETypesPerItem
	}
	if l.MaxOneshotLen == 0 {
		l.MaxOneshotLen = d.MaxOneshotLen
	}
	return l
}
