package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/clipwire/clipwire"
)

type cliConfig struct {
	DefaultMIMETypes []string
	Limits           clipwire.Limits
}

type fileConfig struct {
	DefaultMIMETypes    []string `toml:"default_mime_types"`
	MaxSectionLen       int64    `toml:"max_section_len"`
	MaxItems            int      `toml:"max_items"`
	MaxMIMETypesPerItem int      `toml:"max_mime_types_per_item"`
	MaxOneshotLen       int64    `toml:"max_oneshot_len"`
}

// loadConfig reads an optional TOML config file. An empty path yields the
// built-in defaults (zero Limits, which the library fills in itself).
func loadConfig(path string) (cliConfig, error) {
	var cfg cliConfig
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return cliConfig{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return cliConfig{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	cfg.DefaultMIMETypes = raw.DefaultMIMETypes

	if meta.IsDefined("max_section_len") {
		if raw.MaxSectionLen <= 0 || raw.MaxSectionLen > int64(^uint32(0)) {
			return cliConfig{}, fmt.Errorf("load config: max_section_len out of range: %d", raw.MaxSectionLen)
		}
		cfg.Limits.MaxSectionLen = uint32(raw.MaxSectionLen)
	}
	if meta.IsDefined("max_items") {
		if raw.MaxItems <= 0 {
			return cliConfig{}, fmt.Errorf("load config: max_items must be positive: %d", raw.MaxItems)
		}
		cfg.Limits.MaxItems = raw.MaxItems
	}
	if meta.IsDefined("max_mime_types_per_item") {
		if raw.MaxMIMETypesPerItem <= 0 {
			return cliConfig{}, fmt.Errorf("load config: max_mime_types_per_item must be positive: %d", raw.MaxMIMETypesPerItem)
		}
		cfg.Limits.MaxMIMETypesPerItem = raw.MaxMIMETypesPerItem
	}
	if meta.IsDefined("max_oneshot_len") {
		if raw.MaxOneshotLen <= 0 {
			return cliConfig{}, fmt.Errorf("load config: max_oneshot_len must be positive: %d", raw.MaxOneshotLen)
		}
		cfg.Limits.MaxOneshotLen = uint64(raw.MaxOneshotLen)
	}

	return cfg, nil
}
