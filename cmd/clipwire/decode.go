package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/clipwire/clipwire"
)

var (
	decodeOutDir  string
	oneshotOutDir string
	oneshotMIMEs  []string
)

type itemSummary struct {
	Index     int      `json:"index"`
	MIMETypes []string `json:"mime_types"`
	Size      int      `json:"size"`
}

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a bulk stream and print an item summary",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		items, err := clipwire.DecodeBulk(in,
			clipwire.WithReadLimits(cfg.Limits),
			clipwire.WithLogger(logger))
		if err != nil {
			return err
		}
		logger.Info().Int("items", len(items)).Msg("decoded bulk stream")
		return emitItems(items, decodeOutDir, logger)
	},
}

var oneshotCmd = &cobra.Command{
	Use:   "oneshot [file]",
	Short: "Decode an entire stream as one payload with given MIME types",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}

		labels := oneshotMIMEs
		if len(labels) == 0 {
			labels = cfg.DefaultMIMETypes
		}

		in, err := openInput(args)
		if err != nil {
			return err
		}
		defer in.Close()

		items, err := clipwire.DecodeOneshot(in, labels,
			clipwire.WithReadLimits(cfg.Limits),
			clipwire.WithLogger(logger))
		if err != nil {
			return err
		}
		logger.Info().Int("size", len(items[0].Content)).Msg("decoded oneshot stream")
		return emitItems(items, oneshotOutDir, logger)
	},
}

func init() {
	decodeCmd.Flags().StringVar(&decodeOutDir, "out", "", "extract item payloads into this directory")
	oneshotCmd.Flags().StringVar(&oneshotOutDir, "out", "", "extract the payload into this directory")
	oneshotCmd.Flags().StringSliceVar(&oneshotMIMEs, "mime", nil, "MIME-type label for the payload (repeatable)")
}

func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

// emitItems either extracts payloads into dir (item-0, item-1, …) or prints
// a JSON summary to stdout.
func emitItems(items []clipwire.Item, dir string, logger zerolog.Logger) error {
	if dir == "" {
		summaries := make([]itemSummary, len(items))
		for i, it := range items {
			summaries[i] = itemSummary{Index: i, MIMETypes: it.MIMETypes, Size: len(it.Content)}
		}
		b, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for i, it := range items {
		path := filepath.Join(dir, fmt.Sprintf("item-%d", i))
		if err := os.WriteFile(path, it.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info().Str("path", path).Strs("mime_types", it.MIMETypes).Int("size", len(it.Content)).Msg("extracted item")
	}
	return nil
}
