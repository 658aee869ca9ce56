package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/clipwire/clipwire"
)

var (
	encodeMIMEs []string
	encodeOut   string
)

var encodeCmd = &cobra.Command{
	Use:   "encode [files...]",
	Short: "Produce a clipwire stream from files or stdin",
	Long: `Produce a clipwire stream on stdout (or --out). Each input file becomes
one item carrying the --mime labels; with no files, stdin is read as a
single item.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if len(encodeMIMEs) == 0 {
			return fmt.Errorf("at least one --mime label is required")
		}

		var items []clipwire.Item
		if len(args) == 0 {
			content, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			items = append(items, clipwire.Item{MIMETypes: encodeMIMEs, Content: content})
		} else {
			for _, path := range args {
				content, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				items = append(items, clipwire.Item{MIMETypes: encodeMIMEs, Content: content})
			}
		}

		out := io.Writer(os.Stdout)
		if encodeOut != "" {
			f, err := os.Create(encodeOut)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err := clipwire.Encode(out, items, clipwire.WithWriteLimits(cfg.Limits)); err != nil {
			return err
		}
		logger.Info().Int("items", len(items)).Strs("mime_types", encodeMIMEs).Msg("encoded stream")
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringSliceVar(&encodeMIMEs, "mime", nil, "MIME-type label for each item (repeatable)")
	encodeCmd.Flags().StringVar(&encodeOut, "out", "", "write the stream to this file instead of stdout")
}
