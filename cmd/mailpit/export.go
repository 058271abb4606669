package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/emersion/go-message/mail"
	"github.com/spf13/cobra"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <ID>",
	Short: "Export a message's raw source to an .eml file",
	Long: `Download the full RFC 2822 source of a message and write it to an
.eml file. The filename is derived from the message subject unless
--output is given. Use "latest" as the ID for the newest message.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output filename")
}

func runExport(cmd *cobra.Command, args []string) error {
	source, err := client.MessageSource(context.Background(), args[0])
	if err != nil {
		return err
	}

	filename := exportOutput
	if filename == "" {
		filename = exportFilename(source, args[0])
	}

	if err := os.WriteFile(filename, []byte(source), 0o644); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	logger.Info().Str("file", filename).Int("bytes", len(source)).Msg("Exported message")
	fmt.Println(filename)
	return nil
}

// exportFilename derives an .eml filename from the parsed message subject,
// falling back to the message ID when the source cannot be parsed.
func exportFilename(source, id string) string {
	name := id

	if mr, err := mail.CreateReader(strings.NewReader(source)); err == nil {
		if subject, err := mr.Header.Subject(); err == nil && subject != "" {
			name = subject
		}
	}

	return sanitizeFilename(name) + ".eml"
}

func sanitizeFilename(name string) string {
	mapper := func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '_'
		}
	}

	name = strings.Map(mapper, name)
	if len(name) > 100 {
		name = name[:100]
	}
	return name
}
