package main

import (
	"context"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	mailpit "github.com/mailpit/client-go"
)

var (
	sendFrom    string
	sendTo      []string
	sendCc      []string
	sendBcc     []string
	sendSubject string
	sendText    string
	sendHTML    string
	sendTags    []string
	sendAttach  []string
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a message via the API",
	Long: `Send a message through the Mailpit API (the message is captured,
not relayed). Addresses accept either "user@example.com" or
"Name <user@example.com>".`,
	RunE: runSend,
}

func init() {
	sendCmd.Flags().StringVar(&sendFrom, "from", "", "sender address (required)")
	sendCmd.Flags().StringArrayVar(&sendTo, "to", nil, "recipient address (repeatable, required)")
	sendCmd.Flags().StringArrayVar(&sendCc, "cc", nil, "CC address (repeatable)")
	sendCmd.Flags().StringArrayVar(&sendBcc, "bcc", nil, "BCC address (repeatable)")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "message subject")
	sendCmd.Flags().StringVar(&sendText, "text", "", "plain text body")
	sendCmd.Flags().StringVar(&sendHTML, "html", "", "HTML body")
	sendCmd.Flags().StringArrayVar(&sendTags, "tag", nil, "tag the message (repeatable)")
	sendCmd.Flags().StringArrayVar(&sendAttach, "attach", nil, "attach a file (repeatable)")

	sendCmd.MarkFlagRequired("from")
	sendCmd.MarkFlagRequired("to")
}

func runSend(cmd *cobra.Command, args []string) error {
	from, err := parseAddress(sendFrom)
	if err != nil {
		return fmt.Errorf("invalid --from address: %w", err)
	}

	msg := mailpit.SendRequest{
		From:    from,
		Subject: sendSubject,
		Text:    sendText,
		HTML:    sendHTML,
		Tags:    sendTags,
	}

	if msg.To, err = parseAddresses(sendTo); err != nil {
		return fmt.Errorf("invalid --to address: %w", err)
	}
	if msg.Cc, err = parseAddresses(sendCc); err != nil {
		return fmt.Errorf("invalid --cc address: %w", err)
	}

	// BCC recipients go over the wire as bare addresses.
	for _, raw := range sendBcc {
		addr, err := parseAddress(raw)
		if err != nil {
			return fmt.Errorf("invalid --bcc address: %w", err)
		}
		msg.Bcc = append(msg.Bcc, addr.Address)
	}

	for _, path := range sendAttach {
		att, err := buildAttachment(path)
		if err != nil {
			return err
		}
		msg.Attachments = append(msg.Attachments, att)
	}

	resp, err := client.Send(context.Background(), msg)
	if err != nil {
		return err
	}

	logger.Info().Str("id", resp.ID).Msg("Message sent")
	fmt.Println(resp.ID)
	return nil
}

func buildAttachment(path string) (mailpit.Attachment, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return mailpit.Attachment{}, fmt.Errorf("failed to read attachment: %w", err)
	}

	return mailpit.NewAttachment().
		Filename(filepath.Base(path)).
		Content(content).
		Build()
}

func parseAddress(raw string) (mailpit.Address, error) {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return mailpit.Address{}, err
	}
	return mailpit.Address{Address: addr.Address, Name: addr.Name}, nil
}

func parseAddresses(raw []string) ([]mailpit.Address, error) {
	var addrs []mailpit.Address
	for _, r := range raw {
		addr, err := parseAddress(r)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}
