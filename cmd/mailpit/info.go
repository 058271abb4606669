package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show server runtime information",
	Long:  `Show Mailpit server version, message totals and runtime statistics.`,
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	info, err := client.Info(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Mailpit %s", info.Version)
	if info.LatestVersion != "" && info.LatestVersion != info.Version {
		fmt.Printf(" (latest: %s)", info.LatestVersion)
	}
	fmt.Println()
	fmt.Printf("Database: %s (%d bytes)\n", info.Database, info.DatabaseSize)
	fmt.Printf("Messages: %d (%d unread)\n", info.Messages, info.Unread)
	fmt.Printf("Uptime: %s\n", time.Duration(info.RuntimeStats.Uptime)*time.Second)
	fmt.Printf("SMTP accepted: %d (%d bytes), rejected: %d, ignored: %d\n",
		info.RuntimeStats.SMTPAccepted, info.RuntimeStats.SMTPAcceptedSize,
		info.RuntimeStats.SMTPRejected, info.RuntimeStats.SMTPIgnored)

	config, err := client.WebUIConfig(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Message relay: %s", boolToStatus(config.MessageRelay.Enabled))
	if config.MessageRelay.Enabled {
		fmt.Printf(" via %s", config.MessageRelay.SMTPServer)
	}
	fmt.Println()
	fmt.Printf("SpamAssassin: %s\n", boolToStatus(config.SpamAssassin))
	fmt.Printf("Chaos: %s\n", boolToStatus(config.ChaosEnabled))

	return nil
}

func boolToStatus(b bool) string {
	if b {
		return "Enabled"
	}
	return "Disabled"
}
