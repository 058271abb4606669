package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	mailpit "github.com/mailpit/client-go"
)

var (
	listStart  int
	listLimit  int
	searchTZ   string
	deleteAll  bool
	markUnread bool
)

// messagesCmd represents the messages command
var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "List, search, delete and mark messages",
}

var messagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List messages, newest first",
	RunE:  runMessagesList,
}

var messagesSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search messages",
	Long: `Search messages using Mailpit's search syntax, for example
"tag:backups is:unread" or "subject:invoice older-than:30d".`,
	Args: cobra.ExactArgs(1),
	RunE: runMessagesSearch,
}

var messagesDeleteCmd = &cobra.Command{
	Use:   "delete [ID...]",
	Short: "Delete messages by ID, or all with --all",
	RunE:  runMessagesDelete,
}

var messagesReadCmd = &cobra.Command{
	Use:   "read [ID...]",
	Short: "Mark messages read (or unread with --unread)",
	Long: `Mark the given messages read. With no IDs, all messages are
updated. Use --unread to mark unread instead.`,
	RunE: runMessagesRead,
}

func init() {
	messagesListCmd.Flags().IntVar(&listStart, "start", 0, "pagination offset")
	messagesListCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of results")

	messagesSearchCmd.Flags().IntVar(&listStart, "start", 0, "pagination offset")
	messagesSearchCmd.Flags().IntVar(&listLimit, "limit", 0, "maximum number of results")
	messagesSearchCmd.Flags().StringVar(&searchTZ, "tz", "", "timezone for before:/after: filters")

	messagesDeleteCmd.Flags().BoolVar(&deleteAll, "all", false, "delete all messages")

	messagesReadCmd.Flags().BoolVar(&markUnread, "unread", false, "mark unread instead of read")

	messagesCmd.AddCommand(messagesListCmd)
	messagesCmd.AddCommand(messagesSearchCmd)
	messagesCmd.AddCommand(messagesDeleteCmd)
	messagesCmd.AddCommand(messagesReadCmd)
}

func runMessagesList(cmd *cobra.Command, args []string) error {
	opts := &mailpit.ListMessagesOptions{}
	if cmd.Flags().Changed("start") {
		opts.Start = &listStart
	}
	if cmd.Flags().Changed("limit") {
		opts.Limit = &listLimit
	}

	summary, err := client.ListMessages(context.Background(), opts)
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func runMessagesSearch(cmd *cobra.Command, args []string) error {
	opts := &mailpit.SearchOptions{Timezone: searchTZ}
	if cmd.Flags().Changed("start") {
		opts.Start = &listStart
	}
	if cmd.Flags().Changed("limit") {
		opts.Limit = &listLimit
	}

	summary, err := client.Search(context.Background(), args[0], opts)
	if err != nil {
		return err
	}

	printSummary(summary)
	return nil
}

func runMessagesDelete(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	if deleteAll {
		if len(args) > 0 {
			return fmt.Errorf("--all cannot be combined with message IDs")
		}
		ok, err := client.DeleteAllMessages(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("server did not confirm the deletion")
		}
		logger.Info().Msg("Deleted all messages")
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("no message IDs given (use --all to delete everything)")
	}

	ok, err := client.DeleteMessages(ctx, args)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server did not confirm the deletion")
	}
	logger.Info().Int("count", len(args)).Msg("Deleted messages")
	return nil
}

func runMessagesRead(cmd *cobra.Command, args []string) error {
	ok, err := client.SetReadStatus(context.Background(), mailpit.SetReadStatusOptions{
		Read: !markUnread,
		IDs:  args,
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server did not confirm the update")
	}

	status := "read"
	if markUnread {
		status = "unread"
	}
	if len(args) == 0 {
		logger.Info().Str("status", status).Msg("Updated all messages")
	} else {
		logger.Info().Str("status", status).Int("count", len(args)).Msg("Updated messages")
	}
	return nil
}

func printSummary(summary *mailpit.MessagesSummary) {
	if len(summary.Messages) == 0 {
		fmt.Println("No messages found.")
		return
	}

	fmt.Printf("Showing %d of %d messages (%d unread):\n", len(summary.Messages), summary.Total, summary.Unread)
	fmt.Println(strings.Repeat("-", 80))

	for _, msg := range summary.Messages {
		marker := " "
		if !msg.Read {
			marker = "*"
		}
		fmt.Printf("%s %s  %s  %s\n", marker, msg.ID, msg.Created.Format("2006-01-02 15:04"), msg.Subject)
		fmt.Printf("    From: %s\n", formatAddress(msg.From))
		if len(msg.Tags) > 0 {
			fmt.Printf("    Tags: %s\n", strings.Join(msg.Tags, ", "))
		}
		if msg.Attachments > 0 {
			fmt.Printf("    Attachments: %d\n", msg.Attachments)
		}
	}
}

func formatAddress(addr mailpit.Address) string {
	if addr.Name == "" {
		return addr.Address
	}
	return fmt.Sprintf("%s <%s>", addr.Name, addr.Address)
}
