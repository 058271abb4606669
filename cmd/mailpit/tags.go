package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// tagsCmd represents the tags command
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List and manage message tags",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	RunE:  runTagsList,
}

var tagsSetCmd = &cobra.Command{
	Use:   "set <tag,...> <ID...>",
	Short: "Set the tags on messages, replacing any existing tags",
	Long: `Set the comma-separated tag list on the given messages. An empty
tag list ("") removes all tags from the messages.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runTagsSet,
}

var tagsRenameCmd = &cobra.Command{
	Use:   "rename <tag> <new name>",
	Short: "Rename a tag",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagsRename,
}

var tagsDeleteCmd = &cobra.Command{
	Use:   "delete <tag>",
	Short: "Delete a tag from all messages",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagsDelete,
}

func init() {
	tagsCmd.AddCommand(tagsListCmd)
	tagsCmd.AddCommand(tagsSetCmd)
	tagsCmd.AddCommand(tagsRenameCmd)
	tagsCmd.AddCommand(tagsDeleteCmd)
}

func runTagsList(cmd *cobra.Command, args []string) error {
	tags, err := client.Tags(context.Background())
	if err != nil {
		return err
	}

	if len(tags) == 0 {
		fmt.Println("No tags found.")
		return nil
	}
	for _, tag := range tags {
		fmt.Println(tag)
	}
	return nil
}

func runTagsSet(cmd *cobra.Command, args []string) error {
	var tags []string
	if args[0] != "" {
		for _, tag := range strings.Split(args[0], ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	ids := args[1:]

	ok, err := client.SetMessageTags(context.Background(), ids, tags)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server did not confirm the update")
	}

	logger.Info().Strs("tags", tags).Int("count", len(ids)).Msg("Updated message tags")
	return nil
}

func runTagsRename(cmd *cobra.Command, args []string) error {
	ok, err := client.RenameTag(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server did not confirm the rename")
	}

	logger.Info().Str("from", args[0]).Str("to", args[1]).Msg("Renamed tag")
	return nil
}

func runTagsDelete(cmd *cobra.Command, args []string) error {
	ok, err := client.DeleteTag(context.Background(), args[0])
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("server did not confirm the deletion")
	}

	logger.Info().Str("tag", args[0]).Msg("Deleted tag")
	return nil
}
