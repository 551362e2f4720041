package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Sofiane224434/cinetech/pkg/manager"
	"github.com/dustin/go-humanize"

	"github.com/spf13/cobra"
)

var replyTo int64

// commentsCmd represents the comments command
var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "manage item comments",
	Long:  `manage item comments`,
}

var listCommentsCmd = &cobra.Command{
	Use:   "list [itemId]",
	Short: "print an item's comment thread",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		thread, err := catalog.ListComments(context.TODO(), mustID(args[0]))
		if err != nil {
			log.Fatalf("failed to list comments: %v", err)
		}

		for _, comment := range thread {
			indent := ""
			if comment.IsReply() {
				indent = "    "
			}
			created := humanize.Time(time.UnixMilli(comment.CreatedAt))
			fmt.Printf("%s[%d] %s (%s, %s)\n", indent, comment.ID, comment.Text, comment.Author, created)
		}
	},
}

var addCommentCmd = &cobra.Command{
	Use:   "add [itemId] [text...]",
	Short: "comment on an item",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		request := manager.AddCommentRequest{
			ItemID: mustID(args[0]),
			Text:   strings.Join(args[1:], " "),
		}
		if replyTo != 0 {
			request.ParentID = &replyTo
		}

		if _, err := catalog.AddComment(context.TODO(), request); err != nil {
			log.Fatalf("failed to add comment: %v", err)
		}
	},
}

var deleteCommentCmd = &cobra.Command{
	Use:   "delete [itemId] [commentId]",
	Short: "delete a comment and its replies",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, store := mustCatalog()
		defer store.Close()

		if _, err := catalog.DeleteComment(context.TODO(), mustID(args[0]), mustID(args[1])); err != nil {
			log.Fatalf("failed to delete comment: %v", err)
		}
	},
}

func init() {
	addCommentCmd.Flags().Int64Var(&replyTo, "reply-to", 0, "comment id to reply to")

	commentsCmd.AddCommand(listCommentsCmd)
	commentsCmd.AddCommand(addCommentCmd)
	commentsCmd.AddCommand(deleteCommentCmd)
	rootCmd.AddCommand(commentsCmd)
}
