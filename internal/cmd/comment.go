package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sathishrouthu/blog-cli/pkg/service"
)

var commentPostID int64

var commentCmd = &cobra.Command{
	Use:   "comment",
	Short: "Comment commands",
	Long:  "Read and write comments on posts",
}

var commentListCmd = &cobra.Command{
	Use:   "list <post-id>",
	Short: "List the comments on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "post")
		if err != nil {
			return err
		}
		return service.NewCommentService().List(id)
	},
}

var commentAddCmd = &cobra.Command{
	Use:   "add <post-id>",
	Short: "Comment on a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "post")
		if err != nil {
			return err
		}
		return service.NewCommentService().Add(id)
	},
}

var commentUpdateCmd = &cobra.Command{
	Use:   "update <comment-id>",
	Short: "Edit a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "comment")
		if err != nil {
			return err
		}
		return service.NewCommentService().Update(id, commentPostID)
	},
}

var commentDeleteCmd = &cobra.Command{
	Use:   "delete <comment-id>",
	Short: "Delete a comment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "comment")
		if err != nil {
			return err
		}
		return service.NewCommentService().Delete(id)
	},
}

func init() {
	commentUpdateCmd.Flags().Int64Var(&commentPostID, "post", 0, "ID of the post the comment belongs to")

	commentCmd.AddCommand(commentListCmd)
	commentCmd.AddCommand(commentAddCmd)
	commentCmd.AddCommand(commentUpdateCmd)
	commentCmd.AddCommand(commentDeleteCmd)
}
