package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sathishrouthu/blog-cli/pkg/service"
)

var postPage int

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// parseID parses a numeric command-line ID argument.
func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s ID: %s", what, arg)
	}
	return id, nil
}

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post commands",
	Long:  "Browse, read, like and manage posts",
}

var postListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().List(postPage)
	},
}

var postGetCmd = &cobra.Command{
	Use:   "get <post-id>",
	Short: "Show a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "post")
		if err != nil {
			return err
		}
		return service.NewPostService().Get(id)
	},
}

var postReadCmd = &cobra.Command{
	Use:   "read <post-id>",
	Short: "Read a post interactively",
	Long: `Read a post page by page. Reading far enough into the post,
or keeping it open long enough, counts as a view. Press l while
reading to like or unlike the post and q to quit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "post")
		if err != nil {
			return err
		}
		return service.NewReaderService().Read(id)
	},
}

var postCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a new post",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().Create()
	},
}

var postUpdateCmd = &cobra.Command{
	Use:   "update <post-id>",
	Short: "Edit a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "post")
		if err != nil {
			return err
		}
		return service.NewPostService().Update(id)
	},
}

var postDeleteCmd = &cobra.Command{
	Use:   "delete <post-id>",
	Short: "Delete a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "post")
		if err != nil {
			return err
		}
		return service.NewPostService().Delete(id)
	},
}

var postLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like or unlike a post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "post")
		if err != nil {
			return err
		}
		return service.NewPostService().ToggleLike(id)
	},
}

var postSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search posts",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().Search(joinArgs(args))
	},
}

var postCategoryCmd = &cobra.Command{
	Use:   "category <name>",
	Short: "List posts in a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewPostService().ByCategory(args[0])
	},
}

func init() {
	postListCmd.Flags().IntVarP(&postPage, "page", "p", 1, "Page number")

	postCmd.AddCommand(postListCmd)
	postCmd.AddCommand(postGetCmd)
	postCmd.AddCommand(postReadCmd)
	postCmd.AddCommand(postCreateCmd)
	postCmd.AddCommand(postUpdateCmd)
	postCmd.AddCommand(postDeleteCmd)
	postCmd.AddCommand(postLikeCmd)
	postCmd.AddCommand(postSearchCmd)
	postCmd.AddCommand(postCategoryCmd)
}
