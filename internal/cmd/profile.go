package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sathishrouthu/blog-cli/pkg/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Profile commands",
	Long:  "View and manage user profiles",
}

var profileViewCmd = &cobra.Command{
	Use:   "view <username>",
	Short: "Show a user's profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewProfileService().View(args[0])
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewProfileService().Update()
	},
}

var profilePostsCmd = &cobra.Command{
	Use:   "posts",
	Short: "List your posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewProfileService().MyPosts()
	},
}

var profileRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List posts you read recently",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewProfileService().RecentPosts()
	},
}

var profileLikedCmd = &cobra.Command{
	Use:   "liked",
	Short: "List posts you liked",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewProfileService().LikedPosts()
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Permanently delete your account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return service.NewProfileService().DeleteAccount()
	},
}

func init() {
	profileCmd.AddCommand(profileViewCmd)
	profileCmd.AddCommand(profileUpdateCmd)
	profileCmd.AddCommand(profilePostsCmd)
	profileCmd.AddCommand(profileRecentCmd)
	profileCmd.AddCommand(profileLikedCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}
