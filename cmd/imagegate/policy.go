package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rhels/imagegate/allowlist"
	"github.com/rhels/imagegate/policy"
)

var (
	policyAllowlistFile string
	policyName          string
	policyRepo          string
	policyBranch        string
	policyMessage       string
	policyAuthorName    string
	policyAuthorEmail   string
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Render and publish the admission-policy document",
}

var policyRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the policy document from the allowlist to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list, err := allowlist.Load(policyAllowlistFile)
		if err != nil {
			return err
		}
		doc := policy.Build(policyName, list, time.Now())
		data, err := doc.Render()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var policyPublishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Render the policy document and commit it to the policy repo",
	Long: `Render the policy document from the allowlist, write it into the
policy repository checkout, and commit it on a fresh branch. Pushing
the branch and opening a pull request happen in outer automation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list, err := allowlist.Load(policyAllowlistFile)
		if err != nil {
			return err
		}
		doc := policy.Build(policyName, list, time.Now())
		data, err := doc.Render()
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(policyRepo, policy.Filename), data, 0o644); err != nil {
			return fmt.Errorf("failed to write policy document: %w", err)
		}
		hash, err := policy.Publish(policyRepo, policy.PublishOptions{
			Branch:      policyBranch,
			Files:       []string{policy.Filename},
			Message:     policyMessage,
			AuthorName:  policyAuthorName,
			AuthorEmail: policyAuthorEmail,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "committed %s on %s\n", hash, policyBranch)
		return nil
	},
}

func init() {
	policyCmd.PersistentFlags().StringVar(&policyAllowlistFile, "file", allowlist.Filename, "Path to the allowlist file")
	policyCmd.PersistentFlags().StringVar(&policyName, "name", "image-allowlist", "Policy document name")

	policyPublishCmd.Flags().StringVar(&policyRepo, "repo", ".", "Path to the policy repository checkout")
	policyPublishCmd.Flags().StringVar(&policyBranch, "branch", "imagegate/update-allowlist", "Branch to commit on")
	policyPublishCmd.Flags().StringVar(&policyMessage, "message", "", "Commit message")
	policyPublishCmd.Flags().StringVar(&policyAuthorName, "author-name", "imagegate", "Commit author name")
	policyPublishCmd.Flags().StringVar(&policyAuthorEmail, "author-email", "imagegate@localhost", "Commit author email")

	policyCmd.AddCommand(policyRenderCmd)
	policyCmd.AddCommand(policyPublishCmd)
	rootCmd.AddCommand(policyCmd)
}
