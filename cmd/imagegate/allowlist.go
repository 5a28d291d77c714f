package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhels/imagegate/allowlist"
)

var allowlistFile string

var allowlistCmd = &cobra.Command{
	Use:   "allowlist",
	Short: "Manage the approved-images allowlist",
}

var allowlistAddCmd = &cobra.Command{
	Use:   "add IMAGE...",
	Short: "Add image references to the allowlist",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := allowlist.Load(allowlistFile)
		if err != nil {
			return err
		}
		added := 0
		for _, ref := range args {
			if list.Add(ref) {
				added++
			}
		}
		if added == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no new entries")
			return nil
		}
		if err := list.Save(allowlistFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %d entries (%d total)\n", added, list.Len())
		return nil
	},
}

var allowlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the allowlist entries, sorted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		list, err := allowlist.Load(allowlistFile)
		if err != nil {
			return err
		}
		for _, ref := range list.Entries() {
			fmt.Fprintln(cmd.OutOrStdout(), ref)
		}
		return nil
	},
}

func init() {
	allowlistCmd.PersistentFlags().StringVar(&allowlistFile, "file", allowlist.Filename, "Path to the allowlist file")
	allowlistCmd.AddCommand(allowlistAddCmd)
	allowlistCmd.AddCommand(allowlistListCmd)
	rootCmd.AddCommand(allowlistCmd)
}
