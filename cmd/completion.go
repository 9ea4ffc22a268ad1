package cmd

import (
	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long:  "Generate the autocompletion script for shorten-path for the specified shell.",
	Example: `  # Bash
  shorten-path completion bash > /etc/bash_completion.d/shorten-path

  # Zsh
  shorten-path completion zsh > "${fpath[1]}/_shorten-path"

  # Fish
  shorten-path completion fish > ~/.config/fish/completions/shorten-path.fish

  # PowerShell
  shorten-path completion powershell >> $PROFILE`,
	DisableFlagsInUseLine: true,
}

var completionBashCmd = &cobra.Command{
	Use:                   "bash",
	Short:                 "Generate the autocompletion script for bash",
	Example:               "  source <(shorten-path completion bash)",
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletionV2(cmd.OutOrStdout(), true)
	},
}

var completionZshCmd = &cobra.Command{
	Use:                   "zsh",
	Short:                 "Generate the autocompletion script for zsh",
	Example:               "  source <(shorten-path completion zsh)",
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(cmd.OutOrStdout())
	},
}

var completionFishCmd = &cobra.Command{
	Use:                   "fish",
	Short:                 "Generate the autocompletion script for fish",
	Example:               "  shorten-path completion fish | source",
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
	},
}

var completionPowershellCmd = &cobra.Command{
	Use:                   "powershell",
	Short:                 "Generate the autocompletion script for powershell",
	Example:               "  shorten-path completion powershell | Out-String | Invoke-Expression",
	DisableFlagsInUseLine: true,
	Args:                  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	completionCmd.AddCommand(completionPowershellCmd)
	rootCmd.AddCommand(completionCmd)
}
